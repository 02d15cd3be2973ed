package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lunar-gate/skilldeck/internal/models"
)

var setLevelCmd = &cobra.Command{
	Use:   "set-level <association-id> <level>",
	Short: "Change the level of one of your skills",
	Long: `Set the level of a skill association to a number from 0 to 100.

Find association ids with 'skilldeck list'.`,
	Args: cobra.ExactArgs(2),
	RunE: runSetLevel,
}

func runSetLevel(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return trackCLIError("set-level", fmt.Errorf("invalid association id %q", args[0]))
	}
	if _, err := models.ParseLevel(args[1]); err != nil {
		return trackCLIError("set-level", fmt.Errorf("invalid level %q: must be a number between 0 and 100", args[1]))
	}

	client, userID, closer, err := requireClient()
	if err != nil {
		return trackCLIError("set-level", err)
	}
	defer closer()

	updated, err := client.UpdateAssociation(cmd.Context(), id, userID, args[1])
	if err != nil {
		telemetryClient.TrackLevelUpdated(false)
		return trackCLIError("set-level", fmt.Errorf("set level: %w", err))
	}

	telemetryClient.TrackLevelUpdated(true)
	fmt.Printf("Updated %q to level %s.\n", updated.Name, updated.Level)
	return nil
}
