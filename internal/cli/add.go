package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lunar-gate/skilldeck/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add <skill-id> <level>",
	Short: "Add a catalog skill to your list",
	Long: `Associate a catalog skill with your account at the given level.

Find skill ids with 'skilldeck catalog'. The level is a number from
0 to 100.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	skillID, err := strconv.Atoi(args[0])
	if err != nil {
		return trackCLIError("add", fmt.Errorf("invalid skill id %q", args[0]))
	}
	if _, err := models.ParseLevel(args[1]); err != nil {
		return trackCLIError("add", fmt.Errorf("invalid level %q: must be a number between 0 and 100", args[1]))
	}

	client, userID, closer, err := requireClient()
	if err != nil {
		return trackCLIError("add", err)
	}
	defer closer()

	created, err := client.CreateAssociation(cmd.Context(), userID, skillID, args[1])
	if err != nil {
		telemetryClient.TrackAssociationCreated(false)
		return trackCLIError("add", fmt.Errorf("add skill: %w", err))
	}

	telemetryClient.TrackAssociationCreated(true)
	fmt.Printf("Added %q at level %s.\n", created.Name, created.Level)
	return nil
}
