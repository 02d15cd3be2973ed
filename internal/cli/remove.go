package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <association-id>",
	Short: "Remove a skill from your list",
	Long: `Remove one skill association by its id.

Find association ids with 'skilldeck list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return trackCLIError("remove", fmt.Errorf("invalid association id %q", args[0]))
	}

	client, _, closer, err := requireClient()
	if err != nil {
		return trackCLIError("remove", err)
	}
	defer closer()

	if err := client.DeleteAssociation(cmd.Context(), id); err != nil {
		telemetryClient.TrackAssociationDeleted(false)
		return trackCLIError("remove", fmt.Errorf("remove skill: %w", err))
	}

	telemetryClient.TrackAssociationDeleted(true)
	fmt.Printf("Removed association %d.\n", id)
	return nil
}
