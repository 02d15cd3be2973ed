package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the skill catalog",
	Long: `List every skill the service knows about.

Use the ids with 'skilldeck add'.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	client, _, closer, err := requireClient()
	if err != nil {
		return trackCLIError("catalog", err)
	}
	defer closer()

	skills, err := client.ListSkills(cmd.Context())
	if err != nil {
		return trackCLIError("catalog", fmt.Errorf("list catalog: %w", err))
	}

	if len(skills) == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}

	fmt.Printf("SKILL CATALOG (%d skills)\n", len(skills))
	fmt.Println("──────────────────────────────────────────────────")
	for _, skill := range skills {
		fmt.Printf("  %4d  %s\n", skill.ID, skill.Name)
	}
	return nil
}
