package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunar-gate/skilldeck/internal/api"
)

var (
	listPage   int
	listSize   int
	listSearch string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your skill associations",
	Long: `List one page of your skill associations.

Supports the same search, sort and paging controls as the TUI:

  skilldeck list --page 0 --size 10
  skilldeck list --search go --sort level,desc`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 0, "zero-based page number")
	listCmd.Flags().IntVar(&listSize, "size", 10, "items per page")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by skill name")
	listCmd.Flags().StringVar(&listSort, "sort", "", `sort spec, e.g. "nome,asc" or "level,desc"`)
}

// requireClient opens the session and builds an authenticated API
// client, failing when no session token is stored.
func requireClient() (*api.Client, string, func(), error) {
	cfg, store, err := openSession()
	if err != nil {
		return nil, "", nil, err
	}
	closer := func() { _ = store.Close() }

	if _, ok := store.Token(); !ok {
		closer()
		return nil, "", nil, errors.New("not signed in; run 'skilldeck login' first")
	}

	client, err := api.New(cfg.API.BaseURL, store)
	if err != nil {
		closer()
		return nil, "", nil, fmt.Errorf("create API client: %w", err)
	}
	return client, store.UserID(), closer, nil
}

func runList(cmd *cobra.Command, args []string) error {
	if listSize <= 0 {
		return trackCLIError("list", fmt.Errorf("invalid --size %d: must be positive", listSize))
	}
	if listPage < 0 {
		return trackCLIError("list", fmt.Errorf("invalid --page %d: must be zero or greater", listPage))
	}

	client, userID, closer, err := requireClient()
	if err != nil {
		return trackCLIError("list", err)
	}
	defer closer()

	page, err := client.ListAssociations(cmd.Context(), api.ListRequest{
		UserID: userID,
		Page:   listPage,
		Size:   listSize,
		Search: listSearch,
		Sort:   listSort,
	})
	if err != nil {
		return trackCLIError("list", fmt.Errorf("list skills: %w", err))
	}

	if len(page.Items) == 0 {
		fmt.Println("No skills found.")
		return nil
	}

	fmt.Printf("YOUR SKILLS (page %d/%d)\n", listPage+1, page.TotalPages)
	fmt.Println("──────────────────────────────────────────────────")
	for _, item := range page.Items {
		fmt.Printf("  %4d  %-30s level %s\n", item.ID, item.Name, item.Level)
	}
	return nil
}
