package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/config"
	"github.com/lunar-gate/skilldeck/internal/models"
	"github.com/lunar-gate/skilldeck/internal/session"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the skills service",
	Long: `Sign in to the skills service and store the session token locally.

The token is used by all other commands and by the TUI.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}

// openSession loads config and opens the session store. The caller
// must close the returned store.
func openSession() (*config.Config, *session.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	paths := config.GetPaths(cfg)
	store, err := session.Open(paths.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}
	return cfg, store, nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, store, err := openSession()
	if err != nil {
		return trackCLIError("login", err)
	}
	defer func() { _ = store.Close() }()

	client, err := api.New(cfg.API.BaseURL, store)
	if err != nil {
		return trackCLIError("login", fmt.Errorf("create API client: %w", err))
	}

	token, userID, err := client.SignIn(cmd.Context(), models.Credentials{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		telemetryClient.TrackSignIn(false)
		return trackCLIError("login", fmt.Errorf("sign in: %w", err))
	}

	if err := store.SetCredentials(token, userID); err != nil {
		return trackCLIError("login", fmt.Errorf("store session: %w", err))
	}

	telemetryClient.TrackSignIn(true)
	fmt.Printf("Signed in as user %s.\n", userID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	_, store, err := openSession()
	if err != nil {
		return trackCLIError("logout", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Clear(); err != nil {
		return trackCLIError("logout", fmt.Errorf("clear session: %w", err))
	}

	telemetryClient.TrackSignOut()
	fmt.Println("Signed out.")
	return nil
}
