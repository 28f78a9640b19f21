package cli

import (
	"os"
	"strings"

	"taskdash/internal/api"
	"taskdash/internal/format"
	"taskdash/internal/session"
	"taskdash/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	APIBase    string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdash",
		Short:        "Task dashboard (remote API) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Sign in, then start the interactive dashboard
  taskdash login
  taskdash

  # Scriptable commands
  taskdash tasks list --status pending
  taskdash tasks create --title "Ship release" --due 2026-09-15
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive dashboard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIBase, "api", envOr("TASKDASH_API", api.DefaultBaseURL), "Base URL of the task API")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newTasksCmd(app))

	return cmd
}

func runDashboard(app *App) error {
	// Session guard: without a stored credential nothing else is armed; no
	// task load, no UI. The login command is the "login surface" here.
	sess, err := session.Load()
	if err != nil {
		return err
	}
	if !sess.LoggedIn() {
		return errNotLoggedIn()
	}
	return tui.Run(newClient(app, sess), sess.Username)
}

// newClient builds the gateway client with the logout hook installed: a
// rejected credential clears every stored session value, whichever call
// tripped it.
func newClient(app *App, sess *session.Session) *api.Client {
	c := api.New(app.APIBase, sess.AccessToken)
	c.OnUnauthorized = func() { _ = session.Clear() }
	return c
}

// guardedClient is the scriptable-command variant of the session guard.
func guardedClient(app *App) (*api.Client, *session.Session, error) {
	sess, err := session.Load()
	if err != nil {
		return nil, nil, err
	}
	if !sess.LoggedIn() {
		return nil, nil, errNotLoggedIn()
	}
	return newClient(app, sess), sess, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}
