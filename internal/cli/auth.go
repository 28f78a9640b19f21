package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"taskdash/internal/api"
	"taskdash/internal/session"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(app *App) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the task API and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := strings.TrimSpace(username)
			if u == "" {
				var err error
				u, err = promptLine(cmd, "Username: ")
				if err != nil {
					return err
				}
			}
			p := password
			if p == "" {
				var err error
				p, err = promptPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			client := api.New(app.APIBase, "")
			creds, err := client.Login(cmd.Context(), u, p)
			if err != nil {
				return err
			}

			name := strings.TrimSpace(creds.Username)
			if name == "" {
				name = u
			}
			if err := session.Save(&session.Session{
				AccessToken:  creds.Access,
				RefreshToken: creds.Refresh,
				Username:     name,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted without echo when omitted)")
	return cmd
}

func newLogoutCmd(_ *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Load()
			if err != nil {
				return err
			}
			if !sess.LoggedIn() {
				return errNotLoggedIn()
			}
			return writeOut(cmd, app, map[string]string{"username": sess.Username})
		},
	}
}

func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	r := bufio.NewReader(cmd.InOrStdin())
	line, err := r.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	// Suppress echo when stdin is a real terminal; fall back to a plain line
	// read otherwise (pipes, tests).
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	return promptLine(cmd, prompt)
}
