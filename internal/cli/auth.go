package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"pahunapath/internal/guard"
	"pahunapath/pkg/client"
)

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = app.readLine("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = app.readLine("Password: "); err != nil {
					return err
				}
			}

			c, err := app.client("")
			if err != nil {
				return err
			}
			res, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return friendly(err)
			}

			sess := guard.Session{
				Token:     res.Token,
				AccountID: res.AccountID,
				Role:      res.Role,
				Email:     email,
				IssuedAt:  time.Now().UTC(),
			}
			if err := guard.SaveSession(app.sessionPath, sess); err != nil {
				return err
			}

			fmt.Fprintf(app.out, "Logged in as %s (%s)\n", email, res.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the current token and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := guard.LoadSession(app.sessionPath)
			if err != nil {
				return friendly(err)
			}

			c, err := app.client(sess.Token)
			if err != nil {
				return err
			}
			if err := c.Logout(cmd.Context()); err != nil {
				// An already expired token still counts as logged out.
				if apiErr, ok := client.AsAPIError(err); !ok || !apiErr.Unauthorized() {
					return friendly(err)
				}
			}

			if err := guard.ClearSession(app.sessionPath); err != nil {
				return err
			}
			fmt.Fprintln(app.out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, acc, err := app.authorize(cmd.Context(), guard.RoleUser, guard.RoleStaff, guard.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%s <%s> role=%s id=%s\n", acc.Name, acc.Email, acc.Role, acc.ID)
			return nil
		},
	}
}
