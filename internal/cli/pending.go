package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"pahunapath/internal/guard"
	"pahunapath/pkg/client"
)

// The pending commands drive the server-held confirmation flow, so a bulk
// delete can be staged by one command and confirmed later by token.
func newPendingCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Stage, confirm or cancel server-held bulk deletes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:       "stage <delete_users|delete_staff|delete_places> id...",
			Short:     "Stage a bulk delete and print its confirmation token",
			Args:      cobra.MinimumNArgs(2),
			ValidArgs: []string{client.ActionDeleteUsers, client.ActionDeleteStaff, client.ActionDeletePlaces},
			RunE: func(cmd *cobra.Command, args []string) error {
				c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
				if err != nil {
					return err
				}
				pending, err := c.StageAction(cmd.Context(), args[0], args[1:])
				if err != nil {
					return friendly(err)
				}
				fmt.Fprintln(app.out, pending.Description)
				fmt.Fprintf(app.out, "token=%s expires=%s\n", pending.Token, pending.ExpiresAt)
				return nil
			},
		},
		&cobra.Command{
			Use:   "confirm <token>",
			Short: "Run a staged bulk delete",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
				if err != nil {
					return err
				}
				res, err := c.ConfirmAction(cmd.Context(), args[0])
				if err != nil {
					return friendly(err)
				}
				fmt.Fprintf(app.out, "Deleted %d of %d\n", res.Deleted, res.Requested)
				for _, o := range res.Outcomes {
					if !o.Deleted {
						fmt.Fprintf(app.out, "  %s: %s\n", o.ID, o.Error)
					}
				}
				if res.Failed > 0 {
					return fmt.Errorf("%d of %d deletions failed", res.Failed, res.Requested)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "cancel <token>",
			Short: "Drop a staged bulk delete",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
				if err != nil {
					return err
				}
				if err := c.CancelAction(cmd.Context(), args[0]); err != nil {
					return friendly(err)
				}
				fmt.Fprintln(app.out, "Cancelled")
				return nil
			},
		},
	)
	return cmd
}
