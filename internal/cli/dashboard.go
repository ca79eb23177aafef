package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"pahunapath/internal/guard"
)

func newDashboardCommand(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals and the best rated places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
			if err != nil {
				return err
			}
			d, err := c.Dashboard(cmd.Context(), days)
			if err != nil {
				return friendly(err)
			}

			fmt.Fprintf(app.out, "Users: %d (new in %d days: %d)\n", d.TotalUsers, d.WindowDays, d.NewUsers)
			fmt.Fprintf(app.out, "Staff: %d\nPlaces: %d\nReviews: %d\n", d.TotalStaff, d.TotalPlaces, d.TotalReviews)
			if len(d.TopPlaces) == 0 {
				return nil
			}

			fmt.Fprintln(app.out, "Top rated:")
			tw := newTable(app.out)
			for i, p := range d.TopPlaces {
				fmt.Fprintf(tw, "  %d.\t%s\t%.2f\t%d reviews\n", i+1, p.Name, p.AverageRating, p.ReviewCount)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "window for new sign-ups")
	return cmd
}
