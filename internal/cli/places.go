package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"pahunapath/internal/guard"
	"pahunapath/internal/listing"
	"pahunapath/pkg/client"
)

// Places have no email column; the author name stands in for it so a search
// matches either the place or who shared it.
var placeFields = listing.Fields[client.Place]{
	ID:      func(p client.Place) string { return p.ID },
	Name:    func(p client.Place) string { return p.Name },
	Email:   func(p client.Place) string { return p.Author },
	Created: client.Place.Created,
}

func newPlacesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Moderate shared places",
	}
	cmd.AddCommand(newPlacesListCommand(app), newPlacesDeleteCommand(app))
	return cmd
}

func newPlacesListCommand(app *App) *cobra.Command {
	var (
		flags listFlags
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := app.authorize(cmd.Context(), guard.RoleStaff, guard.RoleAdmin)
			if err != nil {
				return err
			}
			places, err := c.ListPlaces(cmd.Context(), kind)
			if err != nil {
				return friendly(err)
			}

			view := listing.NewView(places, placeFields)
			if err := applyListFlags(view, flags); err != nil {
				return err
			}

			rows := view.Rows()
			tw := newTable(app.out)
			fmt.Fprintln(tw, "ID\tNAME\tKIND\tRATING\tAUTHOR\tIMAGES\tCREATED")
			for _, p := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f (%d)\t%s\t%d\t%s\n",
					p.ID, p.Name, p.Kind, p.AverageRating, p.ReviewCount, p.Author, len(p.Images), formatCreated(p.Created()))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%d of %d places\n", len(rows), view.Len())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", "only place, restaurant or hotel")
	return cmd
}

func newPlacesDeleteCommand(app *App) *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:   "delete [id...]",
		Short: "Delete places after confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := app.authorize(cmd.Context(), guard.RoleStaff, guard.RoleAdmin)
			if err != nil {
				return err
			}
			places, err := c.ListPlaces(cmd.Context(), "")
			if err != nil {
				return friendly(err)
			}

			view := listing.NewView(places, placeFields)
			if err := applyListFlags(view, flags.listFlags); err != nil {
				return err
			}
			label := func(p client.Place) string { return p.Name }

			return runDelete(cmd.Context(), app, view, label, args, flags, "place", "places",
				listing.DeleterFunc(c.DeletePlace))
		},
	}
	flags.register(cmd)
	return cmd
}
