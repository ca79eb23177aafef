package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"pahunapath/internal/guard"
	"pahunapath/internal/listing"
	"pahunapath/pkg/client"
)

type accountKind struct {
	use, one, many string
	list           func(*client.Client, context.Context) ([]client.Account, error)
	remove         func(*client.Client, context.Context, string) error
	bulk           func(*client.Client, context.Context, []string) (client.BulkResult, error)
}

var (
	accountKindUsers = accountKind{
		use: "users", one: "user", many: "users",
		list:   (*client.Client).ListUsers,
		remove: (*client.Client).DeleteUser,
		bulk:   (*client.Client).BulkDeleteUsers,
	}
	accountKindStaff = accountKind{
		use: "staff", one: "staff member", many: "staff members",
		list:   (*client.Client).ListStaff,
		remove: (*client.Client).DeleteStaff,
		bulk:   (*client.Client).BulkDeleteStaff,
	}
)

var accountFields = listing.Fields[client.Account]{
	ID:      func(a client.Account) string { return a.ID },
	Name:    func(a client.Account) string { return a.Name },
	Email:   func(a client.Account) string { return a.Email },
	Created: client.Account.Created,
}

// accountDeleter sends multi-id deletes through the server's bulk endpoint.
type accountDeleter struct {
	c    *client.Client
	kind accountKind
}

func (d accountDeleter) Delete(ctx context.Context, id string) error {
	return d.kind.remove(d.c, ctx, id)
}

func (d accountDeleter) DeleteMany(ctx context.Context, ids []string) (listing.BatchReport, error) {
	res, err := d.kind.bulk(d.c, ctx, ids)
	if err != nil {
		return listing.BatchReport{}, err
	}

	byID := make(map[string]client.DeleteOutcome, len(res.Outcomes))
	for _, o := range res.Outcomes {
		byID[o.ID] = o
	}

	report := listing.BatchReport{Outcomes: make([]listing.Outcome, 0, len(ids))}
	for _, id := range ids {
		o, ok := byID[id]
		switch {
		case !ok:
			report.Outcomes = append(report.Outcomes, listing.Outcome{ID: id, Err: errors.New("no result from server")})
		case o.Deleted:
			report.Outcomes = append(report.Outcomes, listing.Outcome{ID: id})
		default:
			msg := o.Error
			if msg == "" {
				msg = "not deleted"
			}
			report.Outcomes = append(report.Outcomes, listing.Outcome{ID: id, Err: errors.New(msg)})
		}
	}
	return report, nil
}

type listFlags struct {
	search string
	sort   string
	desc   bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "keep rows whose name or email contains this text")
	cmd.Flags().StringVar(&f.sort, "sort", "name", "sort column: name, email or created")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
}

func applyListFlags[T any](v *listing.View[T], f listFlags) error {
	field, err := listing.ParseSortField(f.sort)
	if err != nil {
		return err
	}
	v.Query = f.search
	v.SortBy(field)
	if f.desc {
		v.ToggleDirection()
	}
	return nil
}

func newAccountsCommand(app *App, kind accountKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.use,
		Short: "Manage " + kind.many,
	}
	cmd.AddCommand(newAccountsListCommand(app, kind), newAccountsDeleteCommand(app, kind))
	if kind.use == accountKindStaff.use {
		cmd.AddCommand(newStaffCreateCommand(app))
	}
	return cmd
}

func newAccountsListCommand(app *App, kind accountKind) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + kind.many,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
			if err != nil {
				return err
			}
			accounts, err := kind.list(c, cmd.Context())
			if err != nil {
				return friendly(err)
			}

			view := listing.NewView(accounts, accountFields)
			if err := applyListFlags(view, flags); err != nil {
				return err
			}

			rows := view.Rows()
			tw := newTable(app.out)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tCREATED")
			for _, a := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Email, a.Role, formatCreated(a.Created()))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%d of %d %s\n", len(rows), view.Len(), kind.many)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

type deleteFlags struct {
	listFlags
	allMatching bool
	yes         bool
}

func (f *deleteFlags) register(cmd *cobra.Command) {
	f.listFlags.register(cmd)
	cmd.Flags().BoolVar(&f.allMatching, "all-matching", false, "delete every row matching --search")
	cmd.Flags().BoolVar(&f.yes, "yes", false, "skip the confirmation prompt")
}

func newAccountsDeleteCommand(app *App, kind accountKind) *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:   "delete [id...]",
		Short: "Delete " + kind.many + " after confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
			if err != nil {
				return err
			}
			accounts, err := kind.list(c, cmd.Context())
			if err != nil {
				return friendly(err)
			}

			view := listing.NewView(accounts, accountFields)
			if err := applyListFlags(view, flags.listFlags); err != nil {
				return err
			}
			label := func(a client.Account) string { return fmt.Sprintf("%s <%s>", a.Name, a.Email) }

			return runDelete(cmd.Context(), app, view, label, args, flags, kind.one, kind.many,
				accountDeleter{c: c, kind: kind})
		},
	}
	flags.register(cmd)
	return cmd
}

func newStaffCreateCommand(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a staff account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := app.authorize(cmd.Context(), guard.RoleAdmin)
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = app.readLine("Password: "); err != nil {
					return err
				}
			}

			staff, err := c.CreateStaff(cmd.Context(), name, email, password)
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(app.out, "Created staff %s <%s> id=%s\n", staff.Name, staff.Email, staff.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "initial password (prompted when empty)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// runDelete selects the target rows, asks for confirmation and deletes them,
// printing a per-id report.
func runDelete[T any](
	ctx context.Context,
	app *App,
	view *listing.View[T],
	label func(T) string,
	args []string,
	flags deleteFlags,
	one, many string,
	del listing.Deleter,
) error {
	sel := listing.NewSelection()
	switch {
	case flags.allMatching && len(args) > 0:
		return errors.New("pass ids or --all-matching, not both")
	case flags.allMatching:
		if flags.search == "" {
			return errors.New("--all-matching needs --search")
		}
		sel.SelectAll(view.VisibleIDs())
	default:
		if len(args) == 0 {
			return errors.New("no ids given")
		}
		for _, id := range args {
			if _, ok := view.Lookup(id); !ok {
				return fmt.Errorf("unknown id %s", id)
			}
			if !sel.Has(id) {
				sel.Toggle(id)
			}
		}
	}
	if sel.Len() == 0 {
		fmt.Fprintf(app.out, "No %s match\n", many)
		return nil
	}

	ids := sel.IDs()
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		item, _ := view.Lookup(id)
		labels = append(labels, label(item))
	}

	kind := listing.DeleteMany
	if len(ids) == 1 {
		kind = listing.DeleteOne
	}
	description := describe("Delete", labels, one, many)

	var confirm listing.Confirm
	if err := confirm.Request(kind, description, ids); err != nil {
		return err
	}

	if !flags.yes {
		ok, err := app.confirm(description + "?")
		if err != nil {
			return err
		}
		if !ok {
			confirm.Cancel()
			fmt.Fprintln(app.out, "Cancelled")
			return nil
		}
	}

	report, err := confirm.Execute(ctx, del, sel)
	if err != nil {
		return friendly(err)
	}
	view.Remove(report.Succeeded()...)
	printReport(app.out, report)
	return reportError(report)
}
