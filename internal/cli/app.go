// Package cli implements the pahuna-admin command line client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"pahunapath/internal/config"
	"pahunapath/internal/guard"
	"pahunapath/pkg/client"
)

type App struct {
	cfg         config.CLIConfig
	sessionPath string
	in          *bufio.Reader
	out         io.Writer
}

func NewApp(cfg config.CLIConfig, sessionPath string, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:         cfg,
		sessionPath: sessionPath,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pahuna-admin",
		Short:         "Manage Pahunapath users, staff and places",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newAccountsCommand(app, accountKindUsers),
		newAccountsCommand(app, accountKindStaff),
		newPlacesCommand(app),
		newPendingCommand(app),
		newDashboardCommand(app),
	)
	return root
}

func (a *App) client(token string) (*client.Client, error) {
	return client.New(a.cfg.APIURL,
		client.WithToken(token),
		client.WithTimeout(a.cfg.HTTPTimeout()))
}

// authorize loads the saved session and checks it against the server with
// the given roles. It returns a client bound to the session.
func (a *App) authorize(ctx context.Context, roles ...string) (*client.Client, client.Account, error) {
	c, err := a.client("")
	if err != nil {
		return nil, client.Account{}, err
	}

	sess, err := guard.LoadSession(a.sessionPath)
	if err != nil {
		return nil, client.Account{}, friendly(err)
	}

	acc, err := guard.New(c).Allow(ctx, sess, roles...)
	if err != nil {
		return nil, client.Account{}, friendly(err)
	}
	return c.WithSession(sess.Token), acc, nil
}

// confirm asks a yes/no question; anything but y or yes is a no.
func (a *App) confirm(question string) (bool, error) {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// friendly turns errors into the one-line notice the user sees.
func friendly(err error) error {
	switch {
	case errors.Is(err, guard.ErrNoSession):
		return errors.New("not logged in: run `pahuna-admin login` first")
	case errors.Is(err, guard.ErrForbidden):
		return errors.New("access denied: your account does not have the required role")
	}
	if apiErr, ok := client.AsAPIError(err); ok {
		if apiErr.Forbidden() {
			return errors.New("access denied: " + apiErr.Message)
		}
		if len(apiErr.Fields) == 0 {
			return errors.New(apiErr.Message)
		}
		parts := make([]string, 0, len(apiErr.Fields))
		for field, msg := range apiErr.Fields {
			parts = append(parts, field+": "+msg)
		}
		return fmt.Errorf("%s (%s)", apiErr.Message, strings.Join(sortedCopy(parts), "; "))
	}
	return err
}
