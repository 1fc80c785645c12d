package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	token  string
	email  string
}

// NewApp connects to the configured server. A token from the config is used
// for cart commands until signup or login replaces it.
func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewStorefrontClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	cl.SetToken(c.Token)
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out, token: c.Token}
}

// Run executes args as a single command, or starts the REPL when args is
// empty. The connection is closed on return.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		a.Root(ctx)
		return nil
	}

	_, err := dispatch(ctx, a, args, a.printHelp)
	return err
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the storefront CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.printHelp)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	switch {
	case a.email != "":
		return "(" + a.email + ")"
	case a.isLoggedIn():
		return "(token)"
	default:
		return ""
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: cart, add <item>, remove <item>, products [all|new|women], upload <file>, ping, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: signup, login, products [all|new|women], upload <file>, ping, exit")
	}
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
