package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/client/client"
	"github.com/dmitrijs2005/tuchka/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var ErrUsage = errors.New("usage error")

type App struct {
	client  client.Client
	reader  *bufio.Reader
	out     io.Writer
	timeout time.Duration
	token   string
}

func NewApp(c client.Client, in io.Reader, out io.Writer, timeout time.Duration) *App {
	return &App{
		client:  c,
		reader:  bufio.NewReader(in),
		out:     out,
		timeout: timeout,
	}
}

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register":        {"register [username]", (*App).register},
	"register-admin":  {"register-admin [username]", (*App).registerAdmin},
	"login":           {"login [username]", (*App).login},
	"change-password": {"change-password [username]", (*App).changePassword},
	"reset-token":     {"reset-token [username]", (*App).resetToken},
	"reset-password":  {"reset-password [username]", (*App).resetPassword},
	"admin-reset":     {"-token <admin token> admin-reset [username]", (*App).adminReset},
}

// ParseArgs consumes the global flags and returns the session token given
// with -token and the remaining command line.
func ParseArgs(args []string) (token string, rest []string, err error) {
	fs := flag.NewFlagSet("tuchka", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Owned by the config package; declared here so they are skipped.
	fs.String("a", "", "server address")
	fs.Duration("timeout", 0, "request timeout")
	fs.String("c", "", "config file")
	fs.String("config", "", "config file")

	fs.StringVar(&token, "token", "", "session token for admin commands")

	if err := fs.Parse(args); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return token, fs.Args(), nil
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, token string, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		a.printUsage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	if token != "" {
		a.token = token
		a.client.SetToken(token)
	}

	return cmd.run(a, ctx, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Usage: tuchka [-a address] [-timeout duration] <command>")
	fmt.Fprintln(a.out, "Commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
}

func (a *App) rpcContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *App) text(args []string, prompt string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) password(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// newPassword asks for a new password twice. The server compares them.
func (a *App) newPassword() (string, string, error) {
	pw, err := a.password("Enter new password")
	if err != nil {
		return "", "", err
	}
	confirm, err := a.password("Confirm new password")
	if err != nil {
		return "", "", err
	}
	return pw, confirm, nil
}
