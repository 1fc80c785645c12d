package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

var errUsage = errors.New("usage")

// execIface is the command surface the dispatcher needs. App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Cart(ctx context.Context) error
	Add(ctx context.Context, itemID string) error
	Remove(ctx context.Context, itemID string) error
	Products(ctx context.Context, list string) error
	Upload(ctx context.Context, path string) error
	Ping(ctx context.Context) error
}

// dispatch runs one command. quit is true for exit/quit.
func dispatch(ctx context.Context, a execIface, parts []string, help func()) (quit bool, err error) {
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		help()
	case "signup":
		return false, a.Signup(ctx)
	case "login":
		return false, a.Login(ctx)
	case "logout":
		return false, a.Logout(ctx)
	case "cart":
		return false, a.Cart(ctx)
	case "add", "remove":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: %s <item>", errUsage, cmd)
		}
		if cmd == "add" {
			return false, a.Add(ctx, args[0])
		}
		return false, a.Remove(ctx, args[0])
	case "products":
		list := "all"
		if len(args) > 0 {
			list = args[0]
		}
		return false, a.Products(ctx, list)
	case "upload":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: upload <file>", errUsage)
		}
		return false, a.Upload(ctx, args[0])
	case "ping":
		return false, a.Ping(ctx)
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}

	return false, nil
}

// runREPL reads commands line by line from reader until EOF or exit.
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, help func()) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) > 0 {
			quit, cmdErr := dispatch(ctx, a, parts, help)
			if quit {
				printlnFn("Bye!")
				return
			}
			if cmdErr != nil {
				printlnFn("Error:", cmdErr)
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}
	}
}
