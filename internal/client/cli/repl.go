package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/legacykeeper/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Scan(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Heartbeat(ctx context.Context, args []string) error
	Frequency(ctx context.Context, args []string) error
	ConfirmAlive(ctx context.Context) error
}

const (
	helpGuest = "Available commands: login, help, exit"
	helpVault = "Available commands: (l)ist, show <id> [--reveal], add, scan [path], edit <id>, delete <id>, " +
		"heartbeat [on|off], frequency <monthly|quarterly>, confirm, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the legacykeeper CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to the handler on 'a'. Unknown commands are
// reported back to the user. The loop exits on EOF, when ctx is cancelled,
// or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors to the user. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("legacy %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		ctx := logging.ContextWith(ctx, "command", cmd)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpVault)
			} else {
				printlnFn(helpGuest)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "scan":
			_ = a.Scan(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "heartbeat":
			_ = a.Heartbeat(ctx, args)

		case "frequency":
			_ = a.Frequency(ctx, args)

		case "confirm":
			_ = a.ConfirmAlive(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
