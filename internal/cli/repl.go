package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Strains(ctx context.Context) error
	Search(ctx context.Context, q string) error
	LogEncounter(ctx context.Context) error
	Encounters(ctx context.Context) error
	Battles(ctx context.Context) error
	Challenge(ctx context.Context) error
	Friends(ctx context.Context) error
	Achievements(ctx context.Context) error
	Stats(ctx context.Context) error
	Settings(ctx context.Context, args []string) error
	Sync(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Cannadex CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on a. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are printed here; handlers stay
// free of presentation concerns beyond their own output.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cx %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: strains, search <q>, log, encounters, battles, challenge, friends, achievements, stats, settings, sync, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "strains":
			err = a.Strains(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			err = a.Search(ctx, strings.Join(args, " "))

		case "log":
			err = a.LogEncounter(ctx)

		case "encounters":
			err = a.Encounters(ctx)

		case "battles":
			err = a.Battles(ctx)

		case "challenge":
			err = a.Challenge(ctx)

		case "friends":
			err = a.Friends(ctx)

		case "achievements":
			err = a.Achievements(ctx)

		case "stats":
			err = a.Stats(ctx)

		case "settings":
			err = a.Settings(ctx, args)

		case "sync":
			err = a.Sync(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
