package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	Search(ctx context.Context, term string) error
	AddQuestion(ctx context.Context) error
	ToggleAnswer(ctx context.Context, id int64) error
	Dismiss(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	Help()
}

// shortcuts maps one-word commands to the routes they open.
var shortcuts = map[string]string{
	"home":     "/",
	"register": "/register",
	"login":    "/login",
	"user":     "/user",
	"mine":     "/my-questions",
}

// runREPL starts a simple read–eval–print loop for the QuizBoard CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	home | register | login | user | mine   open a view
//	go <route>                             open any route, e.g. go /edit/3
//	edit <id>                              edit one of your questions
//	search [term]                          filter the list; no term clears it
//	add                                    create a question
//	answer <id>                            show or hide an answer
//	dismiss                                close the alert
//	theme                                  switch the navigation bar theme
//	logout | help | exit | quit
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures through the alert banner.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("quiz %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if path, ok := shortcuts[cmd]; ok {
			_ = a.Navigate(ctx, path)
			continue
		}

		switch cmd {
		case "help":
			a.Help()

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <route>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Navigate(ctx, "/edit/"+args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "add":
			_ = a.AddQuestion(ctx)

		case "answer":
			if len(args) == 0 {
				printlnFn("Usage: answer <id>")
				continue
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				printlnFn("Invalid question id:", args[0])
				continue
			}
			_ = a.ToggleAnswer(ctx, id)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
