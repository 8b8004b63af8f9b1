package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	UserAdd(ctx context.Context) error
	UserUpdate(ctx context.Context) error
	UserToggle(ctx context.Context) error
	UserDelete(ctx context.Context) error
	Tasks(ctx context.Context) error
	TaskAdd(ctx context.Context) error
	TaskToggle(ctx context.Context) error
	TaskDelete(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("admin> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, useradd, userupdate, usertoggle, userdel, tasks, taskadd, tasktoggle, taskdel, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "useradd":
			_ = a.UserAdd(ctx)

		case "userupdate":
			_ = a.UserUpdate(ctx)

		case "usertoggle":
			_ = a.UserToggle(ctx)

		case "userdel":
			_ = a.UserDelete(ctx)

		case "t", "tasks":
			_ = a.Tasks(ctx)

		case "taskadd":
			_ = a.TaskAdd(ctx)

		case "tasktoggle":
			_ = a.TaskToggle(ctx)

		case "taskdel":
			_ = a.TaskDelete(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
