package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
// App satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Low(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	SetQty(ctx context.Context) error
	Delete(ctx context.Context) error
	Notify(ctx context.Context) error
	Unnotify(ctx context.Context) error
	Test(ctx context.Context) error
	Alert(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist, low, add, edit, setqty, delete, notify, unnotify, test, alert, logout, exit"
)

// runREPL reads one command per line from scanner and dispatches it to a.
// The loop ends on EOF or on "exit"/"quit". Errors returned by a command are
// printed and the loop continues. Inventory and notification commands are
// refused until the user has logged in.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var handler func(context.Context) error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "register":
			handler = a.Register
		case "login":
			handler = a.Login
		case "logout":
			handler = a.Logout
		case "l", "list":
			handler = a.List
		case "low":
			handler = a.Low
		case "add":
			handler = a.Add
		case "edit":
			handler = a.Edit
		case "setqty":
			handler = a.SetQty
		case "delete":
			handler = a.Delete
		case "notify":
			handler = a.Notify
		case "unnotify":
			handler = a.Unnotify
		case "test":
			handler = a.Test
		case "alert":
			handler = a.Alert

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		if err := handler(ctx); err != nil {
			printlnFn(describeError(err))
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "register", "login":
		return false
	}
	return true
}
