// Package cli provides the interactive StockKeeper terminal client.
//
// Until a user logs in (or registers, which also logs in) only register,
// login, help and exit are available. After that the inventory commands
// (list, low, add, edit, setqty, delete) and the notification commands
// (notify, unnotify, test, alert) become available.
//
// Every command prompts for its fields one at a time. Errors are printed as
// user feedback and never end the session. The REPL is started with
// App.Run, which blocks until the user exits or stdin is closed.
package cli
