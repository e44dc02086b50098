package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	errs     map[string]error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) List(ctx context.Context) error     { return f.record("list") }
func (f *fakeExec) Low(ctx context.Context) error      { return f.record("low") }
func (f *fakeExec) Add(ctx context.Context) error      { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context) error     { return f.record("edit") }
func (f *fakeExec) SetQty(ctx context.Context) error   { return f.record("setqty") }
func (f *fakeExec) Delete(ctx context.Context) error   { return f.record("delete") }
func (f *fakeExec) Notify(ctx context.Context) error   { return f.record("notify") }
func (f *fakeExec) Unnotify(ctx context.Context) error { return f.record("unnotify") }
func (f *fakeExec) Test(ctx context.Context) error     { return f.record("test") }
func (f *fakeExec) Alert(ctx context.Context) error    { return f.record("alert") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(exec execIface, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runScript(exec,
		"help", "login", "help", "list", "l", "low", "add", "edit", "setqty",
		"delete", "notify", "unnotify", "test", "alert", "logout", "exit",
	)

	assert.Equal(t, []string{
		"login", "list", "list", "low", "add", "edit", "setqty",
		"delete", "notify", "unnotify", "test", "alert", "logout",
	}, exec.calls)
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runScript(exec, "list", "add", "alert", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Please log in first.")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	out := capturePrintln(t)

	runScript(&fakeExec{}, "help", "exit")
	assert.Contains(t, *out, helpLoggedOut)

	runScript(&fakeExec{loggedIn: true}, "help", "exit")
	assert.Contains(t, *out, helpLoggedIn)
}

func TestRunREPL_ErrorsAreShownAndLoopContinues(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, errs: map[string]error{
		"add":  fmt.Errorf("%w: %q is not a whole number", common.ErrInvalidInput, "abc"),
		"edit": common.ErrorNotFound,
		"test": errors.New("disk on fire"),
	}}
	runScript(exec, "add", "edit", "test", "list", "exit")

	assert.Equal(t, []string{"add", "edit", "test", "list"}, exec.calls)
	assert.Contains(t, *out, `Invalid number: invalid input: "abc" is not a whole number`)
	assert.Contains(t, *out, "No item with that id.")
	assert.Contains(t, *out, "Error: disk on fire")
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runScript(exec, "", "frobnicate")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command: frobnicate")
	assert.NotContains(t, *out, "Bye!")
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrEmptyInput, "Please fill in all required fields."},
		{common.ErrDuplicateUsername, "That username is already taken."},
		{common.ErrDuplicateName, "An item with that name already exists."},
		{common.ErrInvalidCredentials, "Invalid username or password."},
		{common.ErrEmptyDestination, "Please enter a phone number."},
		{fmt.Errorf("%w: %w", common.ErrTransport, errors.New("503")), "Failed to send SMS: transport error: 503"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
