package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
	"github.com/dmitrijs2005/stockkeeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	bodies []string
	err    error
}

func (r *recordingTransport) Send(ctx context.Context, destination, body string) error {
	if r.err != nil {
		return r.err
	}
	r.bodies = append(r.bodies, destination+": "+body)
	return nil
}

func newTestApp(t *testing.T) (*App, *recordingTransport) {
	t.Helper()
	st, err := store.Open(context.Background(), store.Options{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	tr := &recordingTransport{}
	app := NewApp(
		services.NewAuthService(st, nil),
		services.NewInventoryService(st),
		services.NewAlertService(st, st, tr, 0, nil),
		nil,
	)
	return app, tr
}

// stubAnswers feeds prompts from answers in order and the password from pw.
func stubAnswers(t *testing.T, pw string, answers ...string) {
	t.Helper()
	origST, origGP, origYN := getSimpleText, getPassword, getYesNo
	t.Cleanup(func() { getSimpleText, getPassword, getYesNo = origST, origGP, origYN })

	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getYesNo = func(_ *bufio.Reader, _ string, def bool, _ io.Writer) (bool, error) {
		a, err := next()
		if err != nil {
			return false, err
		}
		if a == "" {
			return def, nil
		}
		return a == "y", nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
}

func TestRegister_LogsIn(t *testing.T) {
	capturePrintln(t)
	app, _ := newTestApp(t)

	stubAnswers(t, "secret", "alice")
	require.NoError(t, app.Register(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(alice)", app.getStatus())

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())

	stubAnswers(t, "secret", "alice")
	assert.ErrorIs(t, app.Register(context.Background()), common.ErrDuplicateUsername)
}

func TestLogin(t *testing.T) {
	capturePrintln(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	stubAnswers(t, "secret", "alice")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))

	stubAnswers(t, "wrong", "alice")
	assert.ErrorIs(t, app.Login(ctx), common.ErrInvalidCredentials)
	assert.False(t, app.isLoggedIn())

	stubAnswers(t, "secret", "alice")
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
}

func TestLogin_InputError(t *testing.T) {
	capturePrintln(t)
	app, _ := newTestApp(t)

	stubAnswers(t, "secret")
	assert.ErrorIs(t, app.Login(context.Background()), io.EOF)
}

func TestInventoryCommands(t *testing.T) {
	out := capturePrintln(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	stubAnswers(t, "", "Widget", "10", "")
	require.NoError(t, app.Add(ctx))
	assert.Contains(t, *out, "Item added with id 1.")

	stubAnswers(t, "", "Gadget", "abc", "")
	assert.ErrorIs(t, app.Add(ctx), common.ErrInvalidInput)

	*out = nil
	require.NoError(t, app.Low(ctx))
	assert.Equal(t, []string{"Nothing is low on stock."}, *out)

	stubAnswers(t, "", "1", "3")
	require.NoError(t, app.SetQty(ctx))

	*out = nil
	require.NoError(t, app.List(ctx))
	assert.Equal(t, []string{"#1 Widget qty=3 threshold=5 [LOW]"}, *out)

	stubAnswers(t, "", "1", "Sprocket", "20", "4")
	require.NoError(t, app.Edit(ctx))

	stubAnswers(t, "", "99", "Ghost", "1", "1")
	assert.ErrorIs(t, app.Edit(ctx), common.ErrorNotFound)

	stubAnswers(t, "", "x")
	assert.ErrorIs(t, app.Delete(ctx), common.ErrInvalidInput)

	stubAnswers(t, "", "1")
	require.NoError(t, app.Delete(ctx))

	*out = nil
	require.NoError(t, app.List(ctx))
	assert.Equal(t, []string{"No items."}, *out)
}

func TestNotificationCommands(t *testing.T) {
	out := capturePrintln(t)
	app, tr := newTestApp(t)
	ctx := context.Background()

	stubAnswers(t, "", "")
	assert.ErrorIs(t, app.Test(ctx), common.ErrEmptyDestination)

	stubAnswers(t, "", "+15550100", "y")
	require.NoError(t, app.Notify(ctx))

	stubAnswers(t, "", "")
	require.NoError(t, app.Test(ctx))
	assert.Equal(t, []string{"+15550100: " + services.TestMessage}, tr.bodies)

	stubAnswers(t, "", "")
	require.NoError(t, app.Alert(ctx))
	assert.Contains(t, *out, "Nothing is low on stock; no alert sent.")

	stubAnswers(t, "", "A", "1", "")
	require.NoError(t, app.Add(ctx))

	stubAnswers(t, "", "+15550199")
	require.NoError(t, app.Alert(ctx))
	assert.Contains(t, *out, "Low-stock alert sent: Low inventory alert: A (1)")
	assert.Equal(t, "+15550199: Low inventory alert: A (1)", tr.bodies[len(tr.bodies)-1])

	tr.err = errors.New("gateway down")
	stubAnswers(t, "", "")
	require.NoError(t, app.Alert(ctx), "delivery failures are not command errors")
	assert.Contains(t, strings.Join(*out, "\n"), "could not be delivered")

	stubAnswers(t, "", "")
	err := app.Test(ctx)
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestUnnotify(t *testing.T) {
	out := capturePrintln(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	stubAnswers(t, "", "+15550100", "y")
	require.NoError(t, app.Notify(ctx))

	stubAnswers(t, "", "n")
	require.NoError(t, app.Unnotify(ctx))
	assert.Contains(t, *out, "Notification settings kept.")
	ns, err := app.alertService.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, ns.Enabled)

	stubAnswers(t, "", "y")
	require.NoError(t, app.Unnotify(ctx))
	assert.Contains(t, *out, "Notification settings cleared.")
	ns, err = app.alertService.Settings(ctx)
	require.NoError(t, err)
	assert.Empty(t, ns.Destination)
	assert.False(t, ns.Enabled)
}

func TestRun_ScriptedSession(t *testing.T) {
	out := capturePrintln(t)
	origGP := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { getPassword = origGP })

	app, _ := newTestApp(t)
	app.reader = bufio.NewReader(strings.NewReader(strings.Join([]string{
		"list",
		"register",
		"alice",
		"add",
		"Widget",
		"2",
		"",
		"low",
		"exit",
	}, "\n") + "\n"))

	app.Run(context.Background())

	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, "Registration successful. Logged in as alice.")
	assert.Contains(t, *out, "#1 Widget qty=2 threshold=5 [LOW]")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}
