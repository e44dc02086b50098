package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

type App struct {
	authService      services.AuthService
	inventoryService services.InventoryService
	alertService     services.AlertService
	logger           logging.Logger

	userName string
	reader   *bufio.Reader
}

func NewApp(auth services.AuthService, inventory services.InventoryService, alerts services.AlertService, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		authService:      auth,
		inventoryService: inventory,
		alertService:     alerts,
		logger:           logger,
		reader:           bufio.NewReader(os.Stdin),
	}
}

// Run blocks in the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to StockKeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(&lineReader{r: a.reader}))
}

// lineReader hands the scanner one line per read, so prompts reading from
// the same bufio.Reader get the lines that follow a command.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			return 0, err
		}
		l.pending = line
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// describeError turns an error into the message shown to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		return "Please fill in all required fields."
	case errors.Is(err, common.ErrInvalidInput):
		return "Invalid number: " + err.Error()
	case errors.Is(err, common.ErrDuplicateUsername):
		return "That username is already taken."
	case errors.Is(err, common.ErrDuplicateName):
		return "An item with that name already exists."
	case errors.Is(err, common.ErrorNotFound):
		return "No item with that id."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, common.ErrEmptyDestination):
		return "Please enter a phone number."
	case errors.Is(err, common.ErrTransport):
		return "Failed to send SMS: " + err.Error()
	}
	return "Error: " + err.Error()
}
