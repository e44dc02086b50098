package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

// Notify edits the saved alert destination and the enabled flag.
func (a *App) Notify(ctx context.Context) error {
	current, err := a.alertService.Settings(ctx)
	if err != nil {
		return err
	}

	prompt := "Phone number for alerts"
	if current.Destination != "" {
		prompt += fmt.Sprintf(" (empty keeps %s)", current.Destination)
	}
	dest, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if dest == "" {
		dest = current.Destination
	}

	enabled, err := getYesNo(a.reader, "Send scheduled low-stock alerts?", current.Enabled, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.alertService.SaveSettings(ctx, dest, enabled); err != nil {
		return err
	}
	printlnFn("Notification settings saved.")
	return nil
}

// Unnotify forgets the saved phone number and turns scheduled alerts off.
func (a *App) Unnotify(ctx context.Context) error {
	ok, err := getYesNo(a.reader, "Clear notification settings?", false, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Notification settings kept.")
		return nil
	}

	if err := a.alertService.ClearSettings(ctx); err != nil {
		return err
	}
	printlnFn("Notification settings cleared.")
	return nil
}

// readDestination prompts for a phone number, falling back to the saved one.
func (a *App) readDestination(ctx context.Context) (string, error) {
	current, err := a.alertService.Settings(ctx)
	if err != nil {
		return "", err
	}

	prompt := "Phone number"
	if current.Destination != "" {
		prompt += fmt.Sprintf(" (empty uses %s)", current.Destination)
	}
	dest, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if dest == "" {
		dest = current.Destination
	}
	return dest, nil
}

func (a *App) Test(ctx context.Context) error {
	dest, err := a.readDestination(ctx)
	if err != nil {
		return err
	}

	if err := a.alertService.SendTest(ctx, dest); err != nil {
		return err
	}
	printlnFn("Test SMS sent to " + dest + ".")
	return nil
}

// Alert sends the low-stock message now. A delivery failure is reported but
// is not an error of the command.
func (a *App) Alert(ctx context.Context) error {
	dest, err := a.readDestination(ctx)
	if err != nil {
		return err
	}

	res, err := a.alertService.SendLowStockAlert(ctx, dest)
	if err != nil {
		return err
	}

	switch res.Status {
	case services.AlertSent:
		printlnFn("Low-stock alert sent: " + res.Message)
	case services.AlertSkipped:
		printlnFn("Nothing is low on stock; no alert sent.")
	case services.AlertFailed:
		printlnFn(fmt.Sprintf("Low-stock alert could not be delivered (%v).", res.Err))
	}
	return nil
}
