package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

func (a *App) readCredentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(password)

	return userName, string(password), nil
}

// Register creates an account and logs the new user in.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	if _, err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	a.userName = userName
	a.logger.Info(ctx, "user registered", "username", userName)
	printlnFn("Registration successful. Logged in as " + userName + ".")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, userName, password); err != nil {
		a.logger.Debug(ctx, "login rejected", "username", userName, "error", err)
		return err
	}

	a.userName = userName
	printlnFn("Login successful.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}
