package cli

import (
	"context"
	"os"
)

// Login prompts for credentials and opens a session. A new login silently
// replaces any previous one.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	a.session = sess
	printlnFn("Logged in as", sess.User.Username)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}

	a.session = nil
	printlnFn("Logged out")
	return nil
}
