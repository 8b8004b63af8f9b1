// Package cli implements the interactive admin console that exercises the
// simulated backend end to end.
package cli

import (
	"bufio"
	"context"
	"os"

	"mockadmin/internal/config"
	"mockadmin/internal/logging"
	"mockadmin/internal/models"
	"mockadmin/internal/services"
	"mockadmin/internal/storage"
)

type App struct {
	config  *config.Config
	auth    *services.Auth
	users   *services.Users
	tasks   *services.Tasks
	session *models.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewDefault(c.LogLevel)

	store, err := storage.OpenSQLite(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	delay := services.NewLatency(c.RequestDelay)

	return &App{
		config: c,
		auth:   services.NewAuth(store, delay, c.SecretKey, c.TokenValidity, log),
		users:  services.NewUsers(store, delay, log),
		tasks:  services.NewTasks(store, delay, log),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run() {
	ctx := context.Background()

	if sess, err := a.auth.GetSession(ctx); err == nil {
		a.session = sess
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session != nil {
		return a.session.User.Username
	}
	return "not logged in"
}
