// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/ecostats/internal/adapter"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

const usage = `usage: ecostats-client <command> [flags]

commands:
  build                                     show client build information
  version                                   show server build information
  register -name -email -password [-org]    create an account
  login -email -password [-remember] [-copy] authenticate and print the token
  stats -token                              show general and grouped statistics
  activity -token [-page] [-size]           show the activity log
`

type App struct {
	api    adapter.APIAdapter
	out    io.Writer
	logger *logger.Logger

	// copyToClipboard is replaced in tests.
	copyToClipboard func(text string) error
}

// NewApp returns a client that talks to the API through api and prints to
// out.
func NewApp(api adapter.APIAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:             api,
		out:             out,
		logger:          logger,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	commands := map[string]func(context.Context, []string) error{
		"version":  a.version,
		"register": a.register,
		"login":    a.login,
		"stats":    a.stats,
		"activity": a.activity,
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}

	command, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return command(ctx, args[1:])
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := a.newFlagSet("version").Parse(args); err != nil {
		return err
	}

	info, err := a.api.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	fmt.Fprintln(a.out, renderKeyValues("Server", [][2]string{
		{"version", info.Version},
		{"date", info.Date},
		{"commit", info.Commit},
	}))
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	organization := fs.String("org", "", "organization (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RegisterRequest{
		Name:            *name,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *password,
	}
	if *organization != "" {
		req.Organization = organization
	}

	auth, err := a.api.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	fmt.Fprintln(a.out, renderUser("Registered", auth.User))
	fmt.Fprintln(a.out, renderToken(auth.Token))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	remember := fs.Bool("remember", false, "request a long-lived token")
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	login, err := a.api.Login(ctx, models.LoginRequest{Email: *email, Password: *password, RememberMe: *remember})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Fprintln(a.out, renderUser("Logged in", login.User))
	fmt.Fprintln(a.out, renderToken(login.Token))

	if *copyToken {
		if err = a.copyToClipboard(login.Token); err != nil {
			a.logger.Warn().Err(err).Msg("copying token to clipboard failed")
			fmt.Fprintln(a.out, mutedStyle.Render("could not copy token: "+err.Error()))
		} else {
			fmt.Fprintln(a.out, mutedStyle.Render("token copied to clipboard"))
		}
	}
	return nil
}

// stats prints the collection totals followed by every grouped breakdown.
func (a *App) stats(ctx context.Context, args []string) error {
	fs := a.newFlagSet("stats")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.useToken(*token); err != nil {
		return err
	}

	general, err := a.api.GeneralStats(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	fmt.Fprintln(a.out, renderKeyValues("Totals", [][2]string{
		{"users", fmt.Sprint(general.TotalUsers)},
		{"projects", fmt.Sprint(general.TotalProjects)},
		{"activities", fmt.Sprint(general.TotalActivities)},
	}))

	groups := []struct{ name, title string }{
		{"users", "Users by role"},
		{"projects", "Projects by status"},
		{"activity", "Activities by type"},
	}
	for _, g := range groups {
		grouped, err := a.api.GroupedStats(ctx, g.name)
		if err != nil {
			return fmt.Errorf("stats %s: %w", g.name, err)
		}
		fmt.Fprintln(a.out, renderGrouped(g.title, grouped))
	}
	return nil
}

func (a *App) activity(ctx context.Context, args []string) error {
	fs := a.newFlagSet("activity")
	token := fs.String("token", "", "bearer token")
	page := fs.Int("page", models.DefaultPage, "page number")
	size := fs.Int("size", models.DefaultPageSize, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.useToken(*token); err != nil {
		return err
	}

	activities, err := a.api.ListActivities(ctx, models.NewPageRequest(*page, *size))
	if err != nil {
		return fmt.Errorf("activity: %w", err)
	}

	fmt.Fprintln(a.out, renderActivities(activities))
	return nil
}

func (a *App) useToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" && a.api.Token() == "" {
		return ErrMissingToken
	}
	if token != "" {
		a.api.SetToken(token)
	}
	return nil
}

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrNoCommand), errors.Is(err, ErrUnknownCommand):
		return 2
	default:
		return 1
	}
}
