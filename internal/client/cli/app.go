package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/config"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// Screen is the part of the app the user is looking at.
type Screen string

const (
	ScreenList   Screen = "list"
	ScreenDetail Screen = "recipe"
	ScreenEdit   Screen = "edit"
	ScreenCook   Screen = "cook"
)

// getSimpleText, getPassword and getMultiline are swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

type App struct {
	config *config.Config
	api    client.Client
	reader *bufio.Reader
	out    io.Writer
	user   *models.User
	screen Screen
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewRESTClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		api:    api,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		screen: ScreenList,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) setScreen(s Screen) {
	a.screen = s
}

func (a *App) getStatus() string {
	if a.user == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", a.user.Email, a.screen)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report turns a client error into a line the user can act on.
func (a *App) report(err error) {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable, try again later")
	case errors.As(err, &apiErr):
		if apiErr.Status == 401 && apiErr.Code == "unauthorized" {
			a.user = nil
			a.println("Please log in first")
			return
		}
		a.println("Error:", apiErr.Error())
	default:
		a.println("Error:", err.Error())
	}
}

// Run greets the user, restores an existing session if there is one and
// serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to RecipeBox (type 'help' for commands)")

	if err := a.api.Ping(ctx); err != nil {
		a.report(err)
	} else if u, err := a.api.Me(ctx); err == nil {
		a.user = u
	}

	runREPL(ctx, a)
}
