package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/common"
)

// Register asks for name, email and password and signs the new account in.
func (a *App) Register(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.user = user
	a.setScreen(ScreenList)
	a.printf("Welcome, %s!\n", user.Name)
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.println("Invalid email or password")
			return nil
		}
		return err
	}

	a.user = user
	a.setScreen(ScreenList)
	a.printf("Logged in as %s\n", user.Email)
	return nil
}

// Logout forgets the local user even when the server call fails.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.api.Logout(ctx)
	a.user = nil
	a.setScreen(ScreenList)
	if err != nil {
		return err
	}

	a.println("Logged out")
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	a.user = user
	a.printf("%s <%s>, member since %s\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02"))
	return nil
}
