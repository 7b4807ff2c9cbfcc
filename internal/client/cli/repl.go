package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

type command struct {
	usage   string
	minArgs int
	auth    bool
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {usage: "register", run: (*App).Register},
	"login":    {usage: "login", run: (*App).Login},
	"logout":   {usage: "logout", auth: true, run: (*App).Logout},
	"me":       {usage: "me", auth: true, run: (*App).Me},
	"list":     {usage: "list [category]", auth: true, run: (*App).List},
	"search":   {usage: "search <text>", auth: true, minArgs: 1, run: (*App).Search},
	"show":     {usage: "show <id>", auth: true, minArgs: 1, run: (*App).Show},
	"add":      {usage: "add", auth: true, run: (*App).Add},
	"edit":     {usage: "edit <id>", auth: true, minArgs: 1, run: (*App).Edit},
	"delete":   {usage: "delete <id>", auth: true, minArgs: 1, run: (*App).Delete},
	"fav":      {usage: "fav <id>", auth: true, minArgs: 1, run: (*App).Fav},
	"favs":     {usage: "favs", auth: true, run: (*App).Favs},
	"cook":     {usage: "cook <id>", auth: true, minArgs: 1, run: (*App).Cook},
	"image":    {usage: "image <id> [file]", auth: true, minArgs: 1, run: (*App).Image},
}

var guestHelp = []string{"register", "login", "help", "exit"}

var userHelp = []string{"list", "search", "show", "add", "edit", "delete", "fav", "favs", "cook", "image", "me", "logout", "help", "exit"}

func (a *App) help() {
	names := guestHelp
	if a.isLoggedIn() {
		names = userHelp
	}

	a.println("Available commands:")
	for _, n := range names {
		if c, ok := commands[n]; ok {
			a.println("  " + c.usage)
		} else {
			a.println("  " + n)
		}
	}
}

// runREPL reads commands until "exit"/"quit" or end of input. Command
// errors are reported and the loop goes on.
func runREPL(ctx context.Context, a *App) {
	for {
		a.printf("recipebox %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			a.println()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.help()
			continue
		case "exit", "quit":
			a.println("Bye!")
			return
		}

		cmd, ok := commands[name]
		if !ok {
			a.println("Unknown command:", name)
			continue
		}
		if cmd.auth && !a.isLoggedIn() {
			a.println("Please log in first")
			continue
		}
		if len(args) < cmd.minArgs {
			a.println("Usage:", cmd.usage)
			continue
		}

		if err := cmd.run(a, ctx, args); err != nil {
			a.report(err)
		}
	}
}
