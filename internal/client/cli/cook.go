package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// CookSession is a cursor over the steps of one recipe.
type CookSession struct {
	recipe *models.Recipe
	step   int
}

func NewCookSession(r *models.Recipe) *CookSession {
	return &CookSession{recipe: r}
}

// Step returns the zero-based position of the cursor.
func (s *CookSession) Step() int {
	return s.step
}

func (s *CookSession) Total() int {
	return len(s.recipe.Steps)
}

// Current is the step under the cursor, or "" for a recipe without steps.
func (s *CookSession) Current() string {
	if s.Total() == 0 {
		return ""
	}
	return s.recipe.Steps[s.step]
}

// Next moves forward and reports whether the cursor moved.
func (s *CookSession) Next() bool {
	if s.step+1 >= s.Total() {
		return false
	}
	s.step++
	return true
}

// Prev moves back and reports whether the cursor moved.
func (s *CookSession) Prev() bool {
	if s.step == 0 {
		return false
	}
	s.step--
	return true
}

func (s *CookSession) Last() bool {
	return s.step+1 >= s.Total()
}

func (a *App) printStep(s *CookSession) {
	if s.Total() == 0 {
		a.println("This recipe has no steps.")
		return
	}
	a.printf("Step %d of %d: %s\n", s.Step()+1, s.Total(), s.Current())
	if s.Last() {
		a.println("(last step)")
	}
}

// Cook enters cook mode for a recipe: next, prev, ingredients, quit.
func (a *App) Cook(ctx context.Context, args []string) error {
	r, err := a.api.GetRecipe(ctx, args[0])
	if err != nil {
		return err
	}

	prev := a.screen
	a.setScreen(ScreenCook)
	defer a.setScreen(prev)

	s := NewCookSession(r)
	a.printf("Cooking %s. Commands: (n)ext, (p)rev, (i)ngredients, (q)uit\n", r.Title)
	a.printStep(s)

	for {
		a.printf("cook %d/%d> ", s.Step()+1, s.Total())

		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "n", "next", "":
			if !s.Next() {
				a.println("Already at the last step")
				continue
			}
			a.printStep(s)
		case "p", "prev":
			if !s.Prev() {
				a.println("Already at the first step")
				continue
			}
			a.printStep(s)
		case "i", "ingredients":
			for _, it := range r.Ingredients {
				a.println("  - " + it)
			}
		case "q", "quit", "exit":
			a.println("Enjoy your meal!")
			return nil
		default:
			a.println("Commands: (n)ext, (p)rev, (i)ngredients, (q)uit")
		}
	}
}
