package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func (a *App) printList(list []models.Recipe, empty string) {
	if len(list) == 0 {
		a.println(empty)
		return
	}
	for _, r := range list {
		a.println(r.String())
	}
}

// List prints all recipes, or one category when given.
func (a *App) List(ctx context.Context, args []string) error {
	category := strings.Join(args, " ")

	list, err := a.api.ListRecipes(ctx, category)
	if err != nil {
		return err
	}

	a.setScreen(ScreenList)
	a.printList(list, "No recipes yet. Use 'add' to create one.")
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	list, err := a.api.SearchRecipes(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	a.setScreen(ScreenList)
	a.printList(list, "Nothing matches.")
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	r, err := a.api.GetRecipe(ctx, args[0])
	if err != nil {
		return err
	}

	a.setScreen(ScreenDetail)
	a.printRecipe(r)
	return nil
}

func (a *App) printRecipe(r *models.Recipe) {
	a.println(r.Title)
	a.println(strings.Repeat("=", len(r.Title)))

	if r.Category != "" {
		a.println("Category:", r.Category)
	}
	if r.Time != "" {
		a.println("Time:", r.Time)
	}
	a.println("Servings:", r.Servings)
	if r.SourceURL != "" {
		a.println("Source:", r.SourceURL)
	}
	if r.ImagePath != "" || r.ImageURL != "" {
		a.println("Image: yes (use 'image " + r.ID + "')")
	}

	a.println()
	a.println("Ingredients:")
	for _, it := range r.Ingredients {
		a.println("  - " + it)
	}

	a.println()
	a.println("Steps:")
	for i, st := range r.Steps {
		a.printf("  %d. %s\n", i+1, st)
	}

	if r.Notes != "" {
		a.println()
		a.println("Notes:")
		a.println(r.Notes)
	}
}

func (a *App) Add(ctx context.Context, _ []string) error {
	a.setScreen(ScreenEdit)

	var in models.RecipeInput
	if err := a.fillRecipe(&in, false); err != nil {
		return err
	}

	id, err := a.api.CreateRecipe(ctx, in)
	if err != nil {
		return err
	}

	a.println("Recipe saved with id", id)
	return nil
}

// Edit walks the same form as Add; an empty answer keeps the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	r, err := a.api.GetRecipe(ctx, args[0])
	if err != nil {
		return err
	}

	a.setScreen(ScreenEdit)

	in := r.Input()
	if err := a.fillRecipe(&in, true); err != nil {
		return err
	}

	if err := a.api.UpdateRecipe(ctx, r.ID, in); err != nil {
		return err
	}

	a.println("Recipe updated")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	answer, err := getSimpleText(a.reader, "Delete recipe "+args[0]+"? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Cancelled")
		return nil
	}

	if err := a.api.DeleteRecipe(ctx, args[0]); err != nil {
		return err
	}

	a.setScreen(ScreenList)
	a.println("Recipe deleted")
	return nil
}

// fillRecipe prompts for every editable field. When editing, prompts show
// the current value and a blank answer keeps it; "-" clears optional text.
func (a *App) fillRecipe(in *models.RecipeInput, editing bool) error {
	text := func(label string, cur *string) error {
		prompt := label
		if editing && *cur != "" {
			prompt += " [" + *cur + "]"
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		switch {
		case v == "-" && editing:
			*cur = ""
		case v != "" || !editing:
			*cur = v
		}
		return nil
	}

	lines := func(label string, cur *[]string) error {
		prompt := label + " (one per line)"
		if editing {
			prompt += ", empty keeps the current list"
		}
		v, err := getMultiline(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" || !editing {
			*cur = models.SplitLines(v)
		}
		return nil
	}

	if err := text("Title", &in.Title); err != nil {
		return err
	}
	if err := text("Time (e.g. 45 min)", &in.Time); err != nil {
		return err
	}

	servingsPrompt := "Servings (empty for default)"
	if editing && in.Servings != nil {
		servingsPrompt = "Servings [" + strconv.Itoa(*in.Servings) + "]"
	}
	for {
		v, err := getSimpleText(a.reader, servingsPrompt, a.out)
		if err != nil {
			return err
		}
		if v == "" && editing {
			break
		}
		n, err := models.ParseServings(v)
		if err != nil {
			a.println(err.Error())
			continue
		}
		in.Servings = n
		break
	}

	if err := text("Category", &in.Category); err != nil {
		return err
	}
	if err := text("Source URL", &in.SourceURL); err != nil {
		return err
	}
	if err := text("Image URL", &in.ImageURL); err != nil {
		return err
	}
	if err := lines("Ingredients", &in.Ingredients); err != nil {
		return err
	}
	if err := lines("Steps", &in.Steps); err != nil {
		return err
	}

	notes, err := getMultiline(a.reader, "Notes", a.out)
	if err != nil {
		return err
	}
	if notes != "" || !editing {
		in.Notes = notes
	}

	if in.Ingredients == nil {
		in.Ingredients = []string{}
	}
	if in.Steps == nil {
		in.Steps = []string{}
	}
	return nil
}
