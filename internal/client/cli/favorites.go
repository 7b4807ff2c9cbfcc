package cli

import (
	"context"
)

func (a *App) Fav(ctx context.Context, args []string) error {
	favorited, err := a.api.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}

	if favorited {
		a.println("Added to favorites")
	} else {
		a.println("Removed from favorites")
	}
	return nil
}

func (a *App) Favs(ctx context.Context, _ []string) error {
	list, err := a.api.FavoriteRecipes(ctx)
	if err != nil {
		return err
	}

	a.setScreen(ScreenList)
	a.printList(list, "No favorites yet. Use 'fav <id>' to add one.")
	return nil
}
