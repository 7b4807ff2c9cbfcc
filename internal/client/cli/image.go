package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const maxImageBytes = 10 << 20

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Image prints where a recipe's image lives, or with a file argument
// uploads it to storage and attaches it to the recipe.
func (a *App) Image(ctx context.Context, args []string) error {
	if len(args) == 1 {
		url, err := a.api.ImageURL(ctx, args[0])
		if err != nil {
			return err
		}
		a.println(url)
		return nil
	}

	return a.uploadImage(ctx, args[0], args[1])
}

func (a *App) uploadImage(ctx context.Context, recipeID, path string) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if len(data) > maxImageBytes {
		return fmt.Errorf("image is larger than %d MB", maxImageBytes>>20)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%s is not an image (%s)", path, mt.String())
	}

	r, err := a.api.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	key, url, err := a.api.ImageUploadURL(ctx, recipeID)
	if err != nil {
		return err
	}

	if err := a.api.UploadObject(ctx, url, data, mt.String()); err != nil {
		return err
	}

	in := r.Input()
	in.ImagePath = key
	if err := a.api.UpdateRecipe(ctx, recipeID, in); err != nil {
		return err
	}

	a.println("Image uploaded")
	return nil
}
