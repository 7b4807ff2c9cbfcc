package client

import (
	"context"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// Client is everything the terminal app needs from the server.
type Client interface {
	Ping(ctx context.Context) error

	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)

	ListRecipes(ctx context.Context, category string) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, in models.RecipeInput) (string, error)
	UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) error
	DeleteRecipe(ctx context.Context, id string) error

	ToggleFavorite(ctx context.Context, recipeID string) (bool, error)
	FavoriteIDs(ctx context.Context) ([]string, error)
	FavoriteRecipes(ctx context.Context) ([]models.Recipe, error)

	ImageUploadURL(ctx context.Context, recipeID string) (key, url string, err error)
	ImageURL(ctx context.Context, recipeID string) (string, error)
	UploadObject(ctx context.Context, url string, data []byte, contentType string) error
}
