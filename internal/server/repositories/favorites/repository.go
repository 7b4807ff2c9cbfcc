package favorites

import (
	"context"

	"github.com/dmitrijs2005/recipebox/internal/server/models"
)

// Repository manages the (account, recipe) favorite pairs.
type Repository interface {
	Add(ctx context.Context, userID int64, recipeID string) (bool, error)
	Remove(ctx context.Context, userID int64, recipeID string) (bool, error)
	IsFavorited(ctx context.Context, userID int64, recipeID string) (bool, error)
	ListIDs(ctx context.Context, userID int64) ([]string, error)
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
}
