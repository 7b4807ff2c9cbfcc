package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipebox/internal/server/models"
)

// Repository reads and writes recipes. Every call is scoped to the owning
// account; a recipe of another account behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	ListForAccount(ctx context.Context, userID int64) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string, userID int64) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) (bool, error)
	Delete(ctx context.Context, id string, userID int64) (bool, error)
	Search(ctx context.Context, userID int64, query string) ([]models.Recipe, error)
	ListByCategory(ctx context.Context, userID int64, category string) ([]models.Recipe, error)
}
