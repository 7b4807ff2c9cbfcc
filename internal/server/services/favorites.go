package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/repomanager"
)

type FavoriteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFavoriteService(db *sql.DB, m repomanager.RepositoryManager) *FavoriteService {
	return &FavoriteService{db: db, repomanager: m}
}

// Toggle flips the caller's favorite on recipeID and returns the new state.
// The recipe has to belong to the caller. A concurrent add that loses the
// race still reports the recipe as favorited.
func (s *FavoriteService) Toggle(ctx context.Context, userID int64, recipeID string) (bool, error) {
	if _, err := s.repomanager.Recipes(s.db).GetByID(ctx, recipeID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("error loading recipe: %w", err)
	}

	repo := s.repomanager.Favorites(s.db)

	favorited, err := repo.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("error reading favorite: %w", err)
	}

	if favorited {
		if _, err := repo.Remove(ctx, userID, recipeID); err != nil {
			return false, fmt.Errorf("error removing favorite: %w", err)
		}
		return false, nil
	}

	if _, err := repo.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("error adding favorite: %w", err)
	}
	return true, nil
}

func (s *FavoriteService) ListIDs(ctx context.Context, userID int64) ([]string, error) {
	ids, err := s.repomanager.Favorites(s.db).ListIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return ids, nil
}

func (s *FavoriteService) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return wrapList(s.repomanager.Favorites(s.db).ListRecipes(ctx, userID))
}
