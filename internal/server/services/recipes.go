package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ErrImagePathNotOwned rejects an image path outside the caller's storage prefix.
var ErrImagePathNotOwned = fmt.Errorf("%w: image path is not in your storage", common.ErrorValidation)

// ImagePrefix is the object-storage prefix owned by userID.
func ImagePrefix(userID int64) string {
	return fmt.Sprintf("recipes/%d/", userID)
}

type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{db: db, repomanager: m}
}

func (s *RecipeService) Create(ctx context.Context, userID int64, in models.RecipeInput) (*models.Recipe, error) {
	if err := checkImagePath(userID, in.ImagePath); err != nil {
		return nil, err
	}

	r := &models.Recipe{ID: uuid.NewString(), UserID: userID}
	in.Apply(r)

	r, err := s.repomanager.Recipes(s.db).Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}
	return r, nil
}

func (s *RecipeService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return wrapList(s.repomanager.Recipes(s.db).ListForAccount(ctx, userID))
}

func (s *RecipeService) ListByCategory(ctx context.Context, userID int64, category string) ([]models.Recipe, error) {
	return wrapList(s.repomanager.Recipes(s.db).ListByCategory(ctx, userID, category))
}

func (s *RecipeService) Search(ctx context.Context, userID int64, query string) ([]models.Recipe, error) {
	return wrapList(s.repomanager.Recipes(s.db).Search(ctx, userID, query))
}

// Get returns common.ErrorNotFound for missing and foreign recipes alike.
func (s *RecipeService) Get(ctx context.Context, userID int64, id string) (*models.Recipe, error) {
	r, err := s.repomanager.Recipes(s.db).GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading recipe: %w", err)
	}
	return r, nil
}

func (s *RecipeService) Update(ctx context.Context, userID int64, id string, in models.RecipeInput) error {
	if err := checkImagePath(userID, in.ImagePath); err != nil {
		return err
	}

	r := &models.Recipe{ID: id, UserID: userID}
	in.Apply(r)

	ok, err := s.repomanager.Recipes(s.db).Update(ctx, r)
	if err != nil {
		return fmt.Errorf("error updating recipe: %w", err)
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}

func (s *RecipeService) Delete(ctx context.Context, userID int64, id string) error {
	ok, err := s.repomanager.Recipes(s.db).Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}

func checkImagePath(userID int64, path string) error {
	if path == "" || (strings.HasPrefix(path, ImagePrefix(userID)) && !strings.Contains(path, "..")) {
		return nil
	}
	return ErrImagePathNotOwned
}

func wrapList(rs []models.Recipe, err error) ([]models.Recipe, error) {
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return rs, nil
}
