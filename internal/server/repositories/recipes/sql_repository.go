package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

func (r *SQLRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	query :=
		`INSERT INTO recipes (id, user_id, title, time, servings, category, source_url, image_url,
		                      image_path, ingredients, steps, notes, is_extracted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if recipe.Servings == 0 {
		recipe.Servings = models.DefaultServings
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	if recipe.Steps == nil {
		recipe.Steps = []string{}
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}
	recipe.UpdatedAt = recipe.CreatedAt

	ingredients, steps, err := encodeSequences(recipe)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query),
		recipe.ID, recipe.UserID, recipe.Title, recipe.Time, recipe.Servings, recipe.Category,
		recipe.SourceURL, recipe.ImageURL, recipe.ImagePath, ingredients, steps, recipe.Notes,
		recipe.IsExtracted, recipe.CreatedAt, recipe.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *SQLRepository) ListForAccount(ctx context.Context, userID int64) ([]models.Recipe, error) {
	query := `SELECT ` + Columns("") + ` FROM recipes
		 WHERE user_id = ?
		 ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *SQLRepository) GetByID(ctx context.Context, id string, userID int64) (*models.Recipe, error) {
	query := `SELECT ` + Columns("") + ` FROM recipes
		 WHERE id = ? AND user_id = ?`

	recipe, err := ScanRecipe(r.db.QueryRowContext(ctx, dbx.Rebind(r.dialect, query), id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *SQLRepository) Update(ctx context.Context, recipe *models.Recipe) (bool, error) {
	query :=
		`UPDATE recipes
		 SET title = ?, time = ?, servings = ?, category = ?, source_url = ?, image_url = ?,
		     image_path = ?, ingredients = ?, steps = ?, notes = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`

	if recipe.Servings == 0 {
		recipe.Servings = models.DefaultServings
	}
	ingredients, steps, err := encodeSequences(recipe)
	if err != nil {
		return false, err
	}
	recipe.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query),
		recipe.Title, recipe.Time, recipe.Servings, recipe.Category, recipe.SourceURL, recipe.ImageURL,
		recipe.ImagePath, ingredients, steps, recipe.Notes, recipe.UpdatedAt, recipe.ID, recipe.UserID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return affected(res)
}

func (r *SQLRepository) Delete(ctx context.Context, id string, userID int64) (bool, error) {
	query := `DELETE FROM recipes WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query), id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return affected(res)
}

// Search matches query as a case-insensitive substring of the title.
// A blank query lists everything.
func (r *SQLRepository) Search(ctx context.Context, userID int64, query string) ([]models.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return r.ListForAccount(ctx, userID)
	}

	q := `SELECT ` + Columns("") + ` FROM recipes
		 WHERE user_id = ? AND ` + dbx.Lower(r.dialect, "title") + ` LIKE ` + dbx.Lower(r.dialect, "?") + ` ESCAPE '\'
		 ORDER BY created_at DESC`

	return r.list(ctx, q, userID, likePattern(query))
}

func (r *SQLRepository) ListByCategory(ctx context.Context, userID int64, category string) ([]models.Recipe, error) {
	query := `SELECT ` + Columns("") + ` FROM recipes
		 WHERE user_id = ? AND category = ?
		 ORDER BY created_at DESC`

	return r.list(ctx, query, userID, category)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ScanRecipes(rows)
}

func encodeSequences(recipe *models.Recipe) (string, string, error) {
	ingredients, err := encodeList(recipe.Ingredients)
	if err != nil {
		return "", "", fmt.Errorf("encode ingredients: %w", err)
	}
	steps, err := encodeList(recipe.Steps)
	if err != nil {
		return "", "", fmt.Errorf("encode steps: %w", err)
	}
	return ingredients, steps, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
