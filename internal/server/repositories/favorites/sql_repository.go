package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/recipes"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

// Add returns false without error when the pair already exists.
func (r *SQLRepository) Add(ctx context.Context, userID int64, recipeID string) (bool, error) {
	query := `INSERT INTO favorites (user_id, recipe_id, created_at) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query), userID, recipeID, time.Now().UTC())
	if err != nil {
		switch {
		case dbx.IsUniqueViolation(err):
			return false, nil
		case dbx.IsForeignKeyViolation(err):
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return true, nil
}

func (r *SQLRepository) Remove(ctx context.Context, userID int64, recipeID string) (bool, error) {
	query := `DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`

	res, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query), userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepository) IsFavorited(ctx context.Context, userID int64, recipeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND recipe_id = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, dbx.Rebind(r.dialect, query), userID, recipeID).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepository) ListIDs(ctx context.Context, userID int64) ([]string, error) {
	query :=
		`SELECT recipe_id FROM favorites
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, query), userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}

// ListRecipes returns the caller's favorited recipes that the caller also
// owns, most recently favorited first.
func (r *SQLRepository) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	query := `SELECT ` + recipes.Columns("r") + `
		 FROM favorites f
		 JOIN recipes r ON r.id = f.recipe_id
		 WHERE f.user_id = ? AND r.user_id = ?
		 ORDER BY f.created_at DESC, f.id DESC`

	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, query), userID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipes.ScanRecipes(rows)
}
