package recipes

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/server/models"
)

// Columns lists the recipe columns in the order ScanRecipe expects,
// qualified with alias when it is not empty.
func Columns(alias string) string {
	cols := []string{
		"id", "user_id", "title", "time", "servings", "category", "source_url", "image_url",
		"image_path", "ingredients", "steps", "notes", "is_extracted", "created_at", "updated_at",
	}
	if alias != "" {
		for i, c := range cols {
			cols[i] = alias + "." + c
		}
	}
	return strings.Join(cols, ", ")
}

type scanner interface {
	Scan(dest ...any) error
}

// ScanRecipe reads one row selected with Columns.
func ScanRecipe(row scanner) (*models.Recipe, error) {
	var (
		r                  models.Recipe
		ingredients, steps sql.NullString
	)

	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Time, &r.Servings, &r.Category, &r.SourceURL,
		&r.ImageURL, &r.ImagePath, &ingredients, &steps, &r.Notes, &r.IsExtracted, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	r.Ingredients = decodeList(ingredients.String)
	r.Steps = decodeList(steps.String)

	return &r, nil
}

// ScanRecipes drains rows selected with Columns. The result is never nil.
func ScanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	defer rows.Close()

	out := []models.Recipe{}
	for rows.Next() {
		r, err := ScanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList never fails: NULL, empty or garbled text reads as no items.
func decodeList(s string) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-folded substring pattern for LIKE ... ESCAPE '\'.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}
