package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/services"
	"github.com/dmitrijs2005/recipebox/internal/server/validation"
	"github.com/go-chi/chi/v5"
)

type recipesResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

func caller(r *http.Request) int64 {
	p, _ := PrincipalFrom(r.Context())
	return p.UserID
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.Recipe
		err  error
	)

	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		list, err = s.recipes.ListByCategory(r.Context(), caller(r), category)
	} else {
		list, err = s.recipes.List(r.Context(), caller(r))
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, recipesResponse{Recipes: nonNilRecipes(list)})
}

// searchRecipes falls back to the full list for a blank query.
func (s *Server) searchRecipes(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.Recipe
		err  error
	)

	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		list, err = s.recipes.Search(r.Context(), caller(r), q)
	} else {
		list, err = s.recipes.List(r.Context(), caller(r))
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, recipesResponse{Recipes: nonNilRecipes(list)})
}

func (s *Server) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.recipes.Get(r.Context(), caller(r), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, map[string]any{"recipe": recipe})
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeRecipe(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	recipe, err := s.recipes.Create(r.Context(), caller(r), in)
	if err != nil {
		s.fail(w, r, recipeError(err))
		return
	}

	created(w, map[string]string{"recipeId": recipe.ID})
}

func (s *Server) updateRecipe(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeRecipe(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.recipes.Update(r.Context(), caller(r), chi.URLParam(r, "id"), in); err != nil {
		s.fail(w, r, recipeError(err))
		return
	}

	message(w, "Recipe updated")
}

func (s *Server) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := s.recipes.Delete(r.Context(), caller(r), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}

	message(w, "Recipe deleted")
}

// decodeRecipe parses and validates a recipe body. Single-line text fields
// are trimmed; list entries are kept as sent.
func (s *Server) decodeRecipe(w http.ResponseWriter, r *http.Request) (models.RecipeInput, error) {
	var in models.RecipeInput
	if err := decodeJSON(w, r, &in); err != nil {
		return in, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Time = strings.TrimSpace(in.Time)
	in.Category = strings.TrimSpace(in.Category)
	in.SourceURL = strings.TrimSpace(in.SourceURL)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.ImagePath = strings.TrimSpace(in.ImagePath)

	values := map[string]any{
		"title":       in.Title,
		"time":        in.Time,
		"category":    in.Category,
		"sourceUrl":   in.SourceURL,
		"imageUrl":    in.ImageURL,
		"notes":       in.Notes,
		"ingredients": in.Ingredients,
		"steps":       in.Steps,
	}
	if in.Servings != nil {
		values["servings"] = *in.Servings
	}

	return in, checkRules(values, validation.RecipeRules)
}

func recipeError(err error) error {
	if errors.Is(err, services.ErrImagePathNotOwned) {
		return ErrValidation.WithFields([]validation.FieldError{
			{Field: "imagePath", Message: "Image path must point to your own storage"},
		})
	}
	return err
}

func nonNilRecipes(list []models.Recipe) []models.Recipe {
	if list == nil {
		return []models.Recipe{}
	}
	return list
}
