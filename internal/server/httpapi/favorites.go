package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/server/validation"
)

type toggleRequest struct {
	RecipeID string `json:"recipeId"`
}

func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	req.RecipeID = strings.TrimSpace(req.RecipeID)
	if err := checkRules(map[string]any{"recipeId": req.RecipeID}, validation.ToggleRules); err != nil {
		s.fail(w, r, err)
		return
	}

	favorited, err := s.favorites.Toggle(r.Context(), caller(r), req.RecipeID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, map[string]bool{"favorited": favorited})
}

func (s *Server) listFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.favorites.ListIDs(r.Context(), caller(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	ok(w, map[string][]string{"favoriteIds": ids})
}

func (s *Server) listFavoriteRecipes(w http.ResponseWriter, r *http.Request) {
	list, err := s.favorites.ListRecipes(r.Context(), caller(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ok(w, recipesResponse{Recipes: nonNilRecipes(list)})
}
