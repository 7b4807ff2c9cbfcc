package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggle(t *testing.T, e *testEnv, token, recipeID string) (int, bool) {
	t.Helper()

	rec := e.do(http.MethodPost, "/api/favorites/toggle", map[string]string{"recipeId": recipeID}, token)
	var out struct {
		Favorited bool `json:"favorited"`
	}
	if rec.Code == http.StatusOK {
		decode(t, rec, &out)
	}
	return rec.Code, out.Favorited
}

func favoriteIDs(t *testing.T, e *testEnv, token string) []string {
	t.Helper()

	rec := e.do(http.MethodGet, "/api/favorites", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		FavoriteIDs []string `json:"favoriteIds"`
	}
	decode(t, rec, &out)
	return out.FavoriteIDs
}

func TestToggleFavorite_FlipsState(t *testing.T) {
	e := newTestEnv(t)
	token := e.signup("ann@example.com")
	id := e.createRecipe(token, map[string]any{"title": "Pie"})

	assert.Empty(t, favoriteIDs(t, e, token))

	code, fav := toggle(t, e, token, id)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, fav)
	assert.Equal(t, []string{id}, favoriteIDs(t, e, token))
	assert.Equal(t, []string{"Pie"}, listTitles(t, e, token, "/api/favorites/recipes"))

	code, fav = toggle(t, e, token, id)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, fav)
	assert.Empty(t, favoriteIDs(t, e, token))
	assert.Empty(t, listTitles(t, e, token, "/api/favorites/recipes"))
}

func TestToggleFavorite_ForeignOrMissingRecipe(t *testing.T) {
	e := newTestEnv(t)
	owner := e.signup("owner@example.com")
	other := e.signup("other@example.com")
	id := e.createRecipe(owner, map[string]any{"title": "Pie"})

	code, _ := toggle(t, e, other, id)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = toggle(t, e, other, "no-such-recipe")
	assert.Equal(t, http.StatusNotFound, code)

	assert.Empty(t, favoriteIDs(t, e, other))
}

func TestToggleFavorite_RequiresRecipeID(t *testing.T) {
	e := newTestEnv(t)
	token := e.signup("ann@example.com")

	rec := e.do(http.MethodPost, "/api/favorites/toggle", map[string]string{"recipeId": " "}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	apiErr := decodeError(t, rec)
	assert.Equal(t, "validation_error", apiErr.Code)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "recipeId", apiErr.Fields[0].Field)
}

func TestDeleteRecipe_DropsFavorite(t *testing.T) {
	e := newTestEnv(t)
	token := e.signup("ann@example.com")
	keep := e.createRecipe(token, map[string]any{"title": "Keep"})
	drop := e.createRecipe(token, map[string]any{"title": "Drop"})

	toggle(t, e, token, keep)
	toggle(t, e, token, drop)

	require.Equal(t, http.StatusOK, e.do(http.MethodDelete, "/api/recipes/"+drop, nil, token).Code)

	assert.Equal(t, []string{keep}, favoriteIDs(t, e, token))
	assert.Equal(t, []string{"Keep"}, listTitles(t, e, token, "/api/favorites/recipes"))
}
