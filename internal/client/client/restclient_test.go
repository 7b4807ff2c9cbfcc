package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/server/auth"
	"github.com/dmitrijs2005/recipebox/internal/server/config"
	"github.com/dmitrijs2005/recipebox/internal/server/httpapi"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipebox/internal/server/services"
	"github.com/dmitrijs2005/recipebox/internal/server/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	restore := auth.SetTestCost()
	code := m.Run()
	restore()
	os.Exit(code)
}

// newBackend starts the real API on a throwaway store.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	db := storetest.Open(t)
	rm := repomanager.NewSQLRepositoryManager(dbx.SQLite)
	cfg := &config.Config{
		SecretKey:      "test-secret",
		SessionTTL:     time.Hour,
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "recipes",
	}

	srv := httpapi.NewServer(":0", httpapi.Deps{
		Users:     services.NewUserService(db, rm, cfg, logging.Discard()),
		Recipes:   services.NewRecipeService(db, rm),
		Favorites: services.NewFavoriteService(db, rm),
		Images:    services.NewImageService(db, rm, cfg),
		Store:     db,
		Logger:    logging.Discard(),
	}, httpapi.Options{SessionTTL: cfg.SessionTTL})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, baseURL string) *RESTClient {
	t.Helper()
	c, err := NewRESTClient(baseURL, 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestNewRESTClient_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "127.0.0.1:8080", "::"} {
		_, err := NewRESTClient(addr, time.Second)
		assert.Error(t, err, addr)
	}
}

func TestRESTClient_SessionFlow(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newBackend(t).URL)

	require.NoError(t, c.Ping(ctx))

	_, err := c.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	u, err := c.Register(ctx, "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, "ann@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_credentials", apiErr.Code)

	_, err = c.Login(ctx, "ANN@example.com", "secret1")
	require.NoError(t, err)
}

func TestRESTClient_Recipes(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newBackend(t).URL)
	_, err := c.Register(ctx, "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)

	id, err := c.CreateRecipe(ctx, models.RecipeInput{
		Title:       "Fish stew",
		Category:    "Dinner Party",
		Ingredients: []string{"fish", "water"},
		Steps:       []string{"boil"},
	})
	require.NoError(t, err)

	r, err := c.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, []string{"fish", "water"}, r.Ingredients)

	in := r.Input()
	in.Title = "Fish & chips stew"
	require.NoError(t, c.UpdateRecipe(ctx, id, in))

	byCat, err := c.ListRecipes(ctx, "Dinner Party")
	require.NoError(t, err)
	require.Len(t, byCat, 1)

	found, err := c.SearchRecipes(ctx, "& chips")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Fish & chips stew", found[0].Title)

	fav, err := c.ToggleFavorite(ctx, id)
	require.NoError(t, err)
	assert.True(t, fav)

	ids, err := c.FavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, ids)

	favs, err := c.FavoriteRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	key, uploadURL, err := c.ImageUploadURL(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.Contains(t, uploadURL, "X-Amz-Signature")

	_, err = c.ImageURL(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	in.ImageURL = "https://img.example.com/stew.jpg"
	require.NoError(t, c.UpdateRecipe(ctx, id, in))
	loc, err := c.ImageURL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/stew.jpg", loc)

	require.NoError(t, c.DeleteRecipe(ctx, id))
	_, err = c.GetRecipe(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRESTClient_ValidationError(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newBackend(t).URL)
	_, err := c.Register(ctx, "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)

	_, err = c.CreateRecipe(ctx, models.RecipeInput{Title: " "})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "validation_error", apiErr.Code)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "title", apiErr.Fields[0].Field)
	assert.Contains(t, err.Error(), "title: ")
}

func TestRESTClient_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := newClient(t, url)

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
	_, err := c.ListRecipes(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRESTClient_StoreDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
	}))
	t.Cleanup(ts.Close)

	assert.ErrorIs(t, newClient(t, ts.URL).Ping(context.Background()), ErrUnavailable)
}

func TestRESTClient_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	_, err := newClient(t, ts.URL).Me(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "http_error", apiErr.Code)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestRESTClient_UploadObjectSkipsSessionCookie(t *testing.T) {
	var gotCookie string
	var gotBody []byte
	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	t.Cleanup(storage.Close)

	c := newClient(t, newBackend(t).URL)
	_, err := c.Register(context.Background(), "Ann", "ann@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, c.UploadObject(context.Background(), storage.URL+"/obj", []byte("img"), "image/png"))
	assert.Empty(t, gotCookie)
	assert.Equal(t, []byte("img"), gotBody)
}
