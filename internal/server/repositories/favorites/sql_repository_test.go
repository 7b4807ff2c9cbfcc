package favorites

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipebox/internal/server/storetest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db      *sql.DB
	repo    *SQLRepository
	recipes *recipes.SQLRepository
	ann     int64
	bob     int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := storetest.Open(t)
	return &fixture{
		db:      db,
		repo:    NewSQLRepository(db, dbx.SQLite),
		recipes: recipes.NewSQLRepository(db, dbx.SQLite),
		ann:     storetest.InsertUser(t, db, "ann@x.com"),
		bob:     storetest.InsertUser(t, db, "bob@x.com"),
	}
}

func (f *fixture) recipe(t *testing.T, userID int64, title string) string {
	t.Helper()
	r, err := f.recipes.Create(context.Background(), &models.Recipe{
		ID: uuid.NewString(), UserID: userID, Title: title, Ingredients: []string{"salt"},
	})
	require.NoError(t, err)
	return r.ID
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM favorites`).Scan(&n))
	return n
}

func TestAdd_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.recipe(t, f.ann, "Soup")

	added, err := f.repo.Add(ctx, f.ann, id)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.repo.Add(ctx, f.ann, id)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1, count(t, f.db))
}

func TestAdd_MissingRecipe(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.Add(context.Background(), f.ann, uuid.NewString())
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Zero(t, count(t, f.db))
}

func TestRemoveAndIsFavorited(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.recipe(t, f.ann, "Soup")

	fav, err := f.repo.IsFavorited(ctx, f.ann, id)
	require.NoError(t, err)
	assert.False(t, fav)

	_, err = f.repo.Add(ctx, f.ann, id)
	require.NoError(t, err)

	fav, err = f.repo.IsFavorited(ctx, f.ann, id)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = f.repo.IsFavorited(ctx, f.bob, id)
	require.NoError(t, err)
	assert.False(t, fav, "favorites are per account")

	removed, err := f.repo.Remove(ctx, f.bob, id)
	require.NoError(t, err)
	assert.False(t, removed, "another account cannot remove ann's favorite")

	removed, err = f.repo.Remove(ctx, f.ann, id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.repo.Remove(ctx, f.ann, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListIDsAndRecipes_NewestFavoritedFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	soup := f.recipe(t, f.ann, "Soup")
	stew := f.recipe(t, f.ann, "Stew")
	bobs := f.recipe(t, f.bob, "Bob's")

	for _, id := range []string{stew, soup} {
		_, err := f.repo.Add(ctx, f.ann, id)
		require.NoError(t, err)
	}
	// a favorite row on a recipe owned by bob
	_, err := f.db.Exec(`INSERT INTO favorites (user_id, recipe_id, created_at) VALUES (?, ?, ?)`,
		f.ann, bobs, time.Now().UTC())
	require.NoError(t, err)

	ids, err := f.repo.ListIDs(ctx, f.ann)
	require.NoError(t, err)
	assert.Equal(t, []string{bobs, soup, stew}, ids)

	rs, err := f.repo.ListRecipes(ctx, f.ann)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "Soup", rs[0].Title)
	assert.Equal(t, "Stew", rs[1].Title)
	assert.Equal(t, []string{"salt"}, rs[0].Ingredients)
	assert.Equal(t, []string{}, rs[0].Steps)

	none, err := f.repo.ListIDs(ctx, f.bob)
	require.NoError(t, err)
	assert.Equal(t, []string{}, none)
}

func TestCascade_OnRecipeAndUserDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	annSoup := f.recipe(t, f.ann, "Soup")
	bobStew := f.recipe(t, f.bob, "Stew")

	_, err := f.repo.Add(ctx, f.ann, annSoup)
	require.NoError(t, err)
	_, err = f.db.Exec(`INSERT INTO favorites (user_id, recipe_id, created_at) VALUES (?, ?, ?)`,
		f.bob, annSoup, time.Now().UTC())
	require.NoError(t, err)
	_, err = f.repo.Add(ctx, f.bob, bobStew)
	require.NoError(t, err)
	require.Equal(t, 3, count(t, f.db))

	// removing ann drops ann's recipes and every favorite pointing at them
	_, err = f.db.Exec(`DELETE FROM users WHERE id = ?`, f.ann)
	require.NoError(t, err)
	assert.Equal(t, 1, count(t, f.db))

	ok, err := f.recipes.Delete(ctx, bobStew, f.bob)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, count(t, f.db))
}

func TestRepository_DBErrors(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewSQLRepository(db, dbx.SQLite)
	ctx := context.Background()

	mock.ExpectExec(`^INSERT INTO favorites \(user_id, recipe_id, created_at\) VALUES \(\?, \?, \?\)$`).
		WithArgs(int64(1), "r1", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	_, err = repo.Add(ctx, 1, "r1")
	assert.ErrorContains(t, err, "db error: disk full")
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM favorites`).
		WithArgs(int64(1), "r1").
		WillReturnError(errors.New("busy"))
	_, err = repo.IsFavorited(ctx, 1, "r1")
	assert.ErrorContains(t, err, "db error: busy")

	mock.ExpectQuery(`(?s)^SELECT recipe_id FROM favorites`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}).AddRow("a").RowError(0, errors.New("io")))
	_, err = repo.ListIDs(ctx, 1)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
