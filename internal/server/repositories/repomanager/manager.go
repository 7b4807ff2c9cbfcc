package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle, which may be the
// pool or a transaction, and owns the schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Favorites(db dbx.DBTX) favorites.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
