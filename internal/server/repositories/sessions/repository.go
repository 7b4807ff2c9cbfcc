// Package sessions stores login sessions so that they can be revoked and
// expired server-side.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) error

	// Find returns common.ErrorNotFound when the session does not exist.
	// Expired sessions are returned as is; callers check ExpiresAt.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Delete is a no-op for an unknown id.
	Delete(ctx context.Context, id string) error

	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteExpiredForUser(ctx context.Context, userID int64, now time.Time) (int64, error)
}
