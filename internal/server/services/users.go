package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/server/auth"
	"github.com/dmitrijs2005/recipebox/internal/server/config"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/repositories/repomanager"
)

// IssuedSession is what a client needs to stay logged in.
type IssuedSession struct {
	SessionID string
	Token     string
	ExpiresAt time.Time
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	sessionTTL  time.Duration
	logger      logging.Logger
	now         func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		sessionTTL:  cfg.SessionTTL,
		logger:      logger.With("service", "users"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the account and logs it in. A taken email yields
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, *IssuedSession, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, nil, common.ErrAlreadyExists
		}
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	sess, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, sess, nil
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("not-a-real-password")
	return h
})

// Login checks credentials. Unknown email and wrong password both return
// common.ErrInvalidCredentials after the same hashing work.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *IssuedSession, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyPassword(dummyHash(), password)
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.VerifyPassword(user, password) {
		return nil, nil, common.ErrInvalidCredentials
	}

	now := s.now()
	if err := repo.TouchActivity(ctx, user.ID, now); err != nil {
		s.logger.Warn(ctx, "activity refresh failed", "user_id", user.ID, "error", err)
	} else {
		user.UpdatedAt = now
	}

	sess, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, sess, nil
}

func (s *UserService) VerifyPassword(user *models.User, password string) bool {
	return auth.VerifyPassword(user.PasswordHash, password)
}

// Logout revokes the session behind token. Unknown, expired or malformed
// tokens are not an error.
func (s *UserService) Logout(ctx context.Context, token string) error {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}

	if err := s.repomanager.Sessions(s.db).Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// ResolveSession maps a token to its live session. Any token or session
// problem is common.ErrorUnauthorized; store failures are returned wrapped.
func (s *UserService) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Sessions(s.db)

	sess, err := repo.Find(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching session: %w", err)
	}

	if sess.UserID != claims.UserID {
		return nil, common.ErrorUnauthorized
	}

	if sess.Expired(s.now()) {
		if err := repo.Delete(ctx, sess.ID); err != nil {
			s.logger.Warn(ctx, "expired session cleanup failed", "error", err)
		}
		return nil, common.ErrorUnauthorized
	}

	return sess, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return user, nil
}

// openSession purges the user's expired sessions and stores a new one in a
// single transaction, then signs the token for it.
func (s *UserService) openSession(ctx context.Context, user *models.User) (*IssuedSession, error) {
	id, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("error generating session id: %w", err)
	}

	now := s.now()
	sess := &models.Session{
		ID:        id,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Sessions(tx)
		if _, err := repo.DeleteExpiredForUser(ctx, user.ID, now); err != nil {
			return err
		}
		return repo.Create(ctx, sess)
	})
	if err != nil {
		return nil, fmt.Errorf("error opening session: %w", err)
	}

	token, err := auth.GenerateToken(sess.ID, sess.UserID, s.jwtSecret, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("error signing session token: %w", err)
	}

	return &IssuedSession{SessionID: sess.ID, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}
