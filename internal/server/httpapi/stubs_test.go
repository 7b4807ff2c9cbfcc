package httpapi

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/services"
)

// stubUsers accepts every token as the session of user 1.
type stubUsers struct {
	resolveErr error
	getErr     error
	logoutErr  error
}

func (s *stubUsers) Register(context.Context, string, string, string) (*models.User, *services.IssuedSession, error) {
	return nil, nil, s.getErr
}
func (s *stubUsers) Login(context.Context, string, string) (*models.User, *services.IssuedSession, error) {
	return nil, nil, s.getErr
}
func (s *stubUsers) Logout(context.Context, string) error {
	return s.logoutErr
}
func (s *stubUsers) ResolveSession(_ context.Context, token string) (*models.Session, error) {
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	return &models.Session{ID: "sid", UserID: 1, Name: "Stub", Email: "stub@example.com"}, nil
}
func (s *stubUsers) GetUser(_ context.Context, id int64) (*models.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.User{ID: id, Name: "Stub", Email: "stub@example.com"}, nil
}

type stubRecipes struct {
	err error
}

func (s *stubRecipes) Create(context.Context, int64, models.RecipeInput) (*models.Recipe, error) {
	return nil, s.err
}
func (s *stubRecipes) List(context.Context, int64) ([]models.Recipe, error) {
	return nil, s.err
}
func (s *stubRecipes) ListByCategory(context.Context, int64, string) ([]models.Recipe, error) {
	return nil, s.err
}
func (s *stubRecipes) Search(context.Context, int64, string) ([]models.Recipe, error) {
	return nil, s.err
}
func (s *stubRecipes) Get(context.Context, int64, string) (*models.Recipe, error) {
	return nil, s.err
}
func (s *stubRecipes) Update(context.Context, int64, string, models.RecipeInput) error {
	return s.err
}
func (s *stubRecipes) Delete(context.Context, int64, string) error {
	return s.err
}

type stubFavorites struct {
	err error
}

func (s *stubFavorites) Toggle(context.Context, int64, string) (bool, error) {
	return false, s.err
}
func (s *stubFavorites) ListIDs(context.Context, int64) ([]string, error) {
	return nil, s.err
}
func (s *stubFavorites) ListRecipes(context.Context, int64) ([]models.Recipe, error) {
	return nil, s.err
}

type stubImages struct {
	err error
}

func (s *stubImages) UploadURL(context.Context, int64, string) (string, string, error) {
	return "", "", s.err
}
func (s *stubImages) DownloadURL(context.Context, int64, string) (string, error) {
	return "", s.err
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

// newStubEnv builds a server whose unset dependencies are stubs.
func newStubEnv(t *testing.T, d Deps) *testEnv {
	t.Helper()

	if d.Users == nil {
		d.Users = &stubUsers{}
	}
	if d.Recipes == nil {
		d.Recipes = &stubRecipes{}
	}
	if d.Favorites == nil {
		d.Favorites = &stubFavorites{}
	}
	if d.Images == nil {
		d.Images = &stubImages{}
	}
	if d.Store == nil {
		d.Store = stubPinger{}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}

	s := NewServer(":0", d, Options{})
	return &testEnv{t: t, server: s, handler: s.Handler()}
}
