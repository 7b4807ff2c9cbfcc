// Package httpapi exposes the RecipeBox services as a JSON API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/server/models"
	"github.com/dmitrijs2005/recipebox/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, *services.IssuedSession, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.IssuedSession, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type RecipeService interface {
	Create(ctx context.Context, userID int64, in models.RecipeInput) (*models.Recipe, error)
	List(ctx context.Context, userID int64) ([]models.Recipe, error)
	ListByCategory(ctx context.Context, userID int64, category string) ([]models.Recipe, error)
	Search(ctx context.Context, userID int64, query string) ([]models.Recipe, error)
	Get(ctx context.Context, userID int64, id string) (*models.Recipe, error)
	Update(ctx context.Context, userID int64, id string, in models.RecipeInput) error
	Delete(ctx context.Context, userID int64, id string) error
}

type FavoriteService interface {
	Toggle(ctx context.Context, userID int64, recipeID string) (bool, error)
	ListIDs(ctx context.Context, userID int64) ([]string, error)
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
}

type ImageService interface {
	UploadURL(ctx context.Context, userID int64, recipeID string) (string, string, error)
	DownloadURL(ctx context.Context, userID int64, recipeID string) (string, error)
}

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps are the collaborators of a Server.
type Deps struct {
	Users     UserService
	Recipes   RecipeService
	Favorites FavoriteService
	Images    ImageService
	Store     Pinger
	Logger    logging.Logger
	// Registry receives the HTTP metrics and backs /metrics. A fresh
	// registry is used when nil.
	Registry *prometheus.Registry
}

// Options tune the session cookie and shutdown.
type Options struct {
	SessionTTL      time.Duration
	SecureCookies   bool
	ShutdownTimeout time.Duration
}

type Server struct {
	address   string
	users     UserService
	recipes   RecipeService
	favorites FavoriteService
	images    ImageService
	store     Pinger
	logger    logging.Logger
	registry  *prometheus.Registry
	metrics   *metrics
	opts      Options
	handler   http.Handler
}

func NewServer(address string, d Deps, opts Options) *Server {
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		address:   address,
		users:     d.Users,
		recipes:   d.Recipes,
		favorites: d.Favorites,
		images:    d.Images,
		store:     d.Store,
		logger:    d.Logger.With("module", "http_server"),
		registry:  reg,
		metrics:   newMetrics(reg),
		opts:      opts,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-done
}
