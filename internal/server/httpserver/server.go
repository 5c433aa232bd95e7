// Package httpserver exposes the notekeeper services as a JSON API over HTTP
// using gin, together with the embedded front-end page of the active variant.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/dmitrijs2005/notekeeper/internal/server/validation"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups what the route layer calls into. Only the services of the
// configured variant need to be set.
type Services struct {
	Auth     *services.AuthService
	Notes    *services.NoteService
	Waitlist *services.WaitlistService
	Storage  Pinger
}

type HTTPServer struct {
	address         string
	variant         string
	cookieName      string
	cookieSecure    bool
	shutdownTimeout time.Duration

	auth      *services.AuthService
	notes     *services.NoteService
	waitlist  *services.WaitlistService
	storage   Pinger
	validator *validation.Validator
	logger    logging.Logger

	engine *gin.Engine
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, svc Services) (*HTTPServer, error) {
	switch cfg.Variant {
	case config.VariantNotes:
		if svc.Auth == nil || svc.Notes == nil {
			return nil, errors.New("notes variant requires auth and notes services")
		}
	case config.VariantWaitlist:
		if svc.Waitlist == nil {
			return nil, errors.New("waitlist variant requires the waitlist service")
		}
	default:
		return nil, errors.New("unknown variant " + cfg.Variant)
	}

	s := &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		variant:         cfg.Variant,
		cookieName:      cfg.CookieName,
		cookieSecure:    cfg.CookieSecure,
		shutdownTimeout: cfg.ShutdownTimeout,
		auth:            svc.Auth,
		notes:           svc.Notes,
		waitlist:        svc.Waitlist,
		storage:         svc.Storage,
		validator:       validation.New(),
		logger:          l.With("module", "http_server"),
	}
	s.engine = s.routes()
	return s, nil
}

// Handler returns the fully wired router.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(s.requestLogger(), s.recoverer(), limitBody(maxBodyBytes))

	r.GET("/healthz", s.health)

	api := r.Group("/api")

	switch s.variant {
	case config.VariantWaitlist:
		r.GET("/", s.page(webWaitlistPage))
		api.POST("/waitlist", s.joinWaitlist)

	case config.VariantNotes:
		r.GET("/", s.page(webNotesPage))

		api.POST("/register", s.register)
		api.POST("/login", s.login)
		api.POST("/logout", s.logout)

		authed := api.Group("", s.requireSession())
		authed.GET("/user", s.currentUser)
		authed.GET("/notes", s.listNotes)
		authed.POST("/notes", s.createNote)
		authed.GET("/notes/:id", s.getNote)
		authed.PUT("/notes/:id", s.updateNote)
		authed.DELETE("/notes/:id", s.deleteNote)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address, "variant", s.variant)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
