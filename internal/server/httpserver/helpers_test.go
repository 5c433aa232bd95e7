package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/waitlist"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// spyNotes counts every call that reaches the notes repository.
type spyNotes struct {
	inner notes.Repository
	calls atomic.Int64
}

func (s *spyNotes) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	s.calls.Add(1)
	return s.inner.Create(ctx, n)
}
func (s *spyNotes) Get(ctx context.Context, id, userID int64) (*models.Note, error) {
	s.calls.Add(1)
	return s.inner.Get(ctx, id, userID)
}
func (s *spyNotes) Update(ctx context.Context, id, userID int64, p models.NotePatch) (*models.Note, error) {
	s.calls.Add(1)
	return s.inner.Update(ctx, id, userID, p)
}
func (s *spyNotes) Delete(ctx context.Context, id, userID int64) error {
	s.calls.Add(1)
	return s.inner.Delete(ctx, id, userID)
}
func (s *spyNotes) List(ctx context.Context, userID int64) ([]models.Note, error) {
	s.calls.Add(1)
	return s.inner.List(ctx, userID)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func testConfig(variant string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Variant = variant
	return cfg
}

type notesFixture struct {
	srv   *HTTPServer
	spy   *spyNotes
	users *users.MemoryRepository
}

func newNotesServer(t *testing.T) *notesFixture {
	t.Helper()
	cfg := testConfig(config.VariantNotes)
	l := logging.Nop()

	u := users.NewMemoryRepository()
	spy := &spyNotes{inner: notes.NewMemoryRepository()}

	srv, err := NewHTTPServer(cfg, l, Services{
		Auth:    services.NewAuthService(u, sessions.NewMemoryRepository(), cfg.SecretKey, time.Hour, l),
		Notes:   services.NewNoteService(spy, l),
		Storage: fakePinger{},
	})
	require.NoError(t, err)
	return &notesFixture{srv: srv, spy: spy, users: u}
}

func newWaitlistServer(t *testing.T) *HTTPServer {
	t.Helper()
	cfg := testConfig(config.VariantWaitlist)
	l := logging.Nop()

	srv, err := NewHTTPServer(cfg, l, Services{
		Waitlist: services.NewWaitlistService(waitlist.NewMemoryRepository(), l),
		Storage:  fakePinger{},
	})
	require.NoError(t, err)
	return srv
}

// do sends a request with an optional JSON body and cookies.
func do(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "notekeeper.sid" {
			return c
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// signup registers email and returns its session cookie.
func signup(t *testing.T, h http.Handler, email string) *http.Cookie {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/register", map[string]string{"email": email, "password": "password1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func doRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
