package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-demo/docs"
	"github.com/99minutos/tracking-demo/internal/api/handler"
	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// stubService embeds the interface; only the overridden methods may be called.
type stubService struct {
	ports.DemoService
	getErr   error
	startErr error
}

func (s *stubService) Get(_ context.Context, id string) (domain.DemoSnapshot, error) {
	if s.getErr != nil {
		return domain.DemoSnapshot{}, s.getErr
	}
	return domain.DemoSnapshot{SessionID: id}, nil
}

func (s *stubService) Start(_ context.Context, id string) (domain.DemoSnapshot, error) {
	return domain.DemoSnapshot{SessionID: id}, s.startErr
}

func serve(t *testing.T, svc ports.DemoService, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := NewRouter(Dependencies{
		Service:  svc,
		Checks:   map[string]handler.Check{},
		Logger:   zerolog.Nop(),
		Registry: prometheus.NewRegistry(),
	})

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		startErr error
		want     int
	}{
		{"validation", &domain.ValidationError{Field: "locations", Reason: "start and end locations are required"}, http.StatusUnprocessableEntity},
		{"running", domain.ErrSessionActive, http.StatusConflict},
		{"timer running", domain.ErrTimerRunning, http.StatusConflict},
		{"not found", domain.ErrSessionNotFound, http.StatusNotFound},
		{"collaborator", &domain.CollaboratorError{Collaborator: "routing", Op: "compute route", Err: errors.New("down")}, http.StatusBadGateway},
		{"wrapped sentinel", errors.Join(errors.New("context"), domain.ErrSessionActive), http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := serve(t, &stubService{startErr: tt.startErr}, http.MethodPost, "/v1/demos/s1/start", "")
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d (%v)", tt.want, rec.Code, resp)
			}
			if resp["error"] == nil || resp["error"] == "" {
				t.Fatalf("expected error envelope, got %v", resp)
			}
		})
	}
}

func TestRouter_UnexpectedErrorHidesCause(t *testing.T) {
	_, resp := serve(t, &stubService{startErr: errors.New("secret detail")}, http.MethodPost, "/v1/demos/s1/start", "")
	if resp["error"] != "internal server error" {
		t.Fatalf("cause leaked: %v", resp)
	}
}

func TestRouter_Routes(t *testing.T) {
	svc := &stubService{}

	rec, resp := serve(t, svc, http.MethodGet, "/v1/demos/abc", "")
	if rec.Code != http.StatusOK || resp["session_id"] != "abc" {
		t.Fatalf("unexpected response %d %v", rec.Code, resp)
	}

	rec, resp = serve(t, svc, http.MethodPost, "/v1/coordinates/parse", `{"text":"9.9281,-84.0907"}`)
	if rec.Code != http.StatusOK || resp["valid"] != true {
		t.Fatalf("unexpected parse response %d %v", rec.Code, resp)
	}

	rec, _ = serve(t, svc, http.MethodGet, "/v1/links?lat=1.5&lng=2.5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for links, got %d", rec.Code)
	}

	rec, _ = serve(t, svc, http.MethodGet, "/v1/links?lat=1.5", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing lng, got %d", rec.Code)
	}

	rec, _ = serve(t, svc, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness, got %d", rec.Code)
	}

	rec, _ = serve(t, svc, http.MethodGet, "/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for readiness, got %d", rec.Code)
	}

	rec, _ = serve(t, svc, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics, got %d", rec.Code)
	}

	rec, _ = serve(t, svc, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_RequestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		startErr error
		want     string
	}{
		{"ok", nil, `"level":"info"`},
		{"validation", &domain.ValidationError{Field: "speed_kph", Reason: "must be greater than zero"}, `"level":"warn"`},
		{"unexpected", errors.New("boom"), `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			e := NewRouter(Dependencies{
				Service:  &stubService{startErr: tt.startErr},
				Checks:   map[string]handler.Check{},
				Logger:   zerolog.New(&buf),
				Registry: prometheus.NewRegistry(),
			})
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/demos/s1/start", nil))

			var requestLine string
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, `"message":"request"`) {
					requestLine = line
				}
			}
			if !strings.Contains(requestLine, tt.want) {
				t.Fatalf("expected %s in request log, got %q", tt.want, requestLine)
			}
		})
	}
}

func TestRouter_RoutesAreDocumented(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not JSON: %v", err)
	}

	e := NewRouter(Dependencies{
		Service:  &stubService{},
		Checks:   map[string]handler.Check{},
		Logger:   zerolog.Nop(),
		Registry: prometheus.NewRegistry(),
	})
	undocumented := map[string]bool{"/metrics": true, "/swagger/*": true, "/ws": true}
	for _, r := range e.Routes() {
		if undocumented[r.Path] || strings.HasPrefix(r.Path, "/*") || r.Method == "echo_route_not_found" {
			continue
		}
		path := r.Path
		for _, param := range []string{"id", "role"} {
			path = strings.ReplaceAll(path, ":"+param, "{"+param+"}")
		}
		if _, ok := doc.Paths[path][strings.ToLower(r.Method)]; !ok {
			t.Errorf("%s %s missing from the swagger document", r.Method, path)
		}
	}
}
