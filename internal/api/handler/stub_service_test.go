package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

// stubDemoService implements ports.DemoService; unset functions panic so
// tests notice unexpected calls.
type stubDemoService struct {
	createFn       func(ctx context.Context) (domain.DemoSnapshot, error)
	getFn          func(ctx context.Context, id string) (domain.DemoSnapshot, error)
	closeFn        func(ctx context.Context, id string) error
	selectFn       func(ctx context.Context, id string, role domain.Role, c domain.Coordinates) (domain.DemoSnapshot, error)
	speedFn        func(ctx context.Context, id string, kph int) (domain.DemoSnapshot, error)
	startFn        func(ctx context.Context, id string) (domain.DemoSnapshot, error)
	tickFn         func(ctx context.Context, id string) (domain.DemoSnapshot, error)
	resetFn        func(ctx context.Context, id string) (domain.DemoSnapshot, error)
	mapFn          func(ctx context.Context, id string) (ports.MapViewState, error)
	refreshFn      func(ctx context.Context, id string) (ports.MapViewState, error)
	armFn          func(ctx context.Context, id string, role domain.Role) (ports.MapViewState, error)
	clickFn        func(ctx context.Context, id string, c domain.Coordinates) (ports.MapViewState, error)
	searchFn       func(ctx context.Context, id, query string) ([]domain.Place, error)
	startSharingFn func(ctx context.Context, id string) (ports.MapViewState, error)
	stopSharingFn  func(ctx context.Context, id string) (ports.MapViewState, error)
	pushFn         func(ctx context.Context, id string, pos domain.Position) error
}

func (s *stubDemoService) Create(ctx context.Context) (domain.DemoSnapshot, error) {
	return s.createFn(ctx)
}

func (s *stubDemoService) Get(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	return s.getFn(ctx, id)
}

func (s *stubDemoService) Close(ctx context.Context, id string) error {
	return s.closeFn(ctx, id)
}

func (s *stubDemoService) SelectLocation(ctx context.Context, id string, role domain.Role, c domain.Coordinates) (domain.DemoSnapshot, error) {
	return s.selectFn(ctx, id, role, c)
}

func (s *stubDemoService) SetSpeed(ctx context.Context, id string, kph int) (domain.DemoSnapshot, error) {
	return s.speedFn(ctx, id, kph)
}

func (s *stubDemoService) Start(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	return s.startFn(ctx, id)
}

func (s *stubDemoService) Tick(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	return s.tickFn(ctx, id)
}

func (s *stubDemoService) Reset(ctx context.Context, id string) (domain.DemoSnapshot, error) {
	return s.resetFn(ctx, id)
}

func (s *stubDemoService) MapView(ctx context.Context, id string) (ports.MapViewState, error) {
	return s.mapFn(ctx, id)
}

func (s *stubDemoService) RefreshMap(ctx context.Context, id string) (ports.MapViewState, error) {
	return s.refreshFn(ctx, id)
}

func (s *stubDemoService) ArmSelection(ctx context.Context, id string, role domain.Role) (ports.MapViewState, error) {
	return s.armFn(ctx, id, role)
}

func (s *stubDemoService) ClickMap(ctx context.Context, id string, c domain.Coordinates) (ports.MapViewState, error) {
	return s.clickFn(ctx, id, c)
}

func (s *stubDemoService) SearchPlaces(ctx context.Context, id, query string) ([]domain.Place, error) {
	return s.searchFn(ctx, id, query)
}

func (s *stubDemoService) StartSharing(ctx context.Context, id string) (ports.MapViewState, error) {
	return s.startSharingFn(ctx, id)
}

func (s *stubDemoService) StopSharing(ctx context.Context, id string) (ports.MapViewState, error) {
	return s.stopSharingFn(ctx, id)
}

func (s *stubDemoService) PushPosition(ctx context.Context, id string, pos domain.Position) error {
	return s.pushFn(ctx, id, pos)
}

// newContext builds an echo context for method/target with a JSON body and
// the given path parameters (name, value pairs).
func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}
