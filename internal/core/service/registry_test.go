package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/tracking-demo/internal/core/domain"
	"github.com/99minutos/tracking-demo/internal/core/ports"
)

func newTestRegistry(t *testing.T, source ports.PositionSource) (*Registry, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	opts := RegistryOptions{
		MapCenter: domain.Coordinates{Lat: 9.7489, Lng: -83.7534},
		MapZoom:   10,
		Routes:    &stubRoutes{},
		Places:    &stubPlaces{},
		Notifier:  n,
		Logger:    zerolog.Nop(),
	}
	if source != nil {
		opts.Sources = func(string) ports.PositionSource { return source }
		opts.SourceLabel = "stub"
	}
	r := NewRegistry(opts)
	t.Cleanup(r.CloseAll)
	return r, n
}

func TestRegistry_CreateGetClose(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()

	snap, err := r.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, snap.TrackingID, got.TrackingID)

	require.NoError(t, r.Close(ctx, snap.SessionID))
	_, err = r.Get(ctx, snap.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, r.Close(ctx, snap.SessionID), domain.ErrSessionNotFound)
}

func TestRegistry_CloseRunsOnCloseHook(t *testing.T) {
	var closed []string
	r := NewRegistry(RegistryOptions{
		OnClose: func(id string) { closed = append(closed, id) },
		Logger:  zerolog.Nop(),
	})
	t.Cleanup(r.CloseAll)
	ctx := context.Background()
	snap, _ := r.Create(ctx)

	require.NoError(t, r.Close(ctx, snap.SessionID))
	assert.ErrorIs(t, r.Close(ctx, snap.SessionID), domain.ErrSessionNotFound)
	assert.Equal(t, []string{snap.SessionID}, closed)
}

func TestRegistry_UnknownSession(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()

	_, err := r.Start(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = r.MapView(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, r.PushPosition(ctx, "missing", domain.Position{}), domain.ErrSessionNotFound)
}

func TestRegistry_SelectLocationsDrawsRoute(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)

	_, err := r.SelectLocation(ctx, snap.SessionID, domain.RoleStart, domain.Coordinates{Lat: 9.9281, Lng: -84.0907})
	require.NoError(t, err)
	view, _ := r.MapView(ctx, snap.SessionID)
	assert.Len(t, view.Markers, 1)
	assert.Nil(t, view.Route)

	_, err = r.SelectLocation(ctx, snap.SessionID, domain.RoleEnd, domain.Coordinates{Lat: 9.8644, Lng: -83.9194})
	require.NoError(t, err)
	view, _ = r.MapView(ctx, snap.SessionID)
	assert.Len(t, view.Markers, 2)
	assert.NotNil(t, view.Route)

	started, err := r.Start(ctx, snap.SessionID)
	require.NoError(t, err)
	require.NotNil(t, started.ETAMinutes)
	assert.Equal(t, 45, *started.ETAMinutes)
}

func TestRegistry_ClickSelectsArmedRole(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)

	_, err := r.ClickMap(ctx, snap.SessionID, domain.Coordinates{Lat: 1.5, Lng: 2.5})
	assert.ErrorIs(t, err, domain.ErrNoSelectionRole)

	_, err = r.ArmSelection(ctx, snap.SessionID, domain.RoleStart)
	require.NoError(t, err)
	view, err := r.ClickMap(ctx, snap.SessionID, domain.Coordinates{Lat: 1.5, Lng: 2.5})
	require.NoError(t, err)
	assert.Empty(t, view.SelectionRole)

	got, _ := r.Get(ctx, snap.SessionID)
	assert.Equal(t, "1.5,2.5", got.Config.StartCoordinates)
	assert.Equal(t, "Selected location (1.5000, 2.5000)", got.Config.StartLocation)
}

func TestRegistry_ArmSelectionWhileRunning(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)
	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleStart, domain.Coordinates{Lat: 1.5, Lng: 2.5})
	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleEnd, domain.Coordinates{Lat: 1.6, Lng: 2.6})
	_, _ = r.Start(ctx, snap.SessionID)

	_, err := r.ArmSelection(ctx, snap.SessionID, domain.RoleEnd)
	assert.ErrorIs(t, err, domain.ErrSessionActive)
}

func TestRegistry_RunningDemoFreezesMapInputs(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)
	cartago := domain.Coordinates{Lat: 9.8644, Lng: -83.9194}
	r.opts.Places.(*stubPlaces).places = []domain.Place{{Name: "Cartago", Location: &cartago}}

	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleStart, domain.Coordinates{Lat: 1.5, Lng: 2.5})
	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleEnd, domain.Coordinates{Lat: 1.6, Lng: 2.6})
	_, err := r.ArmSelection(ctx, snap.SessionID, domain.RoleEnd)
	require.NoError(t, err)
	_, err = r.Start(ctx, snap.SessionID)
	require.NoError(t, err)

	before, _ := r.MapView(ctx, snap.SessionID)
	require.Len(t, before.Markers, 2)
	assert.Empty(t, before.SelectionRole, "start must drop the armed selection")

	_, err = r.ClickMap(ctx, snap.SessionID, domain.Coordinates{Lat: 5, Lng: 5})
	assert.ErrorIs(t, err, domain.ErrSessionActive)
	_, err = r.SearchPlaces(ctx, snap.SessionID, "cartago")
	assert.ErrorIs(t, err, domain.ErrSessionActive)

	after, _ := r.MapView(ctx, snap.SessionID)
	assert.Equal(t, before.Markers, after.Markers)
	assert.Equal(t, before.Route, after.Route)

	got, _ := r.Get(ctx, snap.SessionID)
	assert.Equal(t, "1.6,2.6", got.Config.EndCoordinates)
}

func TestRegistry_ResetClearsMap(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)
	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleStart, domain.Coordinates{Lat: 1.5, Lng: 2.5})

	reset, err := r.Reset(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, snap.TrackingID, reset.TrackingID)

	view, _ := r.MapView(ctx, snap.SessionID)
	assert.Empty(t, view.Markers)
}

func TestRegistry_MapNotificationsCarryTrackingID(t *testing.T) {
	r, n := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)
	routes := r.opts.Routes.(*stubRoutes)
	routes.err = errors.New("no route")

	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleStart, domain.Coordinates{Lat: 1.5, Lng: 2.5})
	_, _ = r.SelectLocation(ctx, snap.SessionID, domain.RoleEnd, domain.Coordinates{Lat: 1.6, Lng: 2.6})

	errs := n.ofKind(domain.NotifyError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Could not calculate the route", errs[0].Message)
	assert.Equal(t, snap.TrackingID, errs[0].TrackingID)
	assert.Equal(t, snap.SessionID, errs[0].SessionID)
}

func TestRegistry_Sharing(t *testing.T) {
	src := &stubPositionSource{}
	r, _ := newTestRegistry(t, src)
	ctx := context.Background()
	snap, _ := r.Create(ctx)

	_, err := r.StopSharing(ctx, snap.SessionID)
	assert.ErrorIs(t, err, domain.ErrSharingInactive)

	view, err := r.StartSharing(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.True(t, view.Sharing)

	assert.ErrorIs(t, r.PushPosition(ctx, snap.SessionID, domain.Position{}), domain.ErrPushUnsupported)

	require.NoError(t, r.Close(ctx, snap.SessionID))
	assert.Equal(t, 1, src.clearedCount())
}

func TestRegistry_PushPosition(t *testing.T) {
	src := &pushableSource{}
	r, _ := newTestRegistry(t, src)
	ctx := context.Background()
	snap, _ := r.Create(ctx)
	_, err := r.StartSharing(ctx, snap.SessionID)
	require.NoError(t, err)

	err = r.PushPosition(ctx, snap.SessionID, domain.Position{Coordinates: domain.Coordinates{Lat: 9.9, Lng: -84.1}})
	require.NoError(t, err)
	require.Len(t, src.published, 1)
	assert.False(t, src.published[0].At.IsZero())

	view, _ := r.MapView(ctx, snap.SessionID)
	require.Len(t, view.Markers, 1)
	assert.Equal(t, domain.MarkerCurrent, view.Markers[0].Style)
}

func TestRegistry_SearchWithArmedRoleSelectsFirstPlace(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()
	snap, _ := r.Create(ctx)
	cartago := domain.Coordinates{Lat: 9.8644, Lng: -83.9194}
	r.opts.Places.(*stubPlaces).places = []domain.Place{{Name: "Cartago", Location: &cartago}}

	_, err := r.ArmSelection(ctx, snap.SessionID, domain.RoleEnd)
	require.NoError(t, err)
	places, err := r.SearchPlaces(ctx, snap.SessionID, "cartago")
	require.NoError(t, err)
	assert.Len(t, places, 1)

	got, _ := r.Get(ctx, snap.SessionID)
	assert.Equal(t, "9.8644,-83.9194", got.Config.EndCoordinates)
}
