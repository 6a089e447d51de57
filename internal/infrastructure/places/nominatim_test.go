package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

func TestNominatim_SearchPlaces(t *testing.T) {
	var query map[string][]string
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		query = r.URL.Query()
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[
			{"display_name":"Cartago, Costa Rica","lat":"9.8644","lon":"-83.9194",
			 "boundingbox":["9.80","9.90","-83.95","-83.88"]},
			{"display_name":"Broken","lat":"x","lon":"y"}
		]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "tracking-demo-test", time.Second)
	bias := &domain.Bounds{
		SouthWest: domain.Coordinates{Lat: 9.5, Lng: -84.5},
		NorthEast: domain.Coordinates{Lat: 10.5, Lng: -83.5},
	}
	got, err := n.SearchPlaces(context.Background(), "cartago", bias)
	require.NoError(t, err)

	assert.Equal(t, "cartago", query["q"][0])
	assert.Equal(t, "jsonv2", query["format"][0])
	assert.Equal(t, "-84.5,10.5,-83.5,9.5", query["viewbox"][0])
	assert.Equal(t, "tracking-demo-test", agent)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].Location)
	assert.Equal(t, domain.Coordinates{Lat: 9.8644, Lng: -83.9194}, *got[0].Location)
	require.NotNil(t, got[0].Viewport)
	assert.Equal(t, 9.80, got[0].Viewport.SouthWest.Lat)
	assert.Equal(t, -83.88, got[0].Viewport.NorthEast.Lng)
	assert.Nil(t, got[1].Location)
}

func TestNominatim_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewNominatim(srv.URL, "", time.Second).SearchPlaces(context.Background(), "x", nil)
	assert.Error(t, err)
}
