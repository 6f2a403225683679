package transiter

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopArrivals(t *testing.T) {
	now := time.Now().Unix()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stops/R20N", r.URL.Path)

		fmt.Fprintf(w, `{
			"id": "R20N",
			"name": "14 St - Union Sq",
			"stopTimes": [
				{
					"departure": {"time": "%d"},
					"trip": {"route": {"id": "N"}, "destination": {"name": "Astoria - Ditmars Blvd"}}
				},
				{
					"departure": {"time": "%d"},
					"trip": {"route": {"id": "Q"}, "destination": {"name": "96 St"}}
				},
				{
					"departure": {"time": "%d"},
					"trip": {"route": {"id": "W"}, "destination": {"name": "Whitehall St"}}
				},
				{
					"trip": {"route": {"id": "R"}, "destination": {"name": "Bay Ridge - 95 St"}}
				},
				{
					"departure": {"time": "%d"}
				}
			]
		}`, now+90, now+630, now-30, now+150)
	}))
	defer server.Close()

	board := NewClient(server.URL).StopArrivals("R20N")

	assert.Equal(t, "14 St - Union Sq", board.StationName)
	require.Len(t, board.Arrivals, 3)

	assert.Equal(t, BoardArrival{
		Route:       "N",
		Stop:        "14 St - Union Sq",
		Destination: "Astoria - Ditmars Blvd",
		ETAMinutes:  1,
	}, board.Arrivals[0])

	assert.Equal(t, "Q", board.Arrivals[1].Route)
	assert.EqualValues(t, 10, board.Arrivals[1].ETAMinutes)

	// Trainless stop time still renders, with sentinels
	assert.Equal(t, "Unknown", board.Arrivals[2].Route)
	assert.Equal(t, "Unknown", board.Arrivals[2].Destination)
	assert.EqualValues(t, 2, board.Arrivals[2].ETAMinutes)
}

func TestStopArrivalsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	board := NewClient(server.URL).StopArrivals("R20N")

	assert.Equal(t, "R20N", board.StationName)
	assert.Empty(t, board.Arrivals)
}

func TestStopArrivalsBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	board := NewClient(server.URL).StopArrivals("635N")

	assert.Equal(t, "635N", board.StationName)
	assert.Empty(t, board.Arrivals)
}

func TestStopRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"name": "14 St - Union Sq",
			"stopTimes": [
				{"trip": {"route": {"id": "N"}}},
				{"trip": {"route": {"id": "Q"}}},
				{"trip": {"route": {"id": "N"}}},
				{"trip": {}},
				{"trip": {"route": {"id": "R"}}}
			]
		}`)
	}))
	defer server.Close()

	routes := NewClient(server.URL).StopRoutes("R20N")

	assert.Equal(t, []string{"N", "Q", "R"}, routes)
}

func TestStopRoutesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	assert.Empty(t, NewClient(server.URL).StopRoutes("R20N"))
}

func TestRouteStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/routes", r.URL.Path)

		fmt.Fprint(w, `{
			"routes": [
				{"id": "1"},
				{"id": "L", "alerts": [{"cause": "CONSTRUCTION", "effect": "SIGNIFICANT_DELAYS"}]},
				{"id": "G", "alerts": [{"cause": "Planned Maintenance", "effect": "NO_SERVICE"}]},
				{"id": "A", "alerts": [{"cause": "UNKNOWN_CAUSE", "effect": "weekend maintenance work"}]},
				{"alerts": [{"cause": "CONSTRUCTION"}]}
			]
		}`)
	}))
	defer server.Close()

	statuses := NewClient(server.URL).RouteStatuses()

	assert.Equal(t, map[string]Status{
		"1": StatusGoodService,
		"L": StatusDelays,
		"G": StatusServiceChange,
		"A": StatusServiceChange,
	}, statuses)
}

func TestRouteStatusesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	assert.Empty(t, NewClient(server.URL).RouteStatuses())
}
