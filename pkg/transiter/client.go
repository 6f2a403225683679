package transiter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/util"
	"github.com/rs/zerolog/log"
)

// Client talks to a Transiter style deployment over plain HTTP/JSON. The
// underlying http.Client carries no timeout, so a hung upstream stalls only
// the request waiting on it.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint:   strings.TrimSuffix(endpoint, "/"),
		HTTPClient: &http.Client{},
	}
}

// StopArrivals fetches the live departure board for a single platform.
// Predictions that have already departed are dropped and missing route or
// destination fields fall back to a sentinel. Any transport or decode failure
// degrades to an empty board named after the requested platform.
func (client *Client) StopArrivals(platformID string) *StopBoard {
	upstreamRequests.WithLabelValues("stops").Inc()

	var stop stopDetail
	if err := client.get(fmt.Sprintf("/stops/%s", url.PathEscape(platformID)), &stop); err != nil {
		upstreamErrors.WithLabelValues("stops").Inc()
		log.Error().Err(err).Str("stop", platformID).Msg("Failed to get stop arrivals")

		return &StopBoard{StationName: platformID, Arrivals: []BoardArrival{}}
	}

	board := &StopBoard{StationName: stop.Name, Arrivals: []BoardArrival{}}
	nowSeconds := time.Now().Unix()

	for _, stopTime := range stop.StopTimes {
		departureSeconds, ok := stopTime.Departure.epochSeconds()
		if !ok {
			continue
		}

		remainingSeconds := departureSeconds - nowSeconds
		if remainingSeconds < 0 {
			continue
		}

		board.Arrivals = append(board.Arrivals, BoardArrival{
			Route:       stopTime.Trip.routeID(),
			Stop:        stop.Name,
			Destination: stopTime.Trip.destinationName(),
			ETAMinutes:  remainingSeconds / 60,
		})
	}

	return board
}

// StopRoutes returns the distinct routes referenced by a platform's upcoming
// departures, first seen order preserved.
func (client *Client) StopRoutes(platformID string) []string {
	upstreamRequests.WithLabelValues("stops").Inc()

	var stop stopDetail
	if err := client.get(fmt.Sprintf("/stops/%s", url.PathEscape(platformID)), &stop); err != nil {
		upstreamErrors.WithLabelValues("stops").Inc()
		log.Error().Err(err).Str("stop", platformID).Msg("Failed to get stop routes")

		return []string{}
	}

	var routes []string
	for _, stopTime := range stop.StopTimes {
		if stopTime.Trip == nil || stopTime.Trip.Route == nil || stopTime.Trip.Route.ID == "" {
			continue
		}

		routes = append(routes, stopTime.Trip.Route.ID)
	}

	return util.RemoveDuplicateStrings(routes, nil)
}

// RouteStatuses classifies every route on the network by its active alerts.
// Failures degrade to an empty map, which callers treat as all good service.
func (client *Client) RouteStatuses() map[string]Status {
	upstreamRequests.WithLabelValues("routes").Inc()

	var routes routeList
	if err := client.get("/routes", &routes); err != nil {
		upstreamErrors.WithLabelValues("routes").Inc()
		log.Error().Err(err).Msg("Failed to get route statuses")

		return map[string]Status{}
	}

	statuses := map[string]Status{}
	for _, route := range routes.Routes {
		if route.ID == "" {
			continue
		}

		statuses[route.ID] = classifyAlerts(route.Alerts)
	}

	return statuses
}

func classifyAlerts(alerts []alertPreview) Status {
	if len(alerts) == 0 {
		return StatusGoodService
	}

	for _, alert := range alerts {
		if strings.Contains(strings.ToLower(alert.Cause), "maintenance") ||
			strings.Contains(strings.ToLower(alert.Effect), "maintenance") {
			return StatusServiceChange
		}
	}

	return StatusDelays
}

func (client *Client) get(path string, target any) error {
	requestURL := fmt.Sprintf("%s%s", client.Endpoint, path)
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return err
	}
	req.Header["user-agent"] = []string{"subwaydisplayhub"}

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(jsonBytes, target)
}
