package transiter

import "strconv"

const unknownLabel = "Unknown"

// Wire shapes for the upstream API. Every field can be absent, so anything
// nested decodes through pointers with defaults applied by the accessors.
type stopDetail struct {
	Name      string     `json:"name"`
	StopTimes []stopTime `json:"stopTimes"`
}

type stopTime struct {
	Departure *estimatedTime `json:"departure"`
	Trip      *tripInfo      `json:"trip"`
}

type estimatedTime struct {
	Time string `json:"time"`
}

type tripInfo struct {
	Route       *routeReference       `json:"route"`
	Destination *destinationReference `json:"destination"`
}

type routeReference struct {
	ID string `json:"id"`
}

type destinationReference struct {
	Name string `json:"name"`
}

type routeList struct {
	Routes []routeEntry `json:"routes"`
}

type routeEntry struct {
	ID     string         `json:"id"`
	Alerts []alertPreview `json:"alerts"`
}

type alertPreview struct {
	Cause  string `json:"cause"`
	Effect string `json:"effect"`
}

// Timestamps arrive as epoch second strings
func (e *estimatedTime) epochSeconds() (int64, bool) {
	if e == nil || e.Time == "" {
		return 0, false
	}

	seconds, err := strconv.ParseInt(e.Time, 10, 64)
	if err != nil {
		return 0, false
	}

	return seconds, true
}

func (t *tripInfo) routeID() string {
	if t == nil || t.Route == nil || t.Route.ID == "" {
		return unknownLabel
	}

	return t.Route.ID
}

func (t *tripInfo) destinationName() string {
	if t == nil || t.Destination == nil || t.Destination.Name == "" {
		return unknownLabel
	}

	return t.Destination.Name
}
