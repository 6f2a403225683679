package departures

import "github.com/DavidTropiansky/SubwayDisplayHub/pkg/transiter"

// BoardRow is one row of a station departure board in its public shape.
// Scheduled is minutes until the predicted departure.
type BoardRow struct {
	Line      string           `json:"line" groups:"basic"`
	Stop      string           `json:"stop" groups:"basic"`
	Terminal  string           `json:"terminal" groups:"basic"`
	Scheduled int64            `json:"scheduled" groups:"basic"`
	Status    transiter.Status `json:"status" groups:"basic"`
	Colour    string           `json:"color" groups:"basic"`
}

// Board is the aggregated departure board for one station complex.
type Board struct {
	StationName string      `json:"stationName" groups:"basic"`
	PlatformIDs []string    `json:"platformIds" groups:"basic"`
	Data        []*BoardRow `json:"data" groups:"basic"`
}
