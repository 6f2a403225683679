package transiter

// BoardArrival is one predicted departure from a platform.
type BoardArrival struct {
	Route       string
	Stop        string
	Destination string
	ETAMinutes  int64
}

// StopBoard is the live departure board for a single platform.
type StopBoard struct {
	StationName string
	Arrivals    []BoardArrival
}

// Status summarises a route's alert state.
type Status string

const (
	StatusGoodService   Status = "GoodService"
	StatusDelays        Status = "Delays"
	StatusServiceChange Status = "ServiceChange"
)
