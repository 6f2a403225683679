package stations

// Station is a single boarding platform from the static station list. Platforms
// sharing a ParentID belong to the same physical station complex.
type Station struct {
	ID        string  `csv:"stop_id" json:"id" groups:"basic"`
	Name      string  `csv:"stop_name" json:"name" groups:"basic"`
	Latitude  float64 `csv:"stop_lat" json:"lat" groups:"basic"`
	Longitude float64 `csv:"stop_lon" json:"lon" groups:"basic"`
	ParentID  string  `csv:"parent_station" json:"parent_id" groups:"basic"`
}

// Complex returns the station complex identifier, falling back to the
// platform's own identifier when the row carries no parent.
func (s *Station) Complex() string {
	if s.ParentID == "" {
		return s.ID
	}

	return s.ParentID
}

// StationSummary is one consolidated entry per station complex
type StationSummary struct {
	ID        string  `json:"id" groups:"basic"`
	Name      string  `json:"name" groups:"basic"`
	Latitude  float64 `json:"lat" groups:"basic"`
	Longitude float64 `json:"lon" groups:"basic"`

	PlatformIDs []string `json:"platform_ids" groups:"basic"`
}
