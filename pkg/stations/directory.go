package stations

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/util"
)

// Directory is the read-only station lookup built once at startup from the
// static station list.
type Directory struct {
	stations   []Station
	stationMap map[string]*Station
	parentMap  map[string][]string

	parentOrder []string
}

// Load parses the station list at path. A missing or unreadable file logs and
// yields an empty directory rather than failing startup.
func Load(path string) *Directory {
	directory := newDirectory()

	file, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to open stations file")
		return directory
	}
	defer file.Close()

	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return minimumFieldsReader{reader: r}
	})

	var records []Station
	if err := gocsv.Unmarshal(file, &records); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to parse stations file")
		return directory
	}

	for _, record := range records {
		if record.ID == "" || record.Name == "" {
			continue
		}

		directory.insert(record)
	}

	directory.finalise()

	log.Info().
		Str("path", path).
		Int("platforms", len(directory.stations)).
		Int("complexes", len(directory.parentOrder)).
		Msg("Loaded station directory")

	return directory
}

func newDirectory() *Directory {
	return &Directory{
		stationMap: map[string]*Station{},
		parentMap:  map[string][]string{},
	}
}

func (d *Directory) insert(station Station) {
	if _, exists := d.stationMap[station.ID]; exists {
		return
	}

	d.stations = append(d.stations, station)
	d.stationMap[station.ID] = &d.stations[len(d.stations)-1]

	parent := station.Complex()
	if _, exists := d.parentMap[parent]; !exists {
		d.parentOrder = append(d.parentOrder, parent)
	}
	d.parentMap[parent] = util.RemoveDuplicateStrings(append(d.parentMap[parent], station.ID), nil)
}

func (d *Directory) finalise() {
	collator := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(d.stations, func(i, j int) bool {
		return collator.CompareString(d.stations[i].Name, d.stations[j].Name) < 0
	})

	// Re-point the lookup map at the sorted backing slice
	for i := range d.stations {
		d.stationMap[d.stations[i].ID] = &d.stations[i]
	}
}

// Stations returns every platform in the directory, ordered by name.
func (d *Directory) Stations() []Station {
	return d.stations
}

// Get looks up a single platform by its identifier.
func (d *Directory) Get(id string) (*Station, bool) {
	station, ok := d.stationMap[id]
	return station, ok
}

// ResolveComplex maps any identifier onto the platforms of its station
// complex. A parent identifier returns all member platforms, a platform
// identifier returns its siblings (itself included), and an unknown
// identifier is treated as a self-contained platform.
func (d *Directory) ResolveComplex(anyID string) []string {
	if members, ok := d.parentMap[anyID]; ok {
		return append([]string{}, members...)
	}

	if station, ok := d.stationMap[anyID]; ok {
		return append([]string{}, d.parentMap[station.Complex()]...)
	}

	return []string{anyID}
}

// Consolidated groups every platform by station complex, one summary per
// complex, ordered by name.
func (d *Directory) Consolidated() []StationSummary {
	summaries := make([]StationSummary, 0, len(d.parentOrder))

	for _, parent := range d.parentOrder {
		if summary, ok := d.consolidate(parent); ok {
			summaries = append(summaries, summary)
		}
	}

	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(summaries, func(i, j int) bool {
		return collator.CompareString(summaries[i].Name, summaries[j].Name) < 0
	})

	return summaries
}

// Complex resolves any known identifier to its consolidated station summary.
func (d *Directory) Complex(anyID string) (StationSummary, bool) {
	if _, ok := d.parentMap[anyID]; ok {
		return d.consolidate(anyID)
	}

	if station, ok := d.stationMap[anyID]; ok {
		return d.consolidate(station.Complex())
	}

	return StationSummary{}, false
}

func (d *Directory) consolidate(parent string) (StationSummary, bool) {
	members := d.parentMap[parent]
	if len(members) == 0 {
		return StationSummary{}, false
	}

	var summary StationSummary

	firstMember := d.stationMap[members[0]]
	if err := copier.Copy(&summary, firstMember); err != nil {
		log.Error().Err(err).Str("station", parent).Msg("Failed to copy station summary")
	}

	summary.ID = parent
	summary.PlatformIDs = append([]string{}, members...)

	return summary, true
}

// minimumFieldsReader drops rows too short to describe a station, leaving
// gocsv to zero-fill anything else that is missing.
type minimumFieldsReader struct {
	reader *csv.Reader
}

const minimumStationFields = 5

func (m minimumFieldsReader) Read() ([]string, error) {
	for {
		row, err := m.reader.Read()
		if err != nil {
			return row, err
		}

		if len(row) >= minimumStationFields {
			return row, nil
		}

		log.Debug().Strs("row", row).Msg("Skipping malformed station row")
	}
}

func (m minimumFieldsReader) ReadAll() ([][]string, error) {
	var rows [][]string

	for {
		row, err := m.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}

		rows = append(rows, row)
	}
}
