package departures

import (
	"sort"

	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/boardcache"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/config"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/stations"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/transforms"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/transiter"
	"github.com/DavidTropiansky/SubwayDisplayHub/pkg/util"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

// Aggregator resolves station complexes and assembles their departure boards
// from per platform upstream fetches. The two caches it owns are the only
// mutable state shared between requests.
type Aggregator struct {
	Directory *stations.Directory
	Client    *transiter.Client

	DefaultCount int
	MaxCount     int

	arrivalsCache *boardcache.Cache[*transiter.StopBoard]
	routesCache   *boardcache.Cache[[]string]
}

func NewAggregator(directory *stations.Directory, client *transiter.Client, boardConfig config.BoardConfig) *Aggregator {
	return &Aggregator{
		Directory: directory,
		Client:    client,

		DefaultCount: boardConfig.DefaultCount,
		MaxCount:     boardConfig.MaxCount,

		arrivalsCache: boardcache.New[*transiter.StopBoard]("arrivals", boardConfig.ArrivalsTTL()),
		routesCache:   boardcache.New[[]string]("routes", boardConfig.RoutesTTL()),
	}
}

// ListStations returns every station complex in the directory, one entry per
// complex, ordered by name.
func (aggregator *Aggregator) ListStations() []stations.StationSummary {
	return aggregator.Directory.Consolidated()
}

// RoutesForStation returns the sorted union of the routes served by every
// platform of the complex anyID resolves to.
func (aggregator *Aggregator) RoutesForStation(anyID string) []string {
	platformIDs := aggregator.Directory.ResolveComplex(anyID)

	platformRoutes := make([][]string, len(platformIDs))

	p := pool.New()
	for index, platformID := range platformIDs {
		index, platformID := index, platformID
		p.Go(func() {
			platformRoutes[index] = aggregator.routesCache.Get(platformID, aggregator.Client.StopRoutes)
		})
	}
	p.Wait()

	var routes []string
	for _, platformRouteIDs := range platformRoutes {
		routes = append(routes, platformRouteIDs...)
	}

	routes = util.RemoveDuplicateStrings(routes, nil)
	if routes == nil {
		routes = []string{}
	}
	slices.Sort(routes)

	return routes
}

// Arrivals assembles the departure board for anyID. A nil routeFilter leaves
// the board unfiltered, a non nil but empty one keeps nothing, which is how
// the front ends represent every route being deselected. Rows are sorted by
// minutes to departure, ties kept in platform order, and truncated to
// maxResults after clamping.
func (aggregator *Aggregator) Arrivals(anyID string, routeFilter []string, maxResults int) *Board {
	platformIDs := aggregator.Directory.ResolveComplex(anyID)

	stopBoards := make([]*transiter.StopBoard, len(platformIDs))

	p := pool.New()
	for index, platformID := range platformIDs {
		index, platformID := index, platformID
		p.Go(func() {
			stopBoards[index] = aggregator.arrivalsCache.Get(platformID, aggregator.Client.StopArrivals)
		})
	}
	p.Wait()

	board := &Board{PlatformIDs: platformIDs, Data: []*BoardRow{}}

	var merged []transiter.BoardArrival
	for _, stopBoard := range stopBoards {
		if stopBoard == nil {
			continue
		}

		if board.StationName == "" && stopBoard.StationName != "" {
			board.StationName = stopBoard.StationName
		}

		merged = append(merged, stopBoard.Arrivals...)
	}

	// Alert state is never cached, every board reflects the current alerts
	statuses := aggregator.Client.RouteStatuses()

	if routeFilter != nil {
		util.InPlaceFilter(&merged, func(arrival transiter.BoardArrival) bool {
			return slices.Contains(routeFilter, arrival.Route)
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ETAMinutes < merged[j].ETAMinutes
	})

	maxResults = aggregator.clampCount(maxResults)
	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}

	for _, arrival := range merged {
		status, found := statuses[arrival.Route]
		if !found {
			status = transiter.StatusGoodService
		}

		board.Data = append(board.Data, &BoardRow{
			Line:      arrival.Route,
			Stop:      arrival.Stop,
			Terminal:  arrival.Destination,
			Scheduled: arrival.ETAMinutes,
			Status:    status,
		})
	}

	transforms.Transform(board.Data, 1)

	return board
}

func (aggregator *Aggregator) clampCount(count int) int {
	if count <= 0 {
		count = aggregator.DefaultCount
	}

	if aggregator.MaxCount > 0 && count > aggregator.MaxCount {
		count = aggregator.MaxCount
	}

	return count
}
