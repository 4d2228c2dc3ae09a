package presence

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

// Summary is the derived time accounting of a beacon at a given instant
type Summary struct {
	Total      time.Duration
	Break      time.Duration
	Work       time.Duration
	FirstStart *time.Time
	LastEnd    *time.Time
	// PerStation is closed visit time plus the live contribution of open visits.
	PerStation map[string]time.Duration
	// ActiveStations holds the live elapsed time of every station currently in range.
	ActiveStations map[string]time.Duration
}

type summaryJSON struct {
	TotalMs          int64            `json:"totalMs"`
	BreakMs          int64            `json:"breakMs"`
	WorkMs           int64            `json:"workMs"`
	FirstStart       *time.Time       `json:"firstStart,omitempty"`
	LastEnd          *time.Time       `json:"lastEnd,omitempty"`
	PerStationMs     map[string]int64 `json:"perStationMs"`
	ActiveStationsMs map[string]int64 `json:"activeStationsMs"`
}

// MarshalJSON encodes durations as milliseconds
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		TotalMs:          s.Total.Milliseconds(),
		BreakMs:          s.Break.Milliseconds(),
		WorkMs:           s.Work.Milliseconds(),
		FirstStart:       s.FirstStart,
		LastEnd:          s.LastEnd,
		PerStationMs:     toMillis(s.PerStation),
		ActiveStationsMs: toMillis(s.ActiveStations),
	})
}

func toMillis(in map[string]time.Duration) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v.Milliseconds()
	}
	return out
}

type interval struct {
	start, end time.Time
}

// Summarize derives totals from the beacon's history and live state without
// mutating it, so repeated calls with the same now agree.
//
// Total is the aggregate presence clock, widened to the union of all visit
// intervals when history was recorded without one. Break is the measure of the
// union of break intervals, so overlapping break stations are not double
// counted, and never exceeds Total. Work is the remainder.
func Summarize(b *models.Beacon, now time.Time, c Classifier) Summary {
	s := Summary{
		PerStation:     make(map[string]time.Duration),
		ActiveStations: make(map[string]time.Duration),
	}

	var all, breaks []interval
	var firstStart, lastEnd time.Time

	observe := func(iv interval) {
		if firstStart.IsZero() || iv.start.Before(firstStart) {
			firstStart = iv.start
		}
		if iv.end.After(lastEnd) {
			lastEnd = iv.end
		}
	}

	for _, v := range b.Visits {
		elapsed := v.Elapsed(now)
		iv := interval{start: v.StartedAt, end: v.StartedAt.Add(elapsed)}
		s.PerStation[v.StationID] += elapsed
		all = append(all, iv)
		observe(iv)

		kind := v.Kind
		if kind == "" {
			kind = classify(c, v.StationID)
		}
		if kind == models.VisitKindBreak {
			breaks = append(breaks, iv)
		}
	}

	for stationID, startedAt := range b.ActiveStations {
		live := nonNegative(now.Sub(startedAt))
		iv := interval{start: startedAt, end: startedAt.Add(live)}
		s.ActiveStations[stationID] = live
		s.PerStation[stationID] += live
		all = append(all, iv)
		observe(iv)

		if classify(c, stationID) == models.VisitKindBreak {
			breaks = append(breaks, iv)
		}
	}

	s.Total = TotalElapsed(b, now)
	if covered := unionLength(all); covered > s.Total {
		s.Total = covered
	}
	s.Break = unionLength(breaks)
	if s.Break > s.Total {
		s.Break = s.Total
	}
	s.Work = s.Total - s.Break

	if !firstStart.IsZero() {
		fs := firstStart
		s.FirstStart = &fs
	}
	if len(b.ActiveStations) > 0 {
		le := now
		s.LastEnd = &le
	} else if !lastEnd.IsZero() {
		le := lastEnd
		s.LastEnd = &le
	}
	return s
}

// unionLength returns the measure of the union of the intervals
func unionLength(ivs []interval) time.Duration {
	if len(ivs) == 0 {
		return 0
	}
	sorted := make([]interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	var total time.Duration
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if !iv.start.After(cur.end) {
			if iv.end.After(cur.end) {
				cur.end = iv.end
			}
			continue
		}
		total += cur.end.Sub(cur.start)
		cur = iv
	}
	total += cur.end.Sub(cur.start)
	return total
}
