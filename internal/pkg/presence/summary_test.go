package presence

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

type step struct {
	station string
	ms      int
}

func toggleAll(t *testing.T, b *models.Beacon, c Classifier, steps ...step) {
	t.Helper()
	for _, s := range steps {
		_, err := ToggleRange(b, s.station, at(s.ms), c)
		require.NoError(t, err)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(newTestBeacon(), at(0), nil)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Break)
	assert.Zero(t, s.Work)
	assert.Nil(t, s.FirstStart)
	assert.Nil(t, s.LastEnd)
	assert.Empty(t, s.PerStation)
	assert.Empty(t, s.ActiveStations)
}

func TestSummarize_OverlapCountsOnce(t *testing.T) {
	b := newTestBeacon()
	toggleAll(t, b, nil, step{"A", 0}, step{"B", 500}, step{"A", 800}, step{"B", 1200})

	s := Summarize(b, at(5000), nil)
	assert.Equal(t, 1200*time.Millisecond, s.Total)
	assert.Equal(t, 1200*time.Millisecond, s.Work)
	assert.Zero(t, s.Break)
	assert.Equal(t, 800*time.Millisecond, s.PerStation["A"])
	assert.Equal(t, 700*time.Millisecond, s.PerStation["B"])
	assert.Equal(t, at(0), *s.FirstStart)
	assert.Equal(t, at(1200), *s.LastEnd)
}

func TestSummarize_BreakAndWork(t *testing.T) {
	c := NewBreakStations("canteen", "container")
	b := newTestBeacon()
	toggleAll(t, b, c,
		step{"crane", 0},
		step{"canteen", 1000},
		step{"container", 1500},
		step{"canteen", 2000},
		step{"container", 2500},
		step{"crane", 4000},
	)

	s := Summarize(b, at(4000), c)
	assert.Equal(t, 4*time.Second, s.Total)
	// canteen 1000-2000 and container 1500-2500 overlap
	assert.Equal(t, 1500*time.Millisecond, s.Break)
	assert.Equal(t, 2500*time.Millisecond, s.Work)
	assert.Equal(t, s.Total, s.Work+s.Break)
}

func TestSummarize_LiveVisits(t *testing.T) {
	c := NewBreakStations("canteen")
	b := newTestBeacon()
	toggleAll(t, b, c, step{"crane", 0}, step{"crane", 1000}, step{"canteen", 2000})

	s := Summarize(b, at(2600), c)
	assert.Equal(t, 1600*time.Millisecond, s.Total)
	assert.Equal(t, 600*time.Millisecond, s.Break)
	assert.Equal(t, time.Second, s.Work)
	assert.Equal(t, map[string]time.Duration{"canteen": 600 * time.Millisecond}, s.ActiveStations)
	assert.Equal(t, 600*time.Millisecond, s.PerStation["canteen"])
	assert.Equal(t, at(2600), *s.LastEnd)

	// the snapshot does not change the beacon
	assert.Len(t, b.Visits, 1)
	assert.Contains(t, b.ActiveStations, "canteen")
}

func TestSummarize_Idempotent(t *testing.T) {
	c := NewBreakStations("canteen")
	b := newTestBeacon()
	toggleAll(t, b, c, step{"crane", 0}, step{"canteen", 300}, step{"crane", 900})

	first := Summarize(b, at(1500), c)
	second := Summarize(b, at(1500), c)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Total, first.Work+first.Break)
}

func TestSummarize_HistoryWithoutAggregateClock(t *testing.T) {
	end := at(1000)
	b := newTestBeacon()
	b.Visits = []models.Visit{
		{StationID: "canteen", StartedAt: at(0), EndedAt: &end},
	}

	s := Summarize(b, at(2000), NewBreakStations("canteen"))
	assert.Equal(t, time.Second, s.Total)
	assert.Equal(t, time.Second, s.Break)
	assert.Zero(t, s.Work)
}

func TestSummary_MarshalJSON(t *testing.T) {
	b := newTestBeacon()
	toggleAll(t, b, nil, step{"A", 0}, step{"A", 1500})

	raw, err := json.Marshal(Summarize(b, at(1500), nil))
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, float64(1500), out["totalMs"])
	assert.Equal(t, float64(1500), out["workMs"])
	assert.Equal(t, float64(0), out["breakMs"])
	assert.Equal(t, map[string]interface{}{"A": float64(1500)}, out["perStationMs"])
}
