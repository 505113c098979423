package workoutlog

import (
	"context"

	"github.com/bkralj/liftlog/internal/telemetry/tracing"
)

// Stats are the whole-table aggregates shown on the dashboard.
type Stats struct {
	RecordCount int     `json:"recordCount"`
	TotalSets   int     `json:"totalSets"`
	TotalReps   int     `json:"totalReps"`
	TotalVolume float64 `json:"totalVolume"`
}

// ClientGroup holds one client's records plus that client's own aggregates.
type ClientGroup struct {
	Client  string          `json:"client"`
	Stats   Stats           `json:"stats"`
	Records []WorkoutRecord `json:"records"`
}

// CalcStats computes the aggregates over the given records:
// total sets, total reps, and total volume (sum of sets*reps*weight per row).
func CalcStats(records []WorkoutRecord) Stats {
	stats := Stats{RecordCount: len(records)}
	for _, rec := range records {
		stats.TotalSets += rec.Sets
		stats.TotalReps += rec.Reps
		stats.TotalVolume += rec.Volume()
	}
	return stats
}

// GroupByClient splits records per distinct client value, clients ordered
// by first occurrence, each group keeping its records in the input order.
// An empty client name is a group like any other.
func GroupByClient(records []WorkoutRecord) []ClientGroup {
	client2records := make(map[string][]WorkoutRecord)
	var order []string
	for _, rec := range records {
		if _, ok := client2records[rec.Client]; !ok {
			order = append(order, rec.Client)
		}
		client2records[rec.Client] = append(client2records[rec.Client], rec)
	}

	groups := make([]ClientGroup, 0, len(order))
	for _, client := range order {
		clientRecords := client2records[client]
		groups = append(groups, ClientGroup{
			Client:  client,
			Stats:   CalcStats(clientRecords),
			Records: clientRecords,
		})
	}
	return groups
}

type Analyzer struct {
	repo workoutsRepo
}

func NewAnalyzer(repo workoutsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

type StatsResponse struct {
	Stats     Stats         `json:"stats"`
	PerClient []ClientGroup `json:"perClient"`
}

// OverallStats reads the matching records and computes the whole-table
// plus per-client aggregates over them.
func (a *Analyzer) OverallStats(
	ctx context.Context,
	params ListParams,
) (_ *StatsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workoutlog.overallStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.repo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		Stats:     CalcStats(records),
		PerClient: GroupByClient(records),
	}, nil
}
