package workoutlog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bkralj/liftlog/internal/workoutlog"
)

func TestCalcStats(t *testing.T) {
	records := []workoutlog.WorkoutRecord{
		{Client: "Alice", Exercise: "Squat", Sets: 3, Reps: 10, Weight: 60},
		{Client: "Bob", Exercise: "Bench Press", Sets: 4, Reps: 8, Weight: 50},
	}

	stats := workoutlog.CalcStats(records)
	assert.Equal(t, 2, stats.RecordCount)
	assert.Equal(t, 7, stats.TotalSets)
	assert.Equal(t, 18, stats.TotalReps)
	// (3*10*60) + (4*8*50) = 1800 + 1600
	assert.Equal(t, float64(3400), stats.TotalVolume)
}

func TestCalcStats_Empty(t *testing.T) {
	stats := workoutlog.CalcStats(nil)
	assert.Equal(t, 0, stats.RecordCount)
	assert.Equal(t, 0, stats.TotalSets)
	assert.Equal(t, 0, stats.TotalReps)
	assert.Equal(t, float64(0), stats.TotalVolume)
}

func TestGroupByClient_FirstOccurrenceOrder(t *testing.T) {
	records := []workoutlog.WorkoutRecord{
		{ID: 1, Client: "Alice", Exercise: "Squat", Sets: 3, Reps: 10, Weight: 60},
		{ID: 2, Client: "Bob", Exercise: "Deadlift", Sets: 2, Reps: 5, Weight: 100},
		{ID: 3, Client: "Alice", Exercise: "Bench Press", Sets: 4, Reps: 8, Weight: 40},
	}

	groups := workoutlog.GroupByClient(records)
	require.Len(t, groups, 2)

	assert.Equal(t, "Alice", groups[0].Client)
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, 1, groups[0].Records[0].ID)
	assert.Equal(t, 3, groups[0].Records[1].ID)
	assert.Equal(t, 7, groups[0].Stats.TotalSets)
	assert.Equal(t, 18, groups[0].Stats.TotalReps)

	assert.Equal(t, "Bob", groups[1].Client)
	require.Len(t, groups[1].Records, 1)
	assert.Equal(t, 2, groups[1].Records[0].ID)
}

func TestGroupByClient_EmptyClientName(t *testing.T) {
	records := []workoutlog.WorkoutRecord{
		{ID: 1, Client: "", Exercise: "Squat", Sets: 3, Reps: 10, Weight: 20},
		{ID: 2, Client: "Alice", Exercise: "Squat", Sets: 3, Reps: 10, Weight: 60},
		{ID: 3, Client: "", Exercise: "Curl", Sets: 3, Reps: 12, Weight: 10},
	}

	groups := workoutlog.GroupByClient(records)
	require.Len(t, groups, 2)
	assert.Equal(t, "", groups[0].Client)
	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, "Alice", groups[1].Client)
}

func TestGroupByClient_Empty(t *testing.T) {
	assert.Empty(t, workoutlog.GroupByClient(nil))
}

func TestAnalyzer_OverallStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	analyzer := workoutlog.NewAnalyzer(repoMock)

	records := []workoutlog.WorkoutRecord{
		{ID: 1, Client: "Alice", Exercise: "Squat", Sets: 3, Reps: 10, Weight: 60},
		{ID: 2, Client: "Bob", Exercise: "Bench Press", Sets: 4, Reps: 8, Weight: 50},
	}
	repoMock.EXPECT().
		ListAll(gomock.Any(), workoutlog.ListParams{}).
		Return(records, nil)

	stats, err := analyzer.OverallStats(context.Background(), workoutlog.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, float64(3400), stats.Stats.TotalVolume)
	require.Len(t, stats.PerClient, 2)
	assert.Equal(t, "Alice", stats.PerClient[0].Client)
	assert.Equal(t, "Bob", stats.PerClient[1].Client)
}

func TestAnalyzer_OverallStats_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	analyzer := workoutlog.NewAnalyzer(repoMock)

	repoMock.EXPECT().
		ListAll(gomock.Any(), workoutlog.ListParams{}).
		Return(nil, errors.New("disk on fire"))

	stats, err := analyzer.OverallStats(context.Background(), workoutlog.ListParams{})
	require.Error(t, err)
	assert.Nil(t, stats)
}
