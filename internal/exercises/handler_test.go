package exercises_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkralj/liftlog/internal/db"
	"github.com/bkralj/liftlog/internal/exercises"
)

func testHandlerSetup(t *testing.T) *exercises.Handler {
	t.Helper()

	sqlDB, err := db.Open(context.Background(), db.OpenParams{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqlDB.Close())
	})

	repo := exercises.NewRepo(sqlDB)
	require.NoError(t, repo.EnsureSeeded(context.Background()))
	return exercises.NewHandler(repo)
}

func TestHandler_HandleList_DefaultsToStrength(t *testing.T) {
	h := testHandlerSetup(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/api/exercises", nil)
	require.NoError(t, err)

	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResponse exercises.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResponse))
	require.NotZero(t, listResponse.Total)
	for _, ex := range listResponse.Exercises {
		assert.Contains(t, []string{"Strength", "Powerlifting"}, ex.Type)
	}
}

func TestHandler_HandleList_ByGoal(t *testing.T) {
	h := testHandlerSetup(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/api/exercises?goal=flexibility", nil)
	require.NoError(t, err)

	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResponse exercises.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResponse))
	require.NotZero(t, listResponse.Total)
	for _, ex := range listResponse.Exercises {
		assert.Equal(t, "Stretching", ex.Type)
	}
}

func TestHandler_HandleList_MuscleWinsOverGoal(t *testing.T) {
	h := testHandlerSetup(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/api/exercises?goal=flexibility&muscle=Chest", nil)
	require.NoError(t, err)

	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResponse exercises.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResponse))
	require.NotZero(t, listResponse.Total)
	for _, ex := range listResponse.Exercises {
		assert.Contains(t, ex.BodyPart, "Chest")
	}
}

func TestHandler_HandleList_WithLimit(t *testing.T) {
	h := testHandlerSetup(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/api/exercises?goal=strength&limit=1", nil)
	require.NoError(t, err)

	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResponse exercises.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResponse))
	assert.Equal(t, 1, listResponse.Total)
	require.Len(t, listResponse.Exercises, 1)
	assert.NotEmpty(t, listResponse.Exercises[0].Instructions)
}

func TestHandler_HandleList_BadLimit(t *testing.T) {
	h := testHandlerSetup(t)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/api/exercises?limit=lots", nil)
	require.NoError(t, err)

	h.HandleList(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
