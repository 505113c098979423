package workoutlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bkralj/liftlog/internal/telemetry/metrics"
	"github.com/bkralj/liftlog/internal/telemetry/tracing"
	"github.com/bkralj/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workoutlog_test

type workoutsRepo interface {
	Add(ctx context.Context, record WorkoutRecord) (*WorkoutRecord, error)
	Get(ctx context.Context, id int) (*WorkoutRecord, error)
	ListAll(ctx context.Context, params ListParams) ([]WorkoutRecord, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, params ListParams) (int, error)
}

type AddRecordResponse struct {
	WorkoutRecord
	// CountToday is how many records this client logged for the same
	// exercise today, the just-added one included
	CountToday int `json:"countToday"`
}

type ListResponse struct {
	Records []WorkoutRecord `json:"records"`
	Total   int             `json:"total"`
}

type DeleteRecordResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           workoutsRepo
	analyzer       *Analyzer
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		analyzer:       NewAnalyzer(repo),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/workouts", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("workouts-stats")
	r.HandleFunc("/api/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/api/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record WorkoutRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("new workout record, unmarshal json params: %s", err)
		http.Error(w, "add workout record failed", http.StatusBadRequest)
		return
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if record.Date == "" {
		record.Date = record.CreatedAt.Format("2006-01-02")
	}

	addedRecord, err := handler.repo.Add(ctx, record)
	if err != nil {
		log.Errorf("failed to add workout record [%s] [%s]: %s", record.Client, record.Exercise, err)
		http.Error(w, "error, failed to add workout record", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsAdded.Inc()
	}

	todayMidnight := time.Now().Truncate(24 * time.Hour)
	tomorrowMidnight := todayMidnight.Add(24 * time.Hour)
	countToday, err := handler.repo.Count(ctx, ListParams{
		Client:   addedRecord.Client,
		Exercise: addedRecord.Exercise,
		From:     &todayMidnight,
		To:       &tomorrowMidnight,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to count records today [%s]: %s", addedRecord.Client, err)
		countToday = 0
	}

	addRecordResponse := AddRecordResponse{
		WorkoutRecord: *addedRecord,
		CountToday:    countToday,
	}

	addedRecordJson, err := json.Marshal(addRecordResponse)
	if err != nil {
		log.Errorf("failed to marshal added workout record: %s", err)
		http.Error(w, "error, failed to add workout record", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout record added: %s", addedRecordJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedRecordJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	record, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		http.Error(w, "workout record not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get workout record %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal workout record: %s", err)
		http.Error(w, "failed to marshal workout record", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list workout records error: %s", err)
		http.Error(w, "failed to get workout records", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Records: records,
		Total:   len(records),
	})
	if err != nil {
		log.Errorf("marshal workout records error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.stats")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := handler.analyzer.OverallStats(ctx, params)
	if err != nil {
		log.Errorf("failed to get workout stats: %s", err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal workout stats: %s", err)
		http.Error(w, "failed to marshal workout stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			log.Debugf("workout record %d not found", id)
			http.Error(w, "workout record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout record %d: %s", id, err)
		http.Error(w, "workout record not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteRecordResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func listParamsFromQuery(r *http.Request) (ListParams, error) {
	params := ListParams{
		Client:   r.URL.Query().Get("client"),
		Exercise: r.URL.Query().Get("exercise"),
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return ListParams{}, errors.New("failed to parse <from> param")
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return ListParams{}, errors.New("failed to parse <to> param")
		}
		params.To = &to
	}

	return params, nil
}
