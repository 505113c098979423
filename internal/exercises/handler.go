package exercises

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bkralj/liftlog/internal/telemetry/tracing"
	"github.com/bkralj/liftlog/pkg"
)

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct {
	catalog *Repo
}

func NewHandler(catalog *Repo) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
}

// HandleList serves the exercise catalog. A muscle filter wins over a goal
// filter; with neither, the strength selection is returned.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	var exs []Exercise
	var err error
	if muscle := r.URL.Query().Get("muscle"); muscle != "" {
		exs, err = handler.catalog.ListByMuscle(ctx, muscle, limit)
	} else {
		exs, err = handler.catalog.ListByGoal(ctx, r.URL.Query().Get("goal"), limit)
	}
	if err != nil {
		log.Errorf("list catalog exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Exercises: exs,
		Total:     len(exs),
	})
	if err != nil {
		log.Errorf("marshal catalog exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
