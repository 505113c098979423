package dashboard

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bkralj/liftlog/internal/telemetry/tracing"
	"github.com/bkralj/liftlog/internal/workoutlog"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// workoutsStore is the narrow storage surface the dashboard needs:
// ensure schema, insert, read all.
type workoutsStore interface {
	EnsureSchema(ctx context.Context) error
	Add(ctx context.Context, record workoutlog.WorkoutRecord) (*workoutlog.WorkoutRecord, error)
	ListAll(ctx context.Context, params workoutlog.ListParams) ([]workoutlog.WorkoutRecord, error)
}

// exerciseCatalog feeds the exercise field suggestions. Optional, the
// dashboard renders fine without one.
type exerciseCatalog interface {
	Titles(ctx context.Context) ([]string, error)
}

type Handler struct {
	store     workoutsStore
	catalog   exerciseCatalog
	templates *template.Template
}

func NewHandler(store workoutsStore, catalog exerciseCatalog) *Handler {
	return &Handler{
		store:   store,
		catalog: catalog,
		templates: template.Must(
			template.ParseFS(templatesFS, "templates/*.gohtml"),
		),
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/", handler.HandleIndex).Methods("GET").Name("dashboard")
	r.HandleFunc("/log", handler.HandleLogWorkout).Methods("POST").Name("log-workout")
}

// formDefaults are the sidebar form prefills.
type formDefaults struct {
	Date   string
	Sets   int
	Reps   int
	Weight float64
}

type pageData struct {
	Logged          bool
	Defaults        formDefaults
	ExerciseOptions []string
	Records         []workoutlog.WorkoutRecord
	Stats           workoutlog.Stats
	PerClient       []workoutlog.ClientGroup
}

// HandleIndex runs one full render cycle: ensure schema, read everything,
// aggregate, render.
func (handler *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.index")
	defer span.End()

	if err := handler.store.EnsureSchema(ctx); err != nil {
		log.Errorf("dashboard: ensure schema: %s", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	records, err := handler.store.ListAll(ctx, workoutlog.ListParams{})
	if err != nil {
		log.Errorf("dashboard: list workout records: %s", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	var exerciseOptions []string
	if handler.catalog != nil {
		exerciseOptions, err = handler.catalog.Titles(ctx)
		if err != nil {
			// suggestions only, the render goes on without them
			log.Warnf("dashboard: catalog titles: %s", err)
			exerciseOptions = nil
		}
	}

	data := pageData{
		Logged: r.URL.Query().Get("logged") == "1",
		Defaults: formDefaults{
			Date:   time.Now().Format("2006-01-02"),
			Sets:   3,
			Reps:   10,
			Weight: 20.0,
		},
		ExerciseOptions: exerciseOptions,
		Records:         records,
		Stats:           workoutlog.CalcStats(records),
		PerClient:       workoutlog.GroupByClient(records),
	}

	if err := handler.templates.ExecuteTemplate(w, "dashboard.gohtml", data); err != nil {
		log.Errorf("dashboard: execute template: %s", err)
	}
}

// HandleLogWorkout handles the sidebar form submit. Numeric fields are
// parsed into typed values before anything reaches storage; a parse
// failure is rejected here. Lower bounds are form hints only, any parsed
// integer goes through.
func (handler *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.logWorkout")
	defer span.End()

	if err := handler.store.EnsureSchema(ctx); err != nil {
		log.Errorf("dashboard: ensure schema: %s", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	record, err := recordFromForm(r)
	if err != nil {
		log.Tracef("dashboard: log workout form: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.store.Add(ctx, *record)
	if err != nil {
		log.Errorf("dashboard: add workout record: %s", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	log.Debugf("dashboard: workout record %d logged for [%s]", added.ID, added.Client)
	http.Redirect(w, r, "/?logged=1", http.StatusSeeOther)
}

func recordFromForm(r *http.Request) (*workoutlog.WorkoutRecord, error) {
	record := workoutlog.WorkoutRecord{
		Client:    r.PostFormValue("client"),
		Date:      r.PostFormValue("date"),
		Exercise:  r.PostFormValue("exercise"),
		CreatedAt: time.Now(),
	}
	if record.Date == "" {
		record.Date = record.CreatedAt.Format("2006-01-02")
	}

	var err error
	if record.Sets, err = strconv.Atoi(r.PostFormValue("sets")); err != nil {
		return nil, errParseField("sets")
	}
	if record.Reps, err = strconv.Atoi(r.PostFormValue("reps")); err != nil {
		return nil, errParseField("reps")
	}
	if record.Weight, err = strconv.ParseFloat(r.PostFormValue("weight"), 64); err != nil {
		return nil, errParseField("weight")
	}

	return &record, nil
}

type errParseField string

func (e errParseField) Error() string {
	return "parse form error, parameter <" + string(e) + ">"
}
