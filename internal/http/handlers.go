package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nalin-pixel/selfmastery-api/internal/docstore"
	"github.com/nalin-pixel/selfmastery-api/internal/models"
	"github.com/nalin-pixel/selfmastery-api/internal/schema"

	"go.uber.org/zap"
)

const (
	maxBodyBytes    = 1 << 20
	serviceName     = "Self-Mastery API"
	maxErrorMessage = 80
)

// recordRoute maps a public path to the record kind it stores. The kind
// doubles as the collection name; /journal and the money/fitness paths
// differ from their kinds.
type recordRoute struct {
	Path string
	Kind string
}

var recordRoutes = []recordRoute{
	{Path: "/profile", Kind: schema.KindProfile},
	{Path: "/preferences", Kind: schema.KindPreferences},
	{Path: "/habit", Kind: schema.KindHabit},
	{Path: "/routine", Kind: schema.KindRoutine},
	{Path: "/task", Kind: schema.KindTask},
	{Path: "/journal", Kind: schema.KindJournalEntry},
	{Path: "/mood", Kind: schema.KindMood},
	{Path: "/money", Kind: schema.KindMoneyRecord},
	{Path: "/savings-goal", Kind: schema.KindSavingsGoal},
	{Path: "/fitness", Kind: schema.KindFitnessMetric},
}

type entityResponse struct {
	ID string `json:"id"`
}

func (a *API) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "name": serviceName})
}

func (a *API) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Schemas.DescribeAll())
}

func (a *API) handleChallenges(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.PresetChallenges)
}

func (a *API) handleCreate(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if !decodeJSON(w, r, &payload) {
			return
		}
		id, err := a.Service.CreateRecord(r.Context(), kind, payload)
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entityResponse{ID: id})
	}
}

func (a *API) handleList(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id is required")
			return
		}
		docs, err := a.Service.ListRecords(r.Context(), kind, userID)
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func (a *API) handleCoachPlan(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id is required")
		return
	}
	mood := r.URL.Query().Get("mood")
	id, err := a.Service.GeneratePlan(r.Context(), userID, mood)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entityResponse{ID: id})
}

func (a *API) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Service.Diagnose(r.Context(), a.DatabaseURLSet, a.DatabaseNameSet))
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, docstore.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "STORAGE_NOT_CONFIGURED", "Storage is not configured")
	default:
		a.Log.Error("storage failure", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", truncate(err.Error(), maxErrorMessage))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid payload")
		return false
	}
	return true
}
