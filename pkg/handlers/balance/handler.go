package balance

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fit-tools/energy-atlas/pkg/adapters"
	"github.com/fit-tools/energy-atlas/pkg/models/api"
	"github.com/fit-tools/energy-atlas/pkg/services/balance"
	"github.com/fit-tools/energy-atlas/pkg/services/reconcile"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	dateLayout      = "2006-01-02"
	defaultInterval = 7 // days
)

type Handler struct {
	explorer balance.Explorer
}

func NewHandler(explorer balance.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.explorer.ListProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list profiles")
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}

	response := []api.Profile{}
	for _, p := range profiles {
		response = append(response, api.Profile{Name: p.Name})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetRangeReport(w http.ResponseWriter, r *http.Request) {
	report, profile, ok := h.computeReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, zerolog.Ctx(r.Context()), adapters.MapRangeReportDomainToApi(profile, report))
}

func (h *Handler) GetDays(w http.ResponseWriter, r *http.Request) {
	report, _, ok := h.computeReport(w, r)
	if !ok {
		return
	}
	response := []api.DayBalance{}
	for _, day := range report.Days {
		response = append(response, adapters.MapReconciledDayDomainToApi(day))
	}
	writeJSON(w, zerolog.Ctx(r.Context()), response)
}

func (h *Handler) computeReport(w http.ResponseWriter, r *http.Request) (*balance.Report, string, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")

	now := time.Now()
	from, err := parseDateParam(r, "from", now.AddDate(0, 0, -defaultInterval))
	if err != nil {
		http.Error(w, "invalid 'from' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return nil, profile, false
	}
	to, err := parseDateParam(r, "to", now)
	if err != nil {
		http.Error(w, "invalid 'to' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return nil, profile, false
	}

	ctrl, err := h.explorer.GetController(ctx, profile)
	if err != nil {
		logger.Warn().Err(err).Str("profile", profile).Msg("profile not found")
		http.Error(w, "profile not found", http.StatusNotFound)
		return nil, profile, false
	}

	report, err := ctrl.GetRangeReport(ctx, from, to)
	if err != nil {
		var unreconciled *reconcile.UnreconciledRangeError
		if errors.As(err, &unreconciled) {
			logger.Warn().
				Strs("dates", unreconciled.Dates).
				Str("profile", profile).
				Msg("range has unreconcilable days")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			writeJSON(w, logger, api.UnreconciledError{
				Error:             unreconciled.Error(),
				UnreconciledDates: unreconciled.Dates,
			})
			return nil, profile, false
		}
		logger.Error().Err(err).Str("profile", profile).Msg("failed to compute range report")
		http.Error(w, "failed to compute range report", http.StatusInternalServerError)
		return nil, profile, false
	}
	return report, profile, true
}

func parseDateParam(r *http.Request, name string, defaultDate time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultDate, nil
	}
	return time.Parse(dateLayout, value)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
