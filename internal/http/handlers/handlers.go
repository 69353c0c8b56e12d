package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"fantasy-gm-service/internal/app/matchup"
	"fantasy-gm-service/internal/app/waiver"
	"fantasy-gm-service/internal/cache"
	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/providers"
)

// ScheduleService is the slice of the schedule service the handlers need.
type ScheduleService interface {
	Week(ctx context.Context) (domain.DaySchedule, error)
	Today(ctx context.Context, tz string) (domain.DaySlate, error)
	SOS(ctx context.Context) domain.SOSMap
	Ready() bool
	WeekFreshness() cache.Status
}

// MatchupService analyzes head-to-head matchups.
type MatchupService interface {
	LeagueNames() []string
	Analyze(ctx context.Context, leagueName string) (*matchup.Analysis, error)
}

// WaiverService scans the free agent pool.
type WaiverService interface {
	Scan(ctx context.Context, leagueName string, opts waiver.Options) ([]waiver.Candidate, error)
}

// Handler wires HTTP routes to the app services.
type Handler struct {
	schedule ScheduleService
	matchups MatchupService
	waivers  WaiverService
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(schedule ScheduleService, matchups MatchupService, waivers WaiverService, logger *slog.Logger) *Handler {
	return &Handler{
		schedule: schedule,
		matchups: matchups,
		waivers:  waivers,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.schedule == nil || !h.schedule.Ready() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ScheduleWeek returns the current fantasy week's per-day playing sets.
func (h *Handler) ScheduleWeek(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	week, err := h.schedule.Week(r.Context())
	if err != nil {
		logUpstreamFailure(r, h.logger, "weekly schedule", err)
		writeError(w, r, nethttp.StatusBadGateway, "schedule unavailable", h.logger)
		return
	}

	payload := struct {
		Days      domain.DaySchedule `json:"days"`
		Freshness cache.Status       `json:"freshness"`
	}{
		Days:      week,
		Freshness: h.schedule.WeekFreshness(),
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// ScheduleToday returns today's slate. An optional tz query parameter decides
// what "today" means.
func (h *Handler) ScheduleToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	slate, err := h.schedule.Today(r.Context(), r.URL.Query().Get("tz"))
	if err != nil {
		logUpstreamFailure(r, h.logger, "daily slate", err)
		writeError(w, r, nethttp.StatusBadGateway, "schedule unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, slate, h.logger)
}

// StandingsSOS returns the strength-of-schedule map. It always succeeds; the
// service degrades to a backup table internally.
func (h *Handler) StandingsSOS(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sos := h.schedule.SOS(r.Context())
	writeJSON(w, nethttp.StatusOK, map[string]domain.SOSMap{"winPct": sos}, h.logger)
}

// Leagues lists the configured leagues.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]string{"leagues": h.matchups.LeagueNames()}, h.logger)
}

// LeagueSubresource dispatches /leagues/{name}/matchup and
// /leagues/{name}/waivers.
func (h *Handler) LeagueSubresource(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	name, resource, ok := splitLeaguePath(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	switch resource {
	case "matchup":
		h.leagueMatchup(w, r, name)
	case "waivers":
		h.leagueWaivers(w, r, name)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) leagueMatchup(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	analysis, err := h.matchups.Analyze(r.Context(), name)
	if err != nil {
		h.writeLeagueError(w, r, name, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, analysis, h.logger)
}

func (h *Handler) leagueWaivers(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	opts, err := parseScanOptions(r.URL.Query())
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	candidates, err := h.waivers.Scan(r.Context(), name, opts)
	if err != nil {
		h.writeLeagueError(w, r, name, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]waiver.Candidate{"candidates": candidates}, h.logger)
}

func (h *Handler) writeLeagueError(w nethttp.ResponseWriter, r *nethttp.Request, name string, err error) {
	switch {
	case errors.Is(err, providers.ErrLeagueNotFound):
		writeError(w, r, nethttp.StatusNotFound, "league not found", h.logger)
	case errors.Is(err, providers.ErrNoMatchup):
		writeError(w, r, nethttp.StatusNotFound, "no current matchup", h.logger)
	default:
		logUpstreamFailure(r, h.logger, "league data", err)
		writeError(w, r, nethttp.StatusBadGateway, "league data unavailable", h.logger)
	}
}

func splitLeaguePath(path string) (name, resource string, ok bool) {
	rest := strings.TrimPrefix(path, "/leagues/")
	if rest == path || rest == "" {
		return "", "", false
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}
	name, err := url.PathUnescape(parts[0])
	if err != nil || name == "" {
		return "", "", false
	}
	return name, parts[1], true
}

func parseScanOptions(query url.Values) (waiver.Options, error) {
	opts := waiver.Options{
		SortBy: query.Get("sort"),
	}

	if raw := query.Get("minMinutes"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return waiver.Options{}, errors.New("invalid minMinutes")
		}
		opts.MinMinutes = v
	}
	if raw := query.Get("today"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return waiver.Options{}, errors.New("invalid today flag")
		}
		opts.PlayingTodayOnly = v
	}
	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return waiver.Options{}, errors.New("invalid limit")
		}
		opts.Limit = v
	}
	return opts, nil
}

func logUpstreamFailure(r *nethttp.Request, fallback *slog.Logger, what string, err error) {
	if logger := loggerFromContext(r, fallback); logger != nil {
		logger.Warn("upstream fetch failed", "what", what, "err", err)
	}
}
