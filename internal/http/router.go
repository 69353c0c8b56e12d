package http

import (
	nethttp "net/http"

	"fantasy-gm-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/schedule/week", handler.ScheduleWeek)
	mux.HandleFunc("/schedule/today", handler.ScheduleToday)
	mux.HandleFunc("/standings/sos", handler.StandingsSOS)
	mux.HandleFunc("/leagues", handler.Leagues)
	mux.HandleFunc("/leagues/", handler.LeagueSubresource)
	return mux
}
