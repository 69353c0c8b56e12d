package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appmatchup "fantasy-gm-service/internal/app/matchup"
	appschedule "fantasy-gm-service/internal/app/schedule"
	appwaiver "fantasy-gm-service/internal/app/waiver"
	"fantasy-gm-service/internal/cache"
	"fantasy-gm-service/internal/config"
	httpserver "fantasy-gm-service/internal/http"
	"fantasy-gm-service/internal/http/handlers"
	"fantasy-gm-service/internal/http/middleware"
	"fantasy-gm-service/internal/logging"
	"fantasy-gm-service/internal/metrics"
	"fantasy-gm-service/internal/providers"
	"fantasy-gm-service/internal/providers/espn"
	"fantasy-gm-service/internal/providers/fantasy"
	"fantasy-gm-service/internal/providers/fixture"
)

var metricsSetup = metrics.Setup

// upstreams groups the three provider roles the services consume.
type upstreams struct {
	schedules providers.ScheduleProvider
	standings providers.StandingsProvider
	leagues   providers.LeagueProvider
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *cache.Store
	scheduleSvc   *appschedule.Service
	matchupSvc    *appmatchup.Service
	waiverSvc     *appwaiver.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithUpstreams(cfg, logger, nil)
}

func newServerWithUpstreams(cfg config.Config, logger *slog.Logger, ups *upstreams) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if ups == nil {
		ups = buildUpstreams(cfg, logger, recorder)
	}

	store := cache.New()
	scheduleSvc := appschedule.New(appschedule.Config{
		Schedules: ups.schedules,
		Standings: ups.standings,
		Cache:     store,
		WeeklyTTL: time.Duration(cfg.Cache.Weekly),
		DailyTTL:  time.Duration(cfg.Cache.Daily),
		SOSTTL:    time.Duration(cfg.Cache.SOS),
		Timezone:  cfg.Timezone,
		Logger:    logger,
		Recorder:  recorder,
	})
	matchupSvc := appmatchup.New(appmatchup.Config{
		Leagues:    leagueRefs(cfg.Leagues),
		Provider:   ups.leagues,
		Schedule:   scheduleSvc,
		Cache:      store,
		LeagueTTL:  time.Duration(cfg.Cache.League),
		SlotLimit:  cfg.SlotLimit,
		ExcludeOut: cfg.ExcludeOut,
		Logger:     logger,
		Recorder:   recorder,
	})
	waiverSvc := appwaiver.New(appwaiver.Config{
		Provider:  ups.leagues,
		Matchups:  matchupSvc,
		Schedule:  scheduleSvc,
		Cache:     store,
		LeagueTTL: time.Duration(cfg.Cache.League),
		Logger:    logger,
		Recorder:  recorder,
	})

	httpSrv := buildHTTPServer(cfg, scheduleSvc, matchupSvc, waiverSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		scheduleSvc:   scheduleSvc,
		matchupSvc:    matchupSvc,
		waiverSvc:     waiverSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// buildUpstreams assembles the provider stack: real ESPN clients wrapped in
// retry (and, for the fantasy API, call spacing), or the fixture provider for
// credential-free local runs.
func buildUpstreams(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *upstreams {
	if cfg.Provider == "fixture" {
		fix := fixture.New()
		return &upstreams{schedules: fix, standings: fix, leagues: fix}
	}

	policy := providers.RetryPolicy{
		MaxAttempts:  cfg.Retry.MaxAttempts,
		InitialDelay: time.Duration(cfg.Retry.InitialBackoff),
		MaxDelay:     time.Duration(cfg.Retry.MaxBackoff),
	}
	httpClient := &http.Client{Timeout: time.Duration(cfg.ESPN.Timeout)}

	siteClient := espn.NewClient(espn.Config{
		BaseURL:    cfg.ESPN.ScoreboardBaseURL,
		HTTPClient: httpClient,
		Timezone:   cfg.Timezone,
	})
	fantasyClient := fantasy.NewClient(fantasy.Config{
		BaseURL:    cfg.ESPN.FantasyBaseURL,
		HTTPClient: httpClient,
	})

	spaced := providers.NewRateLimitedLeagueProvider(fantasyClient, time.Duration(cfg.ESPN.FantasyMinInterval), logger)

	return &upstreams{
		schedules: providers.NewRetryingScheduleProvider(siteClient, "espn-scoreboard", policy, logger, recorder),
		standings: providers.NewRetryingStandingsProvider(siteClient, "espn-standings", policy, logger, recorder),
		leagues:   providers.NewRetryingLeagueProvider(spaced, "espn-fantasy", policy, logger, recorder),
	}
}

func leagueRefs(leagues []config.LeagueConfig) []providers.LeagueRef {
	refs := make([]providers.LeagueRef, 0, len(leagues))
	for _, l := range leagues {
		refs = append(refs, providers.LeagueRef{
			Name:       l.Name,
			ID:         l.ID,
			Year:       l.Year,
			SWID:       l.SWID,
			EspnS2:     l.EspnS2,
			Categories: l.Categories,
			MyTeamName: l.MyTeamName,
		})
	}
	return refs
}

func buildHTTPServer(cfg config.Config, scheduleSvc *appschedule.Service, matchupSvc *appmatchup.Service, waiverSvc *appwaiver.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(scheduleSvc, matchupSvc, waiverSvc, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
