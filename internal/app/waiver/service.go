package waiver

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"fantasy-gm-service/internal/cache"
	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/logging"
	"fantasy-gm-service/internal/metrics"
	"fantasy-gm-service/internal/providers"
)

const (
	bucketWaiver = "waiver"

	// Scoring knobs carried over from seasons of tuning: a need match is worth
	// a streamer's nightly value, a hot pickup slightly more.
	needBonus  = 10.0
	trendBonus = 15.0

	hotThreshold  = 1.5
	coldThreshold = -0.5

	defaultMinMinutes = 22.0
	defaultLimit      = 20
	poolFetchSize     = 50
)

// Trend labels for ownership movement.
const (
	TrendHot    = "hot"
	TrendRising = "rising"
	TrendSteady = "steady"
	TrendCold   = "cold"
)

// Sort orders for the scan result.
const (
	SortByScore = "score"
	SortByFPPM  = "fppm"
	SortByTrend = "trend"
	SortByOwned = "owned"
)

// NeedsSource supplies the categories a league's matchup still has in play.
type NeedsSource interface {
	Needs(ctx context.Context, leagueName string) ([]string, error)
	League(name string) (providers.LeagueRef, bool)
}

// ScheduleSource is the slice of the schedule service the scan needs.
type ScheduleSource interface {
	Today(ctx context.Context, tz string) (domain.DaySlate, error)
	SOS(ctx context.Context) domain.SOSMap
}

// Config wires the waiver service.
type Config struct {
	Provider  providers.LeagueProvider
	Matchups  NeedsSource
	Schedule  ScheduleSource
	Cache     *cache.Store
	LeagueTTL time.Duration
	Logger    *slog.Logger
	Recorder  *metrics.Recorder
}

// Service scans the free agent pool for pickups worth a roster spot.
type Service struct {
	provider  providers.LeagueProvider
	matchups  NeedsSource
	schedule  ScheduleSource
	cache     *cache.Store
	leagueTTL time.Duration
	logger    *slog.Logger
	rec       *metrics.Recorder
}

// New constructs the service.
func New(cfg Config) *Service {
	store := cfg.Cache
	if store == nil {
		store = cache.New()
	}
	return &Service{
		provider:  cfg.Provider,
		matchups:  cfg.Matchups,
		schedule:  cfg.Schedule,
		cache:     store,
		leagueTTL: cfg.LeagueTTL,
		logger:    cfg.Logger,
		rec:       cfg.Recorder,
	}
}

// Options tune one scan.
type Options struct {
	MinMinutes       float64
	PlayingTodayOnly bool
	SortBy           string
	Limit            int
}

func (o Options) normalized() Options {
	if o.MinMinutes <= 0 {
		o.MinMinutes = defaultMinMinutes
	}
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if o.SortBy == "" {
		o.SortBy = SortByScore
	}
	return o
}

// Candidate is one scored free agent.
type Candidate struct {
	domain.FreeAgent
	Score       float64         `json:"score"`
	FPPM        float64         `json:"fppm"`
	Trend       string          `json:"trend"`
	PlaysToday  bool            `json:"playsToday"`
	Opponent    domain.TeamCode `json:"opponent,omitempty"`
	Difficulty  string          `json:"difficulty"`
	NeedsHelped []string        `json:"needsHelped,omitempty"`
}

// Scan scores the league's free agent pool. Players on waivers, ruled out, or
// below the minutes floor are skipped; the rest are ranked by the requested
// order.
func (s *Service) Scan(ctx context.Context, leagueName string, opts Options) ([]Candidate, error) {
	if s.matchups == nil {
		return nil, providers.ErrProviderUnavailable
	}
	ref, ok := s.matchups.League(leagueName)
	if !ok {
		return nil, providers.ErrLeagueNotFound
	}
	opts = opts.normalized()

	agents, err := s.fetchPool(ctx, ref)
	if err != nil {
		return nil, err
	}

	// Needs sharpen the scoring but their absence never blocks the scan.
	needs, err := s.matchups.Needs(ctx, leagueName)
	if err != nil {
		logging.Warn(s.logger, "matchup needs unavailable for scan", logging.FieldLeague, ref.Name, "error", err)
		needs = nil
	}

	slate := domain.DaySlate{}
	if s.schedule != nil {
		if today, err := s.schedule.Today(ctx, ""); err == nil {
			slate = today
		} else {
			logging.Warn(s.logger, "daily slate unavailable for scan", logging.FieldLeague, ref.Name, "error", err)
		}
	}
	var sos domain.SOSMap
	if s.schedule != nil {
		sos = s.schedule.SOS(ctx)
	}

	candidates := make([]Candidate, 0, len(agents))
	for _, agent := range agents {
		if agent.OnWaivers || agent.InjuryStatus == domain.StatusOut {
			continue
		}
		if agent.Averages.Minutes < opts.MinMinutes {
			continue
		}

		candidate := scoreCandidate(agent, ref.Categories, needs)
		candidate.PlaysToday = slate.Teams.Contains(agent.ProTeam)
		if candidate.PlaysToday {
			candidate.Opponent = slate.Opponent(agent.ProTeam)
		}
		candidate.Difficulty = sos.DifficultyFor(string(candidate.Opponent))

		if opts.PlayingTodayOnly && !candidate.PlaysToday {
			continue
		}
		candidates = append(candidates, candidate)
	}

	sortCandidates(candidates, opts.SortBy)
	if len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}
	return candidates, nil
}

func (s *Service) fetchPool(ctx context.Context, ref providers.LeagueRef) ([]domain.FreeAgent, error) {
	key := "league:freeagents:" + ref.Name

	if value, ok := s.cache.Get(key); ok {
		s.rec.RecordCacheLookup(bucketWaiver, true)
		return value.([]domain.FreeAgent), nil
	}
	s.rec.RecordCacheLookup(bucketWaiver, false)

	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	agents, err := s.provider.FetchFreeAgents(ctx, ref, poolFetchSize)
	if err != nil {
		if stale, ok, _ := s.cache.GetStale(key); ok {
			logging.Warn(s.logger, "serving stale free agent pool", logging.FieldLeague, ref.Name, "error", err)
			return stale.([]domain.FreeAgent), nil
		}
		return nil, err
	}

	s.cache.Set(key, agents, s.leagueTTL)
	return agents, nil
}

func scoreCandidate(agent domain.FreeAgent, categories, needs []string) Candidate {
	score := domain.FantasyScore(agent.Averages, categories)

	var helped []string
	for _, need := range needs {
		if helpsCategory(agent.Averages, need) {
			helped = append(helped, need)
			score += needBonus
		}
	}

	trend := trendLabel(agent.PercentChange)
	if trend == TrendHot {
		score += trendBonus
	}

	fppm := 0.0
	if agent.Averages.Minutes > 0 {
		fppm = domain.FantasyScore(agent.Averages, categories) / agent.Averages.Minutes
	}

	return Candidate{
		FreeAgent:   agent,
		Score:       score,
		FPPM:        fppm,
		Trend:       trend,
		NeedsHelped: helped,
	}
}

// helpsCategory decides whether a player's averages move the needle in a
// category, using rough "useful contributor" floors.
func helpsCategory(line domain.StatLine, category string) bool {
	switch category {
	case domain.CatPoints:
		return line.Points >= 15
	case domain.CatRebounds:
		return line.Rebounds >= 7
	case domain.CatAssists:
		return line.Assists >= 5
	case domain.CatSteals:
		return line.Steals >= 1
	case domain.CatBlocks:
		return line.Blocks >= 1
	case domain.CatThrees:
		return line.ThreesMade >= 1.5
	case domain.CatDoubleDoubles:
		return line.DoubleDoubles >= 0.3
	case domain.CatFieldGoalPct:
		return line.FieldGoalPct() >= 0.50 && line.FieldGoalsAttempted >= 8
	case domain.CatFreeThrowPct:
		return line.FreeThrowPct() >= 0.85 && line.FreeThrowsAttempted >= 3
	default:
		// Turnovers cannot be helped by adding a player.
		return false
	}
}

func trendLabel(percentChange float64) string {
	switch {
	case percentChange > hotThreshold:
		return TrendHot
	case percentChange > 0.5:
		return TrendRising
	case percentChange < coldThreshold:
		return TrendCold
	default:
		return TrendSteady
	}
}

func sortCandidates(candidates []Candidate, sortBy string) {
	less := func(i, j int) bool { return candidates[i].Score > candidates[j].Score }
	switch sortBy {
	case SortByFPPM:
		less = func(i, j int) bool { return candidates[i].FPPM > candidates[j].FPPM }
	case SortByTrend:
		less = func(i, j int) bool { return candidates[i].PercentChange > candidates[j].PercentChange }
	case SortByOwned:
		less = func(i, j int) bool { return candidates[i].PercentOwned > candidates[j].PercentOwned }
	}
	sort.SliceStable(candidates, less)
}
