package matchup

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"fantasy-gm-service/internal/cache"
	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/logging"
	"fantasy-gm-service/internal/metrics"
	"fantasy-gm-service/internal/providers"
)

const bucketLeague = "league"

// ScheduleSource is the slice of the schedule service the analyzer needs.
type ScheduleSource interface {
	Week(ctx context.Context) (domain.DaySchedule, error)
	Today(ctx context.Context, tz string) (domain.DaySlate, error)
	SOS(ctx context.Context) domain.SOSMap
	RemainingDays() int
}

// Config wires the matchup service.
type Config struct {
	Leagues    []providers.LeagueRef
	Provider   providers.LeagueProvider
	Schedule   ScheduleSource
	Cache      *cache.Store
	LeagueTTL  time.Duration
	SlotLimit  int
	ExcludeOut bool
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Service analyzes the user's current head-to-head matchup: category standing,
// the weekly games-played grid, and today's player-by-player face-off.
type Service struct {
	leagues    map[string]providers.LeagueRef
	names      []string
	provider   providers.LeagueProvider
	schedule   ScheduleSource
	cache      *cache.Store
	leagueTTL  time.Duration
	slotLimit  int
	excludeOut bool
	logger     *slog.Logger
	rec        *metrics.Recorder
}

// New constructs the service.
func New(cfg Config) *Service {
	store := cfg.Cache
	if store == nil {
		store = cache.New()
	}
	leagues := make(map[string]providers.LeagueRef, len(cfg.Leagues))
	names := make([]string, 0, len(cfg.Leagues))
	for _, ref := range cfg.Leagues {
		key := leagueKeyName(ref.Name)
		if _, exists := leagues[key]; exists {
			continue
		}
		leagues[key] = ref
		names = append(names, ref.Name)
	}
	sort.Strings(names)

	return &Service{
		leagues:    leagues,
		names:      names,
		provider:   cfg.Provider,
		schedule:   cfg.Schedule,
		cache:      store,
		leagueTTL:  cfg.LeagueTTL,
		slotLimit:  cfg.SlotLimit,
		excludeOut: cfg.ExcludeOut,
		logger:     cfg.Logger,
		rec:        cfg.Recorder,
	}
}

// LeagueNames lists configured leagues in sorted order.
func (s *Service) LeagueNames() []string {
	return append([]string{}, s.names...)
}

// League resolves a configured league by name (case-insensitive).
func (s *Service) League(name string) (providers.LeagueRef, bool) {
	ref, ok := s.leagues[leagueKeyName(name)]
	return ref, ok
}

// ActivityGrid holds the games-played comparison for the week.
type ActivityGrid struct {
	Mine        []domain.DayCount `json:"mine"`
	Theirs      []domain.DayCount `json:"theirs"`
	MineTotal   int               `json:"mineTotal"`
	TheirsTotal int               `json:"theirsTotal"`
}

// FaceOffEntry is one of the user's players in today's games.
type FaceOffEntry struct {
	Player     domain.RosterEntry `json:"player"`
	Opponent   domain.TeamCode    `json:"opponent"`
	Difficulty string             `json:"difficulty"`
	Score      float64            `json:"score"`
}

// Analysis is the full matchup picture for one league.
type Analysis struct {
	League        string            `json:"league"`
	Week          int               `json:"week"`
	MyTeam        string            `json:"myTeam"`
	OpponentTeam  string            `json:"opponentTeam"`
	RemainingDays int               `json:"remainingDays"`
	Comparison    domain.Comparison `json:"comparison"`
	Grid          ActivityGrid      `json:"grid"`
	FaceOff       []FaceOffEntry    `json:"faceOff"`
}

// Analyze produces the matchup analysis for a league.
func (s *Service) Analyze(ctx context.Context, leagueName string) (*Analysis, error) {
	ref, ok := s.League(leagueName)
	if !ok {
		return nil, providers.ErrLeagueNotFound
	}

	matchups, err := s.fetchMatchups(ctx, ref)
	if err != nil {
		return nil, err
	}

	mine, theirs, week, err := locateMatchup(matchups, ref.MyTeamName)
	if err != nil {
		return nil, err
	}

	remaining := s.schedule.RemainingDays()
	analysis := &Analysis{
		League:        ref.Name,
		Week:          week,
		MyTeam:        mine.Team.Name,
		OpponentTeam:  theirs.Team.Name,
		RemainingDays: remaining,
		Comparison:    domain.CompareCategories(mine.Totals, theirs.Totals, ref.Categories, remaining),
	}

	// The grid and face-off are garnish: schedule trouble degrades them to
	// empty rather than failing the analysis.
	if sched, err := s.schedule.Week(ctx); err == nil {
		analysis.Grid = buildGrid(mine.Team, theirs.Team, sched, s.slotLimit, s.excludeOut)
	} else {
		logging.Warn(s.logger, "weekly schedule unavailable for grid", logging.FieldLeague, ref.Name, "error", err)
	}

	if slate, err := s.schedule.Today(ctx, ""); err == nil {
		analysis.FaceOff = s.buildFaceOff(ctx, mine.Team, slate, ref.Categories)
	} else {
		logging.Warn(s.logger, "daily slate unavailable for face-off", logging.FieldLeague, ref.Name, "error", err)
	}

	return analysis, nil
}

// Needs returns the volatile losing categories for a league, for the waiver
// scan's scoring bonus.
func (s *Service) Needs(ctx context.Context, leagueName string) ([]string, error) {
	analysis, err := s.Analyze(ctx, leagueName)
	if err != nil {
		return nil, err
	}
	return analysis.Comparison.Needs, nil
}

func (s *Service) fetchMatchups(ctx context.Context, ref providers.LeagueRef) ([]domain.Matchup, error) {
	key := "league:matchups:" + leagueKeyName(ref.Name)

	if value, ok := s.cache.Get(key); ok {
		s.rec.RecordCacheLookup(bucketLeague, true)
		return value.([]domain.Matchup), nil
	}
	s.rec.RecordCacheLookup(bucketLeague, false)

	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	matchups, err := s.provider.FetchMatchups(ctx, ref)
	if err != nil {
		if stale, ok, _ := s.cache.GetStale(key); ok {
			logging.Warn(s.logger, "serving stale matchups", logging.FieldLeague, ref.Name, "error", err)
			return stale.([]domain.Matchup), nil
		}
		return nil, err
	}

	s.cache.Set(key, matchups, s.leagueTTL)
	return matchups, nil
}

// locateMatchup finds the matchup containing the user's team. With no
// configured team name the first matchup's home side is assumed to be the
// user's.
func locateMatchup(matchups []domain.Matchup, myTeamName string) (domain.MatchupSide, domain.MatchupSide, int, error) {
	if myTeamName == "" {
		if len(matchups) == 0 {
			return domain.MatchupSide{}, domain.MatchupSide{}, 0, providers.ErrNoMatchup
		}
		m := matchups[0]
		return m.Home, m.Away, m.Week, nil
	}

	needle := strings.ToLower(myTeamName)
	for _, m := range matchups {
		if strings.Contains(strings.ToLower(m.Home.Team.Name), needle) {
			return m.Home, m.Away, m.Week, nil
		}
		if strings.Contains(strings.ToLower(m.Away.Team.Name), needle) {
			return m.Away, m.Home, m.Week, nil
		}
	}
	return domain.MatchupSide{}, domain.MatchupSide{}, 0, providers.ErrNoMatchup
}

func buildGrid(mine, theirs domain.FantasyTeam, sched domain.DaySchedule, slotLimit int, excludeOut bool) ActivityGrid {
	myActive := domain.ActiveRoster(mine.Roster, excludeOut)
	theirActive := domain.ActiveRoster(theirs.Roster, excludeOut)

	myCounts := domain.CapCounts(domain.WeeklyActivity(myActive, sched), slotLimit)
	theirCounts := domain.CapCounts(domain.WeeklyActivity(theirActive, sched), slotLimit)

	return ActivityGrid{
		Mine:        myCounts,
		Theirs:      theirCounts,
		MineTotal:   domain.TotalCount(myCounts),
		TheirsTotal: domain.TotalCount(theirCounts),
	}
}

// buildFaceOff lists the user's playable players with a game today, strongest
// first, capped at the starting slot limit.
func (s *Service) buildFaceOff(ctx context.Context, team domain.FantasyTeam, slate domain.DaySlate, categories []string) []FaceOffEntry {
	sos := s.schedule.SOS(ctx)

	entries := make([]FaceOffEntry, 0, len(team.Roster))
	for _, player := range domain.ActiveRoster(team.Roster, s.excludeOut) {
		if !slate.Teams.Contains(player.ProTeam) {
			continue
		}
		opponent := slate.Opponent(player.ProTeam)
		entries = append(entries, FaceOffEntry{
			Player:     player,
			Opponent:   opponent,
			Difficulty: sos.DifficultyFor(string(opponent)),
			Score:      domain.FantasyScore(player.Averages, categories),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if s.slotLimit > 0 && len(entries) > s.slotLimit {
		entries = entries[:s.slotLimit]
	}
	return entries
}

func leagueKeyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
