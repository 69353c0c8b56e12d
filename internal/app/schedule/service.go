package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fantasy-gm-service/internal/cache"
	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/logging"
	"fantasy-gm-service/internal/metrics"
	"fantasy-gm-service/internal/providers"
	"fantasy-gm-service/internal/timeutil"
)

const (
	bucketWeek  = "week"
	bucketToday = "today"
	bucketSOS   = "sos"

	sosKey = "standings:sos"
)

// Config wires the schedule service.
type Config struct {
	Schedules providers.ScheduleProvider
	Standings providers.StandingsProvider
	Cache     *cache.Store
	WeeklyTTL time.Duration
	DailyTTL  time.Duration
	SOSTTL    time.Duration
	Timezone  string
	Logger    *slog.Logger
	Recorder  *metrics.Recorder
}

// Service answers schedule questions: the weekly grid, today's slate, and
// strength of schedule. Everything is fetched lazily through the cache; no
// background refresh.
type Service struct {
	schedules providers.ScheduleProvider
	standings providers.StandingsProvider
	cache     *cache.Store
	weeklyTTL time.Duration
	dailyTTL  time.Duration
	sosTTL    time.Duration
	logger    *slog.Logger
	rec       *metrics.Recorder
	loc       *time.Location
	now       func() time.Time
}

// New constructs the service. A nil cache gets a private store so callers
// never have to care.
func New(cfg Config) *Service {
	store := cfg.Cache
	if store == nil {
		store = cache.New()
	}
	loc := providers.ResolveTimezone(cfg.Timezone)
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		schedules: cfg.Schedules,
		standings: cfg.Standings,
		cache:     store,
		weeklyTTL: cfg.WeeklyTTL,
		dailyTTL:  cfg.DailyTTL,
		sosTTL:    cfg.SOSTTL,
		logger:    cfg.Logger,
		rec:       cfg.Recorder,
		loc:       loc,
		now:       time.Now,
	}
}

// Ready reports whether the service can answer queries at all.
func (s *Service) Ready() bool {
	return s != nil && s.schedules != nil
}

// Week returns the current fantasy week's schedule, one playing set per day.
// Individual day failures degrade to an empty set; only a week where every
// day failed is an error.
func (s *Service) Week(ctx context.Context) (domain.DaySchedule, error) {
	now := s.now().In(s.loc)
	key := weekKey(timeutil.WeekStart(now))

	if value, ok := s.cache.Get(key); ok {
		s.rec.RecordCacheLookup(bucketWeek, true)
		return value.(domain.DaySchedule), nil
	}
	s.rec.RecordCacheLookup(bucketWeek, false)

	sched, err := s.buildWeek(ctx, now)
	if err != nil {
		if stale, ok, _ := s.cache.GetStale(key); ok {
			logging.Warn(s.logger, "serving stale weekly schedule", "error", err)
			return stale.(domain.DaySchedule), nil
		}
		return nil, err
	}

	s.cache.Set(key, sched, s.weeklyTTL)
	return sched, nil
}

func (s *Service) buildWeek(ctx context.Context, now time.Time) (domain.DaySchedule, error) {
	if s.schedules == nil {
		return nil, providers.ErrProviderUnavailable
	}

	days := timeutil.WeekDates(now)
	sched := make(domain.DaySchedule, 0, len(days))
	failures := 0

	for _, day := range days {
		date := timeutil.FormatDate(day)
		slate, err := s.schedules.FetchSlate(ctx, date)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failures++
			logging.Warn(s.logger, "day fetch failed, counting no games", logging.FieldDate, date, "error", err)
			sched = append(sched, domain.ScheduleDay{Date: date, Teams: domain.NewTeamSet()})
			continue
		}
		sched = append(sched, domain.ScheduleDay{Date: date, Teams: slate.Teams})
	}

	if failures == len(days) {
		return nil, fmt.Errorf("schedule: all %d days failed", len(days))
	}
	return sched, nil
}

// Today returns today's slate. An optional tz overrides the configured
// timezone for deciding what "today" means.
func (s *Service) Today(ctx context.Context, tz string) (domain.DaySlate, error) {
	loc := s.loc
	if override := providers.ResolveTimezone(tz); override != nil {
		loc = override
	}
	date := timeutil.FormatDate(s.now().In(loc))
	key := todayKey(date)

	if value, ok := s.cache.Get(key); ok {
		s.rec.RecordCacheLookup(bucketToday, true)
		return value.(domain.DaySlate), nil
	}
	s.rec.RecordCacheLookup(bucketToday, false)

	if s.schedules == nil {
		return domain.DaySlate{}, providers.ErrProviderUnavailable
	}

	slate, err := s.schedules.FetchSlate(ctx, date)
	if err != nil {
		if stale, ok, _ := s.cache.GetStale(key); ok {
			logging.Warn(s.logger, "serving stale daily slate", logging.FieldDate, date, "error", err)
			return stale.(domain.DaySlate), nil
		}
		return domain.DaySlate{}, err
	}

	s.cache.Set(key, slate, s.dailyTTL)
	return slate, nil
}

// SOS returns the strength-of-schedule map. It never fails: a dead standings
// endpoint falls back first to stale data, then to the compiled-in table.
func (s *Service) SOS(ctx context.Context) domain.SOSMap {
	if value, ok := s.cache.Get(sosKey); ok {
		s.rec.RecordCacheLookup(bucketSOS, true)
		return value.(domain.SOSMap)
	}
	s.rec.RecordCacheLookup(bucketSOS, false)

	if s.standings == nil {
		return domain.MergeWithBackup(nil)
	}

	fetched, err := s.standings.FetchWinPercentages(ctx)
	if err != nil {
		if stale, ok, _ := s.cache.GetStale(sosKey); ok {
			logging.Warn(s.logger, "serving stale standings", "error", err)
			return stale.(domain.SOSMap)
		}
		logging.Warn(s.logger, "standings unavailable, using backup table", "error", err)
		return domain.MergeWithBackup(nil)
	}

	merged := domain.MergeWithBackup(fetched)
	s.cache.Set(sosKey, merged, s.sosTTL)
	return merged
}

// WeekFreshness reports cache status for the current week entry, for the
// dashboard's freshness indicator.
func (s *Service) WeekFreshness() cache.Status {
	now := s.now().In(s.loc)
	return s.cache.Status(weekKey(timeutil.WeekStart(now)))
}

// RemainingDays returns how many playable days are left in the fantasy week.
func (s *Service) RemainingDays() int {
	return timeutil.RemainingPlayDays(s.now().In(s.loc))
}

func weekKey(monday time.Time) string {
	return "schedule:week:" + timeutil.FormatDate(monday)
}

func todayKey(date string) string {
	return "schedule:today:" + date
}
