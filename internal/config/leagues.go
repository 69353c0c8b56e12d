package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/logging"
)

// LeagueConfig identifies one fantasy league and the credentials to read it.
type LeagueConfig struct {
	Name       string   `yaml:"name"`
	ID         int      `yaml:"league_id"`
	Year       int      `yaml:"year"`
	SWID       string   `yaml:"swid"`
	EspnS2     string   `yaml:"espn_s2"`
	Categories []string `yaml:"categories"`
	MyTeamName string   `yaml:"my_team_name"`
}

// loadLeagues reads numbered LEAGUE_n_* entries from the environment. When the
// environment defines at least one valid league it is authoritative; the
// legacy YAML file is consulted only when it defines none. Invalid entries are
// logged and skipped, never guessed at.
func loadLeagues(logger *slog.Logger) []LeagueConfig {
	var leagues []LeagueConfig

	for i := 1; ; i++ {
		name := os.Getenv(fmt.Sprintf("LEAGUE_%d_NAME", i))
		if name == "" {
			break
		}

		league, err := loadLeagueEntry(i, name)
		if err != nil {
			logging.Warn(logger, "skipping invalid league entry", logging.FieldLeague, name, "error", err)
			continue
		}
		leagues = append(leagues, league)
	}

	if len(leagues) > 0 {
		return leagues
	}

	path := os.Getenv(envLegacyLeagues)
	if path == "" {
		return nil
	}

	legacy, err := loadLegacyLeagues(path, logger)
	if err != nil {
		logging.Error(logger, "legacy league file unreadable", err, logging.FieldPath, path)
		return nil
	}
	logging.Info(logger, "leagues loaded from legacy file", logging.FieldPath, path, logging.FieldCount, len(legacy))
	return legacy
}

func loadLeagueEntry(index int, name string) (LeagueConfig, error) {
	prefix := fmt.Sprintf("LEAGUE_%d_", index)

	id, err := strconv.Atoi(os.Getenv(prefix + "ID"))
	if err != nil {
		return LeagueConfig{}, fmt.Errorf("parse %sID: %w", prefix, err)
	}
	year, err := strconv.Atoi(os.Getenv(prefix + "YEAR"))
	if err != nil {
		return LeagueConfig{}, fmt.Errorf("parse %sYEAR: %w", prefix, err)
	}

	league := LeagueConfig{
		Name:       name,
		ID:         id,
		Year:       year,
		SWID:       os.Getenv(prefix + "SWID"),
		EspnS2:     os.Getenv(prefix + "ESPN_S2"),
		Categories: splitCategories(os.Getenv(prefix + "CATEGORIES")),
		MyTeamName: os.Getenv(prefix + "MY_TEAM_NAME"),
	}

	if err := league.validate(); err != nil {
		return LeagueConfig{}, err
	}
	return league, nil
}

func (l LeagueConfig) validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league %q: invalid league id %d", l.Name, l.ID)
	}
	if l.Year < 2020 || l.Year > 2030 {
		return fmt.Errorf("league %q: invalid year %d", l.Name, l.Year)
	}
	if l.SWID == "" || l.EspnS2 == "" {
		return fmt.Errorf("league %q: missing credentials", l.Name)
	}
	if !strings.HasPrefix(l.SWID, "{") {
		return fmt.Errorf("league %q: SWID must be brace-wrapped", l.Name)
	}
	return nil
}

func splitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string{}, domain.DefaultCategories...)
	}

	parts := strings.Split(raw, ",")
	cats := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cats = append(cats, strings.ToUpper(trimmed))
		}
	}
	if len(cats) == 0 {
		return append([]string{}, domain.DefaultCategories...)
	}
	return cats
}
