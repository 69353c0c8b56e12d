package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"fantasy-gm-service/internal/logging"
)

// legacyLeagueFile is the checked-in settings table that predates env-based
// configuration. Kept as a fallback so old deployments keep working.
type legacyLeagueFile struct {
	Leagues []LeagueConfig `yaml:"leagues"`
}

func loadLegacyLeagues(path string, logger *slog.Logger) ([]LeagueConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy league file: %w", err)
	}

	var file legacyLeagueFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse legacy league file: %w", err)
	}

	leagues := make([]LeagueConfig, 0, len(file.Leagues))
	for _, league := range file.Leagues {
		if len(league.Categories) == 0 {
			league.Categories = splitCategories("")
		}
		if err := league.validate(); err != nil {
			logging.Warn(logger, "skipping invalid legacy league entry", logging.FieldLeague, league.Name, "error", err)
			continue
		}
		leagues = append(leagues, league)
	}
	return leagues, nil
}
