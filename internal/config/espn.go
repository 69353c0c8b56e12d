package config

// ESPNConfig controls how we talk to the ESPN scoreboard and fantasy APIs.
type ESPNConfig struct {
	ScoreboardBaseURL  string
	FantasyBaseURL     string
	Timeout            Duration
	FantasyMinInterval Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		ScoreboardBaseURL:  envOrDefault(envScoreboardBase, defaultScoreboardBase),
		FantasyBaseURL:     envOrDefault(envFantasyBase, defaultFantasyBase),
		Timeout:            durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		FantasyMinInterval: durationEnvOrDefault(envUpstreamWait, defaultUpstreamWait),
	}
}
