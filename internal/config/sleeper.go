package config

import "time"

// SleeperConfig controls how we talk to the Sleeper API.
type SleeperConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RatePerMinute   int
	RetryAttempts   int
	BreakerFailures int
	BreakerCooldown time.Duration
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL:         envOrDefault(envSleeperBaseURL, defaultSleeperBaseURL),
		Timeout:         durationEnvOrDefault(envSleeperTimeout, defaultSleeperTimeout),
		RatePerMinute:   intEnvOrDefault(envSleeperRatePerMinute, defaultSleeperRatePerMinute),
		RetryAttempts:   intEnvOrDefault(envSleeperRetryAttempts, defaultSleeperRetryAttempts),
		BreakerFailures: intEnvOrDefault(envSleeperBreakerFailures, defaultSleeperBreakerFailures),
		BreakerCooldown: durationEnvOrDefault(envSleeperBreakerCooldown, defaultSleeperBreakerCooldown),
	}
}
