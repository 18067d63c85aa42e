package sleeper

import "time"

const (
	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
