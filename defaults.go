package gagiteck

import "time"

// Platform API defaults.
const (
	// DefaultBaseURL is the production Gagiteck API endpoint.
	DefaultBaseURL = "https://api.gagiteck.com/v1"

	// DefaultHTTPTimeout is the default timeout for platform API requests.
	DefaultHTTPTimeout = 30 * time.Second

	// APIKeyPrefix is the required prefix of Gagiteck API keys.
	APIKeyPrefix = "ggt_"
)

// Local agent defaults.
const (
	// DefaultModel is used when no model is specified.
	DefaultModel = "claude-3-sonnet"

	// DefaultMaxTokens is the default maximum output tokens per response.
	DefaultMaxTokens = 4096

	// DefaultTemperature is the default sampling temperature.
	DefaultTemperature = 0.7

	// DefaultMaxTurns bounds the tool-calling loop so a misbehaving model
	// cannot spin forever.
	DefaultMaxTurns = 10
)
