package llm

// DefaultModel is the model used when no configuration is provided.
// Profile optimization is structured rewriting, which the flash tier
// handles well at a fraction of pro-tier latency.
const DefaultModel = "gemini-2.5-flash"

// Config holds oracle client configuration
type Config struct {
	Model string
}

// DefaultConfig returns the default oracle configuration
func DefaultConfig() *Config {
	return &Config{Model: DefaultModel}
}
