package linkpost

import "time"

// Configuration defaults.
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultOutputDir       = "output_summaries"
	DefaultFetchTimeout    = 15 * time.Second
	DefaultGenerateTimeout = 60 * time.Second
)

// Config holds the settings for one run. It is built once at startup and
// passed to the components that need it.
type Config struct {
	APIKey          string
	Model           string
	OutputDir       string
	UserAgent       string
	FetchTimeout    time.Duration
	GenerateTimeout time.Duration

	// BaseURL overrides the Gemini endpoint. Empty uses the SDK default.
	BaseURL string

	// Render fetches articles through a headless browser instead of plain HTTP.
	Render bool
}

// DefaultConfig returns a Config with every field but APIKey populated.
func DefaultConfig() Config {
	return Config{
		Model:           DefaultModel,
		OutputDir:       DefaultOutputDir,
		UserAgent:       DefaultUserAgent,
		FetchTimeout:    DefaultFetchTimeout,
		GenerateTimeout: DefaultGenerateTimeout,
	}
}

// Validate returns ECONFIG when the API key is missing and EINVALID for
// other unusable settings.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return Errorf(ECONFIG, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}
	if c.Model == "" {
		return Errorf(EINVALID, "model required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if c.FetchTimeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive")
	}
	if c.GenerateTimeout <= 0 {
		return Errorf(EINVALID, "generate timeout must be positive")
	}
	return nil
}
