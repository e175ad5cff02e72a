package config

// LogLevel controls how much the folio binary logs.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title           string   `yaml:"title" koanf:"title"`
	Owner           string   `yaml:"owner" koanf:"owner"`
	ContentDir      string   `yaml:"content_dir" koanf:"content_dir"`
	AssetBaseURL    string   `yaml:"asset_base_url" koanf:"asset_base_url"`
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	FeedURL         string   `yaml:"feed_url" koanf:"feed_url"`
	FetchTimeout    int      `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	CodeStyle       string   `yaml:"code_style" koanf:"code_style"`
	LogLevel        LogLevel `yaml:"log_level" koanf:"log_level"`
}
