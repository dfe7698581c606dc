package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrMissingToken is returned before any network activity when no token is configured.
var ErrMissingToken = errors.New("GITHUB_TOKEN is required (set it in the environment or .env)")

type Config struct {
	GitHub   GitHubConfig   `mapstructure:"github"`
	Chart    ChartConfig    `mapstructure:"chart"`
	Output   OutputConfig   `mapstructure:"output"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	App      AppConfig      `mapstructure:"app"`
}

type GitHubConfig struct {
	User           string `mapstructure:"user"`
	Token          string `mapstructure:"token"`
	Endpoint       string `mapstructure:"endpoint"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds, 0 = no client timeout
	MaxRetries     int    `mapstructure:"max_retries"`
}

type ChartConfig struct {
	Window int `mapstructure:"window"`
}

type OutputConfig struct {
	Path        string `mapstructure:"path"`
	PreviewPath string `mapstructure:"preview_path"`
}

// TelegramConfig enables publishing the PNG preview when BotToken is set.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

type AppConfig struct {
	LogsDir string `mapstructure:"logs_dir"`
}

func (c GitHubConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// Flag names bound to config keys. Commands register whichever they need.
var flagKeys = map[string]string{
	"user":               "github.user",
	"token":              "github.token",
	"endpoint":           "github.endpoint",
	"request-timeout":    "github.request_timeout",
	"max-retries":        "github.max_retries",
	"window":             "chart.window",
	"output":             "output.path",
	"preview":            "output.preview_path",
	"telegram-bot-token": "telegram.bot_token",
	"telegram-chat-id":   "telegram.chat_id",
	"logs-dir":           "app.logs_dir",
}

// Load reads, lowest priority first: defaults, config.yaml, .env, environment, flags.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v, err := newViper(flags)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()

	return &cfg, nil
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	// .env values become process env; real environment variables win.
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	bindEnv(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("github.user", "your-username")
	v.SetDefault("github.token", "")
	v.SetDefault("github.endpoint", "https://api.github.com/graphql")
	v.SetDefault("github.request_timeout", 0)
	v.SetDefault("github.max_retries", 0)

	v.SetDefault("chart.window", 70)

	v.SetDefault("output.path", "dist/mario-contribution-graph.svg")
	v.SetDefault("output.preview_path", "")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")

	v.SetDefault("app.logs_dir", "logs")
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("github.user", "GITHUB_USER_NAME")
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("github.endpoint", "GITHUB_GRAPHQL_ENDPOINT")
	v.BindEnv("github.request_timeout", "GITHUB_REQUEST_TIMEOUT")
	v.BindEnv("github.max_retries", "GITHUB_MAX_RETRIES")

	v.BindEnv("chart.window", "CHART_WINDOW")

	v.BindEnv("output.path", "OUTPUT_PATH")
	v.BindEnv("output.preview_path", "OUTPUT_PREVIEW_PATH")

	v.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")

	v.BindEnv("app.logs_dir", "APP_LOGS_DIR")
}

// RegisterFlags adds every config flag to fs with the same defaults as setDefaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("user", "your-username", "GitHub login to chart (env: GITHUB_USER_NAME)")
	fs.String("token", "", "GitHub token with read:user scope (env: GITHUB_TOKEN)")
	fs.String("endpoint", "https://api.github.com/graphql", "GraphQL endpoint (env: GITHUB_GRAPHQL_ENDPOINT)")
	fs.Int("request-timeout", 0, "HTTP timeout in seconds, 0 for none (env: GITHUB_REQUEST_TIMEOUT)")
	fs.Int("max-retries", 0, "Retries for 429/5xx responses (env: GITHUB_MAX_RETRIES)")
	fs.Int("window", 70, "Number of most recent days to chart (env: CHART_WINDOW)")
	RegisterOutputFlags(fs)
	fs.String("telegram-bot-token", "", "Telegram bot token for publishing the preview (env: TELEGRAM_BOT_TOKEN)")
	fs.String("telegram-chat-id", "", "Telegram chat id for publishing the preview (env: TELEGRAM_CHAT_ID)")
	fs.String("logs-dir", "logs", "Directory for app.log (env: APP_LOGS_DIR)")
}

// RegisterOutputFlags adds only the flags used by offline rendering.
func RegisterOutputFlags(fs *pflag.FlagSet) {
	fs.String("output", "dist/mario-contribution-graph.svg", "SVG output path (env: OUTPUT_PATH)")
	fs.String("preview", "", "Optional PNG preview path (env: OUTPUT_PREVIEW_PATH)")
}

func (c *Config) normalize() {
	c.GitHub.User = strings.TrimSpace(c.GitHub.User)
	c.GitHub.Token = strings.TrimSpace(c.GitHub.Token)
	c.Telegram.ChatID = strings.TrimSpace(c.Telegram.ChatID)
}

// Validate checks what the generate command needs. The token check comes first.
func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return ErrMissingToken
	}
	return c.ValidateOffline()
}

// ValidateOffline checks everything except the GitHub token.
func (c *Config) ValidateOffline() error {
	if c.GitHub.User == "" {
		return fmt.Errorf("github.user cannot be empty")
	}
	if c.Chart.Window <= 0 {
		return fmt.Errorf("chart.window must be positive, got %d", c.Chart.Window)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path cannot be empty")
	}
	if c.GitHub.RequestTimeout < 0 {
		return fmt.Errorf("github.request_timeout cannot be negative")
	}
	if c.Telegram.Enabled() && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
