package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Config is built once at process start and passed by reference to every
// component that needs it. Nothing reads the environment after Load
// returns.
type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Google   Google   `json:"google"`
	Groq     Groq     `json:"groq"`
	Frontend Frontend `json:"frontend"`
	CORS     CORS     `json:"cors"`
}

type App struct {
	Port int `json:"port"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslMode"`
}

// Google holds the OAuth client registration used both for the consent
// flow and for rebuilding per-session token sources.
type Google struct {
	ClientID     string   `json:"clientId"`
	ClientSecret string   `json:"clientSecret"`
	RedirectURL  string   `json:"redirectURL"`
	Scopes       []string `json:"scopes"`
	TokenURL     string   `json:"tokenURL"`
	RevokeURL    string   `json:"revokeURL"`
}

// Groq configures the completion API used for title suggestions.
type Groq struct {
	APIKey   string `json:"apiKey"`
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
}

type Frontend struct {
	// URL receives the post-login redirect with ?token=<access_token>.
	URL string `json:"url"`
}

type CORS struct {
	AllowOrigins []string `json:"allowOrigins"`
}

// Load reads config.json (optionally config-<ENV>.json) with environment
// variables taking precedence, then fills defaults.
func Load() (*Config, error) {
	viper.SetConfigName(configName())
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func configName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func applyEnvOverrides(cfg *Config) {
	setIfEnv(&cfg.Database.Psql.Host, "DB_HOST")
	setIfEnv(&cfg.Database.Psql.Port, "DB_PORT")
	setIfEnv(&cfg.Database.Psql.User, "DB_USER")
	setIfEnv(&cfg.Database.Psql.Password, "DB_PASSWORD")
	setIfEnv(&cfg.Database.Psql.Name, "DB_NAME")
	setIfEnv(&cfg.Database.Psql.SSLMode, "DB_SSLMODE")

	setIfEnv(&cfg.Google.ClientID, "GOOGLE_CLIENT_ID")
	setIfEnv(&cfg.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setIfEnv(&cfg.Google.RedirectURL, "GOOGLE_REDIRECT_URL")

	setIfEnv(&cfg.Groq.APIKey, "GROQ_API_KEY")
	setIfEnv(&cfg.Frontend.URL, "FRONTEND_URL")

	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8000
	}
	if cfg.Database.Psql.Port == "" {
		cfg.Database.Psql.Port = "5432"
	}
	if cfg.Database.Psql.SSLMode == "" {
		cfg.Database.Psql.SSLMode = "disable"
	}
	if len(cfg.Google.Scopes) == 0 {
		cfg.Google.Scopes = []string{"https://www.googleapis.com/auth/youtube.force-ssl"}
	}
	if cfg.Google.RedirectURL == "" {
		cfg.Google.RedirectURL = fmt.Sprintf("http://localhost:%d/auth/callback", cfg.App.Port)
	}
	if cfg.Google.TokenURL == "" {
		cfg.Google.TokenURL = "https://oauth2.googleapis.com/token"
	}
	if cfg.Google.RevokeURL == "" {
		cfg.Google.RevokeURL = "https://oauth2.googleapis.com/revoke"
	}
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = "llama-3.3-70b-versatile"
	}
	if cfg.Groq.Endpoint == "" {
		cfg.Groq.Endpoint = "https://api.groq.com/openai/v1/chat/completions"
	}
	if cfg.Frontend.URL == "" {
		cfg.Frontend.URL = "http://localhost:3000/"
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}
}

func setIfEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
