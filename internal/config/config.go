package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration, read from environment variables.
type Config struct {
	Addr     string `env:"ADDR,      default=:8080"`
	GinMode  string `env:"GIN_MODE,  default=debug"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DB DBConfig

	MediaDir     string `env:"MEDIA_DIR,      default=media"`
	MediaBaseURL string `env:"MEDIA_BASE_URL, default=http://localhost:8080/media"`

	RoomServiceURL string `env:"ROOM_SERVICE_URL, default=https://3449009-eq23140.twc1.net/api/create-room"`

	ProtocolFont     string `env:"PROTOCOL_FONT,      default=DejaVuSans.ttf"`
	ProtocolFontBold string `env:"PROTOCOL_FONT_BOLD, default=DejaVuSans-Bold.ttf"`
}

// DBConfig selects the database driver and connection parameters.
// Driver is either "mysql" or "postgres".
type DBConfig struct {
	Driver   string `env:"DB_DRIVER,   default=mysql"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=3306"`
	User     string `env:"DB_USER,     default=boardvote"`
	Password string `env:"DB_PASSWORD, default=boardvote"`
	Name     string `env:"DB_NAME,     default=board_voting"`
}

// Load reads configuration from the environment using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
