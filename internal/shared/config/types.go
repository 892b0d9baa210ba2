package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Timezone decides which wall-clock minute a reminder belongs to.
	Timezone string `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// TelegramConfig holds bot credentials and link-token settings.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	// BotUsername is used to build deep links: https://t.me/<BotUsername>?start=<token>
	BotUsername string `mapstructure:"bot_username"`
	// APIBaseURL allows pointing the client at a test server.
	APIBaseURL string `mapstructure:"api_base_url"`
	// LinkTokenLifetimeMinutes is the lifetime of a link token (default 30).
	LinkTokenLifetimeMinutes int `mapstructure:"link_token_lifetime_minutes"`
	// SendTimeoutSeconds bounds every sendMessage call (default 10).
	SendTimeoutSeconds int `mapstructure:"send_timeout_seconds"`
	// PollTimeoutSeconds is the long-polling timeout for getUpdates (default 30).
	PollTimeoutSeconds int `mapstructure:"poll_timeout_seconds"`
}
