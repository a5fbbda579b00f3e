package config

import "time"

// Config holds bot configuration values. Loaded once at startup and
// immutable afterwards.
type Config struct {
	// Chat identity and credential.
	Username   string `mapstructure:"username" yaml:"username"`
	OAuthToken string `mapstructure:"oauth_token" yaml:"oauth_token"`
	// Nick is the display nickname used for room-join identity and
	// self-message filtering. Defaults to Username when empty.
	Nick string `mapstructure:"nick" yaml:"nick"`

	// Rooms to join; RoomSuffix is appended to every name to form the
	// full room identifier.
	Rooms      []string `mapstructure:"rooms" yaml:"rooms"`
	RoomSuffix string   `mapstructure:"room_suffix" yaml:"room_suffix"`

	BroadcastInterval time.Duration `mapstructure:"broadcast_interval" yaml:"broadcast_interval"`
	JoinGrace         time.Duration `mapstructure:"join_grace" yaml:"join_grace"`

	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string `mapstructure:"log_file" yaml:"log_file"`
	TranscriptPath string `mapstructure:"transcript_path" yaml:"transcript_path"`

	HTTPAddr          string        `mapstructure:"http_addr" yaml:"http_addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		BroadcastInterval: 10 * time.Second,
		JoinGrace:         1 * time.Second,
		LogLevel:          "info",
		LogFile:           "bot.log",
		TranscriptPath:    "videosync.db",
		HTTPAddr:          ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// BotNick returns the effective display nickname.
func (c Config) BotNick() string {
	if c.Nick != "" {
		return c.Nick
	}
	return c.Username
}

// RoomNames returns the full room identifiers: every configured room
// name with the shared suffix appended.
func (c Config) RoomNames() []string {
	names := make([]string, 0, len(c.Rooms))
	for _, room := range c.Rooms {
		names = append(names, room+c.RoomSuffix)
	}
	return names
}
