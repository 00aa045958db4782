package configs

import (
	"strings"
	"time"

	"github.com/SiloGit/bcnotif/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Listing     ListingConfig     `mapstructure:"listing" validate:"required"`
	Poll        PollConfig        `mapstructure:"poll" validate:"required"`
	Averages    AveragesConfig    `mapstructure:"averages" validate:"required"`
	Spike       SpikeConfig       `mapstructure:"spike"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
	Feeds       []FeedSetting     `mapstructure:"feeds" validate:"omitempty,dive"`
	Whitelist   []FeedMatcher     `mapstructure:"whitelist"`
	Blacklist   []FeedMatcher     `mapstructure:"blacklist"`
}

// ServerConfig holds ops server configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ListingConfig holds the upstream listing source configuration.
// StateID of zero means only the top-feeds page is fetched.
type ListingConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	StateID   int    `mapstructure:"state_id" validate:"omitempty,min=1"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
	Timeout   int    `mapstructure:"timeout" validate:"required,min=1"` // seconds
}

// PollConfig holds polling cadence configuration.
// UpdateTime is minutes between cycles; anything under five minutes is
// rejected so the daemon stays polite to the upstream site.
type PollConfig struct {
	UpdateTime float64 `mapstructure:"update_time" validate:"required,min=5"`
}

// Interval returns the poll cadence as a duration.
func (p PollConfig) Interval() time.Duration {
	return time.Duration(p.UpdateTime * float64(time.Minute))
}

// AveragesConfig holds the listener-average blend configuration.
// Smoothing is the divisor N in new = prev + (observed-prev)/N.
type AveragesConfig struct {
	Smoothing int `mapstructure:"smoothing" validate:"required,min=1"`
}

// SpikeConfig holds the global spike threshold configuration.
// Jump is the percentage above the hourly average that counts as a spike;
// Weekdays overrides it for specific days (keys are lowercase day names).
type SpikeConfig struct {
	Jump             float64            `mapstructure:"jump" validate:"min=0"`
	MinimumListeners int                `mapstructure:"minimum_listeners" validate:"min=0"`
	Weekdays         map[string]float64 `mapstructure:"weekdays" validate:"omitempty,dive,keys,oneof=sunday monday tuesday wednesday thursday friday saturday,endkeys,min=0"`
}

// ReportConfig holds report shaping configuration.
type ReportConfig struct {
	MaxFeeds  int    `mapstructure:"max_feeds" validate:"required,min=1"`
	SortBy    string `mapstructure:"sort_by" validate:"required,oneof=listeners jump"`
	SortOrder string `mapstructure:"sort_order" validate:"required,oneof=ascending descending"`
}

// FeedSetting overrides the spike threshold for feeds matched by Match.
// A nil Jump falls through to the global threshold.
type FeedSetting struct {
	Match    FeedMatcher        `mapstructure:"match" validate:"required"`
	Jump     *float64           `mapstructure:"jump" validate:"omitempty,min=0"`
	Weekdays map[string]float64 `mapstructure:"weekdays" validate:"omitempty,dive,keys,oneof=sunday monday tuesday wednesday thursday friday saturday,endkeys,min=0"`
}

// JumpFor resolves the spike threshold percentage for a feed on a given
// weekday. Resolution order: per-feed weekday override, per-feed jump,
// global weekday override, global jump.
func (c *Config) JumpFor(feed models.Feed, day time.Weekday) float64 {
	key := weekdayKey(day)

	for _, setting := range c.Feeds {
		if !setting.Match.Matches(feed) {
			continue
		}
		if jump, ok := setting.Weekdays[key]; ok {
			return jump
		}
		if setting.Jump != nil {
			return *setting.Jump
		}
		break
	}

	if jump, ok := c.Spike.Weekdays[key]; ok {
		return jump
	}
	return c.Spike.Jump
}

// Allows reports whether a feed passes the whitelist and blacklist.
// An empty whitelist admits every feed; the blacklist always wins.
func (c *Config) Allows(feed models.Feed) bool {
	for _, matcher := range c.Blacklist {
		if matcher.Matches(feed) {
			return false
		}
	}
	if len(c.Whitelist) == 0 {
		return true
	}
	for _, matcher := range c.Whitelist {
		if matcher.Matches(feed) {
			return true
		}
	}
	return false
}

func weekdayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}
