package configs

import (
	"fmt"
	"strings"

	"github.com/SiloGit/bcnotif/internal/shared/validators"

	"github.com/spf13/viper"
)

// Overrides carries command-line values that take precedence over the
// config file. Pointer fields distinguish "not set" from an explicit zero.
type Overrides struct {
	StoreDir   string
	Threshold  *float64
	UpdateTime *float64
	SortOrder  string
	LogLevel   string
	Port       *int
}

func (o Overrides) apply(cfg *Config) {
	if o.StoreDir != "" {
		cfg.FileStorage.RootDir = o.StoreDir
	}
	if o.Threshold != nil {
		cfg.Spike.Jump = *o.Threshold
	}
	if o.UpdateTime != nil {
		cfg.Poll.UpdateTime = *o.UpdateTime
	}
	if o.SortOrder != "" {
		cfg.Report.SortOrder = o.SortOrder
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Port != nil {
		cfg.Server.Port = *o.Port
	}
}

// LoadConfig reads configuration from file, applies overrides, and validates
// the merged result.
var LoadConfig = func(configPath string, overrides Overrides) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrides.apply(&cfg)

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	if err := validateMatchers(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("file_storage.root_dir", "./data")
	v.SetDefault("listing.base_url", "https://www.broadcastify.com")
	v.SetDefault("listing.user_agent", "bcnotif/1.0")
	v.SetDefault("listing.timeout", 30)
	v.SetDefault("poll.update_time", 6)
	v.SetDefault("averages.smoothing", 5)
	v.SetDefault("spike.jump", 30)
	v.SetDefault("spike.minimum_listeners", 15)
	v.SetDefault("report.max_feeds", 10)
	v.SetDefault("report.sort_by", "listeners")
	v.SetDefault("report.sort_order", "descending")
}

// validateMatchers rejects matchers with no identity fields set; struct tags
// cannot express "at least one of".
func validateMatchers(cfg *Config) error {
	for i, setting := range cfg.Feeds {
		if setting.Match.isEmpty() {
			return fmt.Errorf("config validation failed: feeds[%d].match must set at least one of name, id, county, state_id", i)
		}
	}
	for i, matcher := range cfg.Whitelist {
		if matcher.isEmpty() {
			return fmt.Errorf("config validation failed: whitelist[%d] must set at least one of name, id, county, state_id", i)
		}
	}
	for i, matcher := range cfg.Blacklist {
		if matcher.isEmpty() {
			return fmt.Errorf("config validation failed: blacklist[%d] must set at least one of name, id, county, state_id", i)
		}
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "poll.update_time")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Poll.UpdateTime" -> "poll.updatetime")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "url":
		msg = fmt.Sprintf("%s (must be a URL)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
