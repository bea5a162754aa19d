package models

// STS accepts session durations between 15 minutes and 12 hours.
const (
	MinDurationSeconds = 900
	MaxDurationSeconds = 43200

	DefaultDurationSeconds = 3600
)

// RoleDefinition is a named, persisted reference to an assumable IAM role.
type RoleDefinition struct {
	RoleARN         string `json:"role_identifier"`
	AccountID       string `json:"account_identifier"`
	Region          string `json:"region,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// Configuration is the on-disk document mapping role names to definitions.
type Configuration struct {
	Roles                  map[string]RoleDefinition `json:"roles"`
	DefaultDurationSeconds int                       `json:"default_duration_seconds"`
	DefaultRegion          string                    `json:"default_region,omitempty"`
}

// NewConfiguration returns an empty configuration with the stock defaults.
func NewConfiguration() *Configuration {
	return &Configuration{
		Roles:                  make(map[string]RoleDefinition),
		DefaultDurationSeconds: DefaultDurationSeconds,
	}
}
