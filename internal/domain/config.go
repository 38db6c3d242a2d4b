package domain

// Config represents the main application configuration
type Config struct {
	Validation ValidationConfig `mapstructure:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ValidationConfig carries the policy constants the eligibility rules
// evaluate against. The defaults are fixed policy; they are surfaced
// here so they are named values rather than magic numbers.
type ValidationConfig struct {
	// Relationship-type code that qualifies a proxy.
	RelationCode string `mapstructure:"relation_code"`
	// Patients at or above this age in whole years are not eligible.
	AgeLimit int `mapstructure:"age_limit"`
	// Security marking that denotes an unrestricted record.
	UnrestrictedCode string `mapstructure:"unrestricted_code"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
