package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Convert  ConvertConfig  `yaml:"convert"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// required by commands that touch the store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// ConvertConfig holds conversion pipeline settings.
type ConvertConfig struct {
	// Markup is a built-in rule set ("default", "none") or "custom", which
	// requires RulesPath.
	Markup    string        `yaml:"markup"     env:"DSLCONV_MARKUP"     env-default:"default"`
	RulesPath string        `yaml:"rules_path" env:"DSLCONV_RULES_PATH"`
	OutputDir string        `yaml:"output_dir" env:"DSLCONV_OUTPUT_DIR"`
	Pretty    bool          `yaml:"pretty"     env:"DSLCONV_PRETTY"`
	Workers   int           `yaml:"workers"    env:"DSLCONV_WORKERS"    env-default:"4"`
	BatchSize int           `yaml:"batch_size" env:"DSLCONV_BATCH_SIZE" env-default:"500"`
	DryRun    bool          `yaml:"dry_run"    env:"DSLCONV_DRY_RUN"`
	Timeout   time.Duration `yaml:"timeout"    env:"DSLCONV_TIMEOUT"    env-default:"30m"`
}
