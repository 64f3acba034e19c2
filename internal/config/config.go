package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Ingest   IngestConfig   `yaml:"ingest"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// needed when ingest results are persisted.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"rushin"`
}

// IngestConfig holds corpus aggregation settings.
type IngestConfig struct {
	Workers   int           `yaml:"workers"    env:"INGEST_WORKERS"    env-default:"1"`
	Persist   bool          `yaml:"persist"    env:"INGEST_PERSIST"    env-default:"false"`
	BatchSize int           `yaml:"batch_size" env:"INGEST_BATCH_SIZE" env-default:"500"`
	Timeout   time.Duration `yaml:"timeout"    env:"INGEST_TIMEOUT"    env-default:"30m"`
}
