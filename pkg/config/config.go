package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration lets config.yaml carry durations as strings like "10m"; yaml.v3
// only decodes integers into time.Duration directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Rates        RatesConfig        `yaml:"rates"`
	Verification VerificationConfig `yaml:"verification"`
	SMTP         SMTPConfig         `yaml:"smtp"`
	Analytics    AnalyticsConfig    `yaml:"analytics"`
	WebSocket    WebSocketConfig    `yaml:"websocket"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	// Driver selects the persistence backend: "postgres" or "mongo".
	Driver   string         `yaml:"driver"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
}

type PostgresConfig struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	User         string `yaml:"user"`
	DBName       string `yaml:"name"`
	Password     string `yaml:"password"`
	SSLMode      string `yaml:"ssl_mode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"name"`
}

// RatesConfig is the per-event-kind rate table used when a caller does not
// supply an earned amount. Amounts are NGN.
type RatesConfig struct {
	Stream StreamRates `yaml:"stream"`
}

type StreamRates struct {
	PerSecond   float64 `yaml:"per_second"`
	PerMegabyte float64 `yaml:"per_megabyte"`
}

type VerificationConfig struct {
	CodeTTL Duration `yaml:"code_ttl"`
}

type SMTPConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	FromName     string `yaml:"from_name"`
	CompanyEmail string `yaml:"company_email"`
}

type AnalyticsConfig struct {
	Providers []string `yaml:"providers"`
}

type WebSocketConfig struct {
	ReadBufferSize  int           `yaml:"read_buffer_size"`
	WriteBufferSize int           `yaml:"write_buffer_size"`
	PingPeriod      Duration `yaml:"ping_period"`
}

func Load() (*Config, error) {
	// .env is optional outside local development.
	_ = godotenv.Load()

	var config Config
	configData, err := os.ReadFile("./config.yaml")
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(configData, &config); err != nil {
		return nil, err
	}

	config.applyEnvOverrides()
	config.applyDefaults()

	return &config, nil
}

// applyEnvOverrides lets secrets live in the environment instead of config.yaml.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EMAIL_USER"); v != "" {
		c.SMTP.Username = v
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("COMPANY_EMAIL"); v != "" {
		c.SMTP.CompanyEmail = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Database.Mongo.URI = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Postgres.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "12000"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "mongo"
	}
	if c.Rates.Stream.PerSecond == 0 {
		c.Rates.Stream.PerSecond = 1.8
	}
	if c.Rates.Stream.PerMegabyte == 0 {
		c.Rates.Stream.PerMegabyte = 1.8
	}
	if c.Verification.CodeTTL == 0 {
		c.Verification.CodeTTL = Duration(10 * time.Minute)
	}
	if len(c.Analytics.Providers) == 0 {
		c.Analytics.Providers = []string{"Airtel", "MTN", "Glo", "9mobile", "Spectranet"}
	}
	if c.WebSocket.ReadBufferSize == 0 {
		c.WebSocket.ReadBufferSize = 1024
	}
	if c.WebSocket.WriteBufferSize == 0 {
		c.WebSocket.WriteBufferSize = 1024
	}
	if c.WebSocket.PingPeriod == 0 {
		c.WebSocket.PingPeriod = Duration(54 * time.Second)
	}
}
