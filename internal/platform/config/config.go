package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvDocstoreURI は docstore.uri を上書きする環境変数名です。
const EnvDocstoreURI = "DOCSTORE_URI"

// ドキュメントストアのドライバ名です。
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

const (
	defaultShutdownTimeout  = 10 * time.Second
	defaultDocstoreTimeout  = 5 * time.Second
	defaultDocstoreDatabase = "praktikum"
	defaultLogLevel         = "info"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Docstore DocstoreConfig `yaml:"docstore"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig は HTTP / ヘルスチェックサーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr"`
	HealthAddr         string        `yaml:"health_addr"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout"`
}

// DocstoreConfig はドキュメントストアに関する設定です。
type DocstoreConfig struct {
	Driver     string        `yaml:"driver"`
	URI        string        `yaml:"uri"`
	Database   string        `yaml:"database"`
	BadgerDir  string        `yaml:"badger_dir"`
	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
// docstore.driver が postgres で docstore.uri が空の場合に利用します。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// LogConfig はロガーに関する設定です。
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数による上書きを適用します。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}
	return Parse(b, os.LookupEnv)
}

// Parse は YAML を解釈して設定を返します。lookupEnv は環境変数の参照に使われます。
func Parse(b []byte, lookupEnv func(string) (string, bool)) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if lookupEnv != nil {
		if uri, ok := lookupEnv(EnvDocstoreURI); ok && strings.TrimSpace(uri) != "" {
			cfg.Docstore.URI = strings.TrimSpace(uri)
		}
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	shutdown, err := parseDurationAllowEmpty(c.Server.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if shutdown == 0 {
		shutdown = defaultShutdownTimeout
	}
	c.Server.ShutdownTimeout = shutdown

	if err := c.Docstore.validateAndNormalize(); err != nil {
		return err
	}

	if c.Docstore.Driver == DriverPostgres {
		db := &c.Database
		if err := db.normalizePool(); err != nil {
			return err
		}
		if c.Docstore.URI == "" {
			if err := db.validateAndNormalize(); err != nil {
				return err
			}
			c.Docstore.URI = db.DSN()
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}

	return nil
}

func (d *DocstoreConfig) validateAndNormalize() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case "":
		d.Driver = DriverMongo
	case DriverMongo, DriverPostgres, DriverBadger:
	default:
		return fmt.Errorf("config: docstore.driver %q is not supported", d.Driver)
	}

	if d.Driver == DriverMongo && d.URI == "" {
		return fmt.Errorf("config: docstore.uri must be set for mongo (or %s)", EnvDocstoreURI)
	}

	if d.Database == "" {
		d.Database = defaultDocstoreDatabase
	}

	timeout, err := parseDurationAllowEmpty(d.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: docstore.timeout: %w", err)
	}
	if timeout == 0 {
		timeout = defaultDocstoreTimeout
	}
	d.Timeout = timeout

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	return nil
}

// normalizePool は接続プールの設定値を解釈します。docstore.uri の有無に関わらず適用されます。
func (d *DatabaseConfig) normalizePool() error {
	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
