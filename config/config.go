package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string

	Database         DatabaseConfigs
	GatewayServer    ServerConfigs
	AuthServer       ServerConfigs
	CatalogServer    ServerConfigs
	ProcessingServer ServerConfigs
	PrometheusServer ServerConfigs
	Auth             AuthConfigs
	Session          SessionConfigs
	Redis            RedisConfigs
	Cache            CacheConfigs

	AuthEndpoints       []string
	CatalogEndpoints    []string
	ProcessingEndpoints []string
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret  string
	AccessToken  TokenConfigs
	RefreshToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration `toml:"-"`

	// ExpirationText is the duration in toml format, e.g. "5m", "24h".
	ExpirationText string `toml:"expiration"`
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type RedisConfigs struct {
	Addr string
}

type CacheConfigs struct {
	QuestTTL time.Duration `toml:"-"`

	QuestTTLText string `toml:"quest_ttl"`
}

// Load reads configs from the toml file at path, then applies environment
// overrides. An empty path skips the file and loads from environment only.
func Load(path string) (*Configs, error) {
	configs := defaultConfigs()

	if path != "" {
		if _, err := toml.DecodeFile(path, configs); err != nil {
			return nil, err
		}
	}

	applyEnv(configs)

	if err := parseDurations(configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func defaultConfigs() *Configs {
	return &Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "questlane",
			User:     "root",
			Password: "password",
		},
		GatewayServer:    ServerConfigs{Host: "0.0.0.0", Port: "8000"},
		AuthServer:       ServerConfigs{Host: "0.0.0.0", Port: "8001"},
		CatalogServer:    ServerConfigs{Host: "0.0.0.0", Port: "8002"},
		ProcessingServer: ServerConfigs{Host: "0.0.0.0", Port: "8003"},
		PrometheusServer: ServerConfigs{Host: "0.0.0.0", Port: "8090"},
		Auth: AuthConfigs{
			TokenSecret:  "token_secret",
			AccessToken:  TokenConfigs{Name: "access_token", ExpirationText: "5m"},
			RefreshToken: TokenConfigs{Name: "refresh_token", ExpirationText: "20m"},
		},
		Session: SessionConfigs{
			Secret: "session_secret",
			Name:   "auth_session",
		},
		Redis:               RedisConfigs{Addr: "localhost:6379"},
		Cache:               CacheConfigs{QuestTTLText: "1m"},
		AuthEndpoints:       []string{"http://localhost:8001"},
		CatalogEndpoints:    []string{"http://localhost:8002"},
		ProcessingEndpoints: []string{"http://localhost:8003"},
	}
}

func applyEnv(configs *Configs) {
	configs.Env = getEnv("ENV", configs.Env)

	configs.Database.Host = getEnv("MYSQL_HOST", configs.Database.Host)
	configs.Database.Port = getEnv("MYSQL_PORT", configs.Database.Port)
	configs.Database.Database = getEnv("MYSQL_DATABASE", configs.Database.Database)
	configs.Database.User = getEnv("MYSQL_USER", configs.Database.User)
	configs.Database.Password = getEnv("MYSQL_PASSWORD", configs.Database.Password)

	configs.GatewayServer.Port = getEnv("GATEWAY_PORT", configs.GatewayServer.Port)
	configs.AuthServer.Port = getEnv("AUTH_PORT", configs.AuthServer.Port)
	configs.CatalogServer.Port = getEnv("CATALOG_PORT", configs.CatalogServer.Port)
	configs.ProcessingServer.Port = getEnv("PROCESSING_PORT", configs.ProcessingServer.Port)
	configs.PrometheusServer.Port = getEnv("PROMETHEUS_PORT", configs.PrometheusServer.Port)

	configs.Auth.TokenSecret = getEnv("TOKEN_SECRET", configs.Auth.TokenSecret)
	configs.Session.Secret = getEnv("SESSION_SECRET", configs.Session.Secret)

	configs.Redis.Addr = getEnv("REDIS_ADDR", configs.Redis.Addr)

	if v := os.Getenv("AUTH_ENDPOINTS"); v != "" {
		configs.AuthEndpoints = []string{v}
	}
	if v := os.Getenv("CATALOG_ENDPOINTS"); v != "" {
		configs.CatalogEndpoints = []string{v}
	}
	if v := os.Getenv("PROCESSING_ENDPOINTS"); v != "" {
		configs.ProcessingEndpoints = []string{v}
	}
}

func parseDurations(configs *Configs) error {
	var err error
	configs.Auth.AccessToken.Expiration, err = time.ParseDuration(configs.Auth.AccessToken.ExpirationText)
	if err != nil {
		return fmt.Errorf("invalid access token expiration: %w", err)
	}

	configs.Auth.RefreshToken.Expiration, err = time.ParseDuration(configs.Auth.RefreshToken.ExpirationText)
	if err != nil {
		return fmt.Errorf("invalid refresh token expiration: %w", err)
	}

	configs.Cache.QuestTTL, err = time.ParseDuration(configs.Cache.QuestTTLText)
	if err != nil {
		return fmt.Errorf("invalid quest cache ttl: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
