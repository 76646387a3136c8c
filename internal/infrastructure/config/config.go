package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
	Media      Media
}

type HTTPServer struct {
	Address      string
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Database struct {
	Username      string
	Password      string
	Host          string
	Port          string
	DbName        string
	MigrationsRun bool
}

// DSN is the pgx connection string. MigrationsURL is the same target for golang-migrate.
func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable", d.Username, d.Password, d.Host, d.Port, d.DbName)
}

func (d Database) MigrationsURL() string {
	return fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable", d.Username, d.Password, d.Host, d.Port, d.DbName)
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Enabled    bool
	Address    string
	Port       int
	Password   string
	DB         int
	PoolSize   int
	SidebarTTL time.Duration
}

type Media struct {
	BaseURL string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 30*time.Second)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blog")
	v.SetDefault("database.migrations_run", true)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "redis")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.sidebar_ttl", time.Minute)

	v.SetDefault("media.base_url", "/media/")
}

// Load reads config.yaml from path. Environment variables such as DATABASE_HOST
// override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      v.GetString("http_server.address"),
			Port:         v.GetInt("http_server.port"),
			Mode:         v.GetString("http_server.mode"),
			ReadTimeout:  v.GetDuration("http_server.read_timeout"),
			WriteTimeout: v.GetDuration("http_server.write_timeout"),
		},
		Database: Database{
			Username:      v.GetString("database.username"),
			Password:      v.GetString("database.password"),
			Host:          v.GetString("database.host"),
			Port:          v.GetString("database.port"),
			DbName:        v.GetString("database.db_name"),
			MigrationsRun: v.GetBool("database.migrations_run"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Enabled:    v.GetBool("redis.enabled"),
			Address:    v.GetString("redis.address"),
			Port:       v.GetInt("redis.port"),
			Password:   v.GetString("redis.password"),
			DB:         v.GetInt("redis.db"),
			PoolSize:   v.GetInt("redis.pool_size"),
			SidebarTTL: v.GetDuration("redis.sidebar_ttl"),
		},
		Media: Media{
			BaseURL: v.GetString("media.base_url"),
		},
	}, nil
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("%s", err)
		os.Exit(1)
	}
	return cfg
}
