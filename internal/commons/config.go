package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"foodiexpress/internal/config"
)

type fileConfig struct {
	Server struct {
		Port         int    `yaml:"port"`
		ReadTimeout  string `yaml:"readTimeout"`
		WriteTimeout string `yaml:"writeTimeout"`
		IdleTimeout  string `yaml:"idleTimeout"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		Database int    `yaml:"database"`
		MenuTTL  string `yaml:"menuTtl"`
	} `yaml:"redis"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig reads the YAML config at path. When the file does not exist the
// environment-variable configuration is used instead.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	readTimeout, err := time.ParseDuration(fc.Server.ReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing server.readTimeout: %w", err)
	}

	writeTimeout, err := time.ParseDuration(fc.Server.WriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing server.writeTimeout: %w", err)
	}

	idleTimeout, err := time.ParseDuration(fc.Server.IdleTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing server.idleTimeout: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(fc.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("parsing database.connMaxLifetime: %w", err)
	}

	menuTTL, err := time.ParseDuration(fc.Redis.MenuTTL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis.menuTtl: %w", err)
	}

	return &config.Config{
		Server: config.ServerConfig{
			Port:         fc.Server.Port,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: config.RedisConfig{
			Addr:     fc.Redis.Addr,
			Password: fc.Redis.Password,
			Database: fc.Redis.Database,
			MenuTTL:  menuTTL,
		},
		Log: config.LogConfig{
			Level: fc.Log.Level,
		},
	}, nil
}
