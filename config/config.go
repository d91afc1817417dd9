// Package config loads process settings in layers: built-in defaults, then
// an optional JSON or dotenv file, then FLINT_-prefixed environment
// variables. Later layers win.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FLINT_"

type Config struct {
	Server    Server
	Client    Client
	Telemetry Telemetry
}

type Server struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Client struct {
	Target      string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type Telemetry struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func defaults() map[string]any {
	return map[string]any{
		"server.addr":          "127.0.0.1:8004",
		"server.read_timeout":  "10s",
		"server.write_timeout": "10s",

		"client.target":       "127.0.0.1:8004",
		"client.dial_timeout": "5s",
		"client.read_timeout": "10s",

		"telemetry.enabled":      false,
		"telemetry.endpoint":     "127.0.0.1:4317",
		"telemetry.service_name": "flint",
	}
}

// transformEnv maps FLINT_SERVER_READ_TIMEOUT to server.read_timeout: the
// prefix is stripped, the name lowercased, and the first underscore becomes
// the section separator.
func transformEnv(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
	return strings.Replace(name, "_", ".", 1)
}

// Load builds the configuration. path may be empty, a .json file or a
// dotenv file; anything else is an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		var parser koanf.Parser
		switch filepath.Ext(path) {
		case ".json":
			parser = kjson.Parser()
		case ".env":
			parser = dotenv.Parser()
		default:
			return Config{}, fmt.Errorf("config: unsupported file type %q", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnv), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	return Config{
		Server: Server{
			Addr:         k.String("server.addr"),
			ReadTimeout:  k.Duration("server.read_timeout"),
			WriteTimeout: k.Duration("server.write_timeout"),
		},
		Client: Client{
			Target:      k.String("client.target"),
			DialTimeout: k.Duration("client.dial_timeout"),
			ReadTimeout: k.Duration("client.read_timeout"),
		},
		Telemetry: Telemetry{
			Enabled:     k.Bool("telemetry.enabled"),
			Endpoint:    k.String("telemetry.endpoint"),
			ServiceName: k.String("telemetry.service_name"),
		},
	}, nil
}
