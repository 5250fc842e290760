// Package config loads server settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr            string
	AllowedOrigins  string
	LogLevel        log.Level
	ReadBufferSize  int
	WriteBufferSize int
}

func defaults() Config {
	return Config{
		Addr:            ":3000",
		AllowedOrigins:  "http://localhost:5173",
		LogLevel:        log.LevelInfo,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Load reads CHECKMATE_* environment variables over the defaults, then lets
// args override them.
func Load(args []string) (Config, error) {
	cfg := defaults()
	if err := cfg.fromEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("checkmate", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowedOrigins, "origins", cfg.AllowedOrigins, "comma separated CORS origins")
	level := fs.String("log-level", levelName(cfg.LogLevel), "trace, debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	lvl, err := ParseLevel(*level)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = lvl
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects settings the server cannot start with. CORS requests
// carry credentials, which rules out the wildcard origin.
func (c Config) validate() error {
	origins := c.Origins()
	if len(origins) == 0 {
		return errors.New("config: at least one allowed origin is required")
	}
	for _, o := range origins {
		if o == "*" {
			return errors.New("config: wildcard origin is not allowed with credentialed CORS")
		}
	}
	return nil
}

func (c *Config) fromEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CHECKMATE_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("CHECKMATE_ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = v
	}
	if v, ok := lookup("CHECKMATE_LOG_LEVEL"); ok && v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = lvl
	}
	for name, dst := range map[string]*int{
		"CHECKMATE_WS_READ_BUFFER":  &c.ReadBufferSize,
		"CHECKMATE_WS_WRITE_BUFFER": &c.WriteBufferSize,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("config: %s must be a positive integer, got %q", name, v)
		}
		*dst = n
	}
	return nil
}

// Origins returns the allowed origins as a list.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

var levels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func ParseLevel(s string) (log.Level, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("config: unknown log level %q", s)
	}
	return lvl, nil
}

func levelName(lvl log.Level) string {
	for name, l := range levels {
		if l == lvl {
			return name
		}
	}
	return "info"
}
