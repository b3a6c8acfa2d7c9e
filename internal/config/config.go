// Package config reads process configuration for the command line tool and
// the HTTP server from the environment, after loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/famomatic/ytscrape/client"
	"github.com/famomatic/ytscrape/internal/cookies"
)

const (
	defaultTimeoutSeconds = 30
	maxTimeoutSeconds     = 300
	defaultAddr           = ":8080"
	defaultMaxLimit       = 100
	maxMaxLimit           = 1000
)

type Config struct {
	BaseURL        string
	Proxy          string
	AcceptLanguage string
	Timeout        time.Duration
	LogLevel       log.Level
	Addr           string
	Extractor      string
	CookiesFile    string
	Consent        bool
	// MaxLimit caps the limit a server client may request per page.
	MaxLimit int
	// SentryDSN enables error reporting from the server when set.
	SentryDSN string
	Release   string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() *Config {
	return &Config{
		BaseURL:        os.Getenv("YTSCRAPE_BASE_URL"),
		Proxy:          os.Getenv("YTSCRAPE_PROXY"),
		AcceptLanguage: os.Getenv("YTSCRAPE_ACCEPT_LANGUAGE"),
		Timeout:        getTimeout(),
		LogLevel:       getLogLevel(),
		Addr:           getAddr(),
		Extractor:      strings.ToLower(strings.TrimSpace(os.Getenv("YTSCRAPE_EXTRACTOR"))),
		CookiesFile:    os.Getenv("YTSCRAPE_COOKIES"),
		Consent:        os.Getenv("YTSCRAPE_CONSENT") != "false",
		MaxLimit:       getMaxLimit(),
		SentryDSN:      os.Getenv("SENTRY_DSN"),
		Release:        os.Getenv("RELEASE"),
	}
}

// ClientConfig builds the scraping client configuration. logger receives
// the client's warnings.
func (c *Config) ClientConfig(logger client.Logger) (client.Config, error) {
	cfg := client.Config{
		ProxyURL:       c.Proxy,
		BaseURL:        c.BaseURL,
		AcceptLanguage: c.AcceptLanguage,
		RequestTimeout: c.Timeout,
		Extractor:      c.Extractor,
		Logger:         logger,
	}
	if c.CookiesFile != "" {
		jar, err := cookies.LoadFile(c.CookiesFile)
		if err != nil {
			return client.Config{}, fmt.Errorf("load cookies: %w", err)
		}
		cfg.CookieJar = jar
	}
	if c.Consent {
		base := c.BaseURL
		if base == "" {
			base = "https://www.youtube.com"
		}
		jar, err := cookies.WithConsent(cfg.CookieJar, base)
		if err != nil {
			return client.Config{}, fmt.Errorf("consent cookie: %w", err)
		}
		cfg.CookieJar = jar
	}
	return cfg, nil
}

func getTimeout() time.Duration {
	secondsStr := os.Getenv("YTSCRAPE_TIMEOUT_SECONDS")
	if secondsStr == "" {
		return defaultTimeoutSeconds * time.Second
	}
	seconds, err := strconv.Atoi(secondsStr)
	if err != nil || seconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	if seconds > maxTimeoutSeconds {
		return maxTimeoutSeconds * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func getLogLevel() log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(os.Getenv("YTSCRAPE_LOG_LEVEL")))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func getAddr() string {
	addr := strings.TrimSpace(os.Getenv("YTSCRAPE_ADDR"))
	if addr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			return ":" + port
		}
		return defaultAddr
	}
	return addr
}

func getMaxLimit() int {
	limitStr := os.Getenv("YTSCRAPE_MAX_LIMIT")
	if limitStr == "" {
		return defaultMaxLimit
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return defaultMaxLimit
	}
	if limit > maxMaxLimit {
		return maxMaxLimit
	}
	return limit
}
