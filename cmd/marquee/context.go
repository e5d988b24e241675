package main

import (
	"fmt"
	"strings"
	"sync"

	"log/slog"

	"github.com/gofrs/flock"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) openStore() (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg)
}

// withWriterLock serializes writer commands (ingest, enrich, cleanup) against
// each other via a file lock next to the database. The read API does not take
// it; SQLite's own locking covers reader/writer overlap.
func (c *commandContext) withWriterLock(fn func() error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	lock := flock.New(cfg.LockFilePath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire writer lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another marquee writer is running (lock held at %s)", cfg.LockFilePath())
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
