package media

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
)

// CleanerConfig controls the concurrency characteristics of the cleaner.
type CleanerConfig struct {
	QueueSize int
	Workers   int
}

// Cleaner asynchronously removes local upload staging files once the
// services are done with them.
type Cleaner struct {
	logger *slog.Logger

	jobs   chan string
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

var errCleanerClosed = errors.New("upload cleaner closed")

// NewCleaner constructs a background worker pool that removes staged files.
func NewCleaner(cfg CleanerConfig, logger *slog.Logger) *Cleaner {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Cleaner{
		logger: logger,
		jobs:   make(chan string, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	c.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go c.worker()
	}

	return c
}

// Enqueue schedules removal of the file at the supplied path.
func (c *Cleaner) Enqueue(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ctx.Done():
		return errCleanerClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ctx.Done():
		return errCleanerClosed
	case c.jobs <- path:
		return nil
	}
}

// Shutdown waits for the worker pool to drain outstanding jobs.
func (c *Cleaner) Shutdown(ctx context.Context) error {
	c.once.Do(func() {
		c.cancel()
		close(c.jobs)
	})

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (c *Cleaner) worker() {
	defer c.wg.Done()

	for path := range c.jobs {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			c.logger.Warn("remove staged upload", "path", path, "error", err)
		}
	}
}
