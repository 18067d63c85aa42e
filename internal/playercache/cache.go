package playercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
	"github.com/preston-bernstein/sleeper-league-service/internal/metrics"
	"github.com/preston-bernstein/sleeper-league-service/internal/providers"
	"github.com/preston-bernstein/sleeper-league-service/internal/store"
)

const defaultFetchTimeout = 2 * time.Minute

// Config controls cache freshness.
type Config struct {
	// TTL is the maximum age before a dictionary is refetched. Zero disables expiry.
	TTL time.Duration
	// FetchTimeout bounds one shared upstream fetch. It does not follow any single caller's context.
	FetchTimeout time.Duration
}

// Cache is a read-through player dictionary cache keyed by sport:
// memory, then disk, then upstream with write-back to disk and memory.
// Returned dictionaries are shared and must not be mutated.
type Cache struct {
	fetcher providers.PlayerProvider
	disk    *FSStore
	memory  *store.MemoryStore
	ttl     time.Duration
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	group   singleflight.Group
}

// New constructs a Cache. disk may be nil to run memory-only.
func New(fetcher providers.PlayerProvider, disk *FSStore, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	return &Cache{
		fetcher: fetcher,
		disk:    disk,
		memory:  store.NewMemoryStore(),
		ttl:     cfg.TTL,
		timeout: cfg.FetchTimeout,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Get returns the dictionary for sport, fetching upstream only when no fresh copy exists.
// If the upstream fetch fails and a stale copy exists, the stale copy is served.
func (c *Cache) Get(ctx context.Context, sport string) (players.Dictionary, error) {
	if entry, ok := c.memory.Get(sport); ok && c.fresh(entry.FetchedAt) {
		c.metrics.RecordCacheLookup(sport, metrics.CacheSourceMemory)
		return entry.Dictionary, nil
	}

	stale, haveStale := c.memory.Get(sport)
	if diskEntry, ok := c.loadDisk(ctx, sport); ok {
		if c.fresh(diskEntry.FetchedAt) {
			logging.Debug(logging.FromContext(ctx, c.logger), "player dictionary loaded from disk",
				slog.String(logging.FieldSport, sport),
				slog.Int(logging.FieldCount, len(diskEntry.Dictionary)),
			)
			c.memory.Set(sport, diskEntry)
			c.metrics.RecordCacheLookup(sport, metrics.CacheSourceDisk)
			return diskEntry.Dictionary, nil
		}
		if !haveStale || diskEntry.FetchedAt.After(stale.FetchedAt) {
			stale, haveStale = diskEntry, true
		}
	}

	entry, err := c.fetch(ctx, sport)
	if err == nil {
		c.metrics.RecordCacheLookup(sport, metrics.CacheSourceUpstream)
		return entry.Dictionary, nil
	}
	if haveStale {
		logging.Warn(logging.FromContext(ctx, c.logger), "serving stale player dictionary",
			slog.String(logging.FieldSport, sport),
			slog.Time("fetched_at", stale.FetchedAt),
			slog.Any("error", err),
		)
		c.memory.Set(sport, stale)
		c.metrics.RecordCacheLookup(sport, metrics.CacheSourceStale)
		return stale.Dictionary, nil
	}
	return nil, err
}

// Refresh forces an upstream fetch for sport and returns the number of players cached.
func (c *Cache) Refresh(ctx context.Context, sport string) (int, error) {
	entry, err := c.fetch(ctx, sport)
	if err != nil {
		return 0, err
	}
	return len(entry.Dictionary), nil
}

// Warm loads the dictionary for sport through the read-through path, so a fresh
// disk copy satisfies it without an upstream call.
func (c *Cache) Warm(ctx context.Context, sport string) (int, error) {
	dict, err := c.Get(ctx, sport)
	if err != nil {
		return 0, err
	}
	return len(dict), nil
}

// Sports lists the sports currently held in memory.
func (c *Cache) Sports() []string {
	return c.memory.Sports()
}

// fetch collapses concurrent fetches for the same sport into one upstream call.
// The shared call runs detached from the caller that started it; each caller
// stops waiting when its own context ends.
func (c *Cache) fetch(ctx context.Context, sport string) (store.Entry, error) {
	ch := c.group.DoChan(sport, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetchUpstream(shared, sport)
	})
	select {
	case <-ctx.Done():
		return store.Entry{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return store.Entry{}, res.Err
		}
		return res.Val.(store.Entry), nil
	}
}

func (c *Cache) fetchUpstream(ctx context.Context, sport string) (store.Entry, error) {
	if c.fetcher == nil {
		return store.Entry{}, providers.ErrProviderUnavailable
	}
	start := c.now()
	raw, err := c.fetcher.FetchPlayers(ctx, sport)
	if err != nil {
		return store.Entry{}, fmt.Errorf("fetch %s players: %w", sport, err)
	}
	var dict players.Dictionary
	if err := json.Unmarshal(raw, &dict); err != nil {
		return store.Entry{}, fmt.Errorf("decode %s players: %w", sport, err)
	}
	if dict == nil {
		dict = players.Dictionary{}
	}

	entry := store.Entry{Dictionary: dict, FetchedAt: c.now()}
	logger := logging.FromContext(ctx, c.logger)
	if c.disk != nil {
		if err := c.disk.Write(sport, raw, len(dict), entry.FetchedAt); err != nil {
			logging.Error(logger, "player dictionary write failed", err, slog.String(logging.FieldSport, sport))
		}
	}
	c.memory.Set(sport, entry)
	logging.Info(logger, "player dictionary fetched",
		slog.String(logging.FieldSport, sport),
		slog.Int(logging.FieldCount, len(dict)),
		slog.Int64(logging.FieldDurationMS, c.now().Sub(start).Milliseconds()),
	)
	return entry, nil
}

func (c *Cache) loadDisk(ctx context.Context, sport string) (store.Entry, bool) {
	if c.disk == nil {
		return store.Entry{}, false
	}
	dict, fetchedAt, err := c.disk.Load(sport)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn(logging.FromContext(ctx, c.logger), "player dictionary cache unreadable",
				slog.String(logging.FieldSport, sport),
				slog.Any("error", err),
			)
		}
		return store.Entry{}, false
	}
	return store.Entry{Dictionary: dict, FetchedAt: fetchedAt}, true
}

func (c *Cache) fresh(fetchedAt time.Time) bool {
	if c.ttl <= 0 {
		return true
	}
	return c.now().Sub(fetchedAt) < c.ttl
}
