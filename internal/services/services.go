// Package services runs club operations against the store, keeping the redis snapshots
// and websocket followers in step with every change.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/random"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

// ErrValidation marks bad input, as opposed to a valid request the rules refuse.
var ErrValidation = errors.New("validation failed")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Broadcaster delivers events to everyone following a club.
type Broadcaster interface {
	BroadcastToClub(clubID, eventType string, data interface{})
}

type Dependencies struct {
	Store *store.Store
	// Cache and Hub are optional.
	Cache    *CacheService
	Hub      Broadcaster
	Random   *random.Generator
	CacheTTL time.Duration
	Logger   *logrus.Entry
}

type Services struct {
	Clubs   *ClubService
	Lineups *LineupService
}

// New wires the club and lineup services around one set of per-club locks.
func New(deps Dependencies) *Services {
	if deps.Logger == nil {
		deps.Logger = logger.WithService("franchise-sim")
	}
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = 30 * time.Minute
	}
	base := &base{
		store:    deps.Store,
		cache:    deps.Cache,
		hub:      deps.Hub,
		cacheTTL: deps.CacheTTL,
		locks:    &clubLocks{},
	}
	return &Services{
		Clubs:   newClubService(base, scouting.NewEngine(deps.Random), deps.Logger.WithField("component", "clubs")),
		Lineups: newLineupService(base, deps.Logger.WithField("component", "lineups")),
	}
}

// clubLocks serializes writes per club.
type clubLocks struct {
	locks sync.Map
}

func (c *clubLocks) lock(clubID string) func() {
	m, _ := c.locks.LoadOrStore(clubID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// base holds what both services share.
type base struct {
	store    *store.Store
	cache    *CacheService
	hub      Broadcaster
	cacheTTL time.Duration
	locks    *clubLocks
}

func (b *base) getClub(ctx context.Context, clubID string) (*store.Club, error) {
	club, err := b.store.GetClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("club %s: %w", clubID, err)
	}
	return club, nil
}

// clubEntry scopes a service logger to one club.
func clubEntry(log *logrus.Entry, clubID string, sport models.Sport) *logrus.Entry {
	return log.WithFields(logrus.Fields{"club_id": clubID, "sport": string(sport)})
}

func (b *base) broadcast(clubID, eventType string, data interface{}) {
	if b.hub != nil {
		b.hub.BroadcastToClub(clubID, eventType, data)
	}
}

// Cache failures never fail a request; they are logged and the store stays the source
// of truth.

func (b *base) cacheSet(ctx context.Context, log *logrus.Entry, key string, value interface{}) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Set(ctx, key, value, b.cacheTTL); err != nil {
		log.WithError(err).WithField("key", key).Warn("Failed to cache snapshot")
	}
}

func (b *base) cacheGet(ctx context.Context, log *logrus.Entry, key string, dest interface{}) bool {
	if b.cache == nil {
		return false
	}
	err := b.cache.Get(ctx, key, dest)
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		log.WithError(err).WithField("key", key).Warn("Failed to read cached snapshot")
	}
	return err == nil
}

func (b *base) cacheDelete(ctx context.Context, log *logrus.Entry, keys ...string) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Delete(ctx, keys...); err != nil {
		log.WithError(err).WithField("keys", keys).Warn("Failed to invalidate snapshot")
	}
}
