// Package cache provides a small redis read-through cache for day schedules.
// The calendar reloads the same day many times while a receptionist works; the
// appointment list for (salon, day) is cached and dropped on every mutation.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/glowdesk/salon-scheduler/internal/models"
)

const dayTTL = 2 * time.Minute

type ScheduleCache struct {
	rdb *redis.Client
	log *logrus.Entry
}

// New returns a cache backed by redisURL, or a disabled cache when the URL is
// empty or unparsable. A disabled cache is safe to call; every lookup misses.
func New(redisURL string, log *logrus.Entry) *ScheduleCache {
	if redisURL == "" {
		return &ScheduleCache{log: log}
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.WithError(err).Warn("cache: bad REDIS_URL, running without cache")
		return &ScheduleCache{log: log}
	}
	return &ScheduleCache{rdb: redis.NewClient(opts), log: log}
}

func (c *ScheduleCache) Enabled() bool {
	return c.rdb != nil
}

func dayKey(salonID string, day time.Time) string {
	return "schedule:" + salonID + ":" + day.Format("2006-01-02")
}

// GetDay returns the cached appointment list for (salon, day), or ok=false on
// a miss. Cache errors degrade to a miss; the database stays authoritative.
func (c *ScheduleCache) GetDay(ctx context.Context, salonID string, day time.Time) ([]models.Appointment, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, dayKey(salonID, day)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Debug("cache: get failed")
		}
		return nil, false
	}
	var aps []models.Appointment
	if err := json.Unmarshal(raw, &aps); err != nil {
		return nil, false
	}
	return aps, true
}

func (c *ScheduleCache) SetDay(ctx context.Context, salonID string, day time.Time, aps []models.Appointment) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(aps)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, dayKey(salonID, day), raw, dayTTL).Err(); err != nil {
		c.log.WithError(err).Debug("cache: set failed")
	}
}

// InvalidateSalon drops every cached day for the salon after a mutation.
func (c *ScheduleCache) InvalidateSalon(ctx context.Context, salonID string) {
	if c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, "schedule:"+salonID+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.WithError(err).Debug("cache: del failed")
		}
	}
}
