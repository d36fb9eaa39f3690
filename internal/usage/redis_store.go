package usage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glamai/server/internal/logger"
)

const (
	keyRecord = "usage:record:%s"

	// records only matter for the current day; keep them around a little
	// longer so a client straddling midnight still reads a resettable record
	recordTTL = 48 * time.Hour

	// attempts before giving up on a contended commit
	maxCommitRetries = 10
)

// RedisStore keeps usage records in Redis so they survive server restarts
// and are shared across instances
type RedisStore struct {
	client *redis.Client
}

// creates a usage store backed by Redis
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("usage store connected to redis")

	return &RedisStore{client: client}, nil
}

// creates a store around an existing client (used by tests)
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// flat persisted form of a record
type persistedRecord struct {
	DayKey               string `json:"day_key"`
	DailyCount           int    `json:"daily_count"`
	LastTransformationAt int64  `json:"last_transformation_at"` // epoch millis, 0 = none today
	FirstUsageAt         int64  `json:"first_usage_at"`         // epoch millis
}

// returns the owner's record for today, replacing any stale record from a
// previous day with a fresh one
func (s *RedisStore) Read(ctx context.Context, ownerID string, now time.Time) (*Record, error) {
	key := fmt.Sprintf(keyRecord, ownerID)

	raw, err := s.client.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read usage record: %w", err)
	}

	if err == nil {
		var stored persistedRecord
		if jsonErr := json.Unmarshal([]byte(raw), &stored); jsonErr == nil && stored.DayKey == DayKey(now) {
			return fromPersisted(stored), nil
		}
		// unparseable or stale record falls through to a wholesale reset
	}

	fresh := &Record{
		DayKey:       DayKey(now),
		FirstUsageAt: now,
	}

	if err := s.write(ctx, key, fresh); err != nil {
		return nil, err
	}

	return fresh, nil
}

// increments the daily count and stamps the last transformation time.
// This is the only operation that advances the counters.
//
// Commits from other instances can land between the read and the write, so
// the whole round runs under WATCH and retries on conflict.
func (s *RedisStore) RecordSuccess(ctx context.Context, ownerID string, now time.Time) error {
	key := fmt.Sprintf(keyRecord, ownerID)

	commit := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read usage record: %w", err)
		}

		record := &Record{
			DayKey:       DayKey(now),
			FirstUsageAt: now,
		}

		if err == nil {
			var stored persistedRecord
			if jsonErr := json.Unmarshal([]byte(raw), &stored); jsonErr == nil && stored.DayKey == DayKey(now) {
				record = fromPersisted(stored)
			}
			// unparseable or stale record is replaced wholesale, same as Read
		}

		record.DailyCount++
		record.LastTransformationAt = now

		payload, err := json.Marshal(toPersisted(record))
		if err != nil {
			return fmt.Errorf("failed to marshal usage record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, recordTTL)
			return nil
		})

		return err
	}

	for i := 0; i < maxCommitRetries; i++ {
		err := s.client.Watch(ctx, commit, key)
		if err == nil {
			return nil
		}

		if errors.Is(err, redis.TxFailedErr) {
			// another instance committed first; re-read and try again
			continue
		}

		return fmt.Errorf("failed to write usage record: %w", err)
	}

	return fmt.Errorf("failed to write usage record for %s: too much contention", ownerID)
}

func (s *RedisStore) write(ctx context.Context, key string, record *Record) error {
	payload, err := json.Marshal(toPersisted(record))
	if err != nil {
		return fmt.Errorf("failed to marshal usage record: %w", err)
	}

	if err := s.client.Set(ctx, key, payload, recordTTL).Err(); err != nil {
		return fmt.Errorf("failed to write usage record: %w", err)
	}

	return nil
}

func toPersisted(r *Record) persistedRecord {
	p := persistedRecord{
		DayKey:       r.DayKey,
		DailyCount:   r.DailyCount,
		FirstUsageAt: r.FirstUsageAt.UnixMilli(),
	}

	if !r.LastTransformationAt.IsZero() {
		p.LastTransformationAt = r.LastTransformationAt.UnixMilli()
	}

	return p
}

func fromPersisted(p persistedRecord) *Record {
	r := &Record{
		DayKey:       p.DayKey,
		DailyCount:   p.DailyCount,
		FirstUsageAt: time.UnixMilli(p.FirstUsageAt),
	}

	if p.LastTransformationAt != 0 {
		r.LastTransformationAt = time.UnixMilli(p.LastTransformationAt)
	}

	return r
}
