package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fragenspiel/internal/demo"
	"fragenspiel/internal/model"
)

// maxUpdateRetries bounds the optimistic-lock retry loop in Update. The
// compare-and-set guarantees some writer commits on every conflict, so a
// single update can only be bumped by that many competing commits.
const maxUpdateRetries = 64

// sessionCache is a Redis-backed demo.Store. Sessions are stored as JSON
// under demo:<token> with the idle timeout as key TTL, so Redis itself
// plays the role of the expiry sweeper: every touch refreshes the TTL and
// an idle session simply disappears.
type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a Redis-backed session store. A non-positive
// idle timeout falls back to the default.
func NewSessionCache(client *redis.Client, idleTimeout time.Duration) demo.Store {
	if idleTimeout <= 0 {
		idleTimeout = demo.DefaultIdleTimeout
	}
	return &sessionCache{
		client: client,
		ttl:    idleTimeout,
	}
}

func (c *sessionCache) key(token string) string {
	return "demo:" + token
}

func (c *sessionCache) Create(ctx context.Context) (string, error) {
	session := demo.NewSession(uuid.NewString(), time.Now())
	if err := c.save(ctx, session); err != nil {
		return "", err
	}
	return session.Token, nil
}

func (c *sessionCache) Validate(ctx context.Context, token string) (bool, error) {
	// EXPIRE doubles as existence check and idle-timer refresh.
	ok, err := c.client.Expire(ctx, c.key(token), c.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (c *sessionCache) View(ctx context.Context, token string, fn func(*model.DemoSession) error) error {
	session, err := c.load(ctx, token)
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return err
	}
	// The key TTL is the authoritative idle clock, so reads only refresh
	// the TTL; the stored payload stays as written.
	return c.client.Expire(ctx, c.key(token), c.ttl).Err()
}

// Update runs fn against the session under an optimistic lock. The key is
// WATCHed across load and save, so a concurrent write aborts the
// transaction and the whole load-mutate-save cycle retries against the
// fresh state. Writes to one session therefore never clobber each other,
// matching the memory store's per-session serialization.
func (c *sessionCache) Update(ctx context.Context, token string, fn func(*model.DemoSession) error) error {
	key := c.key(token)

	for i := 0; i < maxUpdateRetries; i++ {
		err := c.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Result()
			if err == redis.Nil {
				return demo.ErrSessionNotFound
			}
			if err != nil {
				return err
			}

			var session model.DemoSession
			if err := json.Unmarshal([]byte(data), &session); err != nil {
				return err
			}

			session.Touch(time.Now())
			if err := fn(&session); err != nil {
				return err
			}

			payload, err := json.Marshal(&session)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, payload, c.ttl)
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return redis.TxFailedErr
}

func (c *sessionCache) Close() error {
	// The Redis client is owned by main.
	return nil
}

func (c *sessionCache) load(ctx context.Context, token string) (*model.DemoSession, error) {
	data, err := c.client.Get(ctx, c.key(token)).Result()
	if err == redis.Nil {
		return nil, demo.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session model.DemoSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) save(ctx context.Context, session *model.DemoSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.Token), data, c.ttl).Err()
}
