package otp

import (
	"encoding/json"
	"fmt"
	"partyinbangalore-backend/codec"
	"sync"
	"time"

	"github.com/go-redis/redis"
)

// Challenge is the pending verification state for one phone number. A
// number holds at most one challenge; a new request overwrites it.
type Challenge struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
	Attempts int       `json:"attempts"`
}

type ChallengeStore interface {
	Put(phone string, ch Challenge) error
	Get(phone string) (Challenge, bool, error)
	Delete(phone string) error
}

type redisStore struct {
	client *redis.Client
	key    []byte
}

// NewRedisStore keeps challenges in redis with the TTL as a backstop; the
// service still checks IssuedAt itself. Codes are encrypted at rest with
// a key derived from the server secret.
func NewRedisStore(client *redis.Client, secret string) ChallengeStore {
	return &redisStore{client: client, key: codec.Key(secret)}
}

func (s *redisStore) Put(phone string, ch Challenge) error {
	raw, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("put: error marshalling challenge: %w", err)
	}

	sealed, err := codec.Encrypt(s.key, raw)
	if err != nil {
		return fmt.Errorf("put: error encrypting challenge: %w", err)
	}

	err = s.client.Set(redisKey(phone), sealed, TTL).Err()
	if err != nil {
		return fmt.Errorf("put: unable to save challenge for %s: %w", phone, err)
	}
	return nil
}

func (s *redisStore) Get(phone string) (Challenge, bool, error) {
	sealed, err := s.client.Get(redisKey(phone)).Result()
	if err == redis.Nil {
		return Challenge{}, false, nil
	}
	if err != nil {
		return Challenge{}, false, fmt.Errorf("get: unable to read challenge for %s: %w", phone, err)
	}

	raw, err := codec.Decrypt(s.key, sealed)
	if err != nil {
		return Challenge{}, false, fmt.Errorf("get: error decrypting challenge: %w", err)
	}

	var ch Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return Challenge{}, false, fmt.Errorf("get: error unmarshalling challenge: %w", err)
	}
	return ch, true, nil
}

func (s *redisStore) Delete(phone string) error {
	if err := s.client.Del(redisKey(phone)).Err(); err != nil {
		return fmt.Errorf("delete: unable to delete challenge for %s: %w", phone, err)
	}
	return nil
}

func redisKey(phone string) string {
	return fmt.Sprintf("otp-%s", phone)
}

type memoryStore struct {
	mu         sync.Mutex
	challenges map[string]Challenge
}

// NewMemoryStore backs the same contract with a map, for tests and
// redis-less deployments.
func NewMemoryStore() ChallengeStore {
	return &memoryStore{challenges: map[string]Challenge{}}
}

func (s *memoryStore) Put(phone string, ch Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[phone] = ch
	return nil
}

func (s *memoryStore) Get(phone string) (Challenge, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[phone]
	return ch, ok, nil
}

func (s *memoryStore) Delete(phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, phone)
	return nil
}
