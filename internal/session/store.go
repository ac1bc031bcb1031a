package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/config"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/models"
	"github.com/go-redis/redis/v8"
)

// State is the per-call conversation memory shared by all agent workers
// handling the same session.
type State struct {
	ContactNumber string              `json:"contact_number"`
	Name          string              `json:"name"`
	Preferences   []string            `json:"preferences"`
	BookedSlots   []models.BookedSlot `json:"booked_slots"`
}

func (s *State) AddPreference(pref string) {
	if pref == "" {
		return
	}
	s.Preferences = append(s.Preferences, pref)
}

func (s *State) AddBookedSlot(slotDate, slotTime string) {
	s.BookedSlots = append(s.BookedSlots, models.BookedSlot{
		Date: slotDate,
		Time: slotTime,
	})
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(cfg *config.Config) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &Store{
		rdb: rdb,
		ttl: time.Duration(cfg.SessionTTLMin) * time.Minute,
	}
}

func key(sessionID string) string {
	return fmt.Sprintf("session:%s:state", sessionID)
}

// Get returns the stored state, or an empty state when the session has
// no entry yet. A missing key is not an error.
func (s *Store) Get(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &State{}, nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sessionID), raw, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
