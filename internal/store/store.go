package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

// Persisted keys. Values are JSON.
const (
	KeyProfile = "profile"
	KeyEntries = "entries"
	KeyAuth    = "auth"
	KeyIsAdmin = "isAdmin"
)

var allKeys = []string{KeyProfile, KeyEntries, KeyAuth, KeyIsAdmin}

// Store persists the profile, the ledger, and the session flags of a single
// user. Every save overwrites the whole record; nothing spans two keys
// atomically.
type Store interface {
	LoadProfile(ctx context.Context) (*model.Profile, error)
	SaveProfile(ctx context.Context, p model.Profile) error
	LoadLedger(ctx context.Context) ([]model.Entry, error)
	SaveLedger(ctx context.Context, entries []model.Entry) error
	LoadSession(ctx context.Context) (model.Session, error)
	SaveSession(ctx context.Context, s model.Session) error
	ClearAll(ctx context.Context) error
	Close() error
}

type backend interface {
	get(ctx context.Context, key string) (string, bool, error)
	set(ctx context.Context, key, value string) error
	del(ctx context.Context, keys ...string) error
	close() error
}

// KVStore implements Store on top of a string key/value backend.
type KVStore struct {
	kv backend
}

var _ Store = (*KVStore)(nil)

func (s *KVStore) LoadProfile(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	ok, err := s.getJSON(ctx, KeyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *KVStore) SaveProfile(ctx context.Context, p model.Profile) error {
	return s.setJSON(ctx, KeyProfile, p)
}

func (s *KVStore) LoadLedger(ctx context.Context) ([]model.Entry, error) {
	entries := make([]model.Entry, 0)
	if _, err := s.getJSON(ctx, KeyEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *KVStore) SaveLedger(ctx context.Context, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	return s.setJSON(ctx, KeyEntries, entries)
}

func (s *KVStore) LoadSession(ctx context.Context) (model.Session, error) {
	var out model.Session
	auth, ok, err := s.kv.get(ctx, KeyAuth)
	if err != nil {
		return model.Session{}, fmt.Errorf("load %s: %w", KeyAuth, err)
	}
	if ok {
		method, err := model.ParseAuthMethod(auth)
		if err != nil {
			return model.Session{}, fmt.Errorf("load %s: %w", KeyAuth, err)
		}
		out.Auth = method
	}
	if _, err := s.getJSON(ctx, KeyIsAdmin, &out.IsAdmin); err != nil {
		return model.Session{}, err
	}
	return out, nil
}

func (s *KVStore) SaveSession(ctx context.Context, sess model.Session) error {
	if sess.Auth == "" {
		if err := s.kv.del(ctx, KeyAuth); err != nil {
			return fmt.Errorf("clear %s: %w", KeyAuth, err)
		}
	} else if err := s.kv.set(ctx, KeyAuth, string(sess.Auth)); err != nil {
		return fmt.Errorf("save %s: %w", KeyAuth, err)
	}
	return s.setJSON(ctx, KeyIsAdmin, sess.IsAdmin)
}

// ClearAll removes every key owned by the store. Missing keys are fine.
func (s *KVStore) ClearAll(ctx context.Context) error {
	if err := s.kv.del(ctx, allKeys...); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

func (s *KVStore) Close() error {
	return s.kv.close()
}

func (s *KVStore) getJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.kv.get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *KVStore) setJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
