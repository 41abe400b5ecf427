package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/consts/biz"
	"GiftVisionary/app/common/consts/errno"
	"GiftVisionary/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// Conn is the KV surface the store persists through. *redis.Redis satisfies
// it; MemConn backs the single-node default and tests.
type Conn interface {
	GetCtx(ctx context.Context, key string) (string, error)
	SetCtx(ctx context.Context, key, value string) error
}

// MemConn is an in-process Conn for credential-free setups.
type MemConn struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemConn() *MemConn {
	return &MemConn{data: make(map[string]string)}
}

func (m *MemConn) GetCtx(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *MemConn) SetCtx(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// envelope versions the serialized payload so a future schema change can
// migrate instead of corrupting.
type envelope struct {
	Version  int                      `json:"version"`
	Profiles []types.RecipientProfile `json:"profiles"`
}

// ProfileStore owns the recipient profiles under a fixed KV namespace.
// Single logical writer, last write wins.
type ProfileStore struct {
	conn Conn
}

func New(conn Conn) *ProfileStore {
	return &ProfileStore{conn: conn}
}

func (s *ProfileStore) load(ctx context.Context) []types.RecipientProfile {
	raw, err := s.conn.GetCtx(ctx, biz.ProfileNamespace)
	if err != nil {
		logx.WithContext(ctx).Errorf("store: load profiles failed: %v", err)
		return nil
	}
	if raw == "" {
		return nil
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		logx.WithContext(ctx).Errorf("store: corrupt profile payload: %v", err)
		return nil
	}
	if env.Version != biz.ProfilePayloadVersion {
		logx.WithContext(ctx).Errorw("store: unknown profile payload version, starting empty",
			logx.Field("version", env.Version))
		return nil
	}
	return env.Profiles
}

func (s *ProfileStore) save(ctx context.Context, profiles []types.RecipientProfile) error {
	raw, err := json.Marshal(envelope{Version: biz.ProfilePayloadVersion, Profiles: profiles})
	if err != nil {
		return err
	}
	return s.conn.SetCtx(ctx, biz.ProfileNamespace, string(raw))
}

// List returns every recipient profile.
func (s *ProfileStore) List(ctx context.Context) []types.RecipientProfile {
	return s.load(ctx)
}

// Get returns the profile with the given stable id.
func (s *ProfileStore) Get(ctx context.Context, id string) (types.RecipientProfile, error) {
	for _, p := range s.load(ctx) {
		if p.Id == id {
			return p, nil
		}
	}
	return types.RecipientProfile{}, errors.New(errno.ProfileNotFound, "recipient profile not found")
}

// Upsert records a submitted request against its recipient profile. Matching
// order: explicit ProfileId, then nickname unless ForceNew asks for a sibling
// profile. Returns the profile and whether it was created.
func (s *ProfileStore) Upsert(ctx context.Context, req types.GiftRequest) (types.RecipientProfile, bool, error) {
	profiles := s.load(ctx)

	idx := -1
	if req.ProfileId != "" {
		for i := range profiles {
			if profiles[i].Id == req.ProfileId {
				idx = i
				break
			}
		}
	} else if !req.ForceNew {
		for i := range profiles {
			if profiles[i].Nickname == req.Nickname {
				idx = i
				break
			}
		}
	}

	reqCopy := req
	if idx >= 0 {
		profiles[idx].Nickname = req.Nickname
		profiles[idx].Relation = req.Relation
		profiles[idx].LastRequest = &reqCopy
		if err := s.save(ctx, profiles); err != nil {
			return types.RecipientProfile{}, false, err
		}
		return profiles[idx], false, nil
	}

	profile := types.RecipientProfile{
		Id:            snowflake.NextTagged("rp"),
		Nickname:      req.Nickname,
		Relation:      req.Relation,
		SavedProducts: []types.Product{},
		LastRequest:   &reqCopy,
	}
	profiles = append(profiles, profile)
	if err := s.save(ctx, profiles); err != nil {
		return types.RecipientProfile{}, false, err
	}
	return profile, true, nil
}

// ToggleLike adds the product to the recipient's saved list, or removes it if
// already saved. Returns whether the product is saved afterwards.
func (s *ProfileStore) ToggleLike(ctx context.Context, nickname string, product types.Product) (bool, int, error) {
	if strings.TrimSpace(nickname) == "" {
		return false, 0, errors.New(errno.InvalidParam, "nickname is required")
	}

	profiles := s.load(ctx)
	for i := range profiles {
		if profiles[i].Nickname != nickname {
			continue
		}

		saved := profiles[i].SavedProducts
		kept := make([]types.Product, 0, len(saved))
		removed := false
		for _, sp := range saved {
			if sp.Id == product.Id {
				removed = true
				continue
			}
			kept = append(kept, sp)
		}
		liked := false
		if !removed {
			kept = append(kept, product)
			liked = true
		}
		profiles[i].SavedProducts = kept
		if err := s.save(ctx, profiles); err != nil {
			return false, 0, err
		}
		return liked, len(kept), nil
	}
	return false, 0, errors.New(errno.ProfileNotFound, "recipient profile not found")
}

// RemoveFavorite drops one saved product from a profile by stable profile id.
func (s *ProfileStore) RemoveFavorite(ctx context.Context, profileId, productId string) error {
	profiles := s.load(ctx)
	for i := range profiles {
		if profiles[i].Id != profileId {
			continue
		}
		kept := make([]types.Product, 0, len(profiles[i].SavedProducts))
		found := false
		for _, sp := range profiles[i].SavedProducts {
			if sp.Id == productId {
				found = true
				continue
			}
			kept = append(kept, sp)
		}
		if !found {
			return errors.New(errno.ProductNotSaved, "product not in saved list")
		}
		profiles[i].SavedProducts = kept
		return s.save(ctx, profiles)
	}
	return errors.New(errno.ProfileNotFound, "recipient profile not found")
}
