package users

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/kprajapati/tracker/cache"
	"github.com/kprajapati/tracker/model"
)

// Store wraps a Querier with read-through caches keyed by id, email and a
// canonical encoding of list parameters. Point lookups also cache known
// misses (a nil user) so repeated probes for a deleted account stay cheap.
// Create seeds the point caches and clears the list cache wholesale, since
// the set of list keys a new user affects is unbounded.
type Store struct {
	queries Querier
	ttl     time.Duration
	byID    *cache.Cache[*model.User]
	byEmail *cache.Cache[*model.User]
	list    *cache.Cache[listResult]
}

type listResult struct {
	items []model.User
	total int64
}

func NewStore(queries Querier, ttl time.Duration) *Store {
	return &Store{
		queries: queries,
		ttl:     ttl,
		byID:    cache.New[*model.User](),
		byEmail: cache.New[*model.User](),
		list:    cache.New[listResult](),
	}
}

func (s *Store) Create(ctx context.Context, params CreateParams) (model.User, error) {
	user, err := s.queries.Create(ctx, params)
	if err != nil {
		return model.User{}, err
	}
	created := user
	s.byID.Set(user.ID, &created, s.ttl)
	s.byEmail.Set(user.Email, &created, s.ttl)
	s.list.Clear()
	return user, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*model.User, error) {
	if user, ok := s.byID.Get(id); ok {
		return user, nil
	}
	user, err := s.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.byID.Set(id, user, s.ttl)
	if user != nil {
		s.byEmail.Set(user.Email, user, s.ttl)
	}
	return user, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if user, ok := s.byEmail.Get(email); ok {
		return user, nil
	}
	user, err := s.queries.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	s.byEmail.Set(email, user, s.ttl)
	if user != nil {
		s.byID.Set(user.ID, user, s.ttl)
	}
	return user, nil
}

// ExistsByEmail is uncached: it guards registration against duplicates and
// must always observe committed state.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.queries.ExistsByEmail(ctx, email)
}

func (s *Store) ListByOrgIDs(ctx context.Context, params ListParams) ([]model.User, int64, error) {
	key := listCacheKey(params)
	if cached, ok := s.list.Get(key); ok {
		return cached.items, cached.total, nil
	}
	items, total, err := s.queries.ListByOrgIDs(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	s.list.Set(key, listResult{items: items, total: total}, s.ttl)
	return items, total, nil
}

// listCacheKey canonicalizes list parameters so that structurally equal
// queries share an entry regardless of org id order.
func listCacheKey(params ListParams) string {
	orgIDs := append([]string(nil), params.OrgIDs...)
	sort.Strings(orgIDs)
	key, _ := json.Marshal(struct {
		OrgIDs []string `json:"org_ids"`
		Search string   `json:"search"`
		Page   int32    `json:"page"`
		Limit  int32    `json:"limit"`
	}{orgIDs, params.Search, params.Page, params.Limit})
	return string(key)
}
