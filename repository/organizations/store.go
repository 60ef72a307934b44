package organizations

import (
	"context"
	"time"

	"github.com/kprajapati/tracker/cache"
	"github.com/kprajapati/tracker/model"
)

const listAllKey = "all"

// Store wraps a Querier with read-through caches for existence checks,
// children-by-parent lookups and the full listing. Create invalidates the
// keys whose answers it changes: the parent's children entry and the list
// entry. The five-minute TTL bounds staleness if an invalidation is missed.
type Store struct {
	queries  Querier
	ttl      time.Duration
	exists   *cache.Cache[bool]
	children *cache.Cache[[]model.Organization]
	list     *cache.Cache[[]model.Organization]
}

func NewStore(queries Querier, ttl time.Duration) *Store {
	return &Store{
		queries:  queries,
		ttl:      ttl,
		exists:   cache.New[bool](),
		children: cache.New[[]model.Organization](),
		list:     cache.New[[]model.Organization](),
	}
}

func (s *Store) Create(ctx context.Context, params CreateParams) (model.Organization, error) {
	org, err := s.queries.Create(ctx, params)
	if err != nil {
		return model.Organization{}, err
	}
	s.exists.Set(org.ID, true, s.ttl)
	if org.ParentID != nil {
		s.children.Invalidate(*org.ParentID)
	}
	s.list.Invalidate(listAllKey)
	return org, nil
}

// FindByID is uncached: it backs single-record access checks that must not
// observe a stale parent linkage.
func (s *Store) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	return s.queries.FindByID(ctx, id)
}

func (s *Store) ExistsByID(ctx context.Context, id string) (bool, error) {
	if exists, ok := s.exists.Get(id); ok {
		return exists, nil
	}
	exists, err := s.queries.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	s.exists.Set(id, exists, s.ttl)
	return exists, nil
}

func (s *Store) FindChildren(ctx context.Context, parentID string) ([]model.Organization, error) {
	if children, ok := s.children.Get(parentID); ok {
		return children, nil
	}
	children, err := s.queries.FindChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	s.children.Set(parentID, children, s.ttl)
	return children, nil
}

func (s *Store) ListAll(ctx context.Context) ([]model.Organization, error) {
	if orgs, ok := s.list.Get(listAllKey); ok {
		return orgs, nil
	}
	orgs, err := s.queries.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.list.Set(listAllKey, orgs, s.ttl)
	return orgs, nil
}
