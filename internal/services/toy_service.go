package services

import (
	"context"
	"fmt"

	"toystore/internal/domain"
)

// ToyStore is the single-collection storage contract. Get returns nil
// without error for an unknown id; malformed ids wrap domain.ErrInvalidID.
type ToyStore interface {
	Name() string
	Ping(ctx context.Context) error
	List(ctx context.Context, q domain.ListQuery) ([]domain.Toy, error)
	ListPhotos(ctx context.Context, q domain.ListQuery) ([]domain.PhotoLink, error)
	Find(ctx context.Context, f domain.Filter, limit int) ([]domain.Toy, error)
	Get(ctx context.Context, id string) (*domain.Toy, error)
	Insert(ctx context.Context, t domain.Toy) (domain.InsertResult, error)
	Update(ctx context.Context, t domain.Toy) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	EnsureNameIndex(ctx context.Context) error
	SearchByName(ctx context.Context, keyword string) ([]domain.Toy, error)
}

type ToyService struct {
	Store ToyStore
}

func NewToyService(store ToyStore) *ToyService {
	return &ToyService{Store: store}
}

func (s *ToyService) StoreName() string { return s.Store.Name() }

func (s *ToyService) Ping(ctx context.Context) error { return s.Store.Ping(ctx) }

// List returns toys ordered by price. An explicit limit of 0 yields nothing.
func (s *ToyService) List(ctx context.Context, q domain.ListQuery) ([]domain.Toy, error) {
	if q.Limit != nil && *q.Limit == 0 {
		return []domain.Toy{}, nil
	}
	return s.Store.List(ctx, q)
}

func (s *ToyService) ListPhotos(ctx context.Context, q domain.ListQuery) ([]domain.PhotoLink, error) {
	if q.Limit != nil && *q.Limit == 0 {
		return []domain.PhotoLink{}, nil
	}
	return s.Store.ListPhotos(ctx, q)
}

func (s *ToyService) ByCategory(ctx context.Context, f domain.Filter) ([]domain.Toy, error) {
	return s.Store.Find(ctx, f, domain.CategoryLimit)
}

func (s *ToyService) Owned(ctx context.Context, f domain.Filter) ([]domain.Toy, error) {
	return s.Store.Find(ctx, f, 0)
}

// Search makes sure the toyName index exists, then matches keyword as a
// case-insensitive substring. An empty keyword matches every toy.
func (s *ToyService) Search(ctx context.Context, keyword string) ([]domain.Toy, error) {
	if err := s.Store.EnsureNameIndex(ctx); err != nil {
		return nil, fmt.Errorf("ensure %s index: %w", domain.SearchIndexName, err)
	}
	return s.Store.SearchByName(ctx, keyword)
}

func (s *ToyService) Get(ctx context.Context, id string) (*domain.Toy, error) {
	return s.Store.Get(ctx, id)
}

func (s *ToyService) Create(ctx context.Context, t domain.Toy) (domain.InsertResult, error) {
	return s.Store.Insert(ctx, t)
}

// Update merges p onto the stored toy and writes the result back. The read
// and the write are separate operations; concurrent updates race and the
// last write wins.
func (s *ToyService) Update(ctx context.Context, id string, p domain.ToyPatch) (domain.UpdateResult, error) {
	existing, err := s.Store.Get(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if existing == nil {
		return domain.UpdateResult{}, fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	return s.Store.Update(ctx, domain.Merge(*existing, p))
}

func (s *ToyService) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return s.Store.Delete(ctx, id)
}
