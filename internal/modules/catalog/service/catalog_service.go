package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"haverfit/internal/modules/catalog/domain"
	catalogout "haverfit/internal/modules/catalog/port/out"
	apperrors "haverfit/internal/platform/errors"
	"haverfit/internal/platform/logging"
)

var errNoIndex = errors.New("food index is not configured")

// CatalogService loads the food table once and serves every later lookup
// from memory. Added foods go to the store and to the in-memory catalog;
// the index catches up on its next search.
type CatalogService struct {
	store   catalogout.FoodStore
	index   catalogout.FoodIndex
	catalog *domain.Catalog
}

func NewCatalogService(store catalogout.FoodStore, index catalogout.FoodIndex) *CatalogService {
	return &CatalogService{store: store, index: index}
}

func (s *CatalogService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	if s.catalog != nil {
		return s.catalog, nil
	}
	foods, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := domain.NewCatalog(foods)
	if err != nil {
		return nil, err
	}
	s.catalog = catalog
	return catalog, nil
}

// Add assigns the next user label to draft and persists it. The label of
// draft is ignored.
func (s *CatalogService) Add(ctx context.Context, draft domain.Food) (domain.Food, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.Food{}, err
	}
	food := draft
	food.Name = strings.TrimSpace(food.Name)
	food.Label = catalog.NextLabel()
	if err := food.Validate(); err != nil {
		return domain.Food{}, err
	}
	if catalog.Has(food.Label) {
		return domain.Food{}, fmt.Errorf("food label %s is already taken: %w", food.Label, apperrors.ErrInvalidInput)
	}
	if err := s.store.Append(ctx, food); err != nil {
		return domain.Food{}, err
	}
	if err := catalog.Append(food); err != nil {
		return domain.Food{}, err
	}
	return food, nil
}

// Search queries the index, rebuilding it first when its row count no
// longer matches the table. The table is append-only, so a count mismatch
// is the only way the two drift apart.
func (s *CatalogService) Search(ctx context.Context, query domain.FoodQuery) ([]domain.Food, error) {
	if s.index == nil {
		return nil, errNoIndex
	}
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.index.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n != catalog.Len() {
		logging.FromContext(ctx).Debug("food index stale", "indexed", n, "foods", catalog.Len())
		if err := s.rebuild(ctx, catalog); err != nil {
			return nil, err
		}
	}
	return s.index.Search(ctx, query)
}

// Reindex rebuilds the index from the store, dropping any cached catalog.
func (s *CatalogService) Reindex(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, errNoIndex
	}
	s.catalog = nil
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.rebuild(ctx, catalog); err != nil {
		return 0, err
	}
	return catalog.Len(), nil
}

func (s *CatalogService) rebuild(ctx context.Context, catalog *domain.Catalog) error {
	if err := s.index.Reset(ctx); err != nil {
		return err
	}
	for _, food := range catalog.All() {
		if err := s.index.UpsertFood(ctx, food); err != nil {
			return err
		}
	}
	return nil
}
