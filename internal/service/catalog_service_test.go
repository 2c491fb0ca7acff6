package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/cache"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
)

type mockMenuCache struct {
	mu            sync.Mutex
	items         []domain.FoodItem
	filled        bool
	sets          int
	invalidations int
}

func (m *mockMenuCache) Get(context.Context) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.filled {
		return nil, cache.ErrCacheMiss
	}
	return m.items, nil
}

func (m *mockMenuCache) Set(_ context.Context, items []domain.FoodItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.filled = true
	m.sets++
	return nil
}

func (m *mockMenuCache) Invalidate(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.filled = false
	m.invalidations++
	return nil
}

func (m *mockMenuCache) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func (m *mockMenuCache) invalidationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.invalidations
}

type mockCategoryRepository struct {
	categories map[string]*domain.Category
}

func (m *mockCategoryRepository) List(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepository) GetByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCategoryRepository) Insert(_ context.Context, category *domain.Category) error {
	for _, c := range m.categories {
		if c.Slug == category.Slug {
			return repository.ErrSlugTaken
		}
	}
	if category.ID == "" {
		category.ID = category.Slug
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) Update(_ context.Context, category *domain.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func newTestCatalogService() (*CatalogService, *mockMenuCache) {
	menuCache := &mockMenuCache{}
	categories := &mockCategoryRepository{categories: map[string]*domain.Category{
		"burgers": {ID: "burgers", Name: "Burgers", Slug: "burgers"},
	}}
	return NewCatalogService(testCatalog(), categories, menuCache, testLogger()), menuCache
}

func TestMenu_CacheMissFallsThroughAndFills(t *testing.T) {
	svc, menuCache := newTestCatalogService()

	items, err := svc.Menu(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// The cache fill happens off the request path.
	require.Eventually(t, func() bool {
		return menuCache.setCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMenu_ServedFromCache(t *testing.T) {
	svc, menuCache := newTestCatalogService()

	cached := []domain.FoodItem{{ID: "cached", Name: "Cached Pizza", Category: "pizza", IsAvailable: true}}
	require.NoError(t, menuCache.Set(context.Background(), cached))

	items, err := svc.Menu(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cached Pizza", items[0].Name)
}

func TestMenu_FiltersByCategoryAndQuery(t *testing.T) {
	svc, _ := newTestCatalogService()
	ctx := context.Background()

	items, err := svc.Menu(ctx, "burgers", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Classic Burger", items[0].Name)

	items, err = svc.Menu(ctx, "", "chaumin")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Vegetable Chaumin", items[0].Name)

	items, err = svc.Menu(ctx, "all", "no such dish")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateFood_Validation(t *testing.T) {
	svc, _ := newTestCatalogService()

	valid := FoodInput{
		Name:        "Paneer Tikka",
		Category:    "snacks",
		Description: "Chargrilled cottage cheese with peppers",
		PriceFull:   9.49,
		Image:       "https://example.com/paneer.jpg",
		IsAvailable: true,
	}

	tests := []struct {
		name   string
		mutate func(*FoodInput)
	}{
		{"short name", func(in *FoodInput) { in.Name = "P" }},
		{"missing category", func(in *FoodInput) { in.Category = "" }},
		{"short description", func(in *FoodInput) { in.Description = "too short" }},
		{"zero full price", func(in *FoodInput) { in.PriceFull = 0 }},
		{"negative half price", func(in *FoodInput) { neg := -1.0; in.PriceHalf = &neg }},
		{"bad image url", func(in *FoodInput) { in.Image = "not-a-url" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := svc.CreateFood(context.Background(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	item, err := svc.CreateFood(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, "Paneer Tikka", item.Name)
}

func TestFoodMutations_InvalidateMenuCache(t *testing.T) {
	svc, menuCache := newTestCatalogService()
	ctx := context.Background()

	half := 4.99
	item, err := svc.CreateFood(ctx, FoodInput{
		Name:        "Masala Fries",
		Category:    "snacks",
		Description: "Fries tossed in house masala",
		PriceHalf:   &half,
		PriceFull:   7.99,
		Image:       "https://example.com/fries.jpg",
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, menuCache.invalidationCount())

	in := FoodInput{
		Name:        "Masala Fries",
		Category:    "snacks",
		Description: "Fries tossed in house masala",
		PriceFull:   8.49,
		Image:       "https://example.com/fries.jpg",
		IsAvailable: false,
	}
	_, err = svc.UpdateFood(ctx, item.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 2, menuCache.invalidationCount())

	require.NoError(t, svc.DeleteFood(ctx, item.ID))
	assert.Equal(t, 3, menuCache.invalidationCount())
}

func TestCreateCategory_SlugDerivedFromName(t *testing.T) {
	svc, _ := newTestCatalogService()

	category, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "Momo & Dumplings"})
	require.NoError(t, err)
	assert.Equal(t, "momo-dumplings", category.Slug)
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	svc, _ := newTestCatalogService()

	_, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "Burgers"})
	assert.ErrorIs(t, err, repository.ErrSlugTaken)
}
