package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/cache"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
)

// CatalogService serves the menu and backs the admin CRUD over foods and
// categories. Storefront reads go through the Redis cache; every admin
// mutation invalidates it.
type CatalogService struct {
	foods      repository.FoodRepository
	categories repository.CategoryRepository
	cache      cache.MenuCache
	sfg        singleflight.Group // Prevents cache stampede
	log        *slog.Logger
}

func NewCatalogService(foods repository.FoodRepository, categories repository.CategoryRepository, menuCache cache.MenuCache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		foods:      foods,
		categories: categories,
		cache:      menuCache,
		log:        log,
	}
}

// Menu returns the catalog filtered by category slug and a free-text query
// over name and description. Filtering happens in memory over the cached
// full catalog, the same way the menu page filters.
func (s *CatalogService) Menu(ctx context.Context, category, query string) ([]domain.FoodItem, error) {
	items, err := s.allFoods(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" && category != "all" {
		filtered := make([]domain.FoodItem, 0, len(items))
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered := make([]domain.FoodItem, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Description), q) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return items, nil
}

// allFoods loads the full catalog through the cache, collapsing concurrent
// misses into a single MongoDB read.
func (s *CatalogService) allFoods(ctx context.Context) ([]domain.FoodItem, error) {
	v, err, _ := s.sfg.Do("menu", func() (interface{}, error) {
		items, err := s.cache.Get(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("menu cache get failed", "error", err)
		}

		items, err = s.foods.List(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.Set(context.Background(), items); err != nil {
				s.log.Warn("menu cache set failed", "error", err)
			}
		}()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.FoodItem), nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// FoodInput carries the admin food form fields.
type FoodInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PriceHalf   *float64 `json:"price_half,omitempty"`
	PriceFull   float64  `json:"price_full"`
	Image       string   `json:"image"`
	IsAvailable bool     `json:"is_available"`
}

func validateFood(in FoodInput) error {
	if !minLen(in.Name, 2) {
		return invalidf("name must be at least 2 characters")
	}
	if in.Category == "" {
		return invalidf("category is required")
	}
	if !minLen(in.Description, 10) {
		return invalidf("description must be at least 10 characters")
	}
	if in.PriceFull < 1 {
		return invalidf("full price is required")
	}
	if in.PriceHalf != nil && *in.PriceHalf <= 0 {
		return invalidf("half price must be positive")
	}
	if !validURL(in.Image) {
		return invalidf("invalid image URL")
	}
	return nil
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	return s.foods.List(ctx)
}

func (s *CatalogService) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	return s.foods.GetByID(ctx, id)
}

func (s *CatalogService) CreateFood(ctx context.Context, in FoodInput) (*domain.FoodItem, error) {
	if err := validateFood(in); err != nil {
		return nil, err
	}

	item := &domain.FoodItem{
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Price:       domain.Price{Half: in.PriceHalf, Full: in.PriceFull},
		Image:       in.Image,
		IsAvailable: in.IsAvailable,
	}
	if err := s.foods.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return item, nil
}

func (s *CatalogService) UpdateFood(ctx context.Context, id string, in FoodInput) (*domain.FoodItem, error) {
	if err := validateFood(in); err != nil {
		return nil, err
	}

	item, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Category = in.Category
	item.Description = strings.TrimSpace(in.Description)
	item.Price = domain.Price{Half: in.PriceHalf, Full: in.PriceFull}
	item.Image = in.Image
	item.IsAvailable = in.IsAvailable

	if err := s.foods.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return item, nil
}

func (s *CatalogService) DeleteFood(ctx context.Context, id string) error {
	if err := s.foods.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

// CategoryInput carries the admin category form fields. An empty slug is
// auto-derived from the name.
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (in *CategoryInput) normalize() error {
	if !minLen(in.Name, 2) {
		return invalidf("name must be at least 2 characters")
	}
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}
	if !minLen(in.Slug, 2) {
		return invalidf("slug must be at least 2 characters")
	}
	return nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	category := &domain.Category{Name: strings.TrimSpace(in.Name), Slug: in.Slug}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(in.Name)
	category.Slug = in.Slug

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx)
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

func (s *CatalogService) invalidateMenu(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("menu cache invalidate failed", "error", err)
	}
}
