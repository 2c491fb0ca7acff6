package repository

import (
	"context"
	"errors"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrFoodNotFound       = errors.New("food item not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrSlugTaken          = errors.New("category slug already in use")
)

// CartRepository is the durable mirror of per-client carts.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	Get(ctx context.Context, clientID string) (*domain.Cart, error)
	Upsert(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, clientID string) error
}

type FoodRepository interface {
	List(ctx context.Context) ([]domain.FoodItem, error)
	GetByID(ctx context.Context, id string) (*domain.FoodItem, error)
	Insert(ctx context.Context, item *domain.FoodItem) error
	Update(ctx context.Context, item *domain.FoodItem) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	Insert(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}
