package catalog

import (
	"context"
	"errors"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ToggleOutcome reports what a favorite toggle did
type ToggleOutcome string

const (
	FavoriteAdded   ToggleOutcome = "added"
	FavoriteRemoved ToggleOutcome = "removed"
)

// FavoriteService manages user product bookmarks
type FavoriteService struct {
	favorites catalog.FavoriteRepository
	products  catalog.ProductRepository
	logger    *zap.Logger
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(
	favorites catalog.FavoriteRepository,
	products catalog.ProductRepository,
	logger *zap.Logger,
) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		products:  products,
		logger:    logger,
	}
}

// Toggle flips favorite membership for the (user, product) pair.
// An existing favorite is deleted, a missing one is created.
func (s *FavoriteService) Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleOutcome, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return "", err
	}

	existing, err := s.favorites.Find(ctx, userID, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return "", err
	}

	if existing != nil {
		if err := s.favorites.Delete(ctx, existing.ID); err != nil {
			return "", err
		}
		return FavoriteRemoved, nil
	}

	if err := s.favorites.Save(ctx, catalog.NewFavorite(userID, productID)); err != nil {
		return "", err
	}
	return FavoriteAdded, nil
}

// List returns the products the user has favorited
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]catalog.Product, error) {
	favorites, err := s.favorites.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(favorites))
	for i := range favorites {
		products = append(products, favorites[i].Product)
	}
	return products, nil
}
