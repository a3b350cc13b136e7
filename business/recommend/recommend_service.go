package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"herbalMart/domain"
	"herbalMart/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

// CatalogRepository supplies the full product collection for a scoring
// call. The engine does no pagination or filtering pushdown; the snapshot
// is loaded wholesale.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// ProfileRepository reads stored customer profiles so authenticated calls
// can fall back to profile gender/age when the request omits them.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type Service struct {
	catalogRepo CatalogRepository
	profileRepo ProfileRepository // optional
	engine      *Engine
	prefsKey    string
}

func NewService(
	catalogRepo CatalogRepository,
	profileRepo ProfileRepository,
	engine *Engine,
	prefsKey string,
) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
		engine:      engine,
		prefsKey:    prefsKey,
	}
}

func (s *Service) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	catalog, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// Personalized runs the weighted scorer over the current catalog.
func (s *Service) Personalized(
	ctx context.Context,
	prefs domain.UserPreferences,
	limit int,
) ([]domain.RecommendationScore, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.Recommend(catalog, prefs, limit), nil
}

// PersonalizedForUser fills gender and age from the stored profile when the
// request leaves them empty, then scores as Personalized does.
func (s *Service) PersonalizedForUser(
	ctx context.Context,
	userID uint,
	prefs domain.UserPreferences,
	limit int,
) ([]domain.RecommendationScore, error) {
	if s.profileRepo != nil && userID != 0 {
		user, err := s.profileRepo.FindByID(ctx, userID)
		if err != nil {
			logger.Warn("failed to load profile for recommendations", "user_id", userID, "error", err)
		} else {
			if prefs.Gender == "" && user.Gender != "" {
				prefs.Gender = user.Gender
			}
			if prefs.Age == nil && user.Age > 0 {
				age := user.Age
				prefs.Age = &age
			}
		}
	}

	return s.Personalized(ctx, prefs, limit)
}

// Similar returns products similar to the given product id.
func (s *Service) Similar(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	target, err := s.findTarget(ctx, productID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.SimilarProducts(target, catalog, limit), nil
}

// Complementary returns products that pair with the given product id.
func (s *Service) Complementary(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	target, err := s.findTarget(ctx, productID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.ComplementaryProducts(target, catalog, limit), nil
}

// Bundles returns buy-together suggestions for the given product id.
func (s *Service) Bundles(ctx context.Context, productID string) ([]domain.Bundle, error) {
	target, err := s.findTarget(ctx, productID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.BundleSuggestions(target, catalog), nil
}

// Search runs the weighted text search over the catalog.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.SmartSearch(catalog, query, limit), nil
}

// Trending returns the highest-momentum in-stock products.
func (s *Service) Trending(ctx context.Context, limit int) ([]domain.Product, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.TrendingProducts(catalog, limit), nil
}

// ByConcern filters the catalog to products addressing a health concern.
func (s *Service) ByConcern(ctx context.Context, concern string) ([]domain.Product, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.ProductsByConcern(catalog, concern), nil
}

func (s *Service) findTarget(ctx context.Context, productID string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	target, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	return target, nil
}

// EncodePreferences packs a preference set into an opaque token so
// anonymous clients can replay it without a session. AES-CBC over the JSON
// encoding, then base64.
func (s *Service) EncodePreferences(prefs domain.UserPreferences) (string, error) {
	data, err := json.Marshal(prefs)
	if err != nil {
		return "", fmt.Errorf("marshal preferences: %w", err)
	}

	encrypted, err := goshortcute.AESCBCEncrypt(data, []byte(s.prefsKey))
	if err != nil {
		return "", fmt.Errorf("encrypt preferences: %w", err)
	}

	return goshortcute.StringtoBase64Encode(encrypted), nil
}

// DecodePreferences reverses EncodePreferences.
func (s *Service) DecodePreferences(token string) (domain.UserPreferences, error) {
	decoded := goshortcute.StringtoBase64Decode(token)

	decrypted, err := goshortcute.AESCBCDecrypt([]byte(decoded), []byte(s.prefsKey))
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("decrypt preferences: %w", err)
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal([]byte(decrypted), &prefs); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return prefs, nil
}
