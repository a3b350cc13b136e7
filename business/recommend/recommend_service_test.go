package recommend

import (
	"context"
	"errors"
	"testing"

	"herbalMart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefsKey = "0123456789abcdef0123456789abcdef"

type fakeCatalogRepo struct {
	products []domain.Product
	calls    int
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	f.calls++
	return f.products, nil
}

func (f *fakeCatalogRepo) FindByID(ctx context.Context, id string) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errors.New("product not found")
}

type fakeProfileRepo struct {
	users map[uint]domain.User
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return user, nil
}

func newTestService(products []domain.Product, profiles map[uint]domain.User) *Service {
	return NewService(
		&fakeCatalogRepo{products: products},
		&fakeProfileRepo{users: profiles},
		newTestEngine(),
		testPrefsKey,
	)
}

func TestService_PersonalizedForUser_MergesProfile(t *testing.T) {
	womens := hairOilProduct()
	womens.Category = "Women's Health"

	svc := newTestService(
		[]domain.Product{womens},
		map[uint]domain.User{7: {ID: 7, Gender: domain.GenderFemale, Age: 34}},
	)

	recs, err := svc.PersonalizedForUser(context.Background(), 7, domain.UserPreferences{}, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// gender filled from the profile: 10 + 10 + 5 + 20
	assert.Equal(t, 45.0, recs[0].Score)
	assert.Contains(t, recs[0].Reasons, "Specially formulated for women")
}

func TestService_PersonalizedForUser_RequestWins(t *testing.T) {
	womens := hairOilProduct()
	womens.Category = "Women's Health"

	svc := newTestService(
		[]domain.Product{womens},
		map[uint]domain.User{7: {ID: 7, Gender: domain.GenderFemale}},
	)

	// explicit request gender is not overwritten by the profile
	recs, err := svc.PersonalizedForUser(context.Background(), 7, domain.UserPreferences{Gender: domain.GenderMale}, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 25.0, recs[0].Score)
}

func TestService_PersonalizedForUser_UnknownUser(t *testing.T) {
	svc := newTestService([]domain.Product{hairOilProduct()}, map[uint]domain.User{})

	// a missing profile degrades to anonymous scoring, not an error
	recs, err := svc.PersonalizedForUser(context.Background(), 99, domain.UserPreferences{}, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestService_Similar_UnknownProduct(t *testing.T) {
	svc := newTestService([]domain.Product{hairOilProduct()}, nil)

	_, err := svc.Similar(context.Background(), "nope", 0)
	require.Error(t, err)
	assert.Equal(t, "product not found", err.Error())
}

func TestService_Bundles(t *testing.T) {
	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	shampoo := catalogProduct("shampoo", "Hair Care", "Shampoos")
	mask := catalogProduct("mask", "Hair Care", "Hair Masks")

	svc := newTestService([]domain.Product{target, shampoo, mask}, nil)

	bundles, err := svc.Bundles(context.Background(), "oil")
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	require.Len(t, bundles[0].Products, 3)
	assert.Equal(t, "oil", bundles[0].Products[0].ID)
}

func TestService_CancelledContext(t *testing.T) {
	svc := newTestService([]domain.Product{hairOilProduct()}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Personalized(ctx, domain.UserPreferences{}, 0)
	assert.Error(t, err)
}

func TestService_PreferencesTokenRoundTrip(t *testing.T) {
	svc := newTestService(nil, nil)

	age := 29
	prefs := domain.UserPreferences{
		Categories: []string{"Hair Care", "Skin Care"},
		PriceRange: &domain.PriceRange{Min: 100, Max: 900},
		Concerns:   []string{"hair fall"},
		Age:        &age,
		Gender:     domain.GenderFemale,
	}

	token, err := svc.EncodePreferences(prefs)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := svc.DecodePreferences(token)
	require.NoError(t, err)
	assert.Equal(t, prefs, decoded)
}
