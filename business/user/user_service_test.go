package user

import (
	"context"
	"errors"
	"testing"

	"herbalMart/domain"
	"herbalMart/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	utils.InitJWT("test-secret")

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, domain.User{
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Password: "supersecret",
		Gender:   domain.GenderFemale,
		Age:      31,
	})
	require.NoError(t, err)
	assert.Equal(t, "customer", created.Role)
	assert.Empty(t, created.Password, "hash must not leak")

	token, user, err := svc.Login(ctx, "asha@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Empty(t, user.Password)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.User{Email: "asha@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.User{Email: "asha@example.com", Password: "othersecret"})
	require.Error(t, err)
	assert.Equal(t, "email already registered", err.Error())
}

func TestUserService_LoginBadCredentials(t *testing.T) {
	utils.InitJWT("test-secret")

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.User{Email: "asha@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// wrong password and unknown email report the same error
	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "incorrect email or password", err.Error())

	_, _, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	require.Error(t, err)
	assert.Equal(t, "incorrect email or password", err.Error())
}
