package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/usecases"
	"eathub.backend/pkg/crypto"
	"eathub.backend/pkg/jwt"
	"eathub.backend/pkg/redis"
)

func setupAuthUsecase(t *testing.T, users *MockUserRepository, restaurants *MockRestaurantRepository, uow *MockUnitOfWork) *usecases.AuthUsecase {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Skipf("miniredis unavailable: %v", err)
	}
	t.Cleanup(mr.Close)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	tokens := redis.NewTokenStore(time.Hour)
	return usecases.NewAuthUsecase(users, restaurants, uow, jwtService, tokens)
}

func TestAuthUsecase_Signup(t *testing.T) {
	users := new(MockUserRepository)
	uc := setupAuthUsecase(t, users, new(MockRestaurantRepository), new(MockUnitOfWork))

	users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	user, err := uc.Signup(context.Background(), &entities.SignupInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleUser, user.Role)
	require.NotEqual(t, "password123", user.PasswordHash)

	users.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()
	_, err = uc.Signup(context.Background(), &entities.SignupInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Status)
}

func TestAuthUsecase_MerchantSignup_BindsRestaurant(t *testing.T) {
	users := new(MockUserRepository)
	restaurants := new(MockRestaurantRepository)
	uow := new(MockUnitOfWork)
	uc := setupAuthUsecase(t, users, restaurants, uow)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	restaurants.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	user, err := uc.MerchantSignup(context.Background(), &entities.MerchantSignupInput{
		UserName:       "owner",
		Email:          "owner@example.com",
		Password:       "password123",
		RestaurantName: "巷口麵店",
		Address:        "台北市",
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleMerchant, user.Role)
	require.True(t, user.RestaurantID.Valid)
}

func TestAuthUsecase_Login(t *testing.T) {
	users := new(MockUserRepository)
	uc := setupAuthUsecase(t, users, new(MockRestaurantRepository), new(MockUnitOfWork))

	hash, err := crypto.HashPassword("correct-password")
	require.NoError(t, err)
	user := merchantUser(entities.RoleMerchant)
	user.Email = "owner@example.com"
	user.PasswordHash = hash

	users.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)
	users.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, domainerrors.ErrNotFound)

	result, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "owner@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.SessionToken)
	require.NotEmpty(t, result.TokenPair.AccessToken)

	// wrong password: 401
	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Email:    "owner@example.com",
		Password: "wrong",
	})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 401, appErr.Status)

	// unknown email: 404, same message
	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}

func TestAuthUsecase_LoginThenLogoutRevokesToken(t *testing.T) {
	users := new(MockUserRepository)
	uc := setupAuthUsecase(t, users, new(MockRestaurantRepository), new(MockUnitOfWork))

	hash, err := crypto.HashPassword("secret-pass")
	require.NoError(t, err)
	user := merchantUser(entities.RoleMerchant)
	user.Email = "a@example.com"
	user.PasswordHash = hash
	users.On("GetByEmail", mock.Anything, "a@example.com").Return(user, nil)

	result, err := uc.Login(context.Background(), &entities.LoginInput{Email: "a@example.com", Password: "secret-pass"})
	require.NoError(t, err)

	tokens := redis.NewTokenStore(time.Hour)
	require.NoError(t, tokens.Validate(context.Background(), user.ID.String(), result.SessionToken))

	require.NoError(t, uc.Logout(context.Background(), user.ID.String()))
	require.ErrorIs(t, tokens.Validate(context.Background(), user.ID.String(), result.SessionToken), redis.ErrTokenNotFound)
}

func TestAuthUsecase_Me(t *testing.T) {
	users := new(MockUserRepository)
	uc := setupAuthUsecase(t, users, new(MockRestaurantRepository), new(MockUnitOfWork))

	user := merchantUser(entities.RoleMerchant)
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()

	got, err := uc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	users.On("GetByID", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Me(context.Background(), user.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
