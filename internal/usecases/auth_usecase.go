package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/pkg/crypto"
	"eathub.backend/pkg/jwt"
	"eathub.backend/pkg/redis"
)

const loginFailedMessage = "帳號或是密碼錯誤，請重新輸入。"

// AuthUsecase handles signup, login and session lifecycle
type AuthUsecase struct {
	users       repositories.UserRepository
	restaurants repositories.RestaurantRepository
	uow         repositories.UnitOfWork
	jwtService  *jwt.Service
	tokens      *redis.TokenStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	users repositories.UserRepository,
	restaurants repositories.RestaurantRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.Service,
	tokens *redis.TokenStore,
) *AuthUsecase {
	return &AuthUsecase{
		users:       users,
		restaurants: restaurants,
		uow:         uow,
		jwtService:  jwtService,
		tokens:      tokens,
	}
}

// LoginResult carries everything the login handler needs to build the
// response: the user, the JWT pair and the opaque cookie token.
type LoginResult struct {
	User         *entities.User
	TokenPair    *jwt.TokenPair
	SessionToken string
}

// Signup registers a regular account
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, error) {
	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        input.Email,
		UserName:     input.UserName,
		PasswordHash: hash,
		Role:         entities.RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.BadRequest("此信箱已被註冊")
		}
		return nil, err
	}
	return user, nil
}

// MerchantSignup registers a merchant account together with its restaurant.
// Both rows are written in one transaction.
func (u *AuthUsecase) MerchantSignup(ctx context.Context, input *entities.MerchantSignupInput) (*entities.User, error) {
	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	restaurant := &entities.Restaurant{
		ID:        uuid.New(),
		Name:      input.RestaurantName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if input.Address != "" {
		restaurant.Address = null.StringFrom(input.Address)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        input.Email,
		UserName:     input.UserName,
		PasswordHash: hash,
		Role:         entities.RoleMerchant,
		RestaurantID: uuid.NullUUID{UUID: restaurant.ID, Valid: true},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.restaurants.Create(txCtx, restaurant); err != nil {
			return err
		}
		return u.users.Create(txCtx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.BadRequest("此信箱已被註冊")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials, stores an opaque session token and issues a
// JWT pair. An unknown email and a wrong password fail with the same
// message but different status codes, matching the platform's behavior.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*LoginResult, error) {
	user, err := u.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(loginFailedMessage)
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized(loginFailedMessage)
	}

	sessionToken, err := u.tokens.Issue(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, TokenPair: pair, SessionToken: sessionToken}, nil
}

// Logout revokes the user's opaque session token
func (u *AuthUsecase) Logout(ctx context.Context, userID string) error {
	return u.tokens.Revoke(ctx, userID)
}

// Me returns the authenticated user's account summary
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("使用者不存在")
		}
		return nil, err
	}
	return user, nil
}
