package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateRole updates the role of a user
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	var restaurantID uuid.NullUUID
	if m.RestaurantID != nil {
		restaurantID = uuid.NullUUID{UUID: *m.RestaurantID, Valid: true}
	}
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		UserName:     m.UserName,
		FirstName:    null.StringFromPtr(m.FirstName),
		LastName:     null.StringFromPtr(m.LastName),
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		IsVIP:        m.IsVIP,
		RestaurantID: restaurantID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *UserRepository) toModel(e *entities.User) *models.User {
	var restaurantID *uuid.UUID
	if e.RestaurantID.Valid {
		id := e.RestaurantID.UUID
		restaurantID = &id
	}
	return &models.User{
		ID:           e.ID,
		Email:        e.Email,
		UserName:     e.UserName,
		FirstName:    e.FirstName.Ptr(),
		LastName:     e.LastName.Ptr(),
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		IsVIP:        e.IsVIP,
		RestaurantID: restaurantID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// RestaurantRepository implements restaurant data operations
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create creates a new restaurant
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *entities.Restaurant) error {
	m := &models.Restaurant{
		ID:        restaurant.ID,
		Name:      restaurant.Name,
		Address:   restaurant.Address.Ptr(),
		CreatedAt: restaurant.CreatedAt,
		UpdatedAt: restaurant.UpdatedAt,
	}
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	restaurant.CreatedAt = m.CreatedAt
	restaurant.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a restaurant by ID
func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error) {
	var m models.Restaurant
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Restaurant{
		ID:        m.ID,
		Name:      m.Name,
		Address:   null.StringFromPtr(m.Address),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
