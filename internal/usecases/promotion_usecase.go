package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/infrastructure/metrics"
	"eathub.backend/pkg/utils"
)

// PromotionUsecase handles promotion business logic
type PromotionUsecase struct {
	promotions repositories.PromotionRepository
	uow        repositories.UnitOfWork
}

// NewPromotionUsecase creates a new promotion usecase
func NewPromotionUsecase(
	promotions repositories.PromotionRepository,
	uow repositories.UnitOfWork,
) *PromotionUsecase {
	return &PromotionUsecase{promotions: promotions, uow: uow}
}

// Create creates a promotion for the caller's restaurant. Exceeding the
// quota is a 400 with a localized message, unlike the coupon flow's 403.
func (u *PromotionUsecase) Create(ctx context.Context, user *entities.User, input *entities.PromotionCreateInput) (*entities.Promotion, error) {
	if !user.Role.IsMerchant() {
		return nil, domainerrors.Forbidden("此帳戶無建立動態權限")
	}
	if !user.RestaurantID.Valid {
		return nil, domainerrors.Forbidden("帳戶未綁定餐廳")
	}

	promotion := &entities.Promotion{
		ID:           utils.GenerateUUIDv7(),
		RestaurantID: user.RestaurantID.UUID,
		Title:        input.Title,
		Content:      input.Content,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		count, err := u.promotions.CountActive(txCtx, user.RestaurantID.UUID)
		if err != nil {
			return err
		}
		if decision := EvaluatePromotionCreate(user, count); !decision.Allowed {
			msg := fmt.Sprintf("%s 最多只能建立 %d 則動態", PromotionRoleLabel(user), decision.Limit)
			return domainerrors.BadRequest(msg)
		}
		return u.promotions.Create(txCtx, promotion)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			metrics.IncEntitlementDenial("promotion")
		}
		return nil, err
	}
	return promotion, nil
}

// Detail returns a non-archived promotion, checking ownership after the
// lookup.
func (u *PromotionUsecase) Detail(ctx context.Context, user *entities.User, promotionID uuid.UUID) (*entities.Promotion, error) {
	promotion, err := u.promotions.GetActive(ctx, promotionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("動態不存在")
		}
		return nil, err
	}
	if !user.RestaurantID.Valid || user.RestaurantID.UUID != promotion.RestaurantID {
		return nil, domainerrors.Forbidden("無權限查看此動態")
	}
	return promotion, nil
}

// Archive flips the promotion's archived flag through a restaurant-scoped
// lookup.
func (u *PromotionUsecase) Archive(ctx context.Context, user *entities.User, promotionID uuid.UUID) error {
	if !user.Role.IsMerchant() {
		return domainerrors.Forbidden("此帳戶無封存動態權限")
	}
	if !user.RestaurantID.Valid {
		return domainerrors.BadRequest("帳戶未綁定餐廳")
	}
	if err := u.promotions.Archive(ctx, promotionID, user.RestaurantID.UUID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("動態不存在")
		}
		return err
	}
	return nil
}
