package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/usecases"
)

func TestUserCouponUsecase_ListMine(t *testing.T) {
	claims := new(MockUserCouponRepository)
	uc := usecases.NewUserCouponUsecase(claims, new(MockCouponRepository))

	userID := uuid.New()
	claims.On("ListByUser", mock.Anything, userID).Return([]entities.ClaimedCoupon{
		{Title: "九折券", RestaurantName: "好食堂"},
	}, nil)

	items, err := uc.ListMine(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "好食堂", items[0].RestaurantName)
}

func TestUserCouponUsecase_Delete(t *testing.T) {
	claims := new(MockUserCouponRepository)
	uc := usecases.NewUserCouponUsecase(claims, new(MockCouponRepository))

	claimID := uuid.New()
	userID := uuid.New()
	claims.On("DeleteByIDAndUser", mock.Anything, claimID, userID).Return(nil).Once()
	require.NoError(t, uc.Delete(context.Background(), claimID, userID))

	claims.On("DeleteByIDAndUser", mock.Anything, claimID, userID).Return(domainerrors.ErrNotFound).Once()
	require.ErrorIs(t, uc.Delete(context.Background(), claimID, userID), domainerrors.ErrNotFound)
}

func TestUserCouponUsecase_MarkUsed(t *testing.T) {
	claims := new(MockUserCouponRepository)
	coupons := new(MockCouponRepository)
	uc := usecases.NewUserCouponUsecase(claims, coupons)

	user := merchantUser(entities.RoleMerchant)
	claimID := uuid.New()
	couponID := uuid.New()
	claim := &entities.UserCoupon{ID: claimID, UserID: uuid.New(), CouponID: couponID}

	claims.On("GetByID", mock.Anything, claimID).Return(claim, nil)
	coupons.On("GetByID", mock.Anything, couponID).Return(&entities.Coupon{ID: couponID, RestaurantID: user.RestaurantID.UUID}, nil)
	claims.On("SetUsed", mock.Anything, claimID, true).Return(nil).Once()

	require.NoError(t, uc.MarkUsed(context.Background(), user, claimID, true))
	claims.AssertExpectations(t)
}

func TestUserCouponUsecase_MarkUsed_Guards(t *testing.T) {
	claims := new(MockUserCouponRepository)
	coupons := new(MockCouponRepository)
	uc := usecases.NewUserCouponUsecase(claims, coupons)

	claimID := uuid.New()

	// plain users cannot redeem claims
	err := uc.MarkUsed(context.Background(), &entities.User{Role: entities.RoleUser}, claimID, true)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	// missing claim: unscoped lookup, 404
	user := merchantUser(entities.RoleMerchant)
	claims.On("GetByID", mock.Anything, claimID).Return(nil, domainerrors.ErrNotFound).Once()
	err = uc.MarkUsed(context.Background(), user, claimID, true)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// claim of another restaurant's coupon: 403 after lookup
	couponID := uuid.New()
	claims.On("GetByID", mock.Anything, claimID).Return(&entities.UserCoupon{ID: claimID, CouponID: couponID}, nil).Once()
	coupons.On("GetByID", mock.Anything, couponID).Return(&entities.Coupon{ID: couponID, RestaurantID: uuid.New()}, nil).Once()
	err = uc.MarkUsed(context.Background(), user, claimID, true)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
