package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
)

func TestUserCouponRepository_CreateAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	createCouponTables(t, db)
	repo := NewUserCouponRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	couponID := uuid.New()
	claim := &entities.UserCoupon{
		ID:        uuid.New(),
		UserID:    userID,
		CouponID:  couponID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, claim))

	exists, err := repo.Exists(ctx, userID, couponID)
	require.NoError(t, err)
	require.True(t, exists)

	dup := &entities.UserCoupon{
		ID:        uuid.New(),
		UserID:    userID,
		CouponID:  couponID,
		CreatedAt: time.Now(),
	}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrAlreadyClaimed)

	// same coupon, different user is fine
	other := &entities.UserCoupon{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CouponID:  couponID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, other))
}

func TestUserCouponRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	createCouponTables(t, db)
	repo := NewUserCouponRepository(db)
	ctx := context.Background()

	couponID := uuid.New()
	now := time.Now()
	mustExec(t, db, `INSERT INTO user_coupons(id,user_id,coupon_id,is_used,created_at) VALUES (?,?,?,?,?)`,
		uuid.New().String(), uuid.New().String(), couponID.String(), true, now)
	mustExec(t, db, `INSERT INTO user_coupons(id,user_id,coupon_id,is_used,created_at) VALUES (?,?,?,?,?)`,
		uuid.New().String(), uuid.New().String(), couponID.String(), false, now)

	total, err := repo.CountByCoupon(ctx, couponID)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	used, err := repo.CountUsedByCoupon(ctx, couponID)
	require.NoError(t, err)
	require.EqualValues(t, 1, used)
}

func TestUserCouponRepository_ListByCoupon(t *testing.T) {
	db := newTestDB(t)
	createUsersTable(t, db)
	createCouponTables(t, db)
	repo := NewUserCouponRepository(db)
	ctx := context.Background()

	couponID := uuid.New()
	now := time.Now()
	first := uuid.New()
	second := uuid.New()
	mustExec(t, db, `INSERT INTO users(id,email,user_name,password_hash,role,is_vip,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)`,
		first.String(), "a@example.com", "alice", "x", "user", false, now, now)
	mustExec(t, db, `INSERT INTO users(id,email,user_name,password_hash,role,is_vip,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)`,
		second.String(), "b@example.com", "bob", "x", "user", false, now, now)
	mustExec(t, db, `INSERT INTO user_coupons(id,user_id,coupon_id,is_used,created_at) VALUES (?,?,?,?,?)`,
		uuid.New().String(), second.String(), couponID.String(), false, now)
	mustExec(t, db, `INSERT INTO user_coupons(id,user_id,coupon_id,is_used,created_at) VALUES (?,?,?,?,?)`,
		uuid.New().String(), first.String(), couponID.String(), true, now.Add(-time.Hour))

	usages, err := repo.ListByCoupon(ctx, couponID)
	require.NoError(t, err)
	require.Len(t, usages, 2)
	require.Equal(t, "alice", usages[0].UserName, "oldest claim first")
	require.True(t, usages[0].IsUsed)
	require.Equal(t, "bob", usages[1].UserName)
}

func TestUserCouponRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	createUsersTable(t, db)
	createRestaurantsTable(t, db)
	createCouponTables(t, db)
	repo := NewUserCouponRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	restaurantID := uuid.New()
	couponID := uuid.New()
	now := time.Now()
	mustExec(t, db, `INSERT INTO restaurants(id,name,created_at,updated_at) VALUES (?,?,?,?)`,
		restaurantID.String(), "好食堂", now, now)
	mustExec(t, db, `INSERT INTO coupons(id,restaurant_id,title,terms,is_archived,created_at,updated_at) VALUES (?,?,?,?,?,?,?)`,
		couponID.String(), restaurantID.String(), "九折券", "內用限定", false, now, now)
	mustExec(t, db, `INSERT INTO user_coupons(id,user_id,coupon_id,is_used,created_at) VALUES (?,?,?,?,?)`,
		uuid.New().String(), userID.String(), couponID.String(), false, now)

	items, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, couponID, items[0].CouponID)
	require.Equal(t, "九折券", items[0].Title)
	require.Equal(t, "好食堂", items[0].RestaurantName)
	require.False(t, items[0].IsUsed)

	none, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUserCouponRepository_DeleteByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	createCouponTables(t, db)
	repo := NewUserCouponRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	claim := &entities.UserCoupon{
		ID:        uuid.New(),
		UserID:    userID,
		CouponID:  uuid.New(),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, claim))

	// someone else's scope does not match
	err := repo.DeleteByIDAndUser(ctx, claim.ID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.DeleteByIDAndUser(ctx, claim.ID, userID))

	_, err = repo.GetByID(ctx, claim.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserCouponRepository_SetUsed(t *testing.T) {
	db := newTestDB(t)
	createCouponTables(t, db)
	repo := NewUserCouponRepository(db)
	ctx := context.Background()

	claim := &entities.UserCoupon{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CouponID:  uuid.New(),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, claim))

	require.NoError(t, repo.SetUsed(ctx, claim.ID, true))
	got, err := repo.GetByID(ctx, claim.ID)
	require.NoError(t, err)
	require.True(t, got.IsUsed)
	require.True(t, got.UsedAt.Valid)

	require.NoError(t, repo.SetUsed(ctx, claim.ID, false))
	got, err = repo.GetByID(ctx, claim.ID)
	require.NoError(t, err)
	require.False(t, got.IsUsed)
	require.False(t, got.UsedAt.Valid)

	require.ErrorIs(t, repo.SetUsed(ctx, uuid.New(), true), domainerrors.ErrNotFound)
}
