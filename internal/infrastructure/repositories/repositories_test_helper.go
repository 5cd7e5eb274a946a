package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUsersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		user_name TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_vip BOOLEAN NOT NULL DEFAULT 0,
		restaurant_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createRestaurantsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE restaurants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCouponTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE coupons (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		terms TEXT NOT NULL,
		is_archived BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE user_coupons (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		coupon_id TEXT NOT NULL,
		is_used BOOLEAN NOT NULL DEFAULT 0,
		used_at DATETIME,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE UNIQUE INDEX idx_user_coupon ON user_coupons(user_id, coupon_id);`)
}

func createPromotionsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE promotions (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		is_archived BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSubscriptionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE subscriptions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		product TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE payment_orders (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		product TEXT NOT NULL,
		amount INTEGER NOT NULL,
		method TEXT NOT NULL,
		is_paid BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}
