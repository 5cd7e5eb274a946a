package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/infrastructure/metrics"
)

// renewalWindowDays is how close to expiry a subscription must be before a
// renewal order may be prepared.
const renewalWindowDays = 7

// BillingUsecase prepares subscription payment orders. The subscription
// itself is created elsewhere once payment is confirmed.
type BillingUsecase struct {
	subscriptions repositories.SubscriptionRepository
	orders        repositories.PaymentOrderRepository
}

// NewBillingUsecase creates a new billing usecase
func NewBillingUsecase(
	subscriptions repositories.SubscriptionRepository,
	orders repositories.PaymentOrderRepository,
) *BillingUsecase {
	return &BillingUsecase{subscriptions: subscriptions, orders: orders}
}

// PrepareOrder creates an unpaid payment order for the user, rejecting
// renewals attempted more than 7 days before the active subscription ends.
func (u *BillingUsecase) PrepareOrder(ctx context.Context, userID uuid.UUID, input *entities.PaymentOrderInput) (*entities.PaymentOrder, error) {
	today := dateOf(time.Now())

	latest, err := u.subscriptions.LatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if latest != nil {
		endedAt := dateOf(latest.EndedAt)
		if !endedAt.Before(today) {
			daysRemaining := int(endedAt.Sub(today).Hours() / 24)
			if daysRemaining > renewalWindowDays {
				metrics.IncPaymentOrder("rejected")
				return nil, domainerrors.BadRequest(
					fmt.Sprintf("尚未到期，目前剩餘 %d 天，請於到期前 7 日內續訂。", daysRemaining))
			}
		}
	}

	order := &entities.PaymentOrder{
		ID:        uuid.New(),
		OrderID:   newOrderID(today),
		UserID:    userID,
		Product:   input.Product,
		Amount:    input.Amount,
		Method:    input.Method,
		IsPaid:    false,
		CreatedAt: time.Now(),
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	metrics.IncPaymentOrder("prepared")
	return order, nil
}

// newOrderID builds an order identifier of the form
// order_<YYYYMMDD>_<8 hex chars>.
func newOrderID(today time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("order_%s_%s", today.Format("20060102"), suffix)
}
