package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService converts a cart's current contents into a durable order.
// Order creation, item snapshotting, payment recording and cart clearing run
// as one transaction: either the whole checkout lands or none of it does.
type CheckoutService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Gateway   PaymentGateway
	Timeout   time.Duration
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	gateway PaymentGateway,
	timeout time.Duration,
) *CheckoutService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CheckoutService{
		DB:        db,
		CartRepo:  cartRepo,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Gateway:   gateway,
		Timeout:   timeout,
	}
}

type CheckoutIn struct {
	CardHolderName string `json:"cardHolderName"`
	CardNumber     string `json:"cardNumber"` // only the last four digits are stored
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
}

type CheckoutOut struct {
	OrderID uint            `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}

// Checkout places an order from the user's cart.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	ok, err := s.UserRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("user %d", userID)
	}
	cartID, err := s.UserRepo.CartIDByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.checkout(ctx, cartID, userID, in)
}

// CheckoutCart places an order directly from a cart id.
func (s *CheckoutService) CheckoutCart(ctx context.Context, cartID uint, in *CheckoutIn) (*CheckoutOut, error) {
	cart, err := s.CartRepo.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	return s.checkout(ctx, cart.ID, cart.UserID, in)
}

func (s *CheckoutService) checkout(ctx context.Context, cartID, userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	var out CheckoutOut
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.GetItemsForUpdate(tx, cartID)
		if err != nil {
			return err
		}

		// totals come from the snapshot prices already on the lines,
		// not a fresh catalog lookup
		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Price)
		}

		// an empty cart still produces a zero-total order
		order := entity.Order{UserID: userID, TotalPrice: total}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range items {
			oi := entity.OrderedItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      it.Price,
			}
			if err := s.OrderRepo.CreateOrderedItem(tx, &oi); err != nil {
				return err
			}
		}

		if in != nil && in.CardHolderName != "" {
			intent, err := s.Gateway.CreateIntent(total, "usd")
			if err != nil {
				return err
			}
			p := entity.Payment{
				Amount:         total,
				Reference:      intent.ID,
				CardHolderName: in.CardHolderName,
				CardLast4:      last4(in.CardNumber),
				ExpiryMonth:    in.ExpiryMonth,
				ExpiryYear:     in.ExpiryYear,
				UserID:         userID,
				OrderID:        order.ID,
			}
			if err := s.OrderRepo.CreatePayment(tx, &p); err != nil {
				return err
			}
			if err := s.OrderRepo.AttachPayment(tx, order.ID, p.ID); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearCart(tx, cartID); err != nil {
			return err
		}

		out = CheckoutOut{OrderID: order.ID, Total: total}
		return nil
	})
	if err != nil {
		// the transaction has rolled back; no partial checkout survives
		if errors.Is(err, apperr.ErrPersistence) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: checkout: %v", apperr.ErrPersistence, err)
	}
	return &out, nil
}

// CreatePaymentIntent exposes the gateway boundary for clients that collect
// payment before placing the order.
func (s *CheckoutService) CreatePaymentIntent(amount decimal.Decimal) (*PaymentIntent, error) {
	if amount.IsNegative() {
		return nil, apperr.Invalidf("amount %s", amount)
	}
	return s.Gateway.CreateIntent(amount, "usd")
}

func last4(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}
