package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

type OrderDetail struct {
	ID         uint                 `json:"id"`
	TotalPrice decimal.Decimal      `json:"totalPrice"`
	UserID     uint                 `json:"userId"`
	PaymentID  *uint                `json:"paymentId,omitempty"`
	Items      []entity.OrderedItem `json:"items"`
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrder(orderID)
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, TotalPrice: o.TotalPrice, UserID: o.UserID, PaymentID: o.PaymentID,
		Items: items,
	}, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, TotalPrice: o.TotalPrice, UserID: o.UserID, PaymentID: o.PaymentID,
		Items: items,
	}, nil
}

// ListForUser returns the user's ordered-item rows flattened across orders.
func (s *OrderService) ListForUser(userID uint) ([]entity.OrderedItem, error) {
	return s.Repo.ListOrderedItemsForUser(userID)
}

func (s *OrderService) ListAll() ([]entity.OrderedItem, error) {
	return s.Repo.ListAllOrderedItems()
}

func (s *OrderService) Total(orderID uint) (decimal.Decimal, error) {
	return s.Repo.TotalPrice(orderID)
}

type AdminOrderUpdate struct {
	TotalPrice *decimal.Decimal `json:"totalPrice"`
	PaymentID  *uint            `json:"paymentId"`
}

// AdminUpdate overwrites order fields without recomputing or cascading to the
// ordered items.
func (s *OrderService) AdminUpdate(orderID uint, in *AdminOrderUpdate) error {
	updates := map[string]any{}
	if in.TotalPrice != nil {
		updates["total_price"] = *in.TotalPrice
	}
	if in.PaymentID != nil {
		updates["payment_id"] = *in.PaymentID
	}
	if len(updates) == 0 {
		return apperr.Invalidf("no fields to update")
	}
	return s.Repo.UpdateOrder(orderID, updates)
}

func (s *OrderService) AdminDelete(orderID uint) error {
	return s.Repo.DeleteOrder(orderID)
}
