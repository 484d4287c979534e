package services

import (
	"context"
	"errors"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
)

type failingGateway struct{}

func (failingGateway) CreateIntent(amount decimal.Decimal, currency string) (*PaymentIntent, error) {
	return nil, errors.New("gateway unreachable")
}

func TestCheckoutTotalsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	burger := seedMenuItem(t, db, "Burger", "5.00")
	soda := seedMenuItem(t, db, "Soda", "3.00")
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	// burger x2, soda x1
	for _, in := range []*AddToCartIn{
		{MenuItemID: burger.ID}, {MenuItemID: burger.ID}, {MenuItemID: soda.ID},
	} {
		if err := cartSvc.Add(u.ID, in); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	out, err := svc.Checkout(context.Background(), u.ID, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if out.OrderID == 0 {
		t.Fatal("expected an order id")
	}
	if want := decimal.RequireFromString("13.00"); !out.Total.Equal(want) {
		t.Errorf("expected total %s, got %s", want, out.Total)
	}

	var order entity.Order
	if err := db.First(&order, out.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if !order.TotalPrice.Equal(out.Total) {
		t.Errorf("stored total %s != returned total %s", order.TotalPrice, out.Total)
	}

	var items []entity.OrderedItem
	if err := db.Where("order_id = ?", out.OrderID).Order("id ASC").Find(&items).Error; err != nil {
		t.Fatalf("load ordered items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 ordered items, got %d", len(items))
	}
	if items[0].Quantity != 2 || !items[0].Price.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("burger snapshot wrong: qty=%d price=%s", items[0].Quantity, items[0].Price)
	}
	if items[1].Quantity != 1 || !items[1].Price.Equal(decimal.RequireFromString("3.00")) {
		t.Errorf("soda snapshot wrong: qty=%d price=%s", items[1].Quantity, items[1].Price)
	}

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}
	if !sum.Equal(order.TotalPrice) {
		t.Errorf("ordered items sum %s != order total %s", sum, order.TotalPrice)
	}

	var left int64
	db.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&left)
	if left != 0 {
		t.Errorf("cart must be empty after checkout, %d rows left", left)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	out, err := svc.Checkout(context.Background(), u.ID, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !out.Total.IsZero() {
		t.Errorf("expected zero total, got %s", out.Total)
	}

	var items int64
	db.Model(&entity.OrderedItem{}).Where("order_id = ?", out.OrderID).Count(&items)
	if items != 0 {
		t.Errorf("expected no ordered items, got %d", items)
	}
}

func TestCheckoutUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	_, err := svc.Checkout(context.Background(), 42, nil)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckoutByCartID(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Burger", "5.00")
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	if err := cartSvc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := svc.CheckoutCart(context.Background(), cart.ID, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var order entity.Order
	if err := db.First(&order, out.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.UserID != u.ID {
		t.Errorf("order owner %d, expected %d", order.UserID, u.ID)
	}

	if _, err := svc.CheckoutCart(context.Background(), cart.ID+99, nil); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown cart, got %v", err)
	}
}

func TestSnapshotSurvivesMenuPriceChange(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Burger", "5.00")
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	if err := cartSvc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := svc.Checkout(context.Background(), u.ID, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// the menu moves on; the order must not
	if err := db.Model(&entity.MenuItem{}).Where("id = ?", m.ID).
		Update("price", decimal.RequireFromString("50.00")).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}

	var item entity.OrderedItem
	if err := db.Where("order_id = ?", out.OrderID).First(&item).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := decimal.RequireFromString("10.00"); !item.Price.Equal(want) {
		t.Errorf("snapshot price drifted: expected %s, got %s", want, item.Price)
	}
}

func TestCheckoutRecordsPayment(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Burger", "5.00")
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	if err := cartSvc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := svc.Checkout(context.Background(), u.ID, &CheckoutIn{
		CardHolderName: "A Customer",
		CardNumber:     "4242424242424242",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var order entity.Order
	if err := db.First(&order, out.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.PaymentID == nil {
		t.Fatal("expected order to reference its payment")
	}

	var p entity.Payment
	if err := db.First(&p, *order.PaymentID).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if p.OrderID != order.ID || p.UserID != u.ID {
		t.Errorf("payment mislinked: %+v", p)
	}
	if p.Reference == "" {
		t.Error("expected a gateway reference")
	}
	if p.CardLast4 != "4242" {
		t.Errorf("expected last4 4242, got %q", p.CardLast4)
	}
	if !p.Amount.Equal(out.Total) {
		t.Errorf("payment amount %s != order total %s", p.Amount, out.Total)
	}
}

func TestCheckoutRollsBackOnGatewayFailure(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Burger", "5.00")
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, failingGateway{})

	if err := cartSvc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := svc.Checkout(context.Background(), u.ID, &CheckoutIn{CardHolderName: "A Customer"})
	if !errors.Is(err, apperr.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	// nothing of the failed checkout may remain, and the cart is intact
	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("expected no orders after rollback, got %d", orders)
	}
	var snapshots int64
	db.Model(&entity.OrderedItem{}).Count(&snapshots)
	if snapshots != 0 {
		t.Errorf("expected no ordered items after rollback, got %d", snapshots)
	}
	var items int64
	db.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&items)
	if items != 1 {
		t.Errorf("cart must be untouched after rollback, got %d rows", items)
	}

	// retry succeeds once the gateway recovers
	svc.Gateway = NewStubGateway("test-key")
	if _, err := svc.Checkout(context.Background(), u.ID, &CheckoutIn{CardHolderName: "A Customer"}); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, NewStubGateway("test-key"))

	intent, err := svc.CreatePaymentIntent(decimal.RequireFromString("12.34"))
	if err != nil {
		t.Fatalf("intent: %v", err)
	}
	if intent.ID == "" || intent.ClientSecret == "" {
		t.Errorf("incomplete intent: %+v", intent)
	}

	if _, err := svc.CreatePaymentIntent(decimal.RequireFromString("-1")); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected ErrInvalid for negative amount, got %v", err)
	}
}
