package services

import (
	"errors"
	"sync"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
)

func TestAddMergesRepeatedItem(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Cheeseburger", "9.99")
	svc := newCartService(db)

	for i := 0; i < 3; i++ {
		if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	var items []entity.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", items[0].Quantity)
	}
	want := decimal.RequireFromString("29.97")
	if !items[0].Price.Equal(want) {
		t.Errorf("expected price %s, got %s", want, items[0].Price)
	}
}

func TestAddWithQuantity(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Lemonade", "2.99")
	svc := newCartService(db)

	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}

	c, subtotal, err := svc.Get(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 5 {
		t.Fatalf("expected one row with quantity 5, got %+v", c.Items)
	}
	want := decimal.RequireFromString("14.95")
	if !subtotal.Equal(want) {
		t.Errorf("expected subtotal %s, got %s", want, subtotal)
	}
}

func TestAddKeepsExactDecimalPrice(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Iced Tea", "4.35")
	svc := newCartService(db)

	// 3 x 4.35 lands on a value a float64 product cannot represent exactly
	for i := 0; i < 3; i++ {
		if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	var item entity.CartItem
	if err := db.Where("cart_id = ?", cart.ID).First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	want := decimal.RequireFromString("13.05")
	if !item.Price.Equal(want) {
		t.Errorf("price drift: want %s, got %s", want, item.Price)
	}

	_, subtotal, err := svc.Get(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !subtotal.Equal(want) {
		t.Errorf("subtotal drift: want %s, got %s", want, subtotal)
	}
}

func TestAddNegativeQuantity(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Lemonade", "2.99")
	svc := newCartService(db)

	err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID, Qty: -1})
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	svc := newCartService(db)

	err := svc.Add(u.ID, &AddToCartIn{MenuItemID: 999})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddByName(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Mozzarella Sticks", "5.49")
	svc := newCartService(db)

	if err := svc.Add(u.ID, &AddToCartIn{Name: "Mozzarella Sticks"}); err != nil {
		t.Fatalf("add by name: %v", err)
	}

	var item entity.CartItem
	if err := db.Where("cart_id = ?", cart.ID).First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	if item.MenuItemID != m.ID {
		t.Errorf("expected menu item %d, got %d", m.ID, item.MenuItemID)
	}

	if err := svc.Add(u.ID, &AddToCartIn{Name: "Nope"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown name, got %v", err)
	}
}

func TestAddToCartByID(t *testing.T) {
	db := newTestDB(t)
	_, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Cheeseburger", "9.99")
	svc := newCartService(db)

	if err := svc.AddToCart(cart.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddToCart(cart.ID+1, &AddToCartIn{MenuItemID: m.ID}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown cart, got %v", err)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Cheeseburger", "9.99")
	svc := newCartService(db)

	// removing a pair that was never added is not an error
	if err := svc.RemoveItem(u.ID, m.ID); err != nil {
		t.Fatalf("remove absent pair: %v", err)
	}

	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(u.ID, m.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveItem(u.ID, m.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	var count int64
	db.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected empty cart, got %d rows", count)
	}
}

func TestRemoveThenReAdd(t *testing.T) {
	db := newTestDB(t)
	u, _ := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Cheeseburger", "9.99")
	svc := newCartService(db)

	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(u.ID, m.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// must not trip over the (cart, item) unique index
	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID}); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	c, _, err := svc.Get(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
		t.Fatalf("expected fresh single-quantity row, got %+v", c.Items)
	}
}

func TestRemoveAndClearWithoutCart(t *testing.T) {
	db := newTestDB(t)
	u := &entity.User{Email: "nocart@example.com", Password: "x", Role: "customer"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := newCartService(db)

	if err := svc.RemoveItem(u.ID, 1); err != nil {
		t.Fatalf("remove without cart: %v", err)
	}
	if err := svc.Clear(u.ID); err != nil {
		t.Fatalf("clear without cart: %v", err)
	}

	// neither call may conjure a cart into existence
	var carts int64
	db.Model(&entity.Cart{}).Where("user_id = ?", u.ID).Count(&carts)
	if carts != 0 {
		t.Errorf("expected no cart row, got %d", carts)
	}
}

func TestClearKeepsCartRow(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m1 := seedMenuItem(t, db, "Cheeseburger", "9.99")
	m2 := seedMenuItem(t, db, "Lemonade", "2.99")
	svc := newCartService(db)

	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m1.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(u.ID, &AddToCartIn{MenuItemID: m2.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(u.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var items int64
	db.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&items)
	if items != 0 {
		t.Errorf("expected no items after clear, got %d", items)
	}
	var carts int64
	db.Model(&entity.Cart{}).Where("id = ?", cart.ID).Count(&carts)
	if carts != 1 {
		t.Errorf("cart row must survive a clear")
	}
}

func TestConcurrentAddsSamePair(t *testing.T) {
	db := newTestDB(t)
	u, cart := seedUserWithCart(t, db, "a@example.com")
	m := seedMenuItem(t, db, "Cheeseburger", "9.99")
	svc := newCartService(db)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Add(u.ID, &AddToCartIn{MenuItemID: m.ID})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent add: %v", err)
		}
	}

	var item entity.CartItem
	if err := db.Where("cart_id = ?", cart.ID).First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}
	if item.Quantity != n {
		t.Errorf("lost update: expected quantity %d, got %d", n, item.Quantity)
	}
	want := decimal.RequireFromString("9.99").Mul(decimal.NewFromInt(n))
	if !item.Price.Equal(want) {
		t.Errorf("expected price %s, got %s", want, item.Price)
	}
}
