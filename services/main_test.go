package services

import (
	"path/filepath"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database through the production stack.
// File-backed (not :memory:) so concurrent connections in the concurrency
// tests contend the way they would in deployment.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderedItem{},
		&entity.Payment{},
		&entity.Review{},
		&entity.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUserWithCart(t *testing.T, db *gorm.DB, email string) (*entity.User, *entity.Cart) {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: "customer"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	c := &entity.Cart{UserID: u.ID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	return u, c
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price string) *entity.MenuItem {
	t.Helper()
	cat := &entity.Category{Name: "cat-" + name, Description: "test"}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	m := &entity.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
		CategoryID:  cat.ID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newCheckoutService(db *gorm.DB, gw PaymentGateway) *CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		gw,
		0,
	)
}
