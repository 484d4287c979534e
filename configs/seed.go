package configs

import (
	"log"

	"backend/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin account
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	// admins get a cart too; registration does the same for customers
	return db.Create(&entity.Cart{UserID: admin.ID}).Error
}

// Starter catalog so a fresh database has something to order
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "Appetizers", Description: "Start your meal off right with one of our delicious appetizers!"},
		{Name: "Mains", Description: "Hearty plates for the main event."},
		{Name: "Drinks", Description: "Something to wash it all down."},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{
			Name:        "Cheeseburger",
			Description: "Our classic cheeseburger with your choice of toppings!",
			Price:       decimal.NewFromFloat(9.99),
			ImageURL:    "https://via.placeholder.com/150",
			IsAvailable: true,
			CategoryID:  categories[1].ID,
		},
		{
			Name:        "Mozzarella Sticks",
			Description: "Golden fried and served with marinara.",
			Price:       decimal.NewFromFloat(5.49),
			ImageURL:    "https://via.placeholder.com/150",
			IsAvailable: true,
			CategoryID:  categories[0].ID,
		},
		{
			Name:        "Lemonade",
			Description: "Fresh squeezed.",
			Price:       decimal.NewFromFloat(2.99),
			ImageURL:    "https://via.placeholder.com/150",
			IsAvailable: true,
			CategoryID:  categories[2].ID,
		},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("catalog seeded")
	return nil
}
