package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

var sampleProducts = []models.Product{
	{
		SKU:         "GPU-RTX4090",
		Name:        "NVIDIA GeForce RTX 4090",
		Price:       decimal.NewFromInt(1000),
		Category:    models.CategoryGPU,
		Image:       "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=500",
		Description: "Flagship gaming GPU, 24GB GDDR6X, Ada Lovelace architecture",
	},
	{
		SKU:         "GPU-RX7900XTX",
		Name:        "AMD Radeon RX 7900 XTX",
		Price:       decimal.NewFromInt(900),
		Category:    models.CategoryGPU,
		Image:       "https://images.unsplash.com/photo-1591405351990-4726e331f141?w=500",
		Description: "Top-tier AMD GPU, 24GB GDDR6, RDNA 3, 4K gaming",
	},
	{
		SKU:         "PC-IPAD-PRO",
		Name:        "Apple iPad Pro 12.9\" M2",
		Price:       decimal.NewFromInt(1100),
		Category:    models.CategoryComputer,
		Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=500",
		Description: "M2 chip, 12.9-inch Liquid Retina XDR display, 256GB",
	},
	{
		SKU:         "PC-SURFACE-PRO9",
		Name:        "Microsoft Surface Pro 9",
		Price:       decimal.NewFromInt(1200),
		Category:    models.CategoryComputer,
		Image:       "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=500",
		Description: "Intel Core i7, 13-inch PixelSense touchscreen, 16GB RAM",
	},
	{
		SKU:         "NB-MACBOOK-PRO16",
		Name:        "Apple MacBook Pro 16\" M3 Max",
		Price:       decimal.NewFromInt(3500),
		Category:    models.CategoryLaptop,
		Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500",
		Description: "M3 Max chip, 16-inch Liquid Retina XDR, 36GB RAM, 1TB SSD",
	},
	{
		SKU:         "NB-RAZER-BLADE18",
		Name:        "Razer Blade 18 Gaming Laptop",
		Price:       decimal.NewFromInt(4000),
		Category:    models.CategoryLaptop,
		Image:       "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500",
		Description: "Intel i9-13950HX, RTX 4090, 18-inch QHD+ 240Hz, 32GB RAM",
	},
}

// cleanAndSeed wipes every collection and loads the sample catalog plus a
// default admin account (ADMIN_EMAIL / ADMIN_PASSWORD env, with dev
// fallbacks).
func cleanAndSeed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderItem{}, &models.Order{},
			&models.CartItem{}, &models.Cart{},
			&models.Product{}, &models.User{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		for i := range sampleProducts {
			p := sampleProducts[i]
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}

		adminEmail := envOr("ADMIN_EMAIL", "admin@example.com")
		adminPassword := envOr("ADMIN_PASSWORD", "admin1234")
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			ID:       uuid.NewString(),
			Email:    adminEmail,
			Name:     "Admin",
			Password: string(hash),
			UserType: models.UserTypeAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d products and admin user %s", len(sampleProducts), adminEmail)
		return nil
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
