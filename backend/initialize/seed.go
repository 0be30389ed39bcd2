package initialize

import (
	"time"

	"stocklist/backend/app/models"
	"stocklist/backend/app/repo"
	"stocklist/backend/app/services"
	"stocklist/backend/config"
	"stocklist/backend/global"
)

// demoProducts mirrors the 16-item demo catalog the product team ships for
// evaluation installs: four device types cycled four times, with two one-off
// rows (an i5 laptop and a shorter smartphone blurb) in the second cycle.
func demoProducts() []models.Product {
	base := []models.Product{
		{ProductName: "Laptop", ProductDescription: "New laptop with an i7 processor", CurrentStockLevel: 15},
		{ProductName: "Smartphone", ProductDescription: "Smartphone with a 48 megapixel camera", CurrentStockLevel: 25},
		{ProductName: "Headphones", ProductDescription: "Wireless headphones with noise cancelling", CurrentStockLevel: 30},
		{ProductName: "Smart Watch", ProductDescription: "Smart watch with fitness tracking", CurrentStockLevel: 20},
	}
	now := time.Now()
	products := make([]models.Product, 0, 16)
	for i := 0; i < 16; i++ {
		p := base[i%len(base)]
		p.ProductID = i + 1
		p.Status = true
		p.CreationDate = now
		products = append(products, p)
	}
	products[4].ProductDescription = "New laptop with an i5 processor"
	products[4].CurrentStockLevel = 20
	products[5].ProductDescription = "Smartphone 48 megapixel camera"
	return products
}

// Seed resets and refills both stores when demo seeding is enabled, and in
// all cases makes sure an admin account exists.
func Seed(cfg *config.Config, users *services.AuthService, userRepo *repo.UserRepository, productRepo *repo.ProductRepository) error {
	if cfg.Seed.Demo {
		if err := productRepo.DeleteAll(); err != nil {
			return err
		}
		if err := userRepo.DeleteAll(); err != nil {
			return err
		}
		for _, p := range demoProducts() {
			p := p
			if err := global.Mdb.Create(&p).Error; err != nil {
				return err
			}
		}
		global.Logger.Info().Int("products", 16).Msg("demo catalog seeded")
	}
	return users.EnsureAdmin(cfg.Seed.AdminPassword)
}
