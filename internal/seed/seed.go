// Package seed populates an empty catalog store with the demo categories,
// products and the default admin account.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopsphere/internal/model"
)

const (
	defaultAdminEmail    = "admin@agrimarket.com"
	defaultAdminPassword = "admin123"
)

// Run seeds each table only when it is empty, so repeated runs are no-ops.
func Run(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	if err := seedCategories(ctx, db, log); err != nil {
		return err
	}
	if err := seedProducts(ctx, db, log); err != nil {
		return err
	}
	return seedAdmin(ctx, db, log)
}

func seedCategories(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	cats := categories()
	if err := db.WithContext(ctx).Create(&cats).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	log.Info("seeded categories", "count", len(cats))
	return nil
}

func seedProducts(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := products()
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	log.Info("seeded products", "count", len(items))
	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), 10)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info("created default admin user", "email", defaultAdminEmail)
	return nil
}
