package repository

import (
	"context"
	"strings"
	"time"

	"zenrio/internal/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

type adminModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	Username     string     `gorm:"column:username;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash"`
	IsMaster     bool       `gorm:"column:is_master"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (adminModel) TableName() string { return "admin_users" }

func toDomainAdmin(m adminModel) *domain.AdminUser {
	return &domain.AdminUser{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsMaster:     m.IsMaster,
		LastLogin:    m.LastLogin,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var m adminModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAdmin(m), nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	var m adminModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAdmin(m), nil
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.AdminUser) error {
	m := adminModel{
		Username:     strings.TrimSpace(a.Username),
		PasswordHash: a.PasswordHash,
		IsMaster:     a.IsMaster,
		CreatedAt:    time.Now(),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAdmin(m)
	return nil
}

// TouchLastLogin records a successful authentication.
func (r *AdminRepository) TouchLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&adminModel{}).
		Where("id = ?", id).
		Update("last_login", now).Error
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adminModel{}).Count(&n).Error
	return n, err
}

// List returns every admin account, masters first, then by username.
func (r *AdminRepository) List(ctx context.Context) ([]domain.AdminUser, error) {
	var models []adminModel
	tx := r.db.WithContext(ctx).
		Order("is_master DESC, username ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	admins := make([]domain.AdminUser, 0, len(models))
	for _, m := range models {
		admins = append(admins, *toDomainAdmin(m))
	}
	return admins, nil
}
