package auth

import (
	"context"

	"zenrio/internal/domain"
	jwtsvc "zenrio/internal/pkg/jwt"
)

// AdminRepository is the credential store the service depends on.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	Create(ctx context.Context, a *domain.AdminUser) error
	TouchLastLogin(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]domain.AdminUser, error)
}

type jwtService interface {
	GenerateToken(adminID int64, username string) (string, error)
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}
