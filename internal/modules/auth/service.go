package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"zenrio/internal/domain"
	"zenrio/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains the admin authentication and account-management logic.
type Service struct {
	admins         AdminRepository
	jwt            jwtService
	registerSecret string
	bcryptCost     int
}

func NewService(admins AdminRepository, jwt jwtService, registerSecret string, bcryptCost int) *Service {
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		admins:         admins,
		jwt:            jwt,
		registerSecret: registerSecret,
		bcryptCost:     bcryptCost,
	}
}

// Login checks the credentials and issues a session token. An unknown
// username and a wrong password both come back as ErrInvalidCredentials;
// nothing in the result distinguishes them.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.AdminUser, string, error) {
	admin, err := s.admins.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// Verify validates a session token and re-confirms the referenced admin
// still exists, returning the identity the frontend needs.
func (s *Service) Verify(ctx context.Context, token string) (*SessionUser, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	return &SessionUser{
		ID:       admin.ID,
		Username: claims.Username,
		IsMaster: admin.IsMaster,
	}, nil
}

// RegisterFirstAdmin creates the master account through the secret-gated
// endpoint. It refuses once any admin exists, so the endpoint is only
// usable for first setup.
func (s *Service) RegisterFirstAdmin(ctx context.Context, req RegisterAdminRequest) (*domain.AdminUser, error) {
	if subtle.ConstantTimeCompare([]byte(req.SecretKey), []byte(s.registerSecret)) != 1 || s.registerSecret == "" {
		return nil, ErrInvalidSecret
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrRegistrationClosed
	}

	return s.createAdmin(ctx, req.Username, req.Password, true)
}

// AddAdmin creates a non-master account. Authorization (a master session)
// is enforced by the route middleware, not here.
func (s *Service) AddAdmin(ctx context.Context, req AddAdminRequest) (*domain.AdminUser, error) {
	if _, err := s.admins.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.createAdmin(ctx, req.Username, req.Password, false)
}

func (s *Service) ListAdmins(ctx context.Context) ([]AdminInfo, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]AdminInfo, 0, len(admins))
	for _, a := range admins {
		infos = append(infos, AdminInfo{
			ID:        a.ID,
			Username:  a.Username,
			IsMaster:  a.IsMaster,
			LastLogin: a.LastLogin,
		})
	}
	return infos, nil
}

func (s *Service) createAdmin(ctx context.Context, username, password string, master bool) (*domain.AdminUser, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.AdminUser{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
		IsMaster:     master,
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		// The unique index is the real arbiter under concurrent inserts.
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return admin, nil
}
