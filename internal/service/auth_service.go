package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

// Common auth errors. Login failures collapse into ErrInvalidCredentials so
// the caller cannot tell an unknown email from a wrong password.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrWrongCurrentPasswd = errors.New("current password is incorrect")
)

// AdminStore is the slice of admin persistence the auth service needs.
type AdminStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// Claims carries the admin id inside the signed token. Role and permissions
// are resolved from the collection on every request so deactivations and
// permission edits take effect immediately.
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService handles credential checks, token issuance, and token-to-admin
// resolution.
type AuthService struct {
	cfg    *config.Config
	admins AdminStore
	log    zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, admins AdminStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:    cfg,
		admins: admins,
		log:    log.With().Str("component", "auth_service").Logger(),
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login validates email + password and returns the admin with a fresh token.
// A missing account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup admin: %w", err)
	}

	if err := s.CheckPassword(admin.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, "", ErrAccountDeactivated
	}

	token, err := s.GenerateToken(admin.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	now := time.Now().UTC()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		s.log.Warn().Err(err).Str("admin", admin.Email).Msg("Failed to record last login")
	} else {
		admin.LastLogin = &now
	}

	return admin, token, nil
}

// GenerateToken creates an HS256 JWT carrying the admin id with the
// configured expiry.
func (s *AuthService) GenerateToken(adminID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   adminID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the admin id it names.
// Expired tokens are distinguished from otherwise invalid ones.
func (s *AuthService) ValidateToken(tokenStr string) (primitive.ObjectID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, ErrTokenExpired
		}
		return primitive.NilObjectID, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return primitive.NilObjectID, ErrTokenInvalid
	}

	adminID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, ErrTokenInvalid
	}
	return adminID, nil
}

// Authenticate resolves a bearer token to its active admin account.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*model.Admin, error) {
	adminID, err := s.ValidateToken(tokenStr)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	if !admin.IsActive {
		return nil, ErrAccountDeactivated
	}
	return admin, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, adminID primitive.ObjectID, current, next string) error {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("lookup admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(current)); err != nil {
		return ErrWrongCurrentPasswd
	}

	hash, err := s.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.admins.UpdatePassword(ctx, adminID, hash)
}
