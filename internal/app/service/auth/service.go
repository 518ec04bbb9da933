package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/config"
)

const loginTokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("not an admin account")
	ErrPasswordlessUser   = errors.New("account has no password, use social login")
)

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login authenticates by email and password. Unknown emails are
// auto-registered, mirroring the social-login flow.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, errors.New("please provide both email and password")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created, rerr := s.Register(ctx, strings.SplitN(email, "@", 2)[0], email, password)
		if rerr != nil {
			return nil, fmt.Errorf("registration failed during login: %w", rerr)
		}
		user = *created
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	default:
		if user.Password == "" {
			return nil, ErrPasswordlessUser
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
	}

	token, err := s.loginToken(&user)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &LoginResult{Token: token, User: &user}, nil
}

// Register creates a customer account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
		Role:     models.UserRoleUser,
		Status:   "active",
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	s.log.Infow("user registered", "user_id", user.ID, "email", email)
	return user, nil
}

// AdminLogin is Login restricted to admin-role accounts, without the
// auto-signup behavior.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Role != models.UserRoleAdmin {
		return nil, ErrNotAdmin
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.loginToken(&user)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &LoginResult{Token: token, User: &user}, nil
}

func (s *Service) loginToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(loginTokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign login token: %w", err)
	}
	return signed, nil
}
