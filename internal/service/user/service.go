package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront-api/internal/domain"
	cartrepo "storefront-api/internal/repository/cart"
	userrepo "storefront-api/internal/repository/user"

	"golang.org/x/crypto/bcrypt"
)

const passwordMinLength = 7

var (
	// ErrInvalidPassword is returned when the password policy is violated.
	ErrInvalidPassword = fmt.Errorf("password must be at least %d characters and match the confirmation", passwordMinLength)
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type userRepo interface {
	Create(ctx context.Context, in userrepo.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type cartRepo interface {
	Create(ctx context.Context) (*domain.Cart, error)
	Delete(ctx context.Context, id int64) error
}

type tokenIssuer interface {
	Issue(username string) (string, error)
	TTLSeconds() int
}

// Service handles registration, lookup and login.
type Service struct {
	users  userRepo
	carts  cartRepo
	issuer tokenIssuer
	logger *log.Logger
}

// New creates a Service.
func New(users userrepo.Repository, carts cartrepo.Repository, issuer tokenIssuer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{users: users, carts: carts, issuer: issuer, logger: logger}
}

// CreateInput captures the registration payload.
type CreateInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// Create registers a user. The cart is persisted first so the user row can
// reference it; if the user insert fails the orphaned cart is removed.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	if len(in.Password) < passwordMinLength || in.Password != in.PasswordConfirm {
		return nil, ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	u, err := s.users.Create(ctx, userrepo.CreateUserInput{
		Username:     in.Username,
		PasswordHash: string(hashed),
		CartID:       cart.ID,
	})
	if err != nil {
		if delErr := s.carts.Delete(ctx, cart.ID); delErr != nil {
			s.logger.Printf("user service: orphaned cart %d not cleaned up: %v", cart.ID, delErr)
		}
		return nil, err
	}
	return u, nil
}

// GetByID fetches a user by numeric id.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByUsername fetches a user by unique username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// Login validates credentials and returns a signed bearer token plus its
// lifetime in seconds.
func (s *Service) Login(ctx context.Context, username, password string) (string, int, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(u.Username)
	if err != nil {
		return "", 0, err
	}
	return token, s.issuer.TTLSeconds(), nil
}
