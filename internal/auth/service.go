package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the persistence contract the auth service depends on.
type UserRepository interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	EmailExists(email string) (bool, error)
}

// ErrUserNotFound is returned by repositories when an email resolves to
// no account. The service folds it into the generic credentials error.
var ErrUserNotFound = errors.New("user not found")

// Service performs signup and login.
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Signup creates a new account and returns a fresh token. The password is
// hashed right here, before anything touches the store: there is no
// implicit pre-save hook, so an unrelated update can never re-hash.
func (s *Service) Signup(dto SignupDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(dto.Email)
	if err != nil {
		s.logger.Error("signup: email lookup failed", "error", err)
		return nil, internal.NewInternalError("Server error", err)
	}
	if exists {
		return nil, internal.ErrEmailTaken
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("signup: password hashing failed", "error", err)
		return nil, internal.NewInternalError("Server error", err)
	}

	now := time.Now()
	user := &User{
		Email:        dto.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(user); err != nil {
		// two signups can race past the exists check; the unique index
		// settles it
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		s.logger.Error("signup: user insert failed", "error", err)
		return nil, internal.NewInternalError("Server error", err)
	}

	token, err := s.tokenGenerator.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("signup: token generation failed", "error", err, "user_id", user.ID)
		return nil, internal.NewInternalError("Server error", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID)

	return &AuthResponse{Token: token, Email: user.Email}, nil
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password produce the identical error so responses cannot be used to
// enumerate accounts.
func (s *Service) Login(dto LoginDTO) (*AuthResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(dto.Email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.logger.Error("login: user lookup failed", "error", err)
			return nil, internal.NewInternalError("Server error", err)
		}
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("login: token generation failed", "error", err, "user_id", user.ID)
		return nil, internal.NewInternalError("Server error", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &AuthResponse{Token: token, Email: user.Email}, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// JWTTokenGenerator signs HS256 tokens with a single shared secret.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

// NewJWTTokenGenerator creates a generator. Tokens live for the full TTL;
// there is no refresh or revocation, matching the original contract.
func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// GenerateToken creates a signed token carrying the user id.
func (j *JWTTokenGenerator) GenerateToken(userID int64) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken checks signature and expiry and returns the claims.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, internal.ErrInvalidToken
}
