package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/validation"
)

// Session is returned by signup and login.
type Session struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type Service interface {
	Signup(ctx context.Context, in SignupInput, ip string) (*Session, error)
	Login(ctx context.Context, in LoginInput, ip string) (*Session, error)
	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	repo     Repository
	tokens   TokenStore
	auditSvc auditlog.Service
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewService(r Repository, tokens TokenStore, auditSvc auditlog.Service, cfg *config.Config) Service {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = randomSecret()
		log.Println("⚠️ JWT_SECRET not set, using a random per-process secret")
	}
	return &service{
		repo:     r,
		tokens:   tokens,
		auditSvc: auditSvc,
		secret:   []byte(secret),
		ttl:      time.Duration(cfg.JWTTTLHours) * time.Hour,
		now:      time.Now,
	}
}

// HashPassword produces the bcrypt hash stored for a user.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// =============================
// Signup
// =============================

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

func (s *service) Signup(ctx context.Context, in SignupInput, ip string) (*Session, error) {
	if errs := validation.Signup(validation.SignupInput(in)); errs != nil {
		return nil, apperr.Validation(errs)
	}

	email := validation.NormalizeEmail(in.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		s.audit(ctx, "", auditlog.ActionUserSignup, email, ip, auditlog.StatusFailure)
		return nil, apperr.Conflict("Email already registered", nil)
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, apperr.Internal("Signup failed", err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("Signup failed", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleParticipant,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, apperr.Conflict("Email already registered", nil)
		}
		return nil, apperr.Internal("Signup failed", err)
	}

	session, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, user.ID, auditlog.ActionUserSignup, email, ip, auditlog.StatusSuccess)
	return session, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(ctx context.Context, in LoginInput, ip string) (*Session, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, apperr.BadRequest("Email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			s.audit(ctx, "", auditlog.ActionUserLogin, in.Email, ip, auditlog.StatusFailure)
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, apperr.Internal("Login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		s.audit(ctx, user.ID, auditlog.ActionUserLogin, user.Email, ip, auditlog.StatusFailure)
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	session, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, user.ID, auditlog.ActionUserLogin, user.Email, ip, auditlog.StatusSuccess)
	return session, nil
}

// =============================
// Tokens
// =============================

func (s *service) issue(ctx context.Context, user *models.User) (*Session, error) {
	now := s.now()
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iat":     now.Unix(),
		"jti":     jti,
	}
	if s.ttl > 0 {
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperr.Internal("Failed to issue token", err)
	}
	if err := s.tokens.Save(ctx, jti, user.ID, s.ttl); err != nil {
		return nil, apperr.Internal("Failed to issue token", err)
	}
	return &Session{User: user.Public(), Token: signed}, nil
}

// parse verifies the signature and returns the token id and user id.
func (s *service) parse(token string) (string, string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", "", apperr.Unauthorized("Invalid or expired token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", apperr.Unauthorized("Invalid or expired token")
	}
	jti, _ := claims["jti"].(string)
	userID, _ := claims["user_id"].(string)
	if jti == "" || userID == "" {
		return "", "", apperr.Unauthorized("Invalid or expired token")
	}
	return jti, userID, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	jti, userID, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	owner, err := s.tokens.Lookup(ctx, jti)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, apperr.Unauthorized("Invalid or expired token")
		}
		return nil, apperr.Internal("Token lookup failed", err)
	}
	if owner != userID {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, apperr.Unauthorized("User not found")
		}
		return nil, apperr.Internal("Failed to fetch user", err)
	}
	return user, nil
}

// =============================
// Logout
// =============================

func (s *service) Logout(ctx context.Context, token string) error {
	jti, _, err := s.parse(token)
	if err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, jti); err != nil {
		return apperr.Internal("Logout failed", err)
	}
	return nil
}

func (s *service) audit(ctx context.Context, userID, action, email, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, userID, "", action, map[string]interface{}{"email": email}, ip, status)
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("❌ could not generate JWT secret: %v", err))
	}
	return hex.EncodeToString(b)
}
