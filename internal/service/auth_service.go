package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/splithappens/splithappens/internal/auth"
	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/storage"
)

// AuthService wraps the identity collaborator: account creation, login,
// and member lookups.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	members       storage.MemberStore
	timeout       time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, members storage.MemberStore, timeout time.Duration) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		members:       members,
		timeout:       timeout,
	}
}

// Session is the result of a successful registration or login.
type Session struct {
	Member *models.Member `json:"member"`
	Token  string         `json:"token"`
}

// Register creates a new member account and returns a session for it.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (*Session, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	member, err := s.authenticator.Register(ctx, email, displayName, password)
	if err != nil {
		slog.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	token, err := s.jwtManager.Generate(member)
	if err != nil {
		slog.Error("Failed to generate token", "member_id", member.ID, "error", err)
		return nil, err
	}

	slog.Info("Member registered", "member_id", member.ID, "email", member.Email)
	return &Session{Member: member, Token: token}, nil
}

// Login authenticates a member and returns a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	member, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		slog.Warn("Login failed", "email", email)
		return nil, err
	}

	token, err := s.jwtManager.Generate(member)
	if err != nil {
		slog.Error("Failed to generate token", "member_id", member.ID, "error", err)
		return nil, err
	}

	slog.Info("Member logged in", "member_id", member.ID, "email", member.Email)
	return &Session{Member: member, Token: token}, nil
}

// GetMember retrieves a member profile by ID.
func (s *AuthService) GetMember(ctx context.Context, id string) (*models.Member, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	return s.members.GetMemberByID(ctx, id)
}
