package service

import (
	"context"
	"fmt"
	"strings"

	"clothshare-backend/internal/domain"
	"clothshare-backend/internal/repository"
	"clothshare-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password, phone, campus, building string) (*domain.User, TokenPair, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, TokenPair{}, fmt.Errorf("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Campus:       campus,
		Building:     building,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.generateTokens(user)
	return user, pair, err
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.generateTokens(user)
	return user, pair, err
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return TokenPair{}, security.ErrWrongTokenType
	}

	// Confirm the account still exists before minting fresh tokens.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, err
	}
	return s.generateTokens(user)
}

func (s *authService) GetUser(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID int32, patch ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Campus != nil {
		user.Campus = *patch.Campus
	}
	if patch.Building != nil {
		user.Building = *patch.Building
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) generateTokens(user *domain.User) (TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}
