package commands

import (
	"context"

	"rvmarket/internal/domain/user"
	"rvmarket/internal/infra"
	"rvmarket/internal/pkg/errs"
	"rvmarket/internal/pkg/jwt"
	"rvmarket/internal/pkg/password"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginRequest struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwtService: jwtService}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(name, email, hash)

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrEmailTaken)
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: createdID}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.uow.Reads().UserByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issueTokens(snap.ID, snap.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: snap.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// User may have been deleted since the token was issued.
	if _, err := a.uow.Reads().UserByEmail(ctx, claims.Email); err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	return a.issueTokens(claims.UserID, claims.Email)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, email string) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
