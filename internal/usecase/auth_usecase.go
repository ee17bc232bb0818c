package usecase

import (
	"context"
	"time"

	"gamezone/internal/domain/entity"
	"gamezone/internal/domain/repository"
	"gamezone/pkg/errors"
	"gamezone/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	sessions     *SessionUseCase
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, sessions *SessionUseCase) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		sessions:     sessions,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Username:  input.Username,
		Role:      "user",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	if _, err := uc.sessions.Start(ctx, uid); err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if err := uc.userRepo.RecordLogin(ctx, uid); err != nil {
		// Login still succeeds when the timestamp write fails.
		logger.Warn("Could not record login time for %s: %v", uid, err)
	}

	if _, err := uc.sessions.Start(ctx, uid); err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// Logout tears the session down. The ID token itself just ages out;
// revocation is the identity provider's concern.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	uc.sessions.End(uid)
	return nil
}

func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if err := uc.firebaseAuth.SendPasswordResetEmail(email); err != nil {
		return errors.Internal("Failed to send password reset email", err)
	}
	return nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
