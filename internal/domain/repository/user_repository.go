package repository

import (
	"context"

	"gamezone/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	SetWelcomeSeen(ctx context.Context, id string) error
	RecordLogin(ctx context.Context, id string) error
}
