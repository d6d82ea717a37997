package contracts

import (
	"context"
	"doctor-appointment-service/internal/app/models"
)

type UserRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
}
