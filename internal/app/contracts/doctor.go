package contracts

import (
	"context"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/dto/responses"
)

// DoctorUsecase is the doctor directory. It is read-only apart from seeding.
type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	SeedDoctors(ctx context.Context, doctors []models.Doctor) (int, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, doctors []models.Doctor) (int, error)
}
