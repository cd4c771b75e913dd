package contracts

import (
	"context"
	"scolaris-service/internal/app/models"
)

type TermClient interface {
	FindByAcademicYear(ctx context.Context, academicYearID int64) ([]models.Term, error)
}
