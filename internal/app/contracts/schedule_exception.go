package contracts

import (
	"context"
	"scolaris-service/internal/app/models"
)

// Range lookups include wildcard-scoped exceptions alongside the ones scoped
// to the requested entity.
type ScheduleExceptionClient interface {
	FindByClassWithinRange(ctx context.Context, academicYearID, classID int64, from, to models.Date) ([]models.ScheduleException, error)
	FindByTeacherWithinRange(ctx context.Context, academicYearID, teacherID int64, from, to models.Date) ([]models.ScheduleException, error)
}
