package contracts

import (
	"context"
	"scolaris-service/internal/app/models"
)

type BaseScheduleClient interface {
	FindByClass(ctx context.Context, academicYearID, classID int64) ([]models.BaseScheduleEntry, error)
	FindByTeacher(ctx context.Context, academicYearID, teacherID int64) ([]models.BaseScheduleEntry, error)
}
