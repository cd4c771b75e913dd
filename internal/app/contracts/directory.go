package contracts

import (
	"context"
	"scolaris-service/internal/app/models"
)

type DirectoryClient interface {
	FindSubjectByID(ctx context.Context, subjectID int64) (*models.Subject, error)
	FindTeacherByID(ctx context.Context, teacherID int64) (*models.Teacher, error)
}
