package contracts

import (
	"context"
	"scolaris-service/internal/pkg/dto/requests"
	"scolaris-service/internal/pkg/dto/responses"
)

type WeekScheduleUsecase interface {
	GetWeekSchedule(ctx context.Context, request *requests.WeekSchedule) (*responses.WeekSchedule, error)
}
