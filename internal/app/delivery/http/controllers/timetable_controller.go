package controllers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"scolaris-service/internal/app/contracts"
	"scolaris-service/internal/pkg/constvars"
	"scolaris-service/internal/pkg/dto/requests"
	"scolaris-service/internal/pkg/exceptions"
	"scolaris-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type TimetableController struct {
	Log                 *zap.Logger
	WeekScheduleUsecase contracts.WeekScheduleUsecase
}

var (
	timetableControllerInstance *TimetableController
	onceTimetableController     sync.Once
)

func NewTimetableController(logger *zap.Logger, weekScheduleUsecase contracts.WeekScheduleUsecase) *TimetableController {
	onceTimetableController.Do(func() {
		instance := &TimetableController{
			Log:                 logger,
			WeekScheduleUsecase: weekScheduleUsecase,
		}
		timetableControllerInstance = instance
	})
	return timetableControllerInstance
}

func (ctrl *TimetableController) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimetableController.GetWeekSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimetableController.GetWeekSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request, err := parseWeekScheduleRequest(r)
	if err != nil {
		ctrl.Log.Error("TimetableController.GetWeekSchedule invalid query parameters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TimetableController.GetWeekSchedule validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WeekScheduleUsecase.GetWeekSchedule(ctx, request)
	if err != nil {
		ctrl.Log.Error("TimetableController.GetWeekSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimetableController.GetWeekSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetWeekSchedule, response)
}

func parseWeekScheduleRequest(r *http.Request) (*requests.WeekSchedule, error) {
	query := r.URL.Query()

	request := &requests.WeekSchedule{
		View:      query.Get("view"),
		WeekStart: query.Get("week_start"),
	}

	academicYearID, err := parseIDParam(query.Get("academic_year_id"), "academic_year_id")
	if err != nil {
		return nil, err
	}
	request.AcademicYearID = academicYearID

	classID, err := parseIDParam(query.Get("class_id"), "class_id")
	if err != nil {
		return nil, err
	}
	request.ClassID = classID

	teacherID, err := parseIDParam(query.Get("teacher_id"), "teacher_id")
	if err != nil {
		return nil, err
	}
	request.TeacherID = teacherID

	return request, nil
}

func parseIDParam(raw, paramName string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLQueryParamValidation(err, paramName)
	}
	return value, nil
}
