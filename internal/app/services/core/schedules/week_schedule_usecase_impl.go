package schedules

import (
	"context"
	"fmt"
	"scolaris-service/internal/app/config"
	"scolaris-service/internal/app/contracts"
	"scolaris-service/internal/app/models"
	"scolaris-service/internal/app/services/core/timetable"
	"scolaris-service/internal/pkg/constvars"
	"scolaris-service/internal/pkg/dto/requests"
	"scolaris-service/internal/pkg/dto/responses"
	"scolaris-service/internal/pkg/exceptions"
	"scolaris-service/internal/pkg/utils"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type weekScheduleUsecase struct {
	BaseScheduleClient contracts.BaseScheduleClient
	ExceptionClient    contracts.ScheduleExceptionClient
	TermClient         contracts.TermClient
	DirectoryClient    contracts.DirectoryClient
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	weekScheduleUsecaseInstance contracts.WeekScheduleUsecase
	onceWeekScheduleUsecase     sync.Once
)

func NewWeekScheduleUsecase(
	baseScheduleClient contracts.BaseScheduleClient,
	exceptionClient contracts.ScheduleExceptionClient,
	termClient contracts.TermClient,
	directoryClient contracts.DirectoryClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WeekScheduleUsecase {
	onceWeekScheduleUsecase.Do(func() {
		instance := &weekScheduleUsecase{
			BaseScheduleClient: baseScheduleClient,
			ExceptionClient:    exceptionClient,
			TermClient:         termClient,
			DirectoryClient:    directoryClient,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		weekScheduleUsecaseInstance = instance
	})
	return weekScheduleUsecaseInstance
}

func (uc *weekScheduleUsecase) GetWeekSchedule(ctx context.Context, request *requests.WeekSchedule) (*responses.WeekSchedule, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("weekScheduleUsecase.GetWeekSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewKey, request.View),
		zap.Int64(constvars.LoggingAcademicYearIDKey, request.AcademicYearID),
		zap.String(constvars.LoggingWeekStartKey, request.WeekStart),
	)

	requestedDate, err := models.ParseDate(request.WeekStart)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	// Any date within the week selects that week's Monday grid.
	weekStart := requestedDate.StartOfWeek()

	view, entityID := viewOfRequest(request)

	cacheKey := fmt.Sprintf(constvars.WeekScheduleCacheKeyFormat, request.AcademicYearID, request.View, entityID, weekStart.String())
	if cached := uc.fromCache(ctx, requestID, cacheKey); cached != nil {
		return cached, nil
	}

	entries, scheduleExceptions, terms, err := uc.fetchScheduleData(ctx, request, view, entityID, weekStart)
	if err != nil {
		uc.Log.Error("weekScheduleUsecase.GetWeekSchedule error fetching schedule data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("weekScheduleUsecase.GetWeekSchedule fetched schedule data",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEntryCountKey, len(entries)),
		zap.Int(constvars.LoggingExceptionCountKey, len(scheduleExceptions)),
		zap.Int(constvars.LoggingTermCountKey, len(terms)),
	)

	cutoff := timetable.CutoffDate(terms)
	resolver := timetable.NewSlotResolver(
		timetable.NewBaseScheduleIndex(entries),
		timetable.NewExceptionIndex(scheduleExceptions),
		cutoff,
	)
	grid := timetable.NewWeekScheduleBuilder(resolver).Build(view, weekStart)

	response := uc.mapGridToResponse(ctx, request, entityID, grid, cutoff)

	uc.toCache(ctx, requestID, cacheKey, response)

	uc.Log.Info("weekScheduleUsecase.GetWeekSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekStartKey, weekStart.String()),
	)
	return response, nil
}

func viewOfRequest(request *requests.WeekSchedule) (timetable.View, int64) {
	if request.View == string(timetable.ViewByTeacher) {
		return timetable.TeacherView(request.TeacherID), request.TeacherID
	}
	return timetable.ClassView(request.ClassID), request.ClassID
}

func (uc *weekScheduleUsecase) fetchScheduleData(
	ctx context.Context,
	request *requests.WeekSchedule,
	view timetable.View,
	entityID int64,
	weekStart models.Date,
) ([]models.BaseScheduleEntry, []models.ScheduleException, []models.Term, error) {
	weekEnd := weekStart.AddDays(5)

	var entries []models.BaseScheduleEntry
	var scheduleExceptions []models.ScheduleException
	var err error
	if view.Kind == timetable.ViewByTeacher {
		entries, err = uc.BaseScheduleClient.FindByTeacher(ctx, request.AcademicYearID, entityID)
		if err != nil {
			return nil, nil, nil, err
		}
		scheduleExceptions, err = uc.ExceptionClient.FindByTeacherWithinRange(ctx, request.AcademicYearID, entityID, weekStart, weekEnd)
	} else {
		entries, err = uc.BaseScheduleClient.FindByClass(ctx, request.AcademicYearID, entityID)
		if err != nil {
			return nil, nil, nil, err
		}
		scheduleExceptions, err = uc.ExceptionClient.FindByClassWithinRange(ctx, request.AcademicYearID, entityID, weekStart, weekEnd)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	terms, err := uc.TermClient.FindByAcademicYear(ctx, request.AcademicYearID)
	if err != nil {
		return nil, nil, nil, err
	}

	return entries, scheduleExceptions, terms, nil
}

func (uc *weekScheduleUsecase) fromCache(ctx context.Context, requestID, cacheKey string) *responses.WeekSchedule {
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("weekScheduleUsecase.GetWeekSchedule cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
		return nil
	}
	if cached == "" {
		return nil
	}

	response := new(responses.WeekSchedule)
	err = json.Unmarshal([]byte(cached), response)
	if err != nil {
		uc.Log.Warn("weekScheduleUsecase.GetWeekSchedule cached payload unreadable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
		return nil
	}

	uc.Log.Info("weekScheduleUsecase.GetWeekSchedule served from cache",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKeyKey, cacheKey),
	)
	return response
}

func (uc *weekScheduleUsecase) toCache(ctx context.Context, requestID, cacheKey string, response *responses.WeekSchedule) {
	ttl := time.Duration(uc.InternalConfig.Cache.WeekScheduleTTLInSeconds) * time.Second
	err := uc.RedisRepository.Set(ctx, cacheKey, response, ttl)
	if err != nil {
		uc.Log.Warn("weekScheduleUsecase.GetWeekSchedule cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}
}

func (uc *weekScheduleUsecase) mapGridToResponse(
	ctx context.Context,
	request *requests.WeekSchedule,
	entityID int64,
	grid timetable.WeekGrid,
	cutoff *models.Date,
) *responses.WeekSchedule {
	decorator := newDirectoryDecorator(uc.DirectoryClient)

	days := make([]responses.WeekScheduleDay, len(grid.Days))
	for i, day := range grid.Days {
		slots := make([]responses.WeekScheduleSlot, len(day.Slots))
		for j, cell := range day.Slots {
			slots[j] = responses.WeekScheduleSlot{
				Start:           cell.Slot.Start,
				End:             cell.Slot.End,
				State:           string(cell.Resolved.State),
				Subject:         decorator.subjectRef(ctx, cell.Resolved.SubjectID),
				Teacher:         decorator.teacherRef(ctx, cell.Resolved.TeacherID),
				Reason:          cell.Resolved.Reason,
				OriginalEntryID: cell.Resolved.OriginalEntryID,
				ExceptionKind:   string(cell.Resolved.ExceptionKind),
			}
		}
		days[i] = responses.WeekScheduleDay{
			Day:   day.Day.String(),
			Date:  day.Date,
			Slots: slots,
		}
	}

	response := &responses.WeekSchedule{
		AcademicYearID: request.AcademicYearID,
		View:           request.View,
		WeekStart:      grid.WeekStart,
		Cutoff:         cutoff,
		Days:           days,
	}
	if request.View == string(timetable.ViewByTeacher) {
		response.TeacherID = entityID
	} else {
		response.ClassID = entityID
	}
	return response
}

// directoryDecorator memoizes directory lookups for the lifetime of one
// response build. Lookup failures leave the name empty rather than failing
// the whole schedule; the raw id is always present.
type directoryDecorator struct {
	client       contracts.DirectoryClient
	subjectNames map[int64]string
	teacherNames map[int64]string
}

func newDirectoryDecorator(client contracts.DirectoryClient) *directoryDecorator {
	return &directoryDecorator{
		client:       client,
		subjectNames: make(map[int64]string),
		teacherNames: make(map[int64]string),
	}
}

func (d *directoryDecorator) subjectRef(ctx context.Context, subjectID int64) *responses.NamedRef {
	if subjectID == 0 {
		return nil
	}
	name, ok := d.subjectNames[subjectID]
	if !ok {
		if subject, err := d.client.FindSubjectByID(ctx, subjectID); err == nil {
			name = subject.Name
		}
		d.subjectNames[subjectID] = name
	}
	return &responses.NamedRef{ID: subjectID, Name: name}
}

func (d *directoryDecorator) teacherRef(ctx context.Context, teacherID int64) *responses.NamedRef {
	if teacherID == 0 {
		return nil
	}
	name, ok := d.teacherNames[teacherID]
	if !ok {
		if teacher, err := d.client.FindTeacherByID(ctx, teacherID); err == nil {
			name = teacher.FullName
		}
		d.teacherNames[teacherID] = name
	}
	return &responses.NamedRef{ID: teacherID, Name: name}
}
