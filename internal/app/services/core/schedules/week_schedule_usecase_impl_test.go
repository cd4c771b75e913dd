package schedules

import (
	"context"
	"testing"
	"time"

	"scolaris-service/internal/app/config"
	"scolaris-service/internal/app/models"
	"scolaris-service/internal/pkg/dto/requests"
	"scolaris-service/internal/pkg/dto/responses"
	"scolaris-service/internal/pkg/exceptions"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBaseScheduleClient struct {
	mock.Mock
}

func (m *MockBaseScheduleClient) FindByClass(ctx context.Context, academicYearID, classID int64) ([]models.BaseScheduleEntry, error) {
	args := m.Called(ctx, academicYearID, classID)
	entries, _ := args.Get(0).([]models.BaseScheduleEntry)
	return entries, args.Error(1)
}

func (m *MockBaseScheduleClient) FindByTeacher(ctx context.Context, academicYearID, teacherID int64) ([]models.BaseScheduleEntry, error) {
	args := m.Called(ctx, academicYearID, teacherID)
	entries, _ := args.Get(0).([]models.BaseScheduleEntry)
	return entries, args.Error(1)
}

type MockScheduleExceptionClient struct {
	mock.Mock
}

func (m *MockScheduleExceptionClient) FindByClassWithinRange(ctx context.Context, academicYearID, classID int64, from, to models.Date) ([]models.ScheduleException, error) {
	args := m.Called(ctx, academicYearID, classID, from, to)
	scheduleExceptions, _ := args.Get(0).([]models.ScheduleException)
	return scheduleExceptions, args.Error(1)
}

func (m *MockScheduleExceptionClient) FindByTeacherWithinRange(ctx context.Context, academicYearID, teacherID int64, from, to models.Date) ([]models.ScheduleException, error) {
	args := m.Called(ctx, academicYearID, teacherID, from, to)
	scheduleExceptions, _ := args.Get(0).([]models.ScheduleException)
	return scheduleExceptions, args.Error(1)
}

type MockTermClient struct {
	mock.Mock
}

func (m *MockTermClient) FindByAcademicYear(ctx context.Context, academicYearID int64) ([]models.Term, error) {
	args := m.Called(ctx, academicYearID)
	terms, _ := args.Get(0).([]models.Term)
	return terms, args.Error(1)
}

type MockDirectoryClient struct {
	mock.Mock
}

func (m *MockDirectoryClient) FindSubjectByID(ctx context.Context, subjectID int64) (*models.Subject, error) {
	args := m.Called(ctx, subjectID)
	subject, _ := args.Get(0).(*models.Subject)
	return subject, args.Error(1)
}

func (m *MockDirectoryClient) FindTeacherByID(ctx context.Context, teacherID int64) (*models.Teacher, error) {
	args := m.Called(ctx, teacherID)
	teacher, _ := args.Get(0).(*models.Teacher)
	return teacher, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type usecaseFixture struct {
	baseClient      *MockBaseScheduleClient
	exceptionClient *MockScheduleExceptionClient
	termClient      *MockTermClient
	directoryClient *MockDirectoryClient
	redisRepository *MockRedisRepository
	usecase         *weekScheduleUsecase
}

func newUsecaseFixture() *usecaseFixture {
	fixture := &usecaseFixture{
		baseClient:      new(MockBaseScheduleClient),
		exceptionClient: new(MockScheduleExceptionClient),
		termClient:      new(MockTermClient),
		directoryClient: new(MockDirectoryClient),
		redisRepository: new(MockRedisRepository),
	}
	fixture.usecase = &weekScheduleUsecase{
		BaseScheduleClient: fixture.baseClient,
		ExceptionClient:    fixture.exceptionClient,
		TermClient:         fixture.termClient,
		DirectoryClient:    fixture.directoryClient,
		RedisRepository:    fixture.redisRepository,
		InternalConfig: &config.InternalConfig{
			Cache: config.Cache{WeekScheduleTTLInSeconds: 60},
		},
		Log: zap.NewNop(),
	}
	return fixture
}

func i64(v int64) *int64 { return &v }

func mondayEntry() models.BaseScheduleEntry {
	return models.BaseScheduleEntry{
		ID:             1,
		Slot:           models.NewTimeSlot(time.Monday, models.NewClockTime(8, 0), models.NewClockTime(10, 0)),
		ClassID:        5,
		TeacherID:      9,
		SubjectID:      3,
		AcademicYearID: 2,
	}
}

func classRequest(weekStart string) *requests.WeekSchedule {
	return &requests.WeekSchedule{
		AcademicYearID: 2,
		View:           "class",
		ClassID:        5,
		WeekStart:      weekStart,
	}
}

func TestWeekScheduleUsecase_GetWeekSchedule(t *testing.T) {
	ctx := context.Background()
	weekStart := models.NewDate(2024, time.April, 8)
	weekEnd := models.NewDate(2024, time.April, 13)
	terms := []models.Term{
		{ID: 1, AcademicYearID: 2, Label: "Trimestre 1", Start: models.NewDate(2023, time.September, 4), End: models.NewDate(2023, time.December, 22)},
		{ID: 3, AcademicYearID: 2, Label: "Trimestre 3", Start: models.NewDate(2024, time.March, 18), End: models.NewDate(2024, time.July, 5)},
	}

	t.Run("class view resolves base entries and decorates names", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.redisRepository.On("Get", mock.Anything, mock.Anything).Return("", nil)
		fixture.redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.baseClient.On("FindByClass", mock.Anything, int64(2), int64(5)).Return([]models.BaseScheduleEntry{mondayEntry()}, nil)
		fixture.exceptionClient.On("FindByClassWithinRange", mock.Anything, int64(2), int64(5), weekStart, weekEnd).Return([]models.ScheduleException(nil), nil)
		fixture.termClient.On("FindByAcademicYear", mock.Anything, int64(2)).Return(terms, nil)
		fixture.directoryClient.On("FindSubjectByID", mock.Anything, int64(3)).Return(&models.Subject{ID: 3, Name: "Mathematics"}, nil)
		fixture.directoryClient.On("FindTeacherByID", mock.Anything, int64(9)).Return(&models.Teacher{ID: 9, FullName: "A. Bernard"}, nil)

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-08"))

		assert.NoError(t, err)
		assert.Equal(t, weekStart, response.WeekStart)
		assert.Equal(t, int64(5), response.ClassID)
		assert.Len(t, response.Days, 6)
		assert.Len(t, response.Days[0].Slots, 3)
		assert.Equal(t, "Monday", response.Days[0].Day)

		mondaySlot := response.Days[0].Slots[0]
		assert.Equal(t, "base", mondaySlot.State)
		assert.Equal(t, "Mathematics", mondaySlot.Subject.Name)
		assert.Equal(t, "A. Bernard", mondaySlot.Teacher.Name)

		assert.Equal(t, "empty", response.Days[0].Slots[1].State)
		assert.Equal(t, "empty", response.Days[1].Slots[0].State)

		assert.NotNil(t, response.Cutoff)
		assert.Equal(t, models.NewDate(2024, time.July, 5), *response.Cutoff)
	})

	t.Run("mid-week request date normalizes to the Monday grid", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.redisRepository.On("Get", mock.Anything, "week-schedule:2:class:5:2024-04-08").Return("", nil)
		fixture.redisRepository.On("Set", mock.Anything, "week-schedule:2:class:5:2024-04-08", mock.Anything, mock.Anything).Return(nil)
		fixture.baseClient.On("FindByClass", mock.Anything, int64(2), int64(5)).Return([]models.BaseScheduleEntry(nil), nil)
		fixture.exceptionClient.On("FindByClassWithinRange", mock.Anything, int64(2), int64(5), weekStart, weekEnd).Return([]models.ScheduleException(nil), nil)
		fixture.termClient.On("FindByAcademicYear", mock.Anything, int64(2)).Return(terms, nil)

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-11"))

		assert.NoError(t, err)
		assert.Equal(t, weekStart, response.WeekStart)
		fixture.redisRepository.AssertExpectations(t)
	})

	t.Run("holiday exception overrides the base entry", func(t *testing.T) {
		fixture := newUsecaseFixture()
		holiday := models.ScheduleException{
			ID:   11,
			Date: models.NewDate(2024, time.April, 8),
			Slot: models.NewTimeSlot(time.Monday, models.NewClockTime(8, 0), models.NewClockTime(10, 0)),
			Kind: models.ExceptionHoliday,
		}
		fixture.redisRepository.On("Get", mock.Anything, mock.Anything).Return("", nil)
		fixture.redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.baseClient.On("FindByClass", mock.Anything, int64(2), int64(5)).Return([]models.BaseScheduleEntry{mondayEntry()}, nil)
		fixture.exceptionClient.On("FindByClassWithinRange", mock.Anything, int64(2), int64(5), weekStart, weekEnd).Return([]models.ScheduleException{holiday}, nil)
		fixture.termClient.On("FindByAcademicYear", mock.Anything, int64(2)).Return(terms, nil)

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-08"))

		assert.NoError(t, err)
		mondaySlot := response.Days[0].Slots[0]
		assert.Equal(t, "holiday", mondaySlot.State)
		assert.Nil(t, mondaySlot.Subject)
		assert.Nil(t, mondaySlot.Teacher)
		fixture.directoryClient.AssertNotCalled(t, "FindSubjectByID", mock.Anything, mock.Anything)
	})

	t.Run("teacher view queries teacher collections", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.redisRepository.On("Get", mock.Anything, "week-schedule:2:teacher:9:2024-04-08").Return("", nil)
		fixture.redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.baseClient.On("FindByTeacher", mock.Anything, int64(2), int64(9)).Return([]models.BaseScheduleEntry{mondayEntry()}, nil)
		fixture.exceptionClient.On("FindByTeacherWithinRange", mock.Anything, int64(2), int64(9), weekStart, weekEnd).Return([]models.ScheduleException(nil), nil)
		fixture.termClient.On("FindByAcademicYear", mock.Anything, int64(2)).Return(terms, nil)
		fixture.directoryClient.On("FindSubjectByID", mock.Anything, int64(3)).Return(&models.Subject{ID: 3, Name: "Mathematics"}, nil)
		fixture.directoryClient.On("FindTeacherByID", mock.Anything, int64(9)).Return(&models.Teacher{ID: 9, FullName: "A. Bernard"}, nil)

		request := &requests.WeekSchedule{
			AcademicYearID: 2,
			View:           "teacher",
			TeacherID:      9,
			WeekStart:      "2024-04-08",
		}
		response, err := fixture.usecase.GetWeekSchedule(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, int64(9), response.TeacherID)
		assert.Zero(t, response.ClassID)
		assert.Equal(t, "base", response.Days[0].Slots[0].State)
		fixture.baseClient.AssertNotCalled(t, "FindByClass", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache hit skips the school backend entirely", func(t *testing.T) {
		fixture := newUsecaseFixture()
		cached := &responses.WeekSchedule{
			AcademicYearID: 2,
			View:           "class",
			ClassID:        5,
			WeekStart:      weekStart,
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)
		fixture.redisRepository.On("Get", mock.Anything, "week-schedule:2:class:5:2024-04-08").Return(string(payload), nil)

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-08"))

		assert.NoError(t, err)
		assert.Equal(t, cached.WeekStart, response.WeekStart)
		fixture.baseClient.AssertNotCalled(t, "FindByClass", mock.Anything, mock.Anything, mock.Anything)
		fixture.termClient.AssertNotCalled(t, "FindByAcademicYear", mock.Anything, mock.Anything)
	})

	t.Run("directory failure keeps raw ids with empty names", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.redisRepository.On("Get", mock.Anything, mock.Anything).Return("", nil)
		fixture.redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		fixture.baseClient.On("FindByClass", mock.Anything, int64(2), int64(5)).Return([]models.BaseScheduleEntry{mondayEntry()}, nil)
		fixture.exceptionClient.On("FindByClassWithinRange", mock.Anything, int64(2), int64(5), weekStart, weekEnd).Return([]models.ScheduleException(nil), nil)
		fixture.termClient.On("FindByAcademicYear", mock.Anything, int64(2)).Return(terms, nil)
		fixture.directoryClient.On("FindSubjectByID", mock.Anything, int64(3)).Return(nil, exceptions.ErrSendHTTPRequest(assert.AnError))
		fixture.directoryClient.On("FindTeacherByID", mock.Anything, int64(9)).Return(nil, exceptions.ErrSendHTTPRequest(assert.AnError))

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-08"))

		assert.NoError(t, err)
		mondaySlot := response.Days[0].Slots[0]
		assert.Equal(t, int64(3), mondaySlot.Subject.ID)
		assert.Empty(t, mondaySlot.Subject.Name)
		assert.Equal(t, int64(9), mondaySlot.Teacher.ID)
		assert.Empty(t, mondaySlot.Teacher.Name)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		fixture := newUsecaseFixture()
		backendErr := exceptions.ErrSendHTTPRequest(assert.AnError)
		fixture.redisRepository.On("Get", mock.Anything, mock.Anything).Return("", nil)
		fixture.baseClient.On("FindByClass", mock.Anything, int64(2), int64(5)).Return(nil, backendErr)

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-08"))

		assert.Nil(t, response)
		assert.Equal(t, backendErr, err)
	})

	t.Run("invalid week start date is rejected", func(t *testing.T) {
		fixture := newUsecaseFixture()

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("08/04/2024"))

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("cache errors degrade to a backend fetch", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.redisRepository.On("Get", mock.Anything, mock.Anything).Return("", exceptions.ErrRedisGetNoData(assert.AnError, "key"))
		fixture.redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(exceptions.ErrRedisSet(assert.AnError))
		fixture.baseClient.On("FindByClass", mock.Anything, int64(2), int64(5)).Return([]models.BaseScheduleEntry(nil), nil)
		fixture.exceptionClient.On("FindByClassWithinRange", mock.Anything, int64(2), int64(5), weekStart, weekEnd).Return([]models.ScheduleException(nil), nil)
		fixture.termClient.On("FindByAcademicYear", mock.Anything, int64(2)).Return(terms, nil)

		response, err := fixture.usecase.GetWeekSchedule(ctx, classRequest("2024-04-08"))

		assert.NoError(t, err)
		assert.Len(t, response.Days, 6)
	})
}
