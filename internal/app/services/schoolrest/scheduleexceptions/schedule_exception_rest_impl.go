package scheduleexceptions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"scolaris-service/internal/app/contracts"
	"scolaris-service/internal/app/models"
	"scolaris-service/internal/pkg/constvars"
	"scolaris-service/internal/pkg/exceptions"

	json "github.com/goccy/go-json"
)

type scheduleExceptionRestClient struct {
	BaseUrl string
}

func NewScheduleExceptionRestClient(baseUrl string) contracts.ScheduleExceptionClient {
	return &scheduleExceptionRestClient{
		BaseUrl: baseUrl + constvars.PathScheduleExceptions,
	}
}

type scheduleExceptionEnvelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    []models.ScheduleException `json:"data"`
}

// The backend returns wildcard-scoped exceptions for entity-filtered queries
// as well, so a single call per week covers holidays and other global events.
func (c *scheduleExceptionRestClient) FindByClassWithinRange(ctx context.Context, academicYearID, classID int64, from, to models.Date) ([]models.ScheduleException, error) {
	url := fmt.Sprintf("%s?academic_year_id=%d&class_id=%d&from=%s&to=%s", c.BaseUrl, academicYearID, classID, from.String(), to.String())
	return c.fetch(ctx, url)
}

func (c *scheduleExceptionRestClient) FindByTeacherWithinRange(ctx context.Context, academicYearID, teacherID int64, from, to models.Date) ([]models.ScheduleException, error) {
	url := fmt.Sprintf("%s?academic_year_id=%d&teacher_id=%d&from=%s&to=%s", c.BaseUrl, academicYearID, teacherID, from.String(), to.String())
	return c.fetch(ctx, url)
}

func (c *scheduleExceptionRestClient) fetch(ctx context.Context, url string) ([]models.ScheduleException, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrGetSchoolResource(err, constvars.ResourceScheduleException)
		}
		return nil, exceptions.ErrGetSchoolResource(fmt.Errorf("status %d: %s", resp.StatusCode, bodyBytes), constvars.ResourceScheduleException)
	}

	var envelope scheduleExceptionEnvelope
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceScheduleException)
	}

	return envelope.Data, nil
}
