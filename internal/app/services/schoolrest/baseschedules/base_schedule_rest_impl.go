package baseschedules

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

type baseScheduleRestClient struct {
	BaseUrl string
}

func NewBaseScheduleRestClient(baseUrl string) contracts.BaseScheduleClient {
	return &baseScheduleRestClient{
		BaseUrl: baseUrl + constvars.PathBaseScheduleEntries,
	}
}

type baseScheduleEnvelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    []models.BaseScheduleEntry `json:"data"`
}

func (c *baseScheduleRestClient) FindByClass(ctx context.Context, academicYearID, classID int64) ([]models.BaseScheduleEntry, error) {
	url := fmt.Sprintf("%s?academic_year_id=%d&class_id=%d", c.BaseUrl, academicYearID, classID)
	return c.fetch(ctx, url)
}

func (c *baseScheduleRestClient) FindByTeacher(ctx context.Context, academicYearID, teacherID int64) ([]models.BaseScheduleEntry, error) {
	url := fmt.Sprintf("%s?academic_year_id=%d&teacher_id=%d", c.BaseUrl, academicYearID, teacherID)
	return c.fetch(ctx, url)
}

func (c *baseScheduleRestClient) fetch(ctx context.Context, url string) ([]models.BaseScheduleEntry, error) {
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
			return nil, exceptions.ErrGetSchoolResource(err, constvars.ResourceBaseScheduleEntry)
		}
		return nil, exceptions.ErrGetSchoolResource(fmt.Errorf("status %d: %s", resp.StatusCode, bodyBytes), constvars.ResourceBaseScheduleEntry)
	}

	var envelope baseScheduleEnvelope
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBaseScheduleEntry)
	}

	return envelope.Data, nil
}
