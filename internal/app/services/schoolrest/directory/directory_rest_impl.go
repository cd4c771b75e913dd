package directory

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

type directoryRestClient struct {
	BaseUrl string
}

func NewDirectoryRestClient(baseUrl string) contracts.DirectoryClient {
	return &directoryRestClient{
		BaseUrl: baseUrl,
	}
}

type subjectEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    models.Subject `json:"data"`
}

type teacherEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    models.Teacher `json:"data"`
}

func (c *directoryRestClient) FindSubjectByID(ctx context.Context, subjectID int64) (*models.Subject, error) {
	url := fmt.Sprintf("%s%s/%d", c.BaseUrl, constvars.PathSubjects, subjectID)

	body, err := c.fetch(ctx, url, constvars.ResourceSubject)
	if err != nil {
		return nil, err
	}

	var envelope subjectEnvelope
	err = json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSubject)
	}

	return &envelope.Data, nil
}

func (c *directoryRestClient) FindTeacherByID(ctx context.Context, teacherID int64) (*models.Teacher, error) {
	url := fmt.Sprintf("%s%s/%d", c.BaseUrl, constvars.PathTeachers, teacherID)

	body, err := c.fetch(ctx, url, constvars.ResourceTeacher)
	if err != nil {
		return nil, err
	}

	var envelope teacherEnvelope
	err = json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTeacher)
	}

	return &envelope.Data, nil
}

func (c *directoryRestClient) fetch(ctx context.Context, url, resource string) ([]byte, error) {
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

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrGetSchoolResource(err, resource)
	}

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGetSchoolResource(fmt.Errorf("status %d: %s", resp.StatusCode, bodyBytes), resource)
	}

	return bodyBytes, nil
}
