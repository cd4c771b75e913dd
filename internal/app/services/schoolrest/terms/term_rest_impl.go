package terms

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

type termRestClient struct {
	BaseUrl string
}

func NewTermRestClient(baseUrl string) contracts.TermClient {
	return &termRestClient{
		BaseUrl: baseUrl + constvars.PathTerms,
	}
}

type termEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    []models.Term `json:"data"`
}

func (c *termRestClient) FindByAcademicYear(ctx context.Context, academicYearID int64) ([]models.Term, error) {
	url := fmt.Sprintf("%s?academic_year_id=%d", c.BaseUrl, academicYearID)

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
			return nil, exceptions.ErrGetSchoolResource(err, constvars.ResourceTerm)
		}
		return nil, exceptions.ErrGetSchoolResource(fmt.Errorf("status %d: %s", resp.StatusCode, bodyBytes), constvars.ResourceTerm)
	}

	var envelope termEnvelope
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTerm)
	}

	return envelope.Data, nil
}
