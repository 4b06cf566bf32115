package enrollment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"edu_boletos/internal/usecase/interfaces"
)

var ErrMissingEnrollmentServiceURL = errors.New("missing ENROLLMENT_SERVICE_URL")

const defaultRequestTimeout = 5 * time.Second

// HTTPEnrollmentService checks active enrollments against the academic
// records service. In mock mode every (student, course) pair counts as
// enrolled, which keeps local environments self-contained.
type HTTPEnrollmentService struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IEnrollmentService = (*HTTPEnrollmentService)(nil)

func NewHTTPEnrollmentService(baseURL string) (*HTTPEnrollmentService, error) {
	if isEnrollmentServiceMockEnabled() {
		log.Printf("[enrollment][client] mock mode enabled")
		return &HTTPEnrollmentService{mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[enrollment][client] missing ENROLLMENT_SERVICE_URL")
		return nil, ErrMissingEnrollmentServiceURL
	}

	return &HTTPEnrollmentService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

type enrollmentResponse struct {
	Active bool `json:"active"`
}

func (s *HTTPEnrollmentService) HasActiveEnrollment(ctx context.Context, studentRef, courseRef string) (bool, error) {
	if s != nil && s.mockMode {
		log.Printf("[enrollment][client] mock lookup student_ref=%s course_ref=%s active=true", studentRef, courseRef)
		return true, nil
	}

	endpoint := fmt.Sprintf("%s/v1/enrollments/%s/%s",
		s.baseURL, url.PathEscape(studentRef), url.PathEscape(courseRef))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[enrollment][client] lookup failed student_ref=%s err=%v", studentRef, err)
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body enrollmentResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			log.Printf("[enrollment][client] decode failed student_ref=%s err=%v", studentRef, err)
			return false, err
		}
		return body.Active, nil
	case http.StatusNotFound:
		return false, nil
	default:
		log.Printf("[enrollment][client] unexpected status student_ref=%s status=%d", studentRef, resp.StatusCode)
		return false, fmt.Errorf("enrollment service returned status %d", resp.StatusCode)
	}
}

func isEnrollmentServiceMockEnabled() bool {
	for _, key := range []string{"ENROLLMENT_SERVICE_MOCK", "ENROLLMENT_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
