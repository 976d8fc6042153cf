package crm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"slotbook/config"
)

// DefaultSubmissionService posts leads to the CRM form endpoint as a
// URL-encoded form, one "fields[N]" entry per index.
type DefaultSubmissionService struct {
	FormURL    string
	HTTPClient *http.Client
}

// NewDefaultSubmissionService builds a client from the loaded application config.
func NewDefaultSubmissionService() *DefaultSubmissionService {
	return &DefaultSubmissionService{
		FormURL:    config.AppConfig.CRMFormURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *DefaultSubmissionService) Submit(ctx context.Context, fields map[int]string) error {
	if s.FormURL == "" {
		return fmt.Errorf("crm form url not configured")
	}

	form := url.Values{}
	for idx, value := range fields {
		form.Set(fmt.Sprintf("fields[%d]", idx), value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.FormURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build crm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("crm submission rejected with status %d", resp.StatusCode)
	}
	return nil
}
