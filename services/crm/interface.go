package crm

import "context"

// SubmissionService submits one lead to the external CRM form. The payload
// is the CRM's fixed field-index mapping; failures are best-effort from the
// booking service's perspective.
type SubmissionService interface {
	Submit(ctx context.Context, fields map[int]string) error
}
