package interfaces

import "context"

// IEnrollmentService abstracts the external student/course service.
//
// Issuance requires an active enrollment; a false answer fails the
// Create call, an error answer is propagated as-is.
type IEnrollmentService interface {
	HasActiveEnrollment(ctx context.Context, studentRef, courseRef string) (bool, error)
}
