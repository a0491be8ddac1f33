// internal/testutil/fixtures.go
package testutil

import (
	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// TinyPNGDataURL is a valid 1x1 PNG encoded as a data URI, handy for
// exercising photo upload paths.
const TinyPNGDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// NewApplicantInput returns a valid applicant submission. Override
// fields on the result as needed.
func NewApplicantInput(name string) models.NewApplicant {
	return models.NewApplicant{
		FullName:       name,
		PhoneNumber:    "+254 712345678",
		PassportNumber: "AB12345",
		Gender:         "Female",
		Photograph:     "/uploads/1700000000000-abc123.png",
		Age:            28,
		Status:         models.StatusPending,
	}
}
