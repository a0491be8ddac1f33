// internal/domain/models/applicant.go
package models

import "time"

// Applicant statuses. Status is the only mutable field after creation.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ApplicantStatuses is the canonical set of valid statuses, in display order.
var ApplicantStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// IsValidStatus reports whether s is one of the three applicant statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Genders accepted on applicant creation.
var Genders = []string{"Male", "Female", "Other"}

// IsValidGender reports whether g is one of the accepted gender values.
func IsValidGender(g string) bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// Applicant is a job-candidate record managed through the admin dashboard.
//
// Photograph holds a durable reference (an /uploads/... path or an absolute
// object-storage URL) once the record is persisted. Records created before
// photo offloading existed may still carry an embedded data URI; the file
// store migrates those lazily on first read.
type Applicant struct {
	ID             string    `bson:"_id" json:"id"`
	FullName       string    `bson:"full_name" json:"fullName"`
	PhoneNumber    string    `bson:"phone_number" json:"phoneNumber"` // "<calling code> <digits>"
	PassportNumber string    `bson:"passport_number" json:"passportNumber"`
	Gender         string    `bson:"gender" json:"gender"`
	Photograph     string    `bson:"photograph" json:"photograph"`
	Age            int       `bson:"age" json:"age"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// NewApplicant carries the caller-supplied fields for Create. ID and
// CreatedAt are assigned by the store; Photograph may be an embedded data
// URI, which the store exchanges for a durable reference before persisting.
type NewApplicant struct {
	FullName       string
	PhoneNumber    string
	PassportNumber string
	Gender         string
	Photograph     string
	Age            int
	Status         string
}
