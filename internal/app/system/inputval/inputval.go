// Package inputval validates and normalizes applicant fields submitted
// through the admin API. The rules here mirror what the dashboard form
// enforces client-side; the server re-checks everything because the API
// is reachable without the form.
package inputval

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/harvalefoods/harvalehub/internal/domain/models"
)

// Field limits for applicant submissions.
const (
	MinNameLen     = 3
	MinPhoneDigits = 4
	MaxPhoneDigits = 15
	MinPassportLen = 5
	MaxPassportLen = 20
	MinAge         = 18
	MaxAge         = 100
)

var (
	digitsOnlyRe  = regexp.MustCompile(`^[0-9]+$`)
	passportRe    = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	callingCodeRe = regexp.MustCompile(`^\+[0-9]{1,4}$`)
)

// ApplicantInput is the raw form/JSON payload for creating an applicant.
// Age is kept as a string so a non-numeric submission produces a
// validation message instead of a decode error.
type ApplicantInput struct {
	FullName       string
	PhoneNumber    string
	PassportNumber string
	Gender         string
	Photograph     string
	Age            string
	Status         string
}

// Applicant validates in and returns the normalized fields ready for the
// store. The first failing rule wins; messages are written for end users
// and surface verbatim in 400 responses.
func Applicant(in ApplicantInput) (models.NewApplicant, error) {
	var out models.NewApplicant

	name := strings.TrimSpace(in.FullName)
	switch {
	case name == "":
		return out, errors.New("Full name is required")
	case len(name) < MinNameLen:
		return out, errors.New("Name must be at least 3 characters")
	}

	phone, err := normalizePhone(in.PhoneNumber)
	if err != nil {
		return out, err
	}

	passport := strings.TrimSpace(in.PassportNumber)
	switch {
	case passport == "":
		return out, errors.New("Passport number is required")
	case !passportRe.MatchString(passport):
		return out, errors.New("Passport number can only contain letters, digits, and hyphens")
	case len(passport) < MinPassportLen:
		return out, errors.New("Passport number is too short (min 5 characters)")
	case len(passport) > MaxPassportLen:
		return out, errors.New("Passport number is too long (max 20 characters)")
	}

	if !models.IsValidGender(strings.TrimSpace(in.Gender)) {
		return out, errors.New("Gender must be Male, Female, or Other")
	}

	if strings.TrimSpace(in.Photograph) == "" {
		return out, errors.New("Photograph is required")
	}

	age, err := parseAge(in.Age)
	if err != nil {
		return out, err
	}

	// An unknown status silently falls back to pending; only the
	// status-update path treats an invalid value as an error.
	status := strings.TrimSpace(in.Status)
	if !models.IsValidStatus(status) {
		status = models.StatusPending
	}

	out = models.NewApplicant{
		FullName:       name,
		PhoneNumber:    phone,
		PassportNumber: strings.ToUpper(passport),
		Gender:         strings.TrimSpace(in.Gender),
		Photograph:     strings.TrimSpace(in.Photograph),
		Age:            age,
		Status:         status,
	}
	return out, nil
}

// normalizePhone validates a composed phone number of the form
// "<calling code> <local number>" and returns it with formatting
// characters (spaces, hyphens, parens) stripped from the local part.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("Phone number is required")
	}

	code := ""
	local := raw
	if strings.HasPrefix(raw, "+") {
		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || !callingCodeRe.MatchString(parts[0]) {
			return "", errors.New("Phone number must start with a valid country calling code")
		}
		code, local = parts[0], parts[1]
	}

	digits := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(local)
	switch {
	case digits == "":
		return "", errors.New("Phone number is required")
	case !digitsOnlyRe.MatchString(digits):
		return "", errors.New("Phone number can only contain digits")
	case len(digits) < MinPhoneDigits:
		return "", errors.New("Phone number is too short (min 4 digits)")
	case len(digits) > MaxPhoneDigits:
		return "", errors.New("Phone number is too long (max 15 digits)")
	}

	if code == "" {
		return digits, nil
	}
	return code + " " + digits, nil
}

func parseAge(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("Age is required")
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("Please enter a valid age")
	}
	switch {
	case age < MinAge:
		return 0, errors.New("Applicant must be at least 18 years old")
	case age > MaxAge:
		return 0, errors.New("Please enter a valid age (max 100)")
	}
	return age, nil
}
