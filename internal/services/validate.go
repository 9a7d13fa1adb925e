package services

import (
	"regexp"
	"strconv"
	"strings"

	"memberorg/internal/domain"
)

// Business-rule bounds enforced server-side, never client-side-only.
const (
	maxReasonLength    = 500
	maxYearsOfService  = 100
	maxAttendeesPerReg = 50
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// 10 digits with optional separators and parentheses, e.g. (615) 555-0147.
	phoneRegexp = regexp.MustCompile(`^\(?[0-9]{3}\)?[\s.-]?[0-9]{3}[\s.-]?[0-9]{4}$`)
)

// fieldErrors accumulates per-field violations so a payload's problems are
// reported all at once rather than first-failure-only.
type fieldErrors []domain.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, domain.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return domain.NewValidationError(f)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateRegistration normalizes the payload in place and returns a
// ValidationError listing every violated field, or nil.
func ValidateRegistration(reg *domain.Registration, attendees []*domain.Attendee) error {
	var errs fieldErrors

	reg.Agency = strings.TrimSpace(reg.Agency)
	reg.ContactName = strings.TrimSpace(reg.ContactName)
	reg.Email = normalizeEmail(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)
	reg.Address = strings.TrimSpace(reg.Address)
	reg.City = strings.TrimSpace(reg.City)
	reg.State = strings.TrimSpace(reg.State)
	reg.Zip = strings.TrimSpace(reg.Zip)

	if reg.EventType != domain.EventTypeConference && reg.EventType != domain.EventTypeTechConference {
		errs.add("event_type", "must be conference or tech_conference")
	}
	if reg.Agency == "" {
		errs.add("agency", "is required")
	}
	if reg.ContactName == "" {
		errs.add("contact_name", "is required")
	}
	if reg.Email == "" {
		errs.add("email", "is required")
	} else if !emailRegexp.MatchString(reg.Email) {
		errs.add("email", "invalid email format")
	}
	if reg.Phone == "" {
		errs.add("phone", "is required")
	} else if !phoneRegexp.MatchString(reg.Phone) {
		errs.add("phone", "must be a 10-digit phone number")
	}
	if reg.TotalAttendees < 1 {
		errs.add("total_attendees", "must be at least 1")
	} else if reg.TotalAttendees > maxAttendeesPerReg {
		errs.add("total_attendees", "exceeds the attendee limit")
	}
	if len(attendees) > reg.TotalAttendees {
		errs.add("attendees", "more attendee entries than total_attendees")
	}

	for i, a := range attendees {
		a.FirstName = strings.TrimSpace(a.FirstName)
		a.LastName = strings.TrimSpace(a.LastName)
		a.Email = normalizeEmail(a.Email)
		prefix := "attendees[" + strconv.Itoa(i) + "]."
		if a.FirstName == "" {
			errs.add(prefix+"first_name", "is required")
		}
		if a.LastName == "" {
			errs.add(prefix+"last_name", "is required")
		}
		if a.Email != "" && !emailRegexp.MatchString(a.Email) {
			errs.add(prefix+"email", "invalid email format")
		}
	}

	return errs.err()
}

// ValidateNomination normalizes the payload in place and returns a
// ValidationError listing every violated field, or nil.
func ValidateNomination(n *domain.Nomination) error {
	var errs fieldErrors

	n.NomineeName = strings.TrimSpace(n.NomineeName)
	n.District = strings.TrimSpace(n.District)
	n.Reason = strings.TrimSpace(n.Reason)
	n.NominatorName = strings.TrimSpace(n.NominatorName)
	n.NominatorEmail = normalizeEmail(n.NominatorEmail)
	n.NominatorPhone = strings.TrimSpace(n.NominatorPhone)

	if n.NomineeName == "" {
		errs.add("nominee_name", "is required")
	}
	if n.District == "" {
		errs.add("district", "is required")
	}
	if n.YearsOfService < 0 || n.YearsOfService > maxYearsOfService {
		errs.add("years_of_service", "must be between 0 and 100")
	}
	if n.Reason == "" {
		errs.add("reason", "is required")
	} else if len(n.Reason) > maxReasonLength {
		errs.add("reason", "must be 500 characters or fewer")
	}
	if n.NominatorName == "" {
		errs.add("nominator_name", "is required")
	}
	if n.NominatorEmail == "" {
		errs.add("nominator_email", "is required")
	} else if !emailRegexp.MatchString(n.NominatorEmail) {
		errs.add("nominator_email", "invalid email format")
	}
	if n.NominatorPhone != "" && !phoneRegexp.MatchString(n.NominatorPhone) {
		errs.add("nominator_phone", "must be a 10-digit phone number")
	}

	return errs.err()
}

// ValidateMembership normalizes the payload in place and returns a
// ValidationError listing every violated field, or nil.
func ValidateMembership(m *domain.MembershipApplication) error {
	var errs fieldErrors

	m.Name = strings.TrimSpace(m.Name)
	m.Email = normalizeEmail(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Organization = strings.TrimSpace(m.Organization)
	m.Position = strings.TrimSpace(m.Position)
	for i, in := range m.Interests {
		m.Interests[i] = strings.TrimSpace(in)
	}

	if m.Name == "" {
		errs.add("name", "is required")
	}
	if m.Email == "" {
		errs.add("email", "is required")
	} else if !emailRegexp.MatchString(m.Email) {
		errs.add("email", "invalid email format")
	}
	if m.Phone != "" && !phoneRegexp.MatchString(m.Phone) {
		errs.add("phone", "must be a 10-digit phone number")
	}
	if m.Organization == "" {
		errs.add("organization", "is required")
	}
	if !m.MembershipType.Valid() {
		errs.add("membership_type", "must be active, associate, or retired")
	}

	return errs.err()
}
