package controllers

import (
	"log/slog"
	"net/http"

	"memberorg/internal/delivery/http/helpers"
	"memberorg/internal/domain"
)

// SubmissionController serves the public form endpoints.
type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewSubmissionController(logger *slog.Logger, svc domain.SubmissionService) *SubmissionController {
	return &SubmissionController{
		Logger:  logger,
		Service: svc,
	}
}

// AttendeeRequest is one attendee entry in a registration request.
type AttendeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// RegistrationRequest is the request body for the conference and
// tech-conference registration endpoints.
type RegistrationRequest struct {
	Agency         string            `json:"agency"`
	ContactName    string            `json:"contact_name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Zip            string            `json:"zip"`
	TotalAttendees int               `json:"total_attendees"`
	Attendees      []AttendeeRequest `json:"attendees"`
}

// SubmissionResponse is the success payload for all public submission endpoints.
type SubmissionResponse struct {
	ID string `json:"id"`
}

// SubmitConference godoc
// @Summary Submit a conference registration
// @Description Validates the payload, checks the active registration period, applies rate limiting and the duplicate guard, then creates the registration and its attendee rows.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body controllers.RegistrationRequest true "Registration payload"
// @Success 201 {object} helpers.APIResponse "data.id is the created registration id"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_submission or period_closed"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Router /submissions/conference [post]
func (c *SubmissionController) SubmitConference(w http.ResponseWriter, r *http.Request) {
	c.submitRegistration(w, r, domain.EventTypeConference)
}

// SubmitTechConference godoc
// @Summary Submit a tech-conference registration
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body controllers.RegistrationRequest true "Registration payload"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /submissions/tech-conference [post]
func (c *SubmissionController) SubmitTechConference(w http.ResponseWriter, r *http.Request) {
	c.submitRegistration(w, r, domain.EventTypeTechConference)
}

func (c *SubmissionController) submitRegistration(w http.ResponseWriter, r *http.Request, eventType domain.EventType) {
	var req RegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg := &domain.Registration{
		EventType:      eventType,
		Agency:         req.Agency,
		ContactName:    req.ContactName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		TotalAttendees: req.TotalAttendees,
	}
	attendees := make([]*domain.Attendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, &domain.Attendee{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
		})
	}

	id, err := c.Service.SubmitRegistration(r.Context(), reg, attendees)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmissionResponse{ID: id})
}

// NominationRequest is the request body for POST /submissions/nominations.
type NominationRequest struct {
	NomineeName    string `json:"nominee_name"`
	District       string `json:"district"`
	YearsOfService int    `json:"years_of_service"`
	Reason         string `json:"reason"`
	NominatorName  string `json:"nominator_name"`
	NominatorEmail string `json:"nominator_email"`
	NominatorPhone string `json:"nominator_phone"`
}

// SubmitNomination godoc
// @Summary Submit a Hall of Fame nomination
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body controllers.NominationRequest true "Nomination payload"
// @Success 201 {object} helpers.APIResponse "data.id is the created nomination id"
// @Failure 400 {object} helpers.APIResponse
// @Failure 409 {object} helpers.APIResponse
// @Router /submissions/nominations [post]
func (c *SubmissionController) SubmitNomination(w http.ResponseWriter, r *http.Request) {
	var req NominationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	n := &domain.Nomination{
		NomineeName:    req.NomineeName,
		District:       req.District,
		YearsOfService: req.YearsOfService,
		Reason:         req.Reason,
		NominatorName:  req.NominatorName,
		NominatorEmail: req.NominatorEmail,
		NominatorPhone: req.NominatorPhone,
	}
	id, err := c.Service.SubmitNomination(r.Context(), n)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmissionResponse{ID: id})
}

// MembershipRequest is the request body for POST /submissions/membership.
type MembershipRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Organization   string   `json:"organization"`
	Position       string   `json:"position"`
	MembershipType string   `json:"membership_type"`
	Interests      []string `json:"interests"`
}

// SubmitMembership godoc
// @Summary Submit a membership application
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body controllers.MembershipRequest true "Membership application payload"
// @Success 201 {object} helpers.APIResponse "data.id is the created application id"
// @Failure 400 {object} helpers.APIResponse
// @Failure 409 {object} helpers.APIResponse
// @Router /submissions/membership [post]
func (c *SubmissionController) SubmitMembership(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	m := &domain.MembershipApplication{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Organization:   req.Organization,
		Position:       req.Position,
		MembershipType: domain.MembershipType(req.MembershipType),
		Interests:      req.Interests,
	}
	id, err := c.Service.SubmitMembership(r.Context(), m)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmissionResponse{ID: id})
}
