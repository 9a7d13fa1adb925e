package controllers

import (
	"log/slog"
	"net/http"

	"memberorg/internal/delivery/http/helpers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/domain"
)

// ReviewController serves the admin read and status-update endpoints over
// submitted data and archives.
type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{
		Logger:  logger,
		Service: svc,
	}
}

type pagedResponse struct {
	Items      any                    `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListRegistrations godoc
// @Summary List registrations for an event type
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param event_type path string true "conference or tech_conference"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Router /admin/registrations/{event_type} [get]
func (c *ReviewController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.PathValue("event_type"))
	if eventType != domain.EventTypeConference && eventType != domain.EventTypeTechConference {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event type")
		return
	}
	p := helpers.ParsePagination(r)

	regs, total, err := c.Service.ListRegistrations(r.Context(), eventType, p)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pagedResponse{
		Items:      regs,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// ListNominations godoc
// @Summary List Hall of Fame nominations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /admin/nominations [get]
func (c *ReviewController) ListNominations(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	noms, total, err := c.Service.ListNominations(r.Context(), p)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pagedResponse{
		Items:      noms,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// ListMemberships godoc
// @Summary List membership applications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /admin/memberships [get]
func (c *ReviewController) ListMemberships(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	apps, total, err := c.Service.ListMemberships(r.Context(), p)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pagedResponse{
		Items:      apps,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// StatusUpdateRequest is the request body for status-change endpoints.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *StatusUpdateRequest) Validate() []domain.FieldError {
	if !domain.SubmissionStatus(r.Status).Valid() {
		return []domain.FieldError{{Field: "status", Message: "must be pending, approved, or rejected"}}
	}
	return nil
}

// UpdateNominationStatus godoc
// @Summary Update a nomination's review status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Nomination ID"
// @Param body body controllers.StatusUpdateRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/nominations/{id}/status [patch]
func (c *ReviewController) UpdateNominationStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	err := c.Service.UpdateNominationStatus(r.Context(), r.PathValue("id"), domain.SubmissionStatus(req.Status), actorID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": req.Status})
}

// UpdateMembershipStatus godoc
// @Summary Update a membership application's review status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param body body controllers.StatusUpdateRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/memberships/{id}/status [patch]
func (c *ReviewController) UpdateMembershipStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	err := c.Service.UpdateMembershipStatus(r.Context(), r.PathValue("id"), domain.SubmissionStatus(req.Status), actorID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": req.Status})
}

// ListArchiveBatches godoc
// @Summary List rollover archive batches for an event type
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param event_type path string true "conference, tech_conference, or hall_of_fame"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/archives/{event_type} [get]
func (c *ReviewController) ListArchiveBatches(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.PathValue("event_type"))
	if !eventType.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event type")
		return
	}
	batches, err := c.Service.ListArchiveBatches(r.Context(), eventType)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, batches)
}

// GetArchiveSnapshot godoc
// @Summary Fetch one archive batch's rows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param archive_id path string true "Archive batch ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/archives/batch/{archive_id} [get]
func (c *ReviewController) GetArchiveSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.Service.GetArchiveSnapshot(r.Context(), r.PathValue("archive_id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, snapshot)
}
