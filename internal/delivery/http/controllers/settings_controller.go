package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"memberorg/internal/delivery/http/helpers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/domain"
)

// SettingsController serves settings-period management and the period
// rollover endpoint.
type SettingsController struct {
	Logger   *slog.Logger
	Settings domain.SettingsService
	Rollover domain.RolloverService
}

func NewSettingsController(logger *slog.Logger, settings domain.SettingsService, rollover domain.RolloverService) *SettingsController {
	return &SettingsController{
		Logger:   logger,
		Settings: settings,
		Rollover: rollover,
	}
}

// SettingsRequest is the request body for saving a settings period.
type SettingsRequest struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	Fee                  float64   `json:"fee"`
	IsActive             bool      `json:"is_active"`
}

func (r *SettingsRequest) toPeriod(eventType domain.EventType) *domain.SettingsPeriod {
	return &domain.SettingsPeriod{
		ID:                   r.ID,
		EventType:            eventType,
		Name:                 r.Name,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		Fee:                  r.Fee,
		IsActive:             r.IsActive,
	}
}

// ListSettings godoc
// @Summary List settings periods for an event type
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param event_type path string true "conference, tech_conference, or hall_of_fame"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/settings/{event_type} [get]
func (c *SettingsController) ListSettings(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.PathValue("event_type"))
	if !eventType.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event type")
		return
	}
	periods, err := c.Settings.ListByEventType(r.Context(), eventType)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, periods)
}

// GetActiveSettings godoc
// @Summary Fetch the active settings period for an event type
// @Description Public endpoint used by the submission forms to show the window and fee.
// @Tags settings
// @Produce json
// @Param event_type path string true "conference, tech_conference, or hall_of_fame"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "no active period"
// @Router /settings/{event_type}/active [get]
func (c *SettingsController) GetActiveSettings(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.PathValue("event_type"))
	if !eventType.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event type")
		return
	}
	period, err := c.Settings.GetActive(r.Context(), eventType)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, period)
}

// SaveSettings godoc
// @Summary Create or update a settings period
// @Description Saving an active period deactivates every other period for the event type.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_type path string true "conference, tech_conference, or hall_of_fame"
// @Param body body controllers.SettingsRequest true "Settings period"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/settings/{event_type} [post]
func (c *SettingsController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.PathValue("event_type"))
	if !eventType.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event type")
		return
	}
	var req SettingsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	period := req.toPeriod(eventType)
	if err := c.Settings.Save(r.Context(), period, actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, period)
}

// DeleteSettings godoc
// @Summary Delete a settings period
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Settings period ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/settings/{id} [delete]
func (c *SettingsController) DeleteSettings(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Settings.Delete(r.Context(), r.PathValue("id"), actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": r.PathValue("id")})
}

// RolloverRequest is the request body for POST /admin/rollover/{event_type}.
// NewSettings describes the period to activate after the archive step.
type RolloverRequest struct {
	NewSettings SettingsRequest `json:"new_settings"`
}

// RunRollover godoc
// @Summary Archive the current period and activate new settings
// @Description Copies the period's submissions into archive tables, clears the live tables, and activates the supplied settings. At most one rollover per event type per calendar year.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_type path string true "conference, tech_conference, or hall_of_fame"
// @Param body body controllers.RolloverRequest true "New period settings"
// @Success 200 {object} helpers.APIResponse "data is the rollover result with moved counts"
// @Failure 400 {object} helpers.APIResponse
// @Failure 409 {object} helpers.APIResponse "error.code: conflict when the year was already rolled over"
// @Router /admin/rollover/{event_type} [post]
func (c *SettingsController) RunRollover(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.PathValue("event_type"))
	if !eventType.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event type")
		return
	}
	var req RolloverRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	result, err := c.Rollover.Rollover(r.Context(), eventType, req.NewSettings.toPeriod(eventType), actorID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
