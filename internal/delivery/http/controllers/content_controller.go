package controllers

import (
	"log/slog"
	"net/http"

	"memberorg/internal/delivery/http/helpers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/domain"
)

// ContentController serves public content reads and admin content management.
type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentAdminService
}

func NewContentController(logger *slog.Logger, svc domain.ContentAdminService) *ContentController {
	return &ContentController{
		Logger:  logger,
		Service: svc,
	}
}

// ContentRequest is the request body for saving a content item.
type ContentRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	ContentType string `json:"content_type"`
	Category    string `json:"category"`
	Published   bool   `json:"published"`
}

// ListContent godoc
// @Summary List content items
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /content [get]
func (c *ContentController) ListContent(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	items, total, err := c.Service.ListContent(r.Context(), p)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pagedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// SaveContent godoc
// @Summary Create or update a content item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.ContentRequest true "Content item"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/content [post]
func (c *ContentController) SaveContent(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	item := &domain.ContentItem{
		ID:          req.ID,
		Title:       req.Title,
		Body:        req.Body,
		ContentType: domain.ContentType(req.ContentType),
		Category:    req.Category,
		Published:   req.Published,
	}
	if err := c.Service.SaveContent(r.Context(), item, actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// DeleteContent godoc
// @Summary Delete a content item
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content item ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/content/{id} [delete]
func (c *ContentController) DeleteContent(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.DeleteContent(r.Context(), r.PathValue("id"), actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": r.PathValue("id")})
}

// ResourceRequest is the request body for saving a resource.
type ResourceRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	Category    string `json:"category"`
}

// ListResources godoc
// @Summary List resource library entries
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /resources [get]
func (c *ContentController) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := c.Service.ListResources(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resources)
}

// SaveResource godoc
// @Summary Create or update a resource
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.ResourceRequest true "Resource"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/resources [post]
func (c *ContentController) SaveResource(w http.ResponseWriter, r *http.Request) {
	var req ResourceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	res := &domain.Resource{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Category:    req.Category,
	}
	if err := c.Service.SaveResource(r.Context(), res, actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// DeleteResource godoc
// @Summary Delete a resource
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/resources/{id} [delete]
func (c *ContentController) DeleteResource(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.DeleteResource(r.Context(), r.PathValue("id"), actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": r.PathValue("id")})
}

// ReorderRequest carries an ordered list of IDs; position in the list
// becomes the sort order.
type ReorderRequest struct {
	Order []string `json:"order"`
}

// Validate implements helpers.Validator.
func (r *ReorderRequest) Validate() []domain.FieldError {
	if len(r.Order) == 0 {
		return []domain.FieldError{{Field: "order", Message: "must not be empty"}}
	}
	return nil
}

// ReorderResources godoc
// @Summary Reorder the resource library
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.ReorderRequest true "Ordered resource IDs"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/resources/reorder [patch]
func (c *ContentController) ReorderResources(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.ReorderResources(r.Context(), req.Order, actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"reordered": len(req.Order)})
}

// UploadURLRequest is the request body for POST /admin/resources/upload-url.
type UploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// Validate implements helpers.Validator.
func (r *UploadURLRequest) Validate() []domain.FieldError {
	var fields []domain.FieldError
	if r.Filename == "" {
		fields = append(fields, domain.FieldError{Field: "filename", Message: "is required"})
	}
	if r.ContentType == "" {
		fields = append(fields, domain.FieldError{Field: "content_type", Message: "is required"})
	}
	return fields
}

// SignResourceUpload godoc
// @Summary Issue a presigned upload URL for a resource file
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.UploadURLRequest true "File metadata"
// @Success 200 {object} helpers.APIResponse "data contains upload_url, public_url, key, expires_at"
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/resources/upload-url [post]
func (c *ContentController) SignResourceUpload(w http.ResponseWriter, r *http.Request) {
	var req UploadURLRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	signed, err := c.Service.SignResourceUpload(r.Context(), req.Filename, req.ContentType, actorID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, signed)
}

// BoardMemberRequest is the request body for saving a board member.
type BoardMemberRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
	Position string `json:"position"`
}

// ListBoardMembers godoc
// @Summary List board members in display order
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /board [get]
func (c *ContentController) ListBoardMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.ListBoardMembers(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// SaveBoardMember godoc
// @Summary Create or update a board member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.BoardMemberRequest true "Board member"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/board [post]
func (c *ContentController) SaveBoardMember(w http.ResponseWriter, r *http.Request) {
	var req BoardMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	member := &domain.BoardMember{
		ID:       req.ID,
		Name:     req.Name,
		District: req.District,
		Position: req.Position,
	}
	if err := c.Service.SaveBoardMember(r.Context(), member, actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, member)
}

// DeleteBoardMember godoc
// @Summary Delete a board member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board member ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/board/{id} [delete]
func (c *ContentController) DeleteBoardMember(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.DeleteBoardMember(r.Context(), r.PathValue("id"), actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": r.PathValue("id")})
}

// ReorderBoardMembers godoc
// @Summary Reorder the board roster
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.ReorderRequest true "Ordered board member IDs"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/board/reorder [patch]
func (c *ContentController) ReorderBoardMembers(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, _ := middleware.UserIDFromContext(r.Context())
	if err := c.Service.ReorderBoardMembers(r.Context(), req.Order, actorID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"reordered": len(req.Order)})
}
