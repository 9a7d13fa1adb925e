package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"memberorg/internal/domain"
)

type contentAdminService struct {
	contentRepo  domain.ContentRepository
	resourceRepo domain.ResourceRepository
	boardRepo    domain.BoardMemberRepository
	store        domain.ObjectStore
	audit        domain.AuditLogger
}

// NewContentAdminService manages content items, resources, and board members.
// Every mutation is audited with its true outcome.
func NewContentAdminService(
	contentRepo domain.ContentRepository,
	resourceRepo domain.ResourceRepository,
	boardRepo domain.BoardMemberRepository,
	store domain.ObjectStore,
	audit domain.AuditLogger,
) domain.ContentAdminService {
	return &contentAdminService{
		contentRepo:  contentRepo,
		resourceRepo: resourceRepo,
		boardRepo:    boardRepo,
		store:        store,
		audit:        audit,
	}
}

func (s *contentAdminService) recordOutcome(ctx context.Context, action, actorID, details string, err error) {
	outcome := domain.AuditSuccess
	if err != nil {
		outcome = domain.AuditFailure
		details += " error=" + err.Error()
	}
	s.audit.Record(ctx, action, actorID, outcome, details)
}

func (s *contentAdminService) SaveContent(ctx context.Context, c *domain.ContentItem, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "content:save", actorID, "title="+c.Title, err) }()

	c.Title = strings.TrimSpace(c.Title)
	c.Category = strings.TrimSpace(c.Category)
	if c.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !c.ContentType.Valid() {
		return fmt.Errorf("%w: content type must be event, announcement, resource, or news", domain.ErrInvalidInput)
	}
	if c.ContentType == domain.ContentNews && c.Category == "" {
		return fmt.Errorf("%w: news items require a category", domain.ErrInvalidInput)
	}

	now := time.Now()
	c.UpdatedAt = now
	if c.ID == "" {
		c.CreatedAt = now
		return s.contentRepo.Create(ctx, c)
	}
	return s.contentRepo.Update(ctx, c)
}

func (s *contentAdminService) DeleteContent(ctx context.Context, id, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "content:delete", actorID, "content_id="+id, err) }()
	return s.contentRepo.Delete(ctx, id)
}

func (s *contentAdminService) ListContent(ctx context.Context, p domain.PaginationParams) ([]*domain.ContentItem, int, error) {
	return s.contentRepo.List(ctx, p)
}

func (s *contentAdminService) SaveResource(ctx context.Context, r *domain.Resource, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "resource:save", actorID, "title="+r.Title, err) }()

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if r.FileURL == "" {
		return fmt.Errorf("%w: file_url is required", domain.ErrInvalidInput)
	}
	if r.ID == "" {
		r.CreatedAt = time.Now()
		return s.resourceRepo.Create(ctx, r)
	}
	return s.resourceRepo.Update(ctx, r)
}

func (s *contentAdminService) DeleteResource(ctx context.Context, id, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "resource:delete", actorID, "resource_id="+id, err) }()
	return s.resourceRepo.Delete(ctx, id)
}

func (s *contentAdminService) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	return s.resourceRepo.List(ctx)
}

// ReorderResources assigns sort_order by position in the given id list.
func (s *contentAdminService) ReorderResources(ctx context.Context, order []string, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "resource:reorder", actorID, fmt.Sprintf("count=%d", len(order)), err) }()

	for i, id := range order {
		if err := s.resourceRepo.UpdateSortOrder(ctx, id, i); err != nil {
			return fmt.Errorf("reorder resource %s: %w", id, err)
		}
	}
	return nil
}

func (s *contentAdminService) SignResourceUpload(ctx context.Context, filename, contentType, actorID string) (upload *domain.SignedUpload, err error) {
	defer func() { s.recordOutcome(ctx, "resource:sign-upload", actorID, "filename="+filename, err) }()

	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	return s.store.SignUpload(ctx, "resources", filename, contentType)
}

func (s *contentAdminService) SaveBoardMember(ctx context.Context, b *domain.BoardMember, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "board:save", actorID, "name="+b.Name, err) }()

	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if b.ID == "" {
		b.CreatedAt = time.Now()
		return s.boardRepo.Create(ctx, b)
	}
	return s.boardRepo.Update(ctx, b)
}

func (s *contentAdminService) DeleteBoardMember(ctx context.Context, id, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "board:delete", actorID, "board_member_id="+id, err) }()
	return s.boardRepo.Delete(ctx, id)
}

func (s *contentAdminService) ListBoardMembers(ctx context.Context) ([]*domain.BoardMember, error) {
	return s.boardRepo.List(ctx)
}

func (s *contentAdminService) ReorderBoardMembers(ctx context.Context, order []string, actorID string) (err error) {
	defer func() { s.recordOutcome(ctx, "board:reorder", actorID, fmt.Sprintf("count=%d", len(order)), err) }()

	for i, id := range order {
		if err := s.boardRepo.UpdateSortOrder(ctx, id, i); err != nil {
			return fmt.Errorf("reorder board member %s: %w", id, err)
		}
	}
	return nil
}
