package domain

import (
	"context"
	"time"
)

// ContentType classifies a content item.
type ContentType string

const (
	ContentEvent        ContentType = "event"
	ContentAnnouncement ContentType = "announcement"
	ContentResource     ContentType = "resource"
	ContentNews         ContentType = "news"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentEvent, ContentAnnouncement, ContentResource, ContentNews:
		return true
	}
	return false
}

// ContentItem is a public site content entry. News items require a category.
// swagger:model ContentItem
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Body        string      `json:"body"`
	ContentType ContentType `json:"content_type"`
	Category    string      `json:"category"`
	Published   bool        `json:"published"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Resource is a downloadable file in the resource library.
// swagger:model Resource
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
	Category    string    `json:"category"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// BoardMember is a board roster entry, displayed in SortOrder.
// swagger:model BoardMember
type BoardMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	Position  string    `json:"position"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentAdminService manages content items, resources, and board members,
// auditing every mutation.
type ContentAdminService interface {
	SaveContent(ctx context.Context, c *ContentItem, actorID string) error
	DeleteContent(ctx context.Context, id, actorID string) error
	ListContent(ctx context.Context, p PaginationParams) ([]*ContentItem, int, error)

	SaveResource(ctx context.Context, r *Resource, actorID string) error
	DeleteResource(ctx context.Context, id, actorID string) error
	ListResources(ctx context.Context) ([]*Resource, error)
	ReorderResources(ctx context.Context, order []string, actorID string) error
	SignResourceUpload(ctx context.Context, filename, contentType, actorID string) (*SignedUpload, error)

	SaveBoardMember(ctx context.Context, b *BoardMember, actorID string) error
	DeleteBoardMember(ctx context.Context, id, actorID string) error
	ListBoardMembers(ctx context.Context) ([]*BoardMember, error)
	ReorderBoardMembers(ctx context.Context, order []string, actorID string) error
}

// ContentRepository defines storage operations for content items.
type ContentRepository interface {
	Create(ctx context.Context, c *ContentItem) error
	Update(ctx context.Context, c *ContentItem) error
	List(ctx context.Context, p PaginationParams) ([]*ContentItem, int, error)
	GetByID(ctx context.Context, id string) (*ContentItem, error)
	Delete(ctx context.Context, id string) error
}

// ResourceRepository defines storage operations for resources.
type ResourceRepository interface {
	Create(ctx context.Context, r *Resource) error
	Update(ctx context.Context, r *Resource) error
	List(ctx context.Context) ([]*Resource, error)
	Delete(ctx context.Context, id string) error
	UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
}

// BoardMemberRepository defines storage operations for board members.
type BoardMemberRepository interface {
	Create(ctx context.Context, b *BoardMember) error
	Update(ctx context.Context, b *BoardMember) error
	List(ctx context.Context) ([]*BoardMember, error)
	Delete(ctx context.Context, id string) error
	UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
}
