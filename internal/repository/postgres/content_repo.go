package postgres

import (
	"context"
	"database/sql"
	"errors"

	"memberorg/internal/domain"
)

type contentRepository struct {
	DB *sql.DB
}

// NewContentRepository returns a domain.ContentRepository implemented with Postgres.
func NewContentRepository(db *sql.DB) domain.ContentRepository {
	return &contentRepository{DB: db}
}

func (r *contentRepository) Create(ctx context.Context, c *domain.ContentItem) error {
	query := `
		INSERT INTO content_items (title, body, content_type, category, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Title, c.Body, c.ContentType, c.Category, c.Published, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *contentRepository) Update(ctx context.Context, c *domain.ContentItem) error {
	query := `
		UPDATE content_items
		SET title = $1, body = $2, content_type = $3, category = $4, published = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query,
		c.Title, c.Body, c.ContentType, c.Category, c.Published, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *contentRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.ContentItem, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, title, body, content_type, category, published, created_at, updated_at
		FROM content_items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*domain.ContentItem{}
	for rows.Next() {
		c := &domain.ContentItem{}
		if err := rows.Scan(&c.ID, &c.Title, &c.Body, &c.ContentType, &c.Category,
			&c.Published, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	query := `
		SELECT id, title, body, content_type, category, published, created_at, updated_at
		FROM content_items
		WHERE id = $1
	`
	c := &domain.ContentItem{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Title, &c.Body, &c.ContentType, &c.Category, &c.Published, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *contentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type resourceRepository struct {
	DB *sql.DB
}

// NewResourceRepository returns a domain.ResourceRepository implemented with Postgres.
func NewResourceRepository(db *sql.DB) domain.ResourceRepository {
	return &resourceRepository{DB: db}
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `
		INSERT INTO resources (title, description, file_url, category, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		res.Title, res.Description, res.FileURL, res.Category, res.SortOrder, res.CreatedAt,
	).Scan(&res.ID)
}

func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	query := `
		UPDATE resources
		SET title = $1, description = $2, file_url = $3, category = $4, sort_order = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		res.Title, res.Description, res.FileURL, res.Category, res.SortOrder, res.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *resourceRepository) List(ctx context.Context) ([]*domain.Resource, error) {
	query := `
		SELECT id, title, description, file_url, category, sort_order, created_at
		FROM resources
		ORDER BY sort_order ASC, created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := []*domain.Resource{}
	for rows.Next() {
		res := &domain.Resource{}
		if err := rows.Scan(&res.ID, &res.Title, &res.Description, &res.FileURL,
			&res.Category, &res.SortOrder, &res.CreatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *resourceRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE resources SET sort_order = $1 WHERE id = $2`, sortOrder, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type boardMemberRepository struct {
	DB *sql.DB
}

// NewBoardMemberRepository returns a domain.BoardMemberRepository implemented with Postgres.
func NewBoardMemberRepository(db *sql.DB) domain.BoardMemberRepository {
	return &boardMemberRepository{DB: db}
}

func (r *boardMemberRepository) Create(ctx context.Context, b *domain.BoardMember) error {
	query := `
		INSERT INTO board_members (name, district, position, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		b.Name, b.District, b.Position, b.SortOrder, b.CreatedAt,
	).Scan(&b.ID)
}

func (r *boardMemberRepository) Update(ctx context.Context, b *domain.BoardMember) error {
	query := `
		UPDATE board_members
		SET name = $1, district = $2, position = $3, sort_order = $4
		WHERE id = $5
	`
	res, err := r.DB.ExecContext(ctx, query, b.Name, b.District, b.Position, b.SortOrder, b.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *boardMemberRepository) List(ctx context.Context) ([]*domain.BoardMember, error) {
	query := `
		SELECT id, name, district, position, sort_order, created_at
		FROM board_members
		ORDER BY sort_order ASC, created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*domain.BoardMember{}
	for rows.Next() {
		b := &domain.BoardMember{}
		if err := rows.Scan(&b.ID, &b.Name, &b.District, &b.Position, &b.SortOrder, &b.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *boardMemberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM board_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *boardMemberRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE board_members SET sort_order = $1 WHERE id = $2`, sortOrder, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
