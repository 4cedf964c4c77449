package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

const (
	blogPostsTable = "blog_posts"
)

type BlogRepository interface {
	ListPublished(filters domain.BlogFilters) ([]*domain.BlogPost, int, error)
	GetPublishedBySlug(slug string) (*domain.BlogPost, error)
	ListAll(page, limit int) ([]*domain.BlogPost, int, error)
	Create(post *domain.BlogPost) (*domain.BlogPost, error)
	Update(id int, req domain.UpdateBlogPostRequest, publishedNow bool) (*domain.BlogPost, error)
	Delete(id int) (bool, error)
	SlugExists(slug string, excludeID int) (bool, error)
}

type blogRepository struct {
	conn *postgres.Connection
}

func NewBlogRepository(conn *postgres.Connection) BlogRepository {
	return &blogRepository{
		conn: conn,
	}
}

func (r *blogRepository) ListPublished(filters domain.BlogFilters) ([]*domain.BlogPost, int, error) {
	offset := (filters.Page - 1) * filters.Limit

	queryBuilder := squirrel.
		Select(
			"b.id", "b.title", "b.slug", "b.excerpt", "b.featured_image",
			"b.tags", "b.published_at", "b.created_at",
			"u.name AS author_name",
			"COUNT(*) OVER() AS total_count",
		).
		From(blogPostsTable+" b").
		LeftJoin("users u ON b.author_id = u.id").
		Where(squirrel.Eq{"b.status": domain.BlogStatusPublished}).
		OrderBy("b.published_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Tag != "" {
		queryBuilder = queryBuilder.Where("? = ANY(b.tags)", filters.Tag)
	}

	if filters.Search != "" {
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"b.title": "%" + filters.Search + "%"},
			squirrel.ILike{"b.excerpt": "%" + filters.Search + "%"},
		})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.BlogPost, 0)
	totalCount := 0

	for rows.Next() {
		post := &domain.BlogPost{}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Excerpt,
			&post.FeaturedImage,
			pq.Array(&post.Tags),
			&post.PublishedAt,
			&post.CreatedAt,
			&post.AuthorName,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear post: %w", err)
		}

		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, totalCount, nil
}

func (r *blogRepository) GetPublishedBySlug(slug string) (*domain.BlogPost, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"b.id", "b.title", "b.slug", "b.content", "b.excerpt", "b.featured_image",
			"b.tags", "b.meta_title", "b.meta_description", "b.published_at", "b.created_at",
			"u.name AS author_name",
		).
		From(blogPostsTable+" b").
		LeftJoin("users u ON b.author_id = u.id").
		Where(squirrel.Eq{"b.slug": slug, "b.status": domain.BlogStatusPublished}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	post := &domain.BlogPost{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.FeaturedImage,
		pq.Array(&post.Tags),
		&post.MetaTitle,
		&post.MetaDescription,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.AuthorName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar post: %w", err)
	}

	return post, nil
}

func (r *blogRepository) ListAll(page, limit int) ([]*domain.BlogPost, int, error) {
	offset := (page - 1) * limit

	sqlQuery, args, err := squirrel.
		Select(
			"b.id", "b.title", "b.slug", "b.status", "b.tags",
			"b.published_at", "b.created_at", "b.updated_at",
			"u.name AS author_name",
			"COUNT(*) OVER() AS total_count",
		).
		From(blogPostsTable+" b").
		LeftJoin("users u ON b.author_id = u.id").
		OrderBy("b.updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.BlogPost, 0)
	totalCount := 0

	for rows.Next() {
		post := &domain.BlogPost{}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Slug,
			&post.Status,
			pq.Array(&post.Tags),
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.AuthorName,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear post: %w", err)
		}

		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, totalCount, nil
}

func (r *blogRepository) Create(post *domain.BlogPost) (*domain.BlogPost, error) {
	queryBuilder := squirrel.
		Insert(blogPostsTable).
		Columns(
			"title", "slug", "content", "excerpt", "featured_image",
			"tags", "status", "meta_title", "meta_description", "author_id", "published_at",
		).
		Values(
			post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImage,
			pq.Array(post.Tags), post.Status, post.MetaTitle, post.MetaDescription,
			post.AuthorID, post.PublishedAt,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&post.ID, &post.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar post: %w", err)
	}

	return post, nil
}

// Update atualiza apenas os campos presentes. Quando publishedNow é true o
// post está sendo publicado pela primeira vez e published_at é carimbado.
func (r *blogRepository) Update(id int, req domain.UpdateBlogPostRequest, publishedNow bool) (*domain.BlogPost, error) {
	queryBuilder := squirrel.
		Update(blogPostsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, title, slug, status, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	if req.Title != nil {
		queryBuilder = queryBuilder.Set("title", *req.Title)
	}

	if req.Slug != nil {
		queryBuilder = queryBuilder.Set("slug", *req.Slug)
	}

	if req.Content != nil {
		queryBuilder = queryBuilder.Set("content", *req.Content)
	}

	if req.Excerpt != nil {
		queryBuilder = queryBuilder.Set("excerpt", *req.Excerpt)
	}

	if req.FeaturedImage != nil {
		queryBuilder = queryBuilder.Set("featured_image", *req.FeaturedImage)
	}

	if req.Tags != nil {
		queryBuilder = queryBuilder.Set("tags", pq.Array(req.Tags))
	}

	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
	}

	if req.MetaTitle != nil {
		queryBuilder = queryBuilder.Set("meta_title", *req.MetaTitle)
	}

	if req.MetaDescription != nil {
		queryBuilder = queryBuilder.Set("meta_description", *req.MetaDescription)
	}

	// Preserva a data da primeira publicação em republicações
	if publishedNow {
		queryBuilder = queryBuilder.Set("published_at", squirrel.Expr("COALESCE(published_at, NOW())"))
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	post := &domain.BlogPost{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Status,
		&post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar post: %w", err)
	}

	return post, nil
}

func (r *blogRepository) Delete(id int) (bool, error) {
	sqlQuery, args, err := squirrel.
		Delete(blogPostsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao contar linhas removidas: %w", err)
	}

	return affected > 0, nil
}

func (r *blogRepository) SlugExists(slug string, excludeID int) (bool, error) {
	queryBuilder := squirrel.
		Select("1").
		From(blogPostsTable).
		Where(squirrel.Eq{"slug": slug}).
		PlaceholderFormat(squirrel.Dollar)

	if excludeID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(sqlQuery, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao verificar slug: %w", err)
	}

	return true, nil
}
