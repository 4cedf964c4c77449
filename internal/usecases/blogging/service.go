// Package blogging cuida dos posts do blog institucional
package blogging

import (
	"time"

	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/utils"
)

type Blogger interface {
	ListPublished(filters domain.BlogFilters) ([]*domain.BlogPost, domain.Pagination, error)
	GetPublishedBySlug(slug string) (*domain.BlogPost, error)
	ListAll(page, limit int) ([]*domain.BlogPost, domain.Pagination, error)
	Create(req domain.CreateBlogPostRequest, authorID int) (*domain.BlogPost, error)
	Update(id int, req domain.UpdateBlogPostRequest) (*domain.BlogPost, error)
	Delete(id int) error
}

type bloggerService struct {
	blogRepository repository.BlogRepository
}

func NewBloggerService(blogRepository repository.BlogRepository) Blogger {
	return &bloggerService{
		blogRepository: blogRepository,
	}
}

func (s *bloggerService) ListPublished(filters domain.BlogFilters) ([]*domain.BlogPost, domain.Pagination, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}

	if filters.Limit < 1 || filters.Limit > 50 {
		filters.Limit = 10
	}

	posts, totalCount, err := s.blogRepository.ListPublished(filters)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return posts, domain.NewPagination(filters.Page, filters.Limit, totalCount), nil
}

func (s *bloggerService) GetPublishedBySlug(slug string) (*domain.BlogPost, error) {
	post, err := s.blogRepository.GetPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *bloggerService) ListAll(page, limit int) ([]*domain.BlogPost, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 || limit > 100 {
		limit = 20
	}

	posts, totalCount, err := s.blogRepository.ListAll(page, limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return posts, domain.NewPagination(page, limit, totalCount), nil
}

// Create cria um post. Sem slug, ele é derivado do título; slugs são únicos.
// Um post já criado como publicado recebe published_at imediatamente.
func (s *bloggerService) Create(req domain.CreateBlogPostRequest, authorID int) (*domain.BlogPost, error) {
	if req.Title == "" || req.Content == "" {
		return nil, ErrMissingTitleOrContent
	}

	if req.Status == "" {
		req.Status = domain.BlogStatusDraft
	}

	if !validStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	slug := utils.Slugify(req.Title)
	if req.Slug != nil && *req.Slug != "" {
		slug = utils.Slugify(*req.Slug)
	}

	exists, err := s.blogRepository.SlugExists(slug, 0)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, ErrSlugAlreadyExists
	}

	post := &domain.BlogPost{
		Title:           req.Title,
		Slug:            slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		FeaturedImage:   req.FeaturedImage,
		Tags:            req.Tags,
		Status:          req.Status,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		AuthorID:        authorID,
	}

	if req.Status == domain.BlogStatusPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	return s.blogRepository.Create(post)
}

func (s *bloggerService) Update(id int, req domain.UpdateBlogPostRequest) (*domain.BlogPost, error) {
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	if req.Slug != nil && *req.Slug != "" {
		slug := utils.Slugify(*req.Slug)
		req.Slug = &slug

		exists, err := s.blogRepository.SlugExists(slug, id)
		if err != nil {
			return nil, err
		}

		if exists {
			return nil, ErrSlugAlreadyExists
		}
	}

	publishedNow := req.Status != nil && *req.Status == domain.BlogStatusPublished

	post, err := s.blogRepository.Update(id, req, publishedNow)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, ErrPostNotFound
	}

	return post, nil
}

func (s *bloggerService) Delete(id int) error {
	deleted, err := s.blogRepository.Delete(id)
	if err != nil {
		return err
	}

	if !deleted {
		return ErrPostNotFound
	}

	return nil
}

func validStatus(status string) bool {
	switch status {
	case domain.BlogStatusDraft, domain.BlogStatusPublished, domain.BlogStatusArchived:
		return true
	}
	return false
}
