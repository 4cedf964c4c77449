package blogging

import (
	"testing"

	"github.com/sociallearn/index-api/infrastructure/repository/mocks"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBloggerWithMock(t *testing.T) (Blogger, *mocks.MockBlogRepository) {
	ctrl := gomock.NewController(t)
	blogRepo := mocks.NewMockBlogRepository(ctrl)

	return NewBloggerService(blogRepo), blogRepo
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	blogRepo.EXPECT().SlugExists("como-medimos-influencia", 0).Return(false, nil)
	blogRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(post *domain.BlogPost) (*domain.BlogPost, error) {
			assert.Equal(t, "como-medimos-influencia", post.Slug)
			assert.Equal(t, domain.BlogStatusDraft, post.Status)
			assert.Equal(t, 3, post.AuthorID)
			assert.Nil(t, post.PublishedAt)
			post.ID = 10
			return post, nil
		})

	post, err := service.Create(domain.CreateBlogPostRequest{
		Title:   "Como Medimos Influencia",
		Content: "conteúdo",
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, 10, post.ID)
}

func TestCreatePublishedSetsPublishedAt(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	blogRepo.EXPECT().SlugExists(gomock.Any(), 0).Return(false, nil)
	blogRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(post *domain.BlogPost) (*domain.BlogPost, error) {
			require.NotNil(t, post.PublishedAt)
			return post, nil
		})

	_, err := service.Create(domain.CreateBlogPostRequest{
		Title:   "Lançamento",
		Content: "conteúdo",
		Status:  domain.BlogStatusPublished,
	}, 1)

	require.NoError(t, err)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	blogRepo.EXPECT().SlugExists("titulo", 0).Return(true, nil)

	_, err := service.Create(domain.CreateBlogPostRequest{
		Title:   "Titulo",
		Content: "conteúdo",
	}, 1)

	assert.ErrorIs(t, err, ErrSlugAlreadyExists)
}

func TestCreateValidation(t *testing.T) {
	service, _ := newBloggerWithMock(t)

	tests := []struct {
		name string
		req  domain.CreateBlogPostRequest
		want error
	}{
		{
			name: "sem título",
			req:  domain.CreateBlogPostRequest{Content: "conteúdo"},
			want: ErrMissingTitleOrContent,
		},
		{
			name: "sem conteúdo",
			req:  domain.CreateBlogPostRequest{Title: "Titulo"},
			want: ErrMissingTitleOrContent,
		},
		{
			name: "status inválido",
			req:  domain.CreateBlogPostRequest{Title: "Titulo", Content: "c", Status: "pendente"},
			want: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(tt.req, 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateChecksSlugExcludingOwnPost(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	slug := "novo-slug"
	blogRepo.EXPECT().SlugExists("novo-slug", 7).Return(false, nil)
	blogRepo.EXPECT().
		Update(7, gomock.Any(), false).
		Return(&domain.BlogPost{ID: 7, Slug: "novo-slug"}, nil)

	post, err := service.Update(7, domain.UpdateBlogPostRequest{Slug: &slug})

	require.NoError(t, err)
	assert.Equal(t, "novo-slug", post.Slug)
}

func TestUpdatePublishingSetsPublishedNow(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	status := domain.BlogStatusPublished
	blogRepo.EXPECT().
		Update(7, gomock.Any(), true).
		Return(&domain.BlogPost{ID: 7, Status: status}, nil)

	_, err := service.Update(7, domain.UpdateBlogPostRequest{Status: &status})

	require.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	blogRepo.EXPECT().Update(99, gomock.Any(), false).Return(nil, nil)

	_, err := service.Update(99, domain.UpdateBlogPostRequest{})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	blogRepo.EXPECT().Delete(99).Return(false, nil)

	err := service.Delete(99)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPublishedBySlugNotFound(t *testing.T) {
	service, blogRepo := newBloggerWithMock(t)

	blogRepo.EXPECT().GetPublishedBySlug("inexistente").Return(nil, nil)

	_, err := service.GetPublishedBySlug("inexistente")

	assert.ErrorIs(t, err, ErrPostNotFound)
}
