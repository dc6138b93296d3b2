package service

import (
	"context"
	"time"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/saikrishna1605/foliofinds/internal/repository"
)

const recentPostsLimit = 50

// PostService owns blog posts, same ownership rules as listings.
type PostService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, post *domain.Post) (string, error) {
	if post.Title == "" || post.Content == "" || post.Author.ID == "" {
		return "", ErrInvalidPost
	}

	post.ID = ""
	post.CreatedAt = time.Now()
	return s.repo.Create(ctx, post)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PostService) ListRecent(ctx context.Context) ([]domain.Post, error) {
	return s.repo.ListRecent(ctx, recentPostsLimit)
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// PostUpdate carries the editable post fields.
type PostUpdate struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

func (s *PostService) Update(ctx context.Context, id, userID string, upd PostUpdate) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Author.ID != userID {
		return ErrNotOwner
	}
	if upd.Title == "" || upd.Content == "" {
		return ErrInvalidPost
	}

	fields := map[string]interface{}{
		"title":     upd.Title,
		"content":   upd.Content,
		"image_url": upd.ImageURL,
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *PostService) Delete(ctx context.Context, id, userID string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Author.ID != userID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
