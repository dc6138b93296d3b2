package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/saikrishna1605/foliofinds/internal/service"
)

// PostService is the slice of the post service the handler needs.
type PostService interface {
	Create(ctx context.Context, post *domain.Post) (string, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	ListRecent(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	Update(ctx context.Context, id, userID string, upd service.PostUpdate) error
	Delete(ctx context.Context, id, userID string) error
}

type PostHandler struct {
	posts   PostService
	timeout time.Duration
}

func NewPostHandler(posts PostService, timeout time.Duration) *PostHandler {
	return &PostHandler{
		posts:   posts,
		timeout: timeout,
	}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	posts, err := h.posts.ListRecent(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	post, err := h.posts.Get(ctx, chi.URLParam(r, "postID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	posts, err := h.posts.ListByAuthor(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

type createPostDTO struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	AuthorName  string `json:"author_name"`
	AuthorPhoto string `json:"author_avatar_url"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createPostDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	post := &domain.Post{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Author: domain.Seller{
			ID:        userID,
			Name:      req.AuthorName,
			AvatarURL: req.AuthorPhoto,
		},
	}

	id, err := h.posts.Create(ctx, post)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var upd service.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.posts.Update(ctx, chi.URLParam(r, "postID"), userID, upd); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.posts.Delete(ctx, chi.URLParam(r, "postID"), userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
