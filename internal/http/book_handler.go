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

// ListingService is the slice of the listing service the handler needs.
type ListingService interface {
	Create(ctx context.Context, book *domain.Book) (string, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	ListRecent(ctx context.Context) ([]domain.Book, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Book, error)
	Search(ctx context.Context, query string) ([]domain.Book, error)
	Update(ctx context.Context, id, userID string, upd service.ListingUpdate) error
	Delete(ctx context.Context, id, userID string) error
}

type BookHandler struct {
	listings ListingService
	timeout  time.Duration
}

func NewBookHandler(listings ListingService, timeout time.Duration) *BookHandler {
	return &BookHandler{
		listings: listings,
		timeout:  timeout,
	}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	books, err := h.listings.ListRecent(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, books)
}

func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	books, err := h.listings.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	book, err := h.listings.Get(ctx, chi.URLParam(r, "bookID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, book)
}

func (h *BookHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	books, err := h.listings.ListBySeller(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, books)
}

type createListingDTO struct {
	Title       string           `json:"title"`
	Author      string           `json:"author"`
	Condition   domain.Condition `json:"condition"`
	Price       int64            `json:"price"`
	ImageURL    string           `json:"image_url"`
	Description string           `json:"description"`
	SellerName  string           `json:"seller_name"`
	SellerPhoto string           `json:"seller_avatar_url"`
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createListingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	book := &domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		Condition:   req.Condition,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Seller: domain.Seller{
			ID:        userID,
			Name:      req.SellerName,
			AvatarURL: req.SellerPhoto,
		},
	}

	id, err := h.listings.Create(ctx, book)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var upd service.ListingUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.listings.Update(ctx, chi.URLParam(r, "bookID"), userID, upd); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.listings.Delete(ctx, chi.URLParam(r, "bookID"), userID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
