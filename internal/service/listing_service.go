package service

import (
	"context"
	"time"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/saikrishna1605/foliofinds/internal/repository"
)

const (
	recentListingsLimit = 50
	searchResultsLimit  = 20
)

// ListingService owns book listings. Mutations are restricted to the seller
// that created the listing.
type ListingService struct {
	repo repository.BookRepository
}

func NewListingService(repo repository.BookRepository) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) Create(ctx context.Context, book *domain.Book) (string, error) {
	if book.Title == "" || book.Seller.ID == "" || !book.Condition.IsValid() || book.Price < 0 {
		return "", ErrInvalidListing
	}

	book.ID = ""
	book.CreatedAt = time.Now()
	return s.repo.Create(ctx, book)
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) ListRecent(ctx context.Context) ([]domain.Book, error) {
	return s.repo.ListRecent(ctx, recentListingsLimit)
}

func (s *ListingService) ListBySeller(ctx context.Context, sellerID string) ([]domain.Book, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

// Search returns an empty result for an empty query rather than scanning the
// whole catalog.
func (s *ListingService) Search(ctx context.Context, query string) ([]domain.Book, error) {
	if query == "" {
		return []domain.Book{}, nil
	}
	return s.repo.Search(ctx, query, searchResultsLimit)
}

// ListingUpdate carries the editable listing fields; seller and creation time
// are immutable.
type ListingUpdate struct {
	Title       string           `json:"title"`
	Author      string           `json:"author"`
	Condition   domain.Condition `json:"condition"`
	Price       int64            `json:"price"`
	ImageURL    string           `json:"image_url"`
	Description string           `json:"description"`
}

func (s *ListingService) Update(ctx context.Context, id, userID string, upd ListingUpdate) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book.Seller.ID != userID {
		return ErrNotOwner
	}
	if upd.Title == "" || !upd.Condition.IsValid() || upd.Price < 0 {
		return ErrInvalidListing
	}

	fields := map[string]interface{}{
		"title":       upd.Title,
		"author":      upd.Author,
		"condition":   upd.Condition,
		"price":       upd.Price,
		"image_url":   upd.ImageURL,
		"description": upd.Description,
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *ListingService) Delete(ctx context.Context, id, userID string) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book.Seller.ID != userID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
