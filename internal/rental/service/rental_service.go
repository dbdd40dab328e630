package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	autherror "github.com/Olelouer/backend-chatop/internal/errors"
	"github.com/Olelouer/backend-chatop/internal/logging"
	"github.com/Olelouer/backend-chatop/internal/rental/domain"
	"github.com/Olelouer/backend-chatop/internal/rental/dto"
	"github.com/Olelouer/backend-chatop/internal/storage"
)

type RentalService struct {
	repo    domain.RentalRepository
	storage storage.Storage
	log     logging.Logger
}

func NewRentalService(repo domain.RentalRepository, store storage.Storage, log logging.Logger) *RentalService {
	return &RentalService{
		repo:    repo,
		storage: store,
		log:     log,
	}
}

// Create persists a new listing owned by ownerID. A picture, when present,
// is stored first so the listing never references a URL that does not exist.
func (s *RentalService) Create(ctx context.Context, ownerID string, input dto.RentalInput, picture *dto.PictureFile) error {
	if err := input.Validate(); err != nil {
		return err
	}

	pictureURL := ""
	if picture != nil {
		url, err := s.storage.Store(ctx, picture.Filename, picture.Content)
		if err != nil {
			return err
		}
		pictureURL = url
	}

	now := time.Now()

	rental := &domain.Rental{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Surface:     input.Surface,
		Price:       input.Price,
		Picture:     pictureURL,
		Description: input.Description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, rental)
}

func (s *RentalService) GetAll(ctx context.Context) (dto.RentalListOutput, error) {
	rentals, err := s.repo.GetAll(ctx)
	if err != nil {
		return dto.RentalListOutput{}, err
	}

	out := dto.RentalListOutput{Rentals: make([]dto.RentalOutput, 0, len(rentals))}
	for i := range rentals {
		out.Rentals = append(out.Rentals, dto.NewRentalOutput(&rentals[i]))
	}

	return out, nil
}

func (s *RentalService) GetByID(ctx context.Context, id string) (dto.RentalOutput, error) {
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.RentalOutput{}, err
	}
	if rental == nil {
		return dto.RentalOutput{}, autherror.ErrEntityNotFound
	}

	return dto.NewRentalOutput(rental), nil
}

// Update rewrites a listing's fields. Only the owner may update; a new
// picture replaces the old one, whose blob is deleted best-effort.
func (s *RentalService) Update(ctx context.Context, id, requesterID string, input dto.RentalInput, picture *dto.PictureFile) error {
	if err := input.Validate(); err != nil {
		return err
	}

	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rental == nil {
		return autherror.ErrEntityNotFound
	}
	if rental.OwnerID != requesterID {
		return autherror.ErrForbidden
	}

	rental.Name = input.Name
	rental.Surface = input.Surface
	rental.Price = input.Price
	rental.Description = input.Description

	if picture != nil {
		url, err := s.storage.Store(ctx, picture.Filename, picture.Content)
		if err != nil {
			return err
		}

		if rental.Picture != "" {
			if err := s.storage.Delete(ctx, rental.Picture); err != nil {
				s.log.Warn(ctx, "failed to delete replaced picture", "url", rental.Picture, "error", err)
			}
		}

		rental.Picture = url
	}

	rental.UpdatedAt = time.Now()

	return s.repo.Update(ctx, rental)
}
