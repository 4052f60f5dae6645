package service

import (
	"context"
	"errors"

	"github.com/annazecevic/band-service/domain"
	"github.com/annazecevic/band-service/repository"
	"golang.org/x/text/cases"
)

var ErrBandNotFound = errors.New("band not found")

type BandService interface {
	ListBands(ctx context.Context) ([]domain.Band, error)
	GetBandByID(ctx context.Context, id int) (*domain.Band, error)
	ListBandsByGenre(ctx context.Context, genre domain.Genre) ([]domain.Band, error)
}

type bandService struct {
	repo repository.BandRepository
}

func NewBandService(repo repository.BandRepository) BandService {
	return &bandService{repo: repo}
}

func (s *bandService) ListBands(ctx context.Context) ([]domain.Band, error) {
	return s.repo.ListBands(ctx)
}

func (s *bandService) GetBandByID(ctx context.Context, id int) (*domain.Band, error) {
	band, err := s.repo.FindBandByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, ErrBandNotFound
		}
		return nil, err
	}
	return band, nil
}

// ListBandsByGenre compares case-folded genres. The result is never nil.
func (s *bandService) ListBandsByGenre(ctx context.Context, genre domain.Genre) ([]domain.Band, error) {
	bands, err := s.repo.ListBands(ctx)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	want := fold.String(string(genre))

	out := make([]domain.Band, 0, len(bands))
	for _, b := range bands {
		if fold.String(b.Genre) == want {
			out = append(out, b)
		}
	}
	return out, nil
}
