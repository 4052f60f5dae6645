package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/annazecevic/band-service/domain"
)

// ErrNoRecord is returned when a lookup matches nothing.
var ErrNoRecord = errors.New("no matching record")

type BandRepository interface {
	ListBands(ctx context.Context) ([]domain.Band, error)
	FindBandByID(ctx context.Context, id int) (*domain.Band, error)
}

type bandRepository struct {
	bands []domain.Band
}

// NewBandRepository validates the records and keeps a private copy of them.
func NewBandRepository(bands []domain.Band) (BandRepository, error) {
	if err := domain.ValidateBands(bands); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}
	own := make([]domain.Band, len(bands))
	for i, b := range bands {
		own[i] = b.Clone()
	}
	return &bandRepository{bands: own}, nil
}

func (r *bandRepository) ListBands(ctx context.Context) ([]domain.Band, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Band, len(r.bands))
	for i, b := range r.bands {
		out[i] = b.Clone()
	}
	return out, nil
}

func (r *bandRepository) FindBandByID(ctx context.Context, id int) (*domain.Band, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, b := range r.bands {
		if b.ID == id {
			found := b.Clone()
			return &found, nil
		}
	}
	return nil, ErrNoRecord
}
