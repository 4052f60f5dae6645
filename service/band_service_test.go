package service

import (
	"context"
	"errors"
	"testing"

	"github.com/annazecevic/band-service/domain"
	"github.com/annazecevic/band-service/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	ListResp     []domain.Band
	ListErr      error
	FindByIDResp *domain.Band
	FindByIDErr  error
}

func (m *mockRepo) ListBands(ctx context.Context) ([]domain.Band, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListResp, nil
}

func (m *mockRepo) FindBandByID(ctx context.Context, id int) (*domain.Band, error) {
	if m.FindByIDErr != nil {
		return nil, m.FindByIDErr
	}
	if m.FindByIDResp != nil {
		return m.FindByIDResp, nil
	}
	return nil, repository.ErrNoRecord
}

func seededService(t *testing.T) BandService {
	t.Helper()
	repo, err := repository.NewBandRepository(repository.SeedBands())
	require.NoError(t, err)
	return NewBandService(repo)
}

func TestListBands(t *testing.T) {
	svc := seededService(t)

	bands, err := svc.ListBands(context.Background())
	require.NoError(t, err)
	assert.Len(t, bands, 4)
}

func TestGetBandByIDFound(t *testing.T) {
	svc := seededService(t)

	band, err := svc.GetBandByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Slowdive", band.Name)
	require.Len(t, band.Albums, 1)
	assert.Equal(t, "Master of Reality", band.Albums[0].Title)
}

func TestGetBandByIDNotFound(t *testing.T) {
	svc := NewBandService(&mockRepo{})

	_, err := svc.GetBandByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBandNotFound)
}

func TestGetBandByIDPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewBandService(&mockRepo{FindByIDErr: boom})

	_, err := svc.GetBandByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrBandNotFound)
}

func TestListBandsByGenre(t *testing.T) {
	svc := seededService(t)

	tests := []struct {
		genre domain.Genre
		want  []string
	}{
		{genre: domain.GenreRock, want: []string{"The Kinks"}},
		{genre: domain.GenreElectronic, want: []string{"Aphex Twin"}},
		{genre: domain.GenreHipHop, want: []string{"Wu-Tang Clan"}},
		{genre: domain.GenreShoegaze, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.genre), func(t *testing.T) {
			bands, err := svc.ListBandsByGenre(context.Background(), tt.genre)
			require.NoError(t, err)
			require.NotNil(t, bands)

			names := []string{}
			for _, b := range bands {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestListBandsByGenreIgnoresCase(t *testing.T) {
	svc := NewBandService(&mockRepo{ListResp: []domain.Band{
		{ID: 1, Name: "A", Genre: "ROCK"},
		{ID: 2, Name: "B", Genre: "rock"},
		{ID: 3, Name: "C", Genre: "Rock and Roll"},
	}})

	bands, err := svc.ListBandsByGenre(context.Background(), domain.GenreRock)
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.Equal(t, "A", bands[0].Name)
	assert.Equal(t, "B", bands[1].Name)
}

func TestListBandsByGenreRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewBandService(&mockRepo{ListErr: boom})

	_, err := svc.ListBandsByGenre(context.Background(), domain.GenreRock)
	assert.ErrorIs(t, err, boom)
}
