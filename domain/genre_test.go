package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		in      string
		want    Genre
		wantErr bool
	}{
		{in: "rock", want: GenreRock},
		{in: "electronic", want: GenreElectronic},
		{in: "shoegaze", want: GenreShoegaze},
		{in: "hip-hop", want: GenreHipHop},
		{in: "Rock", wantErr: true},
		{in: "showgaze", wantErr: true},
		{in: "unknown-value", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenre(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidGenre))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenreChoicesMessage(t *testing.T) {
	assert.Equal(t, "Input should be 'rock', 'electronic', 'shoegaze' or 'hip-hop'", GenreChoicesMessage())
}
