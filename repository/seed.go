package repository

import "github.com/annazecevic/band-service/domain"

// SeedBands returns a fresh copy of the hardcoded catalogue.
// "Showgaze" is kept exactly as it was authored.
func SeedBands() []domain.Band {
	return []domain.Band{
		{ID: 1, Name: "The Kinks", Genre: "Rock"},
		{ID: 2, Name: "Aphex Twin", Genre: "Electronic"},
		{ID: 3, Name: "Slowdive", Genre: "Showgaze", Albums: []domain.Album{
			{Title: "Master of Reality", ReleaseDate: "1971-07-21"},
		}},
		{ID: 4, Name: "Wu-Tang Clan", Genre: "Hip-Hop"},
	}
}
