package domain

type Album struct {
	Title       string `json:"title" validate:"required"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"` // ISO date
}

type Band struct {
	ID     int     `json:"id" validate:"required,min=1"`
	Name   string  `json:"name" validate:"required"`
	Genre  string  `json:"genre" validate:"required"`
	Albums []Album `json:"albums" validate:"dive"`
}

// Clone returns a deep copy with a non-nil album list.
func (b Band) Clone() Band {
	albums := make([]Album, len(b.Albums))
	copy(albums, b.Albums)
	b.Albums = albums
	return b
}
