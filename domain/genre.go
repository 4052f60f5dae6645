package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Genre is a lowercase token accepted in the /bands/genre/{genre} path.
type Genre string

const (
	GenreRock       Genre = "rock"
	GenreElectronic Genre = "electronic"
	GenreShoegaze   Genre = "shoegaze"
	GenreHipHop     Genre = "hip-hop"
)

// GenreURLChoices is the closed set of genre tokens, in declaration order.
var GenreURLChoices = []Genre{GenreRock, GenreElectronic, GenreShoegaze, GenreHipHop}

var ErrInvalidGenre = errors.New("invalid genre")

func (g Genre) IsValid() bool {
	for _, c := range GenreURLChoices {
		if g == c {
			return true
		}
	}
	return false
}

func (g Genre) String() string { return string(g) }

// ParseGenre matches s exactly against GenreURLChoices. "Rock" is not "rock".
func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.IsValid() {
		return "", fmt.Errorf("%w %q: %s", ErrInvalidGenre, s, GenreChoicesMessage())
	}
	return g, nil
}

// GenreChoicesMessage renders "Input should be 'a', 'b' or 'c'".
func GenreChoicesMessage() string {
	quoted := make([]string, len(GenreURLChoices))
	for i, g := range GenreURLChoices {
		quoted[i] = "'" + string(g) + "'"
	}
	if len(quoted) == 1 {
		return "Input should be " + quoted[0]
	}
	return "Input should be " + strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
