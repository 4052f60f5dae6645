package dto

type BandIDRequest struct {
	BandID int `uri:"band_id"`
}

type GenreRequest struct {
	Genre string `uri:"genre" binding:"required,genre"`
}

// ErrorResponse is the body for 404, 405, 429 and 500 responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ValidationErrorItem struct {
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Type  string   `json:"type"`
	Input string   `json:"input"`
}

// ValidationErrorResponse is the 422 body for rejected path parameters.
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Bands   int    `json:"bands"`
}
