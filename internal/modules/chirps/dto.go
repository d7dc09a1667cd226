package chirps

import "chirpy/internal/domain"

type CreateChirpRequest struct {
	Body string `json:"body"`
	// UserID is the author. It is taken as given; the token only gates access.
	UserID string `json:"userId" validate:"required,uuid"`
}

type ListChirpsResponse struct {
	UserChirps []domain.Chirp `json:"userChirps"`
}
