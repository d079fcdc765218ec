package dto

import "moviehub/internal/http-api/models"

// GenreCountResponse is one genre pill: name plus matching movie count.
type GenreCountResponse struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

// GenreCountFromModel converts a GenreCount row to its response shape
func GenreCountFromModel(g models.GenreCount) GenreCountResponse {
	return GenreCountResponse{Genre: g.Name, Count: g.Count}
}
