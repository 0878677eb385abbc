package dto

type CreateGameRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Thumbnail    string   `json:"thumbnail"`
	Screenshots  []string `json:"screenshots"`
	ApkURL       string   `json:"apk_url"`
	ExternalLink string   `json:"external_link"`
}

// UpdateGameRequest is the whitelisted game patch. Unknown fields in the
// request body are silently dropped by the typed struct. Status and Featured
// are admin-only; the service rejects them for everyone else.
type UpdateGameRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Thumbnail    *string   `json:"thumbnail"`
	Screenshots  *[]string `json:"screenshots"`
	ApkURL       *string   `json:"apk_url"`
	ExternalLink *string   `json:"external_link"`
	Status       *string   `json:"status"`
	Featured     *bool     `json:"featured"`
}

// WantsModeration reports whether the patch touches admin-only fields.
func (r *UpdateGameRequest) WantsModeration() bool {
	return r.Status != nil || r.Featured != nil
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type SetReactionRequest struct {
	IsLike *bool `json:"is_like"`
}

type CreateReportRequest struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type SetFeaturedVideoRequest struct {
	YoutubeURL string `json:"youtube_url"`
	Title      string `json:"title"`
}
