package dto

// UpdateUserRequest is the admin account patch: profile fields plus
// moderation flags and role.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Banned   *bool   `json:"banned"`
	Featured *bool   `json:"featured"`
	Role     *string `json:"role"`
}

type StatsResponse struct {
	TotalUsers     int64   `json:"total_users"`
	TotalGames     int64   `json:"total_games"`
	TotalDownloads int64   `json:"total_downloads"`
	AvgRating      float64 `json:"avg_rating"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
