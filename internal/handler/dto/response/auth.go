package response

import "queueline/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}
