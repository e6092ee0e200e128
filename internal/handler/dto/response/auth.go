package response

import "staybook/internal/usecase"

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func FromAuthResult(result *usecase.AuthResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User: UserResponse{
			ID:       result.UserID,
			Username: result.Username,
		},
	}
}
