package models

// Message is one turn of a chat conversation relayed to the provider.
type Message struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type FollowUpRequest struct {
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
}

type FollowUpResponse struct {
	Answer string `json:"answer"`
}
