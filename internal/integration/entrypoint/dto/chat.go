package dto

import (
	"github.com/pantry-bot/backend/internal/application/usecase/conversation"
)

// ChatEventRequest represents one inbound conversation event. Exactly one
// of text and token is expected to be set.
type ChatEventRequest struct {
	UserID string `json:"user_id" binding:"required,max=64"`
	Text   string `json:"text,omitempty"`
	Token  string `json:"token,omitempty"`
}

// ChatButtonResponse represents one tappable button in a reply.
type ChatButtonResponse struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// ChatReplyResponse represents the rendered reply to a conversation event.
type ChatReplyResponse struct {
	Text    string                 `json:"text"`
	Buttons [][]ChatButtonResponse `json:"buttons,omitempty"`
	Alert   bool                   `json:"alert,omitempty"`
}

// ToChatReplyResponse converts a conversation reply to a ChatReplyResponse.
func ToChatReplyResponse(reply *conversation.Reply) ChatReplyResponse {
	response := ChatReplyResponse{
		Text:  reply.Text,
		Alert: reply.Alert,
	}
	for _, buttonRow := range reply.Buttons {
		row := make([]ChatButtonResponse, len(buttonRow))
		for i, button := range buttonRow {
			row[i] = ChatButtonResponse{Label: button.Label, Token: button.Token}
		}
		response.Buttons = append(response.Buttons, row)
	}
	return response
}
