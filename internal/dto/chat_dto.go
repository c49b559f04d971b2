package dto

import "time"

// ArchiveChatTurnMessage is the payload published to the chat archive topic.
type ArchiveChatTurnMessage struct {
	CommunicationId string    `json:"communication_id"`
	Role            string    `json:"role"`
	Message         string    `json:"message"`
	LlmModel        string    `json:"llm_model,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

type ChatMessageResponse struct {
	Id              string    `json:"id"`
	CommunicationId string    `json:"communication_id"`
	Role            string    `json:"role"`
	Message         string    `json:"message"`
	LlmModel        string    `json:"llm_model,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// BotInboundMessage is a frame sent by the bot over its socket.
type BotInboundMessage struct {
	Type string `json:"type"`
	Data struct {
		Message string `json:"message"`
	} `json:"data"`
}
