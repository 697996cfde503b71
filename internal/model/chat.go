package model

import "time"

// ChatMessage is one entry of the flat chat log.
type ChatMessage struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"ownerId"`
	Message    string    `json:"message"`
	IsFromUser bool      `json:"isFromUser"`
	Timestamp  time.Time `json:"timestamp"`
}
