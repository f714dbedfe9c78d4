package main

// Account represents a registered user.
type Account struct {
	ID     int
	Name   string
	Email  string
	PwHash string
}

// ChatMessage represents a chat row joined with the author's current name.
// The JSON field names are the wire contract shared with the chat client.
type ChatMessage struct {
	ChatID  int    `json:"chatID"`
	Message string `json:"message"`
	Name    string `json:"name"`
}
