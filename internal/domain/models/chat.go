package models

// Chat message senders as persisted in the transcript.
const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is one entry in the SQL-agent chat transcript.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
