package agent

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

// fallbackReply is stored when the backend agent is unreachable, so the
// chat degrades instead of crashing the view.
const fallbackReply = "Something went wrong. Please try again."

// ErrEmptyMessage rejects blank chat input before it reaches the backend.
var ErrEmptyMessage = errors.New("empty chat message")

// API is the slice of the backend client the chat needs.
type API interface {
	SQLAgent(ctx context.Context, history string) (string, error)
}

// TranscriptStore persists the capped chat transcript between sessions.
type TranscriptStore interface {
	AppendMessage(msg models.ChatMessage) ([]models.ChatMessage, error)
	Transcript() ([]models.ChatMessage, error)
	ClearTranscript() error
}

// Service runs the SQL-agent chat: it keeps the capped transcript and
// forwards the rendered history to the backend's sqlagent resource.
type Service struct {
	api    API
	store  TranscriptStore
	logger *zap.Logger
}

// NewService wires a chat service instance.
func NewService(api API, store TranscriptStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, store: store, logger: logger}
}

// Send appends the user message, queries the agent with the capped history
// and returns the persisted bot reply. Agent failures are logged and
// degrade to a canned reply.
func (s *Service) Send(ctx context.Context, input string) (models.ChatMessage, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	userMsg := models.ChatMessage{Sender: models.ChatSenderUser, Text: input}
	history, err := s.store.AppendMessage(userMsg)
	if err != nil {
		s.logger.Warn("failed to persist chat message", zap.Error(err))
		history = []models.ChatMessage{userMsg}
	}

	reply, err := s.api.SQLAgent(ctx, historyString(history))
	if err != nil {
		s.logger.Error("sql agent call failed", zap.Error(err))
		reply = fallbackReply
	}

	botMsg := models.ChatMessage{Sender: models.ChatSenderBot, Text: reply}
	if _, err := s.store.AppendMessage(botMsg); err != nil {
		s.logger.Warn("failed to persist agent reply", zap.Error(err))
	}

	return botMsg, nil
}

// History returns the persisted transcript, oldest first.
func (s *Service) History() ([]models.ChatMessage, error) {
	return s.store.Transcript()
}

// Clear wipes the persisted transcript.
func (s *Service) Clear() error {
	return s.store.ClearTranscript()
}

// historyString renders the transcript the way the agent expects: one
// "User:"/"Bot:" line per message.
func historyString(transcript []models.ChatMessage) string {
	lines := make([]string, 0, len(transcript))
	for _, msg := range transcript {
		speaker := "Bot"
		if msg.Sender == models.ChatSenderUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+msg.Text)
	}
	return strings.Join(lines, "\n")
}
