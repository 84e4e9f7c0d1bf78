package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/irahulsinghrajput/BrandMark/pkg/gemini"
)

const MaxChatMessageLength = 2000

// Replies shown to site visitors. Provider failures degrade to a reply
// rather than an error status.
const (
	ReplyEmptyMessage  = "Please enter a message."
	ReplyTooLong       = "Message is too long. Please shorten it."
	ReplyNotConfigured = "AI is not configured yet. Please contact us for assistance."
	ReplyUnavailable   = "I'm having trouble connecting right now. Please try again."
	ReplyEmpty         = "Sorry, I could not generate a response right now."
)

const systemInstruction = `You are 'Mark', the AI Assistant for Brand Mark Solutions, a digital agency in Patna, Bihar founded by Rahul Singh Rajput.
Tone: Professional, tech-savvy, and friendly.
Services: Web development, digital marketing, and branding.
If asked about pricing, say: "Projects are custom. Please fill out the contact form for a quote."
Keep answers short and helpful.
Do NOT make up facts. If you don't know, ask them to contact Rahul.`

// ChatService answers visitor questions through the generative provider.
type ChatService interface {
	// Reply returns the assistant's answer. Only ErrEmptyMessage and
	// ErrMessageTooLong are returned as errors.
	Reply(ctx context.Context, message string) (string, error)
}

type chatServiceImpl struct {
	client gemini.Client
}

// NewChatService creates a ChatService. A nil client means the provider is
// not configured.
func NewChatService(client gemini.Client) ChatService {
	return &chatServiceImpl{client: client}
}

func (s *chatServiceImpl) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ReplyEmptyMessage, ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxChatMessageLength {
		return ReplyTooLong, ErrMessageTooLong
	}
	if s.client == nil {
		return ReplyNotConfigured, nil
	}

	text, err := s.client.GenerateContent(ctx, systemInstruction, message)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return ReplyNotConfigured, nil
		}
		slog.Error("chat provider failed", "error", err)
		return ReplyUnavailable, nil
	}
	if strings.TrimSpace(text) == "" {
		return ReplyEmpty, nil
	}
	return text, nil
}
