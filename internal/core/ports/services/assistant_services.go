package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/dto"
)

// AssistantSvcFacade answers dashboard questions with current entity data as
// context. When no model backend is configured it degrades to a canned reply.
type AssistantSvcFacade interface {
	Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
}
