package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/platform/llm"
)

const assistantUnavailableReply = "The assistant is not configured on this server. Set OPENAI_API_KEY to enable it."

// assistantService implements the AssistantSvcFacade interface. It answers
// dashboard questions by embedding the current business data into the system
// prompt of a chat completion call.
type assistantService struct {
	BaseService
	client           *llm.Client
	productRepo      portsrepo.ProductReader
	subscriptionRepo portsrepo.SubscriptionReader
	accountRepo      portsrepo.MasterAccountReader
	revenueRepo      portsrepo.RevenueRepositoryFacade
	expenseRepo      portsrepo.ExpenseRepositoryFacade
}

// NewAssistantService creates a new assistant service
func NewAssistantService(
	client *llm.Client,
	productRepo portsrepo.ProductReader,
	subscriptionRepo portsrepo.SubscriptionReader,
	accountRepo portsrepo.MasterAccountReader,
	revenueRepo portsrepo.RevenueRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
) portssvc.AssistantSvcFacade {
	return &assistantService{
		client:           client,
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		revenueRepo:      revenueRepo,
		expenseRepo:      expenseRepo,
	}
}

// Ensure assistantService implements the AssistantSvcFacade interface
var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

func (s *assistantService) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.client == nil || !s.client.Configured() {
		return &dto.ChatResponse{Response: assistantUnavailableReply}, nil
	}

	systemPrompt, err := s.buildSystemPrompt(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build assistant context")
		return nil, err
	}

	answer, err := s.client.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: req.Message},
	})
	if err != nil {
		s.LogError(ctx, err, "Assistant chat completion failed")
		return nil, err
	}

	return &dto.ChatResponse{Response: answer}, nil
}

// buildSystemPrompt serializes the current products, subscriptions, accounts,
// revenues and expenses into the instruction block the model answers from.
func (s *assistantService) buildSystemPrompt(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("You are a business assistant for a subscription management dashboard. ")
	b.WriteString("Answer questions using only the data below. Today is ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString(".\n\n")

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("listing products: %w", err)
	}
	if err := writeSection(&b, "Products", dto.ToProductResponses(products)); err != nil {
		return "", err
	}

	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx, portsrepo.SubscriptionFilter{})
	if err != nil {
		return "", fmt.Errorf("listing subscriptions: %w", err)
	}
	now := time.Now()
	for i := range subscriptions {
		subscriptions[i] = subscriptions[i].WithDerivedStatus(now)
	}
	if err := writeSection(&b, "Subscriptions", dto.ToSubscriptionResponses(subscriptions)); err != nil {
		return "", err
	}

	accounts, err := s.accountRepo.ListMasterAccounts(ctx, "")
	if err != nil {
		return "", fmt.Errorf("listing master accounts: %w", err)
	}
	if err := writeSection(&b, "Master accounts", dto.ToMasterAccountResponses(accounts)); err != nil {
		return "", err
	}

	revenues, err := s.revenueRepo.ListRevenues(ctx, portsrepo.RevenueFilter{})
	if err != nil {
		return "", fmt.Errorf("listing revenues: %w", err)
	}
	if err := writeSection(&b, "Revenues", dto.ToRevenueResponses(revenues)); err != nil {
		return "", err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, portsrepo.ExpenseFilter{})
	if err != nil {
		return "", fmt.Errorf("listing expenses: %w", err)
	}
	if err := writeSection(&b, "Expenses", dto.ToExpenseResponses(expenses)); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeSection(b *strings.Builder, title string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s section: %w", strings.ToLower(title), err)
	}
	b.WriteString(title)
	b.WriteString(":\n")
	b.Write(encoded)
	b.WriteString("\n\n")
	return nil
}
