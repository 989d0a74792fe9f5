package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// LanguageModel is the external text-understanding boundary. Both calls
// must honor their configured timeout and return an error instead of
// hanging; callers degrade on failure.
type LanguageModel interface {
	// ExtractCriteria parses free text into structured search criteria
	ExtractCriteria(ctx context.Context, userText string) (Criteria, error)
	// ComposeAnswer writes a short reply referencing only the given
	// products, never inventing others.
	ComposeAnswer(ctx context.Context, criteria Criteria, products []ProductHit) (string, error)
}

// ChatReply is the assistant's response to one message
type ChatReply struct {
	Text     string       `json:"text"`
	Products []ProductHit `json:"products"`
}

// ChatService orchestrates criteria extraction, catalog search, and
// answer composition. A nil language model runs the catalog search alone.
type ChatService struct {
	search *SearchService
	model  LanguageModel
	logger *zap.Logger
}

// NewChatService creates a ChatService
func NewChatService(search *SearchService, model LanguageModel, logger *zap.Logger) *ChatService {
	return &ChatService{
		search: search,
		model:  model,
		logger: logger,
	}
}

// Chat answers one user message. Language-model failures degrade to the
// catalog search path; they never fail the request.
func (s *ChatService) Chat(ctx context.Context, message string) (ChatReply, error) {
	criteria := EmptyCriteria()
	if s.model != nil {
		extracted, err := s.model.ExtractCriteria(ctx, message)
		if err != nil {
			s.logger.Warn("Criteria extraction degraded to catalog-only search", zap.Error(err))
		} else {
			criteria = extracted
		}
	}

	products, err := s.search.Search(ctx, criteria, message)
	if err != nil {
		return ChatReply{}, err
	}

	text := fallbackAnswer(products)
	if s.model != nil {
		composed, err := s.model.ComposeAnswer(ctx, criteria, products)
		if err != nil {
			s.logger.Warn("Answer composition failed, using fallback text", zap.Error(err))
		} else if composed != "" {
			text = composed
		}
	}

	return ChatReply{Text: text, Products: products}, nil
}

// fallbackAnswer is the reply used when the language model is missing or down
func fallbackAnswer(products []ProductHit) string {
	if len(products) == 0 {
		return "No encontré productos que coincidan con tu búsqueda. ¿Podrías describir qué tipo de pieza buscas?"
	}
	return fmt.Sprintf("Encontré %d producto(s) que podrían interesarte. ¿Quieres más detalles de alguno?", len(products))
}
