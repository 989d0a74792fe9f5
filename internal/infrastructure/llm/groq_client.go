package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/barrovivo/backend/internal/application/assistant"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/barrovivo/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of the completion body we read
const maxResponseBytes = 1 << 20

// extractionTemperature keeps criteria extraction deterministic-ish
const extractionTemperature = 0.2

const extractionSystemPrompt = `Eres un extractor de criterios de búsqueda para una tienda de cerámica artesanal.
Analiza el mensaje del cliente y responde SOLO con un objeto JSON con estas claves:
"uso", "persona", "tipo", "color", "estilo", "rango_precio", "palabras_clave".
"tipo" debe ser uno de: matera, jarron, pocillo, plato, set, o null si no aplica.
"palabras_clave" es una lista de palabras relevantes (puede ser vacía).
Usa null para cualquier dato que el cliente no mencione. No agregues texto fuera del JSON.`

const compositionSystemPrompt = `Eres un asesor de compras de cerámica artesanal.
Responde en español, en un tono cálido y breve (máximo 3 frases).
Menciona únicamente los productos de la lista que se te entrega; nunca inventes productos, precios ni existencias.
Si la lista está vacía, dilo con amabilidad e invita al cliente a describir mejor lo que busca.`

// GroqClient talks to a Groq OpenAI-compatible chat completions endpoint
type GroqClient struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
	logger *zap.Logger
}

// NewGroqClient creates a client from the assistant configuration.
// It returns nil when no API key is configured so callers can wire the
// chat service without a language model.
func NewGroqClient(cfg config.AssistantConfig, logger *zap.Logger) *GroqClient {
	if cfg.APIKey == "" {
		return nil
	}
	return &GroqClient{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractCriteria asks the model to turn free text into structured criteria
func (c *GroqClient) ExtractCriteria(ctx context.Context, userText string) (assistant.Criteria, error) {
	content, err := c.complete(ctx, extractionSystemPrompt, userText)
	if err != nil {
		return assistant.EmptyCriteria(), err
	}
	return parseCriteria(content), nil
}

// ComposeAnswer asks the model for a short reply about the found products
func (c *GroqClient) ComposeAnswer(ctx context.Context, criteria assistant.Criteria, products []assistant.ProductHit) (string, error) {
	payload := struct {
		Criterios assistant.Criteria     `json:"criterios"`
		Productos []assistant.ProductHit `json:"productos"`
	}{Criterios: criteria, Productos: products}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	content, err := c.complete(ctx, compositionSystemPrompt, string(encoded))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// complete performs one chat completion call and returns the first
// choice's content.
func (c *GroqClient) complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: extractionTemperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrExternalService, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", shared.ErrExternalService, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Language model call failed",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(raw)),
		)
		return "", fmt.Errorf("%w: status %d", shared.ErrExternalService, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", shared.ErrExternalService, err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("%w: %s", shared.ErrExternalService, completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", shared.ErrExternalService)
	}
	return completion.Choices[0].Message.Content, nil
}

// parseCriteria decodes the model output, tolerating prose around the
// JSON object. Unparseable output degrades to empty criteria.
func parseCriteria(content string) assistant.Criteria {
	content = strings.TrimSpace(content)

	var criteria assistant.Criteria
	if err := json.Unmarshal([]byte(content), &criteria); err == nil {
		return withKeywords(criteria)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(content[start:end+1]), &criteria); err == nil {
			return withKeywords(criteria)
		}
	}
	return assistant.EmptyCriteria()
}

func withKeywords(criteria assistant.Criteria) assistant.Criteria {
	if criteria.PalabrasClave == nil {
		criteria.PalabrasClave = []string{}
	}
	return criteria
}

// Ensure GroqClient implements the chat service's model boundary
var _ assistant.LanguageModel = (*GroqClient)(nil)
