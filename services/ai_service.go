package services

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// ModelName is the text-completion model every prompt is sent to.
const ModelName = "gemini-2.5-flash"

// Failure markers. These are part of the API contract: AI failures are
// returned inline as text, never as HTTP errors.
const (
	apiKeyError   = "API Key Error"
	failurePrefix = "AI processing failed: "
)

// AIService turns an action kind plus a body of text into model output.
// Implementations never fail: every problem is reported as a failure marker
// in the returned string.
type AIService interface {
	Generate(ctx context.Context, action, text string) string
}

// GeminiAIService is the production AIService backed by the Gemini API. The
// client is shared across handlers and may be swapped at runtime when the
// credential changes, hence the lock.
type GeminiAIService struct {
	mu     sync.RWMutex
	client *genai.Client
}

// NewGeminiAIService builds the service from the GEMINI_API_KEY environment
// variable. A missing or bad key is not fatal: the CRUD surface must keep
// working, so the service starts without a client and reports the key error
// on each call instead.
func NewGeminiAIService(ctx context.Context) *GeminiAIService {
	s := &GeminiAIService{}
	s.Reload(ctx)
	return s
}

// Reload re-reads GEMINI_API_KEY and rebuilds the underlying client.
func (s *GeminiAIService) Reload(ctx context.Context) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("AI: GEMINI_API_KEY is not set, AI actions will return an error marker")
		s.setClient(nil)
		return
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("AI: failed to create Gemini client: %v", err)
		s.setClient(nil)
		return
	}
	log.Println("AI: Gemini client ready")
	s.setClient(client)
}

func (s *GeminiAIService) setClient(client *genai.Client) {
	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
}

// Generate implements AIService with a single-shot completion. No retries,
// no caching; timeouts are left to the transport default.
func (s *GeminiAIService) Generate(ctx context.Context, action, text string) string {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client == nil {
		return apiKeyError
	}

	prompt := BuildPrompt(action, text)
	result, err := client.Models.GenerateContent(ctx, ModelName, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("AI: Gemini call failed for action %q: %v", action, err)
		return failurePrefix + err.Error()
	}
	return strings.TrimSpace(result.Text())
}

// IsFailure reports whether an AI result is one of the failure markers.
func IsFailure(result string) bool {
	return result == apiKeyError || strings.HasPrefix(result, failurePrefix)
}
