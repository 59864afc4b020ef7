// README: Gemini provider; chat suggestions plus streamed itinerary generation.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client

	// chatModel answers location/weather chat: prose with an embedded JSON
	// payload, so it must NOT run in JSON response mode.
	chatModel *genai.GenerativeModel

	// itineraryModel emits a single pure-JSON itinerary object and is pinned
	// to JSON mode so no prose leaks into the stream.
	itineraryModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	chat := client.GenerativeModel(geminiModel)
	chat.SetTemperature(0.7)

	itin := client.GenerativeModel(geminiModel)
	itin.ResponseMIMEType = "application/json"
	itin.SetTemperature(0.4)

	return &GeminiProvider{
		client:         client,
		chatModel:      chat,
		itineraryModel: itin,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SuggestLocations asks the model for travel suggestions. The reply is raw:
// prose followed, when the model recommends places, by the fixed
// `{ "locations": ...}` payload the stream splitter keys on.
func (p *GeminiProvider) SuggestLocations(ctx context.Context, userMessage string, history []Message) (string, error) {
	prompt := buildLocationsPrompt(userMessage, history)

	resp, err := p.chatModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", errors.New("gemini returned empty text parts")
	}
	return out.String(), nil
}

// StreamItinerary streams the itinerary JSON chunk by chunk. Chunks are
// forwarded exactly as received; the accumulator downstream owns all cleanup
// and validation, including fragments that split a token or string literal.
func (p *GeminiProvider) StreamItinerary(ctx context.Context, req ItineraryPrompt, emit func(chunk string) error) error {
	prompt := buildItineraryPrompt(req)

	iter := p.itineraryModel.GenerateContentStream(ctx, genai.Text(prompt))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("gemini stream error: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			continue
		}
		for _, part := range resp.Candidates[0].Content.Parts {
			txt, ok := part.(genai.Text)
			if !ok || len(txt) == 0 {
				continue
			}
			if err := emit(string(txt)); err != nil {
				return err
			}
		}
	}
}
