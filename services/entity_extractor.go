package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/sashabaranov/go-openai"
)

// Entity labels kept from the NER output
const (
	LabelPerson = "PERSON"
	LabelGPE    = "GPE"
)

// Entities are the names found in a complaint description, in order of first
// occurrence. Duplicates are kept.
type Entities struct {
	Persons   []string `json:"persons"`
	Locations []string `json:"locations"`
}

// EntityExtractor finds person and place names in free text
type EntityExtractor interface {
	Extract(ctx context.Context, text string) (Entities, error)
}

// ProseExtractor runs the prose statistical NER model locally
type ProseExtractor struct{}

// NewProseExtractor creates the default local extractor
func NewProseExtractor() *ProseExtractor {
	return &ProseExtractor{}
}

// Extract tags the text and keeps PERSON and GPE entities
func (p *ProseExtractor) Extract(ctx context.Context, text string) (Entities, error) {
	if strings.TrimSpace(text) == "" {
		return Entities{}, nil
	}
	if err := ctx.Err(); err != nil {
		return Entities{}, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return Entities{}, fmt.Errorf("failed to parse description: %w", err)
	}
	return entitiesFromLabels(doc.Entities()), nil
}

func entitiesFromLabels(ents []prose.Entity) Entities {
	var out Entities
	for _, ent := range ents {
		switch ent.Label {
		case LabelPerson:
			out.Persons = append(out.Persons, ent.Text)
		case LabelGPE:
			out.Locations = append(out.Locations, ent.Text)
		}
	}
	return out
}

const openAIExtractPrompt = `You extract named entities from police complaint descriptions.
Return only a JSON object of the form {"persons": [...], "locations": [...]}.
"persons" lists people's names; "locations" lists countries, cities and states.
Keep the order in which names first appear and copy each mention exactly as written.`

// OpenAIExtractor asks a chat model for the entities
type OpenAIExtractor struct {
	client *openai.Client
	model  string
}

// NewOpenAIExtractor creates an extractor for the given API key and model.
// baseURL overrides the API endpoint when non-empty.
func NewOpenAIExtractor(apiKey, model, baseURL string) *OpenAIExtractor {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo1106
	}
	return &OpenAIExtractor{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Extract sends the description to the model and decodes its JSON reply
func (o *OpenAIExtractor) Extract(ctx context.Context, text string) (Entities, error) {
	if strings.TrimSpace(text) == "" {
		return Entities{}, nil
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAIExtractPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return Entities{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Entities{}, fmt.Errorf("chat completion returned no choices")
	}

	return parseEntitiesJSON(resp.Choices[0].Message.Content)
}

// parseEntitiesJSON accepts the model reply with or without a markdown code fence
func parseEntitiesJSON(content string) (Entities, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var ents Entities
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &ents); err != nil {
		return Entities{}, fmt.Errorf("failed to decode entities: %w", err)
	}
	return ents, nil
}
