package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient 基于 Google Gemini API。结构化分析与自由问答
// 可配置不同模型（分析用 pro、问答用 flash）。
type GeminiClient struct {
	client        *genai.Client
	model         string
	analysisModel string
}

func NewGemini(apiKey, model, analysisModel string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if analysisModel == "" {
		analysisModel = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:        client,
		model:         model,
		analysisModel: analysisModel,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return resp.Text(), nil
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, system, prompt string, schema *Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	if schema != nil {
		cfg.ResponseSchema = toGenAISchema(schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.analysisModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate json failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}

func toGenAISchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:     toGenAIType(s.Type),
		Required: s.Required,
		Items:    toGenAISchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}
	return out
}

func toGenAIType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
