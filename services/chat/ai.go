package chat

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kiddy-universe/web-api/services/common"
	"github.com/kiddy-universe/web-api/services/metrics"
	"github.com/kiddy-universe/web-api/services/openai"
)

const (
	upstreamName = "openai"
	temperature  = 0.8
	maxTokens    = 500
)

type CompletionCreator interface {
	CreateChatCompletion(ctx context.Context, cr *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
	Model() string
}

// AI answers through the chat completion API. Every API failure is
// reported as *common.UpstreamError.
type AI struct {
	api CompletionCreator
}

var _ Responder = (*AI)(nil)

func NewAI(api CompletionCreator) *AI {
	return &AI{api: api}
}

func (s *AI) Respond(ctx context.Context, r *Request) (res *Response, err error) {
	if s.api == nil {
		return nil, errors.New("no completion api configured")
	}
	model := strings.TrimSpace(r.Model)
	if model == "" {
		model = s.api.Model()
	}
	start := time.Now()
	defer func() {
		metrics.ObserveUpstream(upstreamName, start, err)
	}()
	cr := &openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.Message{
			{Role: "system", Content: SystemPrompt(r.Grade, r.Subject)},
			{Role: "user", Content: userContent(r)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	resp, err := s.api.CreateChatCompletion(ctx, cr)
	if err != nil {
		return nil, common.NewUpstreamError(upstreamName, err)
	}
	text := ""
	if len(resp.Choices) > 0 {
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if text == "" {
		return nil, common.NewUpstreamError(upstreamName, errors.New("empty completion"))
	}
	return &Response{
		Text:      text,
		Model:     ModelOpenAI,
		UsedModel: model,
	}, nil
}

// userContent is plain text unless images are attached.
func userContent(r *Request) any {
	prompt := UserPrompt(r.Message, r.Mode)
	if len(r.Images) == 0 {
		return prompt
	}
	parts := []openai.ContentPart{{Type: "text", Text: prompt}}
	for i, img := range r.Images {
		if i == MaxImages {
			break
		}
		parts = append(parts, openai.ContentPart{
			Type:     "image_url",
			ImageURL: &openai.ImageURL{URL: img},
		})
	}
	return parts
}
