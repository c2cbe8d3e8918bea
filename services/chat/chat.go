package chat

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kiddy-universe/web-api/services/common"
)

type Mode string

const (
	ModeChat    Mode = "chat"
	ModeStory   Mode = "story"
	ModeExplain Mode = "explain"
)

const (
	ModelOpenAI = "openai"
	ModelMock   = "mock"
)

// MaxImages is the number of attached images forwarded to the AI provider.
const MaxImages = 3

type Request struct {
	Message string
	Mode    Mode
	Grade   int
	Subject string
	Model   string
	Images  []string
}

type Response struct {
	Text      string `json:"text"`
	Model     string `json:"model"`
	UsedModel string `json:"used_model,omitempty"`
}

type Responder interface {
	Respond(ctx context.Context, r *Request) (*Response, error)
}

// Fallback asks Primary first and turns to Secondary only when Primary
// fails with *common.UpstreamError. Any other error is returned as is.
type Fallback struct {
	Primary   Responder
	Secondary Responder
}

var _ Responder = (*Fallback)(nil)

func NewFallback(primary, secondary Responder) *Fallback {
	return &Fallback{
		Primary:   primary,
		Secondary: secondary,
	}
}

func (s *Fallback) Respond(ctx context.Context, r *Request) (*Response, error) {
	if s.Primary == nil {
		return s.Secondary.Respond(ctx, r)
	}
	res, err := s.Primary.Respond(ctx, r)
	if err == nil {
		return res, nil
	}
	ue, ok := common.IsUpstreamError(err)
	if !ok {
		return nil, errors.Wrap(err, "primary responder failed")
	}
	log.WithError(ue).WithField("service", ue.Service).Warn("falling back to offline responder")
	return s.Secondary.Respond(ctx, r)
}
