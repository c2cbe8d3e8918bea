package chat

import (
	"context"
	"fmt"
)

// Mock renders canned replies locally. It never fails.
type Mock struct{}

var _ Responder = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{}
}

func (s *Mock) Respond(_ context.Context, r *Request) (*Response, error) {
	return &Response{
		Text:  s.render(r),
		Model: ModelMock,
	}, nil
}

func (s *Mock) render(r *Request) string {
	imgNote := ""
	if len(r.Images) > 0 {
		imgNote = fmt.Sprintf("\n(You attached %d image(s). I'll imagine what they show!)", len(r.Images))
	}
	switch r.Mode {
	case ModeStory:
		subject := r.Subject
		if subject == "" {
			subject = "mysterious"
		}
		return fmt.Sprintf("Once upon a starlit night in Kiddy Universe, Grade %d explorer,\n"+
			"you discovered a %s portal! With a brave smile, you said:\n"+
			"“%s” — and the portal giggled! It taught you a shiny new idea,\n"+
			"and a friendly comet cheered, ‘Light. Learn. Dream!’ 🚀✨%s", r.Grade, subject, r.Message, imgNote)
	case ModeExplain:
		subject := r.Subject
		if subject == "" {
			subject = "this concept"
		}
		return fmt.Sprintf("Here’s a Grade %d friendly explanation about %s:\n"+
			"- Think of it like a simple game.\n"+
			"- Break it into steps.\n"+
			"- Try an example: %s\n"+
			"Great job! What part should we explore next?%s", r.Grade, subject, r.Message, imgNote)
	default:
		return fmt.Sprintf("Awesome thought! For Grade %d, here’s a helpful tip:\n"+
			"“%s” can be explored with stories, voices, and videos.\n"+
			"Pick a panel to dive deeper — Story, Voice, or Video! 🌈%s", r.Grade, r.Message, imgNote)
	}
}
