package chat

import "fmt"

func SystemPrompt(grade int, subject string) string {
	if subject == "" {
		subject = "general learning"
	}
	return fmt.Sprintf("You are Kiddy Universe, a cheerful AI teacher for kids. "+
		"Keep tone playful yet clear. Level content for Grade %d. "+
		"Subject focus: %s. "+
		"Prefer short paragraphs, bullet points, and simple examples.", grade, subject)
}

func UserPrompt(message string, mode Mode) string {
	switch mode {
	case ModeStory:
		return "Create a short, imaginative story that teaches the concept in a friendly way. " +
			"Include vivid imagery and 2-3 short paragraphs. Concept: " + message
	case ModeExplain:
		return "Explain this concept simply using an analogy and a quick example. " +
			"Keep it kid-friendly and concise. Concept: " + message
	default:
		return "Respond as a friendly tutor. Question or idea: " + message
	}
}
