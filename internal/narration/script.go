package narration

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsPulse/internal/domain"
)

// Script assembles the narration text for a story: title, bullet points and
// impact line, in that order, with any markup the remote summaries embed
// stripped out.
func Script(story domain.StoryItem) string {
	parts := make([]string, 0, len(story.Bullets)+2)

	if title := Clean(story.Title); title != "" {
		parts = append(parts, sentence(title))
	}
	for _, bullet := range story.Bullets {
		if text := Clean(bullet); text != "" {
			parts = append(parts, sentence(text))
		}
	}
	if impact := Clean(story.Impact); impact != "" {
		parts = append(parts, sentence("Impact: "+impact))
	}

	return strings.Join(parts, " ")
}

// Clean strips HTML tags and collapses whitespace so the text-to-speech
// service never reads markup aloud.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	if strings.ContainsAny(raw, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			text = doc.Text()
		}
	}

	return strings.Join(strings.Fields(text), " ")
}

// sentence terminates the fragment so narration pauses between parts. The
// Urdu full stop and question mark count as terminators too.
func sentence(text string) string {
	switch {
	case strings.HasSuffix(text, "."),
		strings.HasSuffix(text, "!"),
		strings.HasSuffix(text, "?"),
		strings.HasSuffix(text, "۔"),
		strings.HasSuffix(text, "؟"):
		return text
	default:
		return text + "."
	}
}
