package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoryKeyFallsBackToURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "s1", StoryItem{ID: "s1", URL: "http://x/a"}.Key())
	assert.Equal(t, "http://x/a", StoryItem{URL: "http://x/a"}.Key())
}

func TestDisplayHeadlinesCap(t *testing.T) {
	t.Parallel()

	var headlines []string
	for i := 0; i < HeadlineDisplayLimit+5; i++ {
		headlines = append(headlines, fmt.Sprintf("h%d", i))
	}

	digest := DigestPayload{Headlines: headlines}
	shown := digest.DisplayHeadlines()
	assert.Len(t, shown, HeadlineDisplayLimit)
	assert.Equal(t, "h0", shown[0])

	short := DigestPayload{Headlines: []string{"only"}}
	assert.Equal(t, []string{"only"}, short.DisplayHeadlines())
}
