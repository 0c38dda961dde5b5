package domain

// FactStatus is the trust classification attached to a story by the remote
// fact-checking stage.
type FactStatus string

const (
	FactVerified    FactStatus = "Verified"
	FactUnconfirmed FactStatus = "Unconfirmed"
	FactRumour      FactStatus = "Rumour"
	FactUnknown     FactStatus = ""
)

// StoryItem is one personalized feed entry. Items are immutable once
// received; the active set is wholly replaced on each successful fetch.
type StoryItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	PublishedAt string     `json:"published_at"`
	Bullets     []string   `json:"bullets"`
	Impact      string     `json:"impact"`
	FactStatus  FactStatus `json:"fact_status"`
	RiskScore   *float64   `json:"risk_score,omitempty"`
}

// Key returns the identity of the story: the id when present, the URL
// otherwise.
func (s StoryItem) Key() string {
	if s.ID != "" {
		return s.ID
	}
	return s.URL
}

// BusinessEconomy carries the business section of the daily digest.
type BusinessEconomy struct {
	Snapshot string `json:"snapshot"`
}

// DigestPayload is the language-scoped daily aggregate, independent of
// personal filters. Replaced wholly on each refresh.
type DigestPayload struct {
	Headlines         []string        `json:"headlines"`
	Summary60s        string          `json:"summary_60s"`
	BusinessEconomy   BusinessEconomy `json:"business_economy"`
	GlobalAffectingPK []string        `json:"global_affecting_pk"`
}

// HeadlineDisplayLimit caps how many digest headlines are shown.
const HeadlineDisplayLimit = 10

// DisplayHeadlines returns at most HeadlineDisplayLimit headlines in
// response order.
func (d DigestPayload) DisplayHeadlines() []string {
	if len(d.Headlines) <= HeadlineDisplayLimit {
		return d.Headlines
	}
	return d.Headlines[:HeadlineDisplayLimit]
}

// FeedResult is the outcome of one successful feed fetch.
type FeedResult struct {
	Items []StoryItem
	Count int
}

// IngestResult reports how many raw articles the service pulled in.
type IngestResult struct {
	Inserted int
}

// AudioResult carries the narration resource produced for one story.
type AudioResult struct {
	AudioURL string
}
