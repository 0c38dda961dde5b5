package domain

// City enumerates the metro areas the feed can be localized to.
type City string

const (
	CityKarachi    City = "Karachi"
	CityLahore     City = "Lahore"
	CityIslamabad  City = "Islamabad"
	CityRawalpindi City = "Rawalpindi"
	CityPeshawar   City = "Peshawar"
	CityQuetta     City = "Quetta"
	CityFaisalabad City = "Faisalabad"
	CityMultan     City = "Multan"
)

// Cities lists every selectable city in display order.
func Cities() []City {
	return []City{
		CityKarachi, CityLahore, CityIslamabad, CityRawalpindi,
		CityPeshawar, CityQuetta, CityFaisalabad, CityMultan,
	}
}

// Topic enumerates the interest categories used for feed filtering.
type Topic string

const (
	TopicEconomy  Topic = "economy"
	TopicPolitics Topic = "politics"
	TopicSports   Topic = "sports"
	TopicTech     Topic = "tech"
	TopicWorld    Topic = "world"
)

// Topics lists every selectable interest in display order.
func Topics() []Topic {
	return []Topic{TopicEconomy, TopicPolitics, TopicSports, TopicTech, TopicWorld}
}

// Urgency selects how aggressively the feed is filtered down.
type Urgency string

const (
	UrgencyBreaking  Urgency = "breaking"
	UrgencyImportant Urgency = "important"
	UrgencyFull      Urgency = "full"
)

// Language selects the output language for feed, digest and narration.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageUrdu    Language = "ur"
)

// Preferences is the user's current personalization selection. It lives for
// the session only and is never persisted.
type Preferences struct {
	City      City
	Interests map[Topic]bool
	Urgency   Urgency
	Language  Language
}

// DefaultPreferences returns the startup selection.
func DefaultPreferences() Preferences {
	return Preferences{
		City:      CityKarachi,
		Interests: map[Topic]bool{TopicEconomy: true, TopicPolitics: true},
		Urgency:   UrgencyImportant,
		Language:  LanguageEnglish,
	}
}

// InterestList returns the selected interests in the canonical topic order,
// which is the order the remote feed endpoint expects.
func (p Preferences) InterestList() []Topic {
	selected := make([]Topic, 0, len(p.Interests))
	for _, topic := range Topics() {
		if p.Interests[topic] {
			selected = append(selected, topic)
		}
	}
	return selected
}
