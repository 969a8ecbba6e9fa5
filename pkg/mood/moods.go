package mood

import (
	"fmt"
	"strings"
)

// Mood is one selectable day tag.
type Mood struct {
	Key     string
	Emoji   string
	Meaning string
}

func (m Mood) String() string {
	return m.Emoji
}

// DefaultMoods returns the selectable mood catalog.
func DefaultMoods() []Mood {
	m := make([]Mood, 0, 10)

	m = append(m, Mood{
		Key:     "happy",
		Emoji:   "😊",
		Meaning: "happy",
	}, Mood{
		Key:     "love",
		Emoji:   "🥰",
		Meaning: "loved",
	}, Mood{
		Key:     "calm",
		Emoji:   "😌",
		Meaning: "calm",
	}, Mood{
		Key:     "fire",
		Emoji:   "🔥",
		Meaning: "motivated",
	}, Mood{
		Key:     "tired",
		Emoji:   "😴",
		Meaning: "tired",
	}, Mood{
		Key:     "sad",
		Emoji:   "😢",
		Meaning: "sad",
	}, Mood{
		Key:     "angry",
		Emoji:   "😡",
		Meaning: "angry",
	}, Mood{
		Key:     "sick",
		Emoji:   "🤒",
		Meaning: "sick",
	}, Mood{
		Key:     "party",
		Emoji:   "🎉",
		Meaning: "celebrating",
	}, Mood{
		Key:     "rain",
		Emoji:   "🌧️",
		Meaning: "gloomy",
	})

	return m
}

// ForAlias resolves a key or a raw emoji to the emoji to store. Raw emoji
// input outside the catalog is accepted as-is so users are not limited to
// the defaults.
func ForAlias(alias string) (string, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return "", fmt.Errorf("mood: empty mood")
	}
	for _, m := range DefaultMoods() {
		if m.Key == alias || m.Emoji == alias {
			return m.Emoji, nil
		}
	}
	// Anything non-ASCII is assumed to be an emoji the user typed directly.
	for _, r := range alias {
		if r > 127 {
			return alias, nil
		}
	}
	return "", fmt.Errorf("mood: unknown mood %q", alias)
}
