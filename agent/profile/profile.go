// Package profile holds the member profile model and its persistence
// gateways. Profiles are produced once, at the end of a registration
// conversation, and read back by id.
package profile

// Profile is the persisted member record. Phone is nil when the member
// skipped it during registration.
type Profile struct {
	Name        string      `json:"name"`
	Phone       *string     `json:"phone"`
	Preferences Preferences `json:"preferences"`
}

type Preferences struct {
	FavoriteGenres  []string        `json:"favorite_genres"`
	FavoriteAuthors []string        `json:"favorite_authors"`
	ReadingThemes   []string        `json:"reading_themes"`
	RecentInterests []string        `json:"recent_interests"`
	ReaderProfile   ReaderProfile   `json:"reader_profile"`
	BorrowingHabits BorrowingHabits `json:"borrowing_habits"`
	Accessibility   Accessibility   `json:"accessibility"`
}

type ReaderProfile struct {
	ExperienceLevel *string  `json:"experience_level"`
	ReadingSpeed    *string  `json:"reading_speed"`
	ComfortTopics   []string `json:"comfort_topics"`
}

type BorrowingHabits struct {
	AverageLoanDuration *string `json:"average_loan_duration"`
	Frequency           *string `json:"frequency"`
	TypicalFormat       *string `json:"typical_format"`
}

type Accessibility struct {
	NeedsLargePrint    bool   `json:"needs_large_print"`
	PrefersAudiobooks  bool   `json:"prefers_audiobooks"`
	LanguagePreference string `json:"language_preference"`
}

// DefaultPreferences returns the empty preferences structure every new
// profile starts with. Slices are non-nil so they serialize as [].
func DefaultPreferences() Preferences {
	return Preferences{
		FavoriteGenres:  []string{},
		FavoriteAuthors: []string{},
		ReadingThemes:   []string{},
		RecentInterests: []string{},
		ReaderProfile: ReaderProfile{
			ComfortTopics: []string{},
		},
		BorrowingHabits: BorrowingHabits{},
		Accessibility: Accessibility{
			LanguagePreference: "en",
		},
	}
}

// New builds a profile with default preferences.
func New(name string, phone *string) Profile {
	return Profile{
		Name:        name,
		Phone:       phone,
		Preferences: DefaultPreferences(),
	}
}
