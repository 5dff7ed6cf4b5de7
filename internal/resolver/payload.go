package resolver

// FactContent is the resolved fact body in the requested language and level.
type FactContent struct {
	Content string `json:"content"`
}

// ExtendedFactContent is the pre-authored extended text plus subject
// metadata. Metadata fields are best-effort and may be empty.
type ExtendedFactContent struct {
	Content     string `json:"content"`
	Source      string `json:"source,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// WordTranslation is the contextual translation of a selected word. The
// translation provider is plain text-to-text, so only PrimaryTranslation is
// populated today; the array fields keep the payload shape stable.
type WordTranslation struct {
	PrimaryTranslation string   `json:"primaryTranslation"`
	OtherMeanings      []string `json:"otherMeanings,omitempty"`
	ExampleSentences   []string `json:"exampleSentences,omitempty"`
}

// WordAnalysis is the expanded analysis of a word: root form and meanings
// with example sentences in both languages.
type WordAnalysis struct {
	RootWord string        `json:"rootWord,omitempty"`
	Meanings []WordMeaning `json:"meanings"`
}

// WordMeaning is one sense of an analyzed word.
type WordMeaning struct {
	Translation   string `json:"translation"`
	PartOfSpeech  string `json:"partOfSpeech,omitempty"`
	ExampleSource string `json:"exampleSourceLang"`
	ExampleTarget string `json:"exampleTargetLang"`
}
