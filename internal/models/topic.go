package models

// Topic is one built-in catalog entry. The catalog ships with the
// application and is never mutated; user contributions override it by id
// at read time.
type Topic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Code        string `json:"code"`
	SectionKey  string `json:"sectionKey"`
	CourseKey   string `json:"courseKey"`
}

// Section is one entry of the catalog taxonomy.
type Section struct {
	SectionKey string `json:"sectionKey"`
	CourseKey  string `json:"courseKey"`
}

// MergedTopic is the consumer-facing view of a topic after contributions
// are merged over the built-in catalog.
type MergedTopic struct {
	Topic
	IsUserContribution bool   `json:"isUserContribution"`
	ContributionType   string `json:"contributionType,omitempty"` // added, edited
}

// MergedFromTopic wraps a built-in catalog entry.
func MergedFromTopic(t Topic) MergedTopic {
	return MergedTopic{Topic: t}
}

// MergedFromContribution projects a contribution into the merged view.
func MergedFromContribution(c Contribution) MergedTopic {
	return MergedTopic{
		Topic: Topic{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Content:     c.Content,
			Code:        c.Code,
			SectionKey:  c.SectionKey,
			CourseKey:   c.CourseKey,
		},
		IsUserContribution: true,
		ContributionType:   c.Type,
	}
}
