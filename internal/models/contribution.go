package models

import "time"

// Contribution type constants
const (
	TypeAdded  = "added"
	TypeEdited = "edited"
)

// EditChangesNote is recorded verbatim on every edit history entry.
// A computed diff is intentionally not produced.
const EditChangesNote = "Content updated"

// TopicData is the caller-supplied payload for an add or edit.
// The store performs no validation on it; an empty title is persisted as-is.
type TopicData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Code        string `json:"code"`
	SectionKey  string `json:"sectionKey"`
	CourseKey   string `json:"courseKey"`
}

// Contributor identifies the author of a contribution or edit event.
type Contributor struct {
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
}

// EditRecord is one entry in a contribution's append-only edit history.
type EditRecord struct {
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Changes string    `json:"changes"`
}

// Contribution is a user-authored topic record: either a brand new topic
// (type "added") or an override of an existing id (type "edited"). It is
// persisted inside a single JSON document keyed by id.
type Contribution struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Code        string `json:"code"`
	SectionKey  string `json:"sectionKey"`
	CourseKey   string `json:"courseKey"`

	Type               string `json:"type"` // added, edited
	IsUserContribution bool   `json:"isUserContribution"`

	// ContributedBy is set exactly once when a topic is added, never after.
	ContributedBy *Contributor `json:"contributedBy,omitempty"`
	// EditedBy is overwritten on every edit with the latest editor.
	EditedBy *Contributor `json:"editedBy,omitempty"`
	// OriginalID records the id this entry overrides; always equals ID.
	OriginalID string `json:"originalId,omitempty"`
	// EditHistory is append-only, oldest first, unbounded.
	EditHistory []EditRecord `json:"editHistory,omitempty"`
}

// NewAddedContribution builds a type=added contribution under a freshly
// minted id. EditHistory starts empty.
func NewAddedContribution(id string, data TopicData, email, name string, now time.Time) Contribution {
	return Contribution{
		ID:                 id,
		Title:              data.Title,
		Description:        data.Description,
		Content:            data.Content,
		Code:               data.Code,
		SectionKey:         data.SectionKey,
		CourseKey:          data.CourseKey,
		Type:               TypeAdded,
		IsUserContribution: true,
		ContributedBy: &Contributor{
			Email: email,
			Name:  name,
			Date:  now,
		},
	}
}

// NewEditedContribution builds a type=edited contribution that fully
// replaces whatever sat at id, with two carve-outs: the prior entry's
// edit history is extended, not dropped, and its contributedBy survives
// untouched (it is set exactly once at creation and never mutated).
// prior may be nil when a built-in topic is overridden for the first
// time.
func NewEditedContribution(id string, data TopicData, email, name string, now time.Time, prior *Contribution) Contribution {
	var history []EditRecord
	var contributedBy *Contributor
	if prior != nil {
		history = append(history, prior.EditHistory...)
		contributedBy = prior.ContributedBy
	}
	history = append(history, EditRecord{
		Email:   email,
		Name:    name,
		Date:    now,
		Changes: EditChangesNote,
	})

	return Contribution{
		ID:                 id,
		Title:              data.Title,
		Description:        data.Description,
		Content:            data.Content,
		Code:               data.Code,
		SectionKey:         data.SectionKey,
		CourseKey:          data.CourseKey,
		Type:               TypeEdited,
		IsUserContribution: true,
		OriginalID:         id,
		ContributedBy:      contributedBy,
		EditedBy: &Contributor{
			Email: email,
			Name:  name,
			Date:  now,
		},
		EditHistory: history,
	}
}

// AuthoredBy reports whether the given email appears as the original
// contributor or as the latest editor. A topic added by one user and
// later edited by another matches both.
func (c Contribution) AuthoredBy(email string) bool {
	if c.ContributedBy != nil && c.ContributedBy.Email == email {
		return true
	}
	if c.EditedBy != nil && c.EditedBy.Email == email {
		return true
	}
	return false
}
