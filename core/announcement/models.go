package announcement

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

type Announcement struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"` // RFC3339 in storage
}

// NewAnnouncement contains information needed to post an Announcement.
type NewAnnouncement struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

func (na *NewAnnouncement) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	return validate.Struct(na)
}

// Draft is a generated announcement, to be reviewed before posting.
type Draft struct {
	Title   string `json:"title" assist:"required"`
	Content string `json:"content" assist:"required"`
}
