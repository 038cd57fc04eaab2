package kvdb

import (
	"encoding/json"
	"io/fs"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

// Seed is the fixture data written to collections found empty on load.
type Seed struct {
	Students          []student.Student           `json:"students"`
	Teachers          []teacher.Teacher           `json:"teachers"`
	Graduates         []graduate.Graduate         `json:"graduates"`
	TanzimRecords     []tanzim.Record             `json:"tanzimRecords"`
	MadrasaFeeRecords []fee.Record                `json:"madrasaFeeRecords"`
	Announcements     []announcement.Announcement `json:"announcements"`
}

// seedAnnouncement mirrors announcement.Announcement without a date: fixtures are dated at seeding time.
type seedAnnouncement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LoadSeed reads `seed/seed.yaml` from fsys.
func LoadSeed(fsys fs.FS) (Seed, error) {
	b, err := fs.ReadFile(fsys, "seed/seed.yaml")
	if err != nil {
		return Seed{}, errors.Wrap(err, "reading seed")
	}
	return ParseSeed(b)
}

// ParseSeed decodes YAML fixtures. They go through JSON so the models' JSON tags and
// null types apply unchanged.
func ParseSeed(b []byte) (Seed, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Seed{}, errors.Wrap(err, "parsing seed")
	}
	anns := raw["announcements"]
	delete(raw, "announcements")

	js, err := json.Marshal(raw)
	if err != nil {
		return Seed{}, errors.Wrap(err, "converting seed")
	}
	var seed Seed
	if err = json.Unmarshal(js, &seed); err != nil {
		return Seed{}, errors.Wrap(err, "decoding seed")
	}

	if anns != nil {
		if js, err = json.Marshal(anns); err != nil {
			return Seed{}, errors.Wrap(err, "converting seed announcements")
		}
		var sa []seedAnnouncement
		if err = json.Unmarshal(js, &sa); err != nil {
			return Seed{}, errors.Wrap(err, "decoding seed announcements")
		}
		for _, a := range sa {
			seed.Announcements = append(seed.Announcements, announcement.Announcement{ID: a.ID, Title: a.Title, Content: a.Content})
		}
	}
	return seed, nil
}
