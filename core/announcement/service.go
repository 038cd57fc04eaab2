package announcement

import (
	"context"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/assist"
)

const idPrefix = "anno"

var (
	// errors
	ErrNotFound       = errors.New("announcement not found")
	ErrEmptyTopic     = errors.New("please enter a topic for the announcement")
	ErrMalformedDraft = errors.New("sorry, there was an error generating the announcement, please try a different prompt")
	ErrNoRecipients   = errors.New("no announcement recipients configured")
)

type (
	Repository interface {
		QueryAllAnnouncements() ([]Announcement, error)
		GetAnnouncementByID(id string) (Announcement, error)
		SaveAnnouncement(a Announcement) (Announcement, error)
		DeleteAnnouncementsByID(ids ...string) error
	}

	Service struct {
		repo   Repository
		ids    core.IDGenerator
		gen    assist.Generator
		mailer core.EmailService
		logger core.Logger
		now    func() time.Time
	}
)

func NewService(repo Repository, ids core.IDGenerator, gen assist.Generator, mailer core.EmailService, logger core.Logger) *Service {
	return &Service{repo: repo, ids: ids, gen: gen, mailer: mailer, logger: logger, now: time.Now}
}

func (svc *Service) Create(na NewAnnouncement) (Announcement, error) {
	return svc.repo.SaveAnnouncement(Announcement{
		ID:      svc.ids.NewID(idPrefix),
		Title:   na.Title,
		Content: na.Content,
		Date:    svc.now().UTC(),
	})
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteAnnouncementsByID(ids...)
}

func (svc *Service) GetByID(id string) (Announcement, error) {
	return svc.repo.GetAnnouncementByID(core.CleanString(id))
}

// QueryAll returns every announcement, newest first.
func (svc *Service) QueryAll() ([]Announcement, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	SortNewestFirst(all)
	return all, nil
}

func SortNewestFirst(anns []Announcement) {
	sort.SliceStable(anns, func(i, j int) bool { return anns[i].Date.After(anns[j].Date) })
}

// Generate drafts an announcement about `topic`. The draft is not saved.
func (svc *Service) Generate(ctx context.Context, topic string) (Draft, error) {
	topic = core.CleanString(topic)
	if topic == "" {
		return Draft{}, ErrEmptyTopic
	}

	text := svc.gen.Generate(ctx, assist.ModelPro, draftPrompt(topic))
	draft, err := assist.ParseJSON[Draft](text)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("failed to generate or parse announcement: %v", err), err)
		return Draft{}, ErrMalformedDraft
	}
	return draft, nil
}

func draftPrompt(topic string) string {
	return `You are an administrator for an Islamic education system named "Noor ul Masajid".
Generate a concise and professional announcement for the notice board based on the following topic.
The topic is: "` + topic + `".
Return the response as a single, valid JSON object with two keys: "title" (a short, suitable headline) and "content" (the full announcement text, about 2-3 sentences).
Do not include any other text or markdown formatting outside of the JSON object.`
}

// Publish mails the announcement to `recipients`.
func (svc *Service) Publish(id string, recipients []string) error {
	a, err := svc.GetByID(id)
	if err != nil {
		return err
	}

	to := make([]mail.Address, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r == "" {
			continue
		}
		addr, err := mail.ParseAddress(r)
		if err != nil {
			return core.NewValidationError(errors.Wrapf(err, "invalid recipient %q", r))
		}
		to = append(to, *addr)
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}

	svc.mailer.SendMessages(&core.EmailMessage{
		To:           to,
		Subject:      a.Title,
		TemplateName: "announcement",
		TemplateData: map[string]interface{}{
			"Title":   a.Title,
			"Content": a.Content,
			"Date":    a.Date.Format("January 2, 2006"),
		},
	})
	return nil
}
