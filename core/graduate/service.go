package graduate

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

const idPrefix = "a"

var (
	// errors
	ErrNotFound = errors.New("graduate not found")
)

type (
	Repository interface {
		QueryAllGraduates() ([]Graduate, error)
		GetGraduateByID(id string) (Graduate, error)
		// SaveGraduate replaces the stored Graduate with the same ID, or appends it.
		SaveGraduate(g Graduate) (Graduate, error)
		DeleteGraduatesByID(ids ...string) error
	}

	Service struct {
		repo Repository
		ids  core.IDGenerator
	}
)

func NewService(repo Repository, ids core.IDGenerator) *Service {
	return &Service{repo: repo, ids: ids}
}

func placeholderPicture(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/200", seed)
}

// Save edits the Graduate identified by ng.ID, or records a new one when ng.ID is empty.
// New graduates without pictures get placeholder ones.
func (svc *Service) Save(ng NewGraduate) (Graduate, error) {
	g := ng.graduate()
	if g.ID != "" {
		if _, err := svc.repo.GetGraduateByID(g.ID); err != nil {
			return Graduate{}, err
		}
		return svc.repo.SaveGraduate(g)
	}

	g.ID = svc.ids.NewID(idPrefix)
	if g.AlumniPicture == "" {
		g.AlumniPicture = g.Picture
		if g.AlumniPicture == "" {
			g.AlumniPicture = placeholderPicture(g.ID + "-grad")
		}
	}
	if g.Picture == "" {
		g.Picture = placeholderPicture(g.ID)
	}
	return svc.repo.SaveGraduate(g)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteGraduatesByID(ids...)
}

func (svc *Service) GetByID(id string) (Graduate, error) {
	return svc.repo.GetGraduateByID(core.CleanString(id))
}

func (svc *Service) QueryAll() ([]Graduate, error) {
	return svc.repo.QueryAllGraduates()
}
