package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
)

type graduateRepository struct {
	db *table[graduate.Graduate]
}

var _ graduate.Repository = (*graduateRepository)(nil)

func NewGraduateRepository(db *DB) graduate.Repository {
	return &graduateRepository{db: db.graduates}
}

func (repo *graduateRepository) QueryAllGraduates() ([]graduate.Graduate, error) {
	return repo.db.all(), nil
}

func (repo *graduateRepository) GetGraduateByID(id string) (graduate.Graduate, error) {
	if g, ok := repo.db.get(id); ok {
		return g, nil
	}
	return graduate.Graduate{}, graduate.ErrNotFound
}

func (repo *graduateRepository) SaveGraduate(g graduate.Graduate) (graduate.Graduate, error) {
	return repo.db.save(g), nil
}

func (repo *graduateRepository) DeleteGraduatesByID(ids ...string) error {
	repo.db.delete(ids...)
	return nil
}
