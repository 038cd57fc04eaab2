package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
)

type tanzimRepository struct {
	db *table[tanzim.Record]
}

var _ tanzim.Repository = (*tanzimRepository)(nil)

func NewTanzimRepository(db *DB) tanzim.Repository {
	return &tanzimRepository{db: db.tanzimRecords}
}

func (repo *tanzimRepository) QueryAllTanzimRecords() ([]tanzim.Record, error) {
	return repo.db.all(), nil
}

func (repo *tanzimRepository) GetTanzimRecordByID(id string) (tanzim.Record, error) {
	if r, ok := repo.db.get(id); ok {
		return r, nil
	}
	return tanzim.Record{}, tanzim.ErrNotFound
}

func (repo *tanzimRepository) SaveTanzimRecord(r tanzim.Record) (tanzim.Record, error) {
	return repo.db.save(r), nil
}

func (repo *tanzimRepository) DeleteTanzimRecordsByID(ids ...string) error {
	repo.db.delete(ids...)
	return nil
}
