package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
)

type feeRepository struct {
	db *table[fee.Record]
}

var _ fee.Repository = (*feeRepository)(nil)

func NewFeeRepository(db *DB) fee.Repository {
	return &feeRepository{db: db.feeRecords}
}

func (repo *feeRepository) QueryAllFeeRecords() ([]fee.Record, error) {
	return repo.db.all(), nil
}

func (repo *feeRepository) GetFeeRecordByID(id string) (fee.Record, error) {
	if r, ok := repo.db.get(id); ok {
		return r, nil
	}
	return fee.Record{}, fee.ErrNotFound
}

func (repo *feeRepository) SaveFeeRecord(r fee.Record) (fee.Record, error) {
	return repo.db.save(r), nil
}

func (repo *feeRepository) DeleteFeeRecordsByID(ids ...string) error {
	repo.db.delete(ids...)
	return nil
}
