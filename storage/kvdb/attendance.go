package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
)

type attendanceRepository struct {
	db *table[attendance.Record]
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	return repo.db.all(), nil
}

func (repo *attendanceRepository) UpdateRecords(fn func(records []attendance.Record) []attendance.Record) error {
	repo.db.update(fn)
	return nil
}
