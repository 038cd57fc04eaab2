package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

type studentRepository struct {
	db *table[student.Student]
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.students}
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	return repo.db.all(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	if s, ok := repo.db.get(id); ok {
		return s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) SaveStudent(s student.Student) (student.Student, error) {
	return repo.db.save(s), nil
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	repo.db.delete(ids...)
	return nil
}
