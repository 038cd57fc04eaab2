package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

type teacherRepository struct {
	db *table[teacher.Teacher]
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teachers}
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	return repo.db.all(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	if t, ok := repo.db.get(id); ok {
		return t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) SaveTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	return repo.db.save(t), nil
}

func (repo *teacherRepository) DeleteTeachersByID(ids ...string) error {
	repo.db.delete(ids...)
	return nil
}
