package kvdb

import (
	"fmt"
	"time"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

// DB holds every collection of the store in memory. Each collection is an independent
// JSON array under its own key; there is no transaction across keys.
type DB struct {
	kv     core.KVStore
	logger core.Logger

	classes       *table[class.Class]
	students      *table[student.Student]
	teachers      *table[teacher.Teacher]
	attendance    *table[attendance.Record]
	graduates     *table[graduate.Graduate]
	tanzimRecords *table[tanzim.Record]
	feeRecords    *table[fee.Record]
	announcements *table[announcement.Announcement]
}

// Open loads every collection once. Collections found empty are replaced by their fixtures
// from `seed` and written back; classes are always reset to the reference list.
func Open(kv core.KVStore, logger core.Logger, seed Seed, now func() time.Time) *DB {
	db := &DB{kv: kv, logger: logger}

	db.classes = newTable(db, core.KeyClasses, func(c class.Class) string { return c.ID })
	db.students = newTable(db, core.KeyStudents, func(s student.Student) string { return s.ID })
	db.teachers = newTable(db, core.KeyTeachers, func(t teacher.Teacher) string { return t.ID })
	db.attendance = newTable(db, core.KeyAttendance, func(r attendance.Record) string { return r.StudentID + "@" + r.Date })
	db.graduates = newTable(db, core.KeyGraduates, func(g graduate.Graduate) string { return g.ID })
	db.tanzimRecords = newTable(db, core.KeyTanzimRecords, func(r tanzim.Record) string { return r.ID })
	db.feeRecords = newTable(db, core.KeyMadrasaFeeRecords, func(r fee.Record) string { return r.ID })
	db.announcements = newTable(db, core.KeyAnnouncements, func(a announcement.Announcement) string { return a.ID })

	db.classes.rows = class.Reference()
	db.classes.persist()

	seedTable(db.students, seed.Students)
	seedTable(db.teachers, seed.Teachers)
	seedTable(db.graduates, seed.Graduates)
	seedTable(db.tanzimRecords, seed.TanzimRecords)
	seedTable(db.feeRecords, seed.MadrasaFeeRecords)
	db.attendance.load(nil)

	welcome := make([]announcement.Announcement, len(seed.Announcements))
	for i, a := range seed.Announcements {
		if a.Date.IsZero() {
			a.Date = now().UTC()
		}
		welcome[i] = a
	}
	seedTable(db.announcements, welcome)

	return db
}

func seedTable[T any](t *table[T], fixtures []T) {
	t.load(nil)
	if len(t.rows) > 0 || len(fixtures) == 0 {
		return
	}
	t.db.logger.Info(fmt.Sprintf("kvdb: seeding %s with %d rows", t.key, len(fixtures)))
	t.rows = make([]T, len(fixtures))
	copy(t.rows, fixtures)
	t.persist()
}

// Classes returns the reference class list as stored.
func (db *DB) Classes() []class.Class {
	return db.classes.all()
}

func (db *DB) Close() error {
	return db.kv.Close()
}

// Store returns the raw key-value backend.
func (db *DB) Store() core.KVStore {
	return db.kv
}
