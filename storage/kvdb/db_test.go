package kvdb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	appfs "github.com/umairnumplate/noor-ul-masajid/fs"
	logsvc "github.com/umairnumplate/noor-ul-masajid/services/logger"
	"github.com/umairnumplate/noor-ul-masajid/storage/kvstore/memstore"
)

var seededAt = time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return seededAt }

func open(t *testing.T, kv core.KVStore, seed Seed) *DB {
	t.Helper()
	return Open(kv, logsvc.NewNopLogger(), seed, fixedNow)
}

func stored[T any](t *testing.T, kv core.KVStore, key string) T {
	t.Helper()
	b, err := kv.Get(key)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(b, &v))
	return v
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed(appfs.FS)
	require.NoError(t, err)

	assert.Len(t, seed.Students, 3)
	assert.Len(t, seed.Teachers, 2)
	assert.Len(t, seed.Teachers[0].Timetable, 3)
	assert.Len(t, seed.Graduates, 2)
	assert.True(t, seed.Graduates[0].DarsENizamiProgress["dn9"])
	assert.Len(t, seed.TanzimRecords, 2)
	assert.Equal(t, 500.0, seed.TanzimRecords[0].OtherFeeAmount.Float64)
	assert.False(t, seed.TanzimRecords[1].OtherFeeAmount.Valid)
	assert.Len(t, seed.MadrasaFeeRecords, 4)
	assert.False(t, seed.MadrasaFeeRecords[2].ReceiptNumber.Valid)
	require.Len(t, seed.Announcements, 1)
	assert.True(t, seed.Announcements[0].Date.IsZero(), "fixtures are dated when seeded")
}

func TestParseSeed_Invalid(t *testing.T) {
	_, err := ParseSeed([]byte("students: [\n"))
	assert.Error(t, err)

	_, err = ParseSeed([]byte("students: 42\n"))
	assert.Error(t, err)
}

func TestOpen_Seeds(t *testing.T) {
	seed, err := LoadSeed(appfs.FS)
	require.NoError(t, err)

	kv := memstore.New()
	db := open(t, kv, seed)

	assert.Len(t, stored[[]student.Student](t, kv, core.KeyStudents), 3)
	anns := stored[[]announcement.Announcement](t, kv, core.KeyAnnouncements)
	require.Len(t, anns, 1)
	assert.True(t, seededAt.Equal(anns[0].Date))
	assert.Equal(t, class.Reference(), db.Classes())

	// collections left non-empty are not seeded again
	students := NewStudentRepository(db)
	require.NoError(t, students.DeleteStudentsByID("s1", "s2"))
	db = open(t, kv, seed)
	all, err := NewStudentRepository(db).QueryAllStudents()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "s3", all[0].ID)

	// an emptied collection is
	require.NoError(t, NewStudentRepository(db).DeleteStudentsByID("s3"))
	db = open(t, kv, seed)
	all, _ = NewStudentRepository(db).QueryAllStudents()
	assert.Len(t, all, 3)
}

func TestOpen_ResetsClasses(t *testing.T) {
	kv := memstore.New()
	require.NoError(t, kv.Set(core.KeyClasses, []byte(`[{"id":"x1","name":"Custom","track":"Hifz"}]`)))

	db := open(t, kv, Seed{})
	assert.Equal(t, class.Reference(), db.Classes())
	assert.Equal(t, class.Reference(), stored[[]class.Class](t, kv, core.KeyClasses))
}

func TestOpen_Corrupt(t *testing.T) {
	kv := memstore.New()
	require.NoError(t, kv.Set(core.KeyStudents, []byte(`{not json`)))
	require.NoError(t, kv.Set(core.KeyAttendance, []byte(`"nope"`)))

	db := open(t, kv, Seed{Students: []student.Student{{ID: "s1", Name: "Ahmed Ali"}}})
	all, err := NewStudentRepository(db).QueryAllStudents()
	require.NoError(t, err)
	assert.Len(t, all, 1, "an unreadable collection is treated as empty and seeded")

	records, err := NewAttendanceRepository(db).QueryAllRecords()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestDB_FailingStore(t *testing.T) {
	kv := memstore.New()
	db := open(t, kv, Seed{})
	repo := NewStudentRepository(db)

	kv.FailWrites(errors.New("quota exceeded"))
	_, err := repo.SaveStudent(student.Student{ID: "s1", Name: "Ahmed Ali"})
	require.NoError(t, err, "write failures are logged only")

	got, err := repo.GetStudentByID("s1")
	require.NoError(t, err, "the in-memory state keeps the change")
	assert.Equal(t, "Ahmed Ali", got.Name)

	kv.FailWrites(nil)
	after := open(t, kv, Seed{})
	_, err = NewStudentRepository(after).GetStudentByID("s1")
	assert.ErrorIs(t, err, student.ErrNotFound, "nothing reached the store")

	kv.FailReads(errors.New("io error"))
	assert.Empty(t, Get[[]student.Student](kv, logsvc.NewNopLogger(), core.KeyStudents, nil))
}

func TestTable(t *testing.T) {
	kv := memstore.New()
	db := open(t, kv, Seed{})
	repo := NewAttendanceRepository(db)

	require.NoError(t, repo.UpdateRecords(func(records []attendance.Record) []attendance.Record {
		return append(records,
			attendance.Record{StudentID: "s1", Date: "2024-10-01", Status: attendance.StatusPresent},
			attendance.Record{StudentID: "s2", Date: "2024-10-01", Status: attendance.StatusAbsent},
		)
	}))
	require.NoError(t, repo.UpdateRecords(func([]attendance.Record) []attendance.Record { return nil }))

	records, err := repo.QueryAllRecords()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, "[]", func() string { b, _ := kv.Get(core.KeyAttendance); return string(b) }())
}
