package core

import "github.com/pkg/errors"

var ErrKeyNotFound = errors.New("key not found")

// Stable collection keys; each holds one JSON array.
const (
	KeyStudents          = "students"
	KeyTeachers          = "teachers"
	KeyClasses           = "classes"
	KeyAnnouncements     = "announcements"
	KeyAttendance        = "attendance"
	KeyGraduates         = "graduates"
	KeyTanzimRecords     = "tanzimRecords"
	KeyMadrasaFeeRecords = "madrasaFeeRecords"
)

// KVStore is the raw persistent storage behind the collections.
// Get returns ErrKeyNotFound when nothing was ever stored under `key`.
type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
