package kvdb

import (
	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
)

type announcementRepository struct {
	db *table[announcement.Announcement]
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *DB) announcement.Repository {
	return &announcementRepository{db: db.announcements}
}

func (repo *announcementRepository) QueryAllAnnouncements() ([]announcement.Announcement, error) {
	return repo.db.all(), nil
}

func (repo *announcementRepository) GetAnnouncementByID(id string) (announcement.Announcement, error) {
	if a, ok := repo.db.get(id); ok {
		return a, nil
	}
	return announcement.Announcement{}, announcement.ErrNotFound
}

func (repo *announcementRepository) SaveAnnouncement(a announcement.Announcement) (announcement.Announcement, error) {
	return repo.db.save(a), nil
}

func (repo *announcementRepository) DeleteAnnouncementsByID(ids ...string) error {
	repo.db.delete(ids...)
	return nil
}
