// services/contact_store.go - Contact persistence
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"zyph-contact-api/models"
)

// ContactStore is the persistence boundary of the pipeline. The gorm
// implementation is the only one in production; tests substitute fakes.
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	CountAll(ctx context.Context) (int64, error)
	CountByEstado(ctx context.Context, estado string) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	// List returns one page of contacts, newest first, plus the total count.
	List(ctx context.Context, page, limit int) ([]models.Contact, int64, error)
}

type gormContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) ContactStore {
	return &gormContactStore{db: db}
}

func (s *gormContactStore) Create(ctx context.Context, contact *models.Contact) error {
	return s.db.WithContext(ctx).Create(contact).Error
}

func (s *gormContactStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Contact{}).Count(&count).Error
	return count, err
}

func (s *gormContactStore) CountByEstado(ctx context.Context, estado string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Contact{}).
		Where("estado = ?", estado).
		Count(&count).Error
	return count, err
}

func (s *gormContactStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Contact{}).
		Where("create_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (s *gormContactStore) List(ctx context.Context, page, limit int) ([]models.Contact, int64, error) {
	page, limit = NormalizePagination(page, limit)
	offset := (page - 1) * limit

	query := s.db.WithContext(ctx).Model(&models.Contact{})

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	if err := query.Order("create_at DESC").Offset(offset).Limit(limit).Find(&contacts).Error; err != nil {
		return nil, 0, err
	}

	return contacts, totalCount, nil
}

// NormalizePagination clamps page/limit to sane values. limit falls back
// to 10 when unspecified or non-positive.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
