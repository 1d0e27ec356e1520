package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trace_app_go/models"

	"gorm.io/gorm"
)

// ComplaintStore persists complaints. Every successful write is committed before returning.
type ComplaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) (uint, error)
	GetByID(ctx context.Context, id uint) (*models.Complaint, error)
	GetByContact(ctx context.Context, contact string) ([]models.Complaint, error)
	Update(ctx context.Context, id uint, update models.ComplaintUpdate) error
	AssignIfUnassigned(ctx context.Context, id uint, officer models.Officer) (bool, error)
	ListPendingAssignments(ctx context.Context, dueBefore time.Time) ([]models.Complaint, error)
	List(ctx context.Context) ([]models.Complaint, error)
}

// GormComplaintStore is the SQLite-backed ComplaintStore
type GormComplaintStore struct {
	db *gorm.DB
}

// NewComplaintStore creates a store on the given handle
func NewComplaintStore(db *gorm.DB) *GormComplaintStore {
	return &GormComplaintStore{db: db}
}

// Create inserts a fresh complaint. Status and assignment fields are always
// reset to their initial values; the caller cannot pre-assign a case.
func (s *GormComplaintStore) Create(ctx context.Context, complaint *models.Complaint) (uint, error) {
	complaint.ID = 0
	complaint.Status = models.StatusUnderReview
	complaint.OfficerAssigned = models.OfficerNotAssigned
	complaint.Station = models.NotAvailable
	complaint.Phone = models.NotAvailable
	if complaint.AssignDueAt != nil {
		due := complaint.AssignDueAt.UTC()
		complaint.AssignDueAt = &due
	}

	if err := s.db.WithContext(ctx).Create(complaint).Error; err != nil {
		return 0, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint.ID, nil
}

// GetByID loads a complaint or returns ErrComplaintNotFound
func (s *GormComplaintStore) GetByID(ctx context.Context, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.db.WithContext(ctx).First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to fetch complaint: %w", err)
	}
	return &complaint, nil
}

// GetByContact returns every complaint filed with the exact contact, oldest first
func (s *GormComplaintStore) GetByContact(ctx context.Context, contact string) ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := s.db.WithContext(ctx).
		Where("contact = ?", contact).
		Order("id ASC").
		Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch complaints by contact: %w", err)
	}
	return complaints, nil
}

// Update overwrites the set fields of update. Values are not validated.
func (s *GormComplaintStore) Update(ctx context.Context, id uint, update models.ComplaintUpdate) error {
	if update.IsEmpty() {
		_, err := s.GetByID(ctx, id)
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(update.Columns())
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

// AssignIfUnassigned writes officer, station, phone and status in one
// statement guarded by the officer sentinel. It reports whether this call
// performed the assignment.
func (s *GormComplaintStore) AssignIfUnassigned(ctx context.Context, id uint, officer models.Officer) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ? AND officer_assigned = ?", id, models.OfficerNotAssigned).
		Updates(map[string]interface{}{
			"officer_assigned": officer.Name,
			"station":          officer.Station,
			"phone":            officer.Phone,
			"status":           models.StatusAssigned,
			"assign_due_at":    nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to assign officer: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ListPendingAssignments returns unassigned complaints whose attempt was due before dueBefore
func (s *GormComplaintStore) ListPendingAssignments(ctx context.Context, dueBefore time.Time) ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := s.db.WithContext(ctx).
		Where("officer_assigned = ? AND assign_due_at IS NOT NULL AND assign_due_at <= ?", models.OfficerNotAssigned, dueBefore.UTC()).
		Order("id ASC").
		Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending assignments: %w", err)
	}
	return complaints, nil
}

// List returns all complaints ordered by id
func (s *GormComplaintStore) List(ctx context.Context) ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}
