package models

import (
	"time"
)

// Complaint status values written by the system. Admins may store any other value.
const (
	StatusUnderReview = "Under Review"
	StatusAssigned    = "Assigned"
)

// Assignment sentinels for a case that has not been assigned yet
const (
	OfficerNotAssigned = "Not Assigned"
	NotAvailable       = "N/A"
)

// Complaint is one registered case
type Complaint struct {
	ID        uint      `gorm:"primarykey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string `gorm:"not null" json:"name"`
	Contact       string `gorm:"not null;index" json:"contact"`
	Area          string `json:"area"`
	IncidentDate  string `json:"incident_date"`
	IncidentPlace string `json:"incident_place"`
	Description   string `gorm:"type:text" json:"description"`
	FormattedText string `gorm:"type:text" json:"formatted_text"`

	Status          string `gorm:"not null;default:'Under Review'" json:"status"`
	OfficerAssigned string `gorm:"not null;default:'Not Assigned';index" json:"officer_assigned"`
	Station         string `gorm:"not null;default:'N/A'" json:"station"`
	Phone           string `gorm:"not null;default:'N/A'" json:"phone"`

	// When the scheduled assignment attempt is due; nil once nothing is pending
	AssignDueAt *time.Time `gorm:"index" json:"assign_due_at,omitempty"`
}

// TableName specifies the table name for Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// IsAssigned reports whether an officer name other than the sentinel is stored
func (c *Complaint) IsAssigned() bool {
	return c.OfficerAssigned != OfficerNotAssigned
}

// ComplaintUpdate is a partial overwrite. Nil fields are left unchanged.
type ComplaintUpdate struct {
	Status          *string `json:"status,omitempty"`
	OfficerAssigned *string `json:"officer_assigned,omitempty"`
	Station         *string `json:"station,omitempty"`
	Phone           *string `json:"phone,omitempty"`
}

// IsEmpty reports whether the update would change nothing
func (u ComplaintUpdate) IsEmpty() bool {
	return u.Status == nil && u.OfficerAssigned == nil && u.Station == nil && u.Phone == nil
}

// Columns returns the column/value map for the fields that are set
func (u ComplaintUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.OfficerAssigned != nil {
		cols["officer_assigned"] = *u.OfficerAssigned
	}
	if u.Station != nil {
		cols["station"] = *u.Station
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	return cols
}
