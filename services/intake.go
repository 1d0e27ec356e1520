package services

import (
	"context"
	"time"

	"trace_app_go/models"

	"go.uber.org/zap"
)

// IncidentDateLayout is used when the incident date is left empty
const IncidentDateLayout = "2006-01-02"

// AssignmentScheduler arranges for TryAssign to run once for a complaint after delay
type AssignmentScheduler interface {
	Schedule(ctx context.Context, complaintID uint, delay time.Duration) error
}

// ComplaintForm is the citizen registration input
type ComplaintForm struct {
	Name          string `form:"name" json:"name"`
	Contact       string `form:"contact" json:"contact"`
	Area          string `form:"area" json:"area"`
	IncidentDate  string `form:"incident_date" json:"incident_date"`
	IncidentPlace string `form:"incident_place" json:"incident_place"`
	Description   string `form:"description" json:"description"`
}

// IntakeService registers complaints and answers citizen lookups
type IntakeService struct {
	store     ComplaintStore
	extractor EntityExtractor
	scheduler AssignmentScheduler
	delay     time.Duration
	log       *zap.Logger
	now       func() time.Time
}

// NewIntakeService wires the registration workflow
func NewIntakeService(store ComplaintStore, extractor EntityExtractor, scheduler AssignmentScheduler, delay time.Duration, log *zap.Logger) *IntakeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &IntakeService{
		store:     store,
		extractor: extractor,
		scheduler: scheduler,
		delay:     delay,
		log:       log,
		now:       time.Now,
	}
}

// Delay is the time between registration and the assignment attempt
func (s *IntakeService) Delay() time.Duration {
	return s.delay
}

// Register validates and stores a complaint, then schedules its officer
// assignment. Incomplete input is rejected before anything is written.
func (s *IntakeService) Register(ctx context.Context, form ComplaintForm) (*models.Complaint, error) {
	in := ReportInput{
		Name:          CleanText(form.Name),
		Contact:       CleanText(form.Contact),
		Area:          CleanText(form.Area),
		IncidentDate:  CleanText(form.IncidentDate),
		IncidentPlace: CleanText(form.IncidentPlace),
		Description:   CleanText(form.Description),
	}

	if missing := missingFields(in); len(missing) > 0 {
		return nil, &IncompleteInputError{Missing: missing}
	}

	now := s.now()
	if in.IncidentDate == "" {
		in.IncidentDate = now.Format(IncidentDateLayout)
	}

	entities, err := s.extractor.Extract(ctx, in.Description)
	if err != nil {
		// The report is still produced, with "N/A" for both entity lines
		s.log.Warn("Entity extraction failed", zap.Error(err))
		entities = Entities{}
	}

	due := now.Add(s.delay)
	complaint := &models.Complaint{
		Name:          in.Name,
		Contact:       in.Contact,
		Area:          in.Area,
		IncidentDate:  in.IncidentDate,
		IncidentPlace: in.IncidentPlace,
		Description:   in.Description,
		FormattedText: FormatComplaint(in, entities, now),
		AssignDueAt:   &due,
	}

	id, err := s.store.Create(ctx, complaint)
	if err != nil {
		return nil, err
	}

	s.log.Info("Complaint registered", zap.Uint("complaint_id", id), zap.Duration("assign_in", s.delay))

	if err := s.scheduler.Schedule(ctx, id, s.delay); err != nil {
		// Picked up later by the recovery sweep
		s.log.Error("Failed to schedule officer assignment", zap.Uint("complaint_id", id), zap.Error(err))
	}

	return complaint, nil
}

// Track returns every complaint filed with contact, possibly none
func (s *IntakeService) Track(ctx context.Context, contact string) ([]models.Complaint, error) {
	return s.store.GetByContact(ctx, CleanText(contact))
}

// OfficerFor returns the complaint with its assignment fields.
// ErrComplaintNotFound means no case has this id.
func (s *IntakeService) OfficerFor(ctx context.Context, id uint) (*models.Complaint, error) {
	return s.store.GetByID(ctx, id)
}

func missingFields(in ReportInput) []string {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Contact == "" {
		missing = append(missing, "contact")
	}
	if in.Area == "" {
		missing = append(missing, "area")
	}
	if in.IncidentPlace == "" {
		missing = append(missing, "incident_place")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}

// OverrideFromForm builds an admin update that keeps the stored value for
// every empty field
func OverrideFromForm(status, officer, station, phone string) models.ComplaintUpdate {
	var update models.ComplaintUpdate
	if v := CleanText(status); v != "" {
		update.Status = &v
	}
	if v := CleanText(officer); v != "" {
		update.OfficerAssigned = &v
	}
	if v := CleanText(station); v != "" {
		update.Station = &v
	}
	if v := CleanText(phone); v != "" {
		update.Phone = &v
	}
	return update
}
