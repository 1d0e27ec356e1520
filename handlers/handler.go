package handlers

import (
	"context"
	"time"

	"trace_app_go/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExportSource knows the storage key of the latest stored export
type ExportSource interface {
	Latest() (string, bool)
}

// Handler holds the dependencies shared by all HTTP handlers
type Handler struct {
	db      *gorm.DB
	intake  *services.IntakeService
	store   services.ComplaintStore
	auth    *services.AdminAuth
	storage services.StorageProvider
	exports ExportSource
	pdf     services.PDFOptions
	log     *zap.Logger
	now     func() time.Time
	toPDF   func(ctx context.Context, reportText string, options services.PDFOptions) ([]byte, error)
}

// New builds a Handler. exports may be nil when no export job runs.
func New(db *gorm.DB, intake *services.IntakeService, store services.ComplaintStore, auth *services.AdminAuth, storage services.StorageProvider, exports ExportSource, pdf services.PDFOptions, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		db:      db,
		intake:  intake,
		store:   store,
		auth:    auth,
		storage: storage,
		exports: exports,
		pdf:     pdf,
		log:     log,
		now:     time.Now,
		toPDF:   services.GenerateReportPDF,
	}
}
