package jobs

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"trace_app_go/models"
	"trace_app_go/services"

	"go.uber.org/zap"
)

// ComplaintLister returns every complaint
type ComplaintLister interface {
	List(ctx context.Context) ([]models.Complaint, error)
}

// ExportJob writes a workbook of all complaints to storage
type ExportJob struct {
	store   ComplaintLister
	storage services.StorageProvider
	log     *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	latest string
}

// NewExportJob creates the nightly export
func NewExportJob(store ComplaintLister, storage services.StorageProvider, log *zap.Logger) *ExportJob {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportJob{store: store, storage: storage, log: log, now: time.Now}
}

// Run builds and uploads one export
func (e *ExportJob) Run(ctx context.Context) (*services.StorageResult, error) {
	complaints, err := e.store.List(ctx)
	if err != nil {
		e.log.Warn("[JOB] Export failed to list complaints", zap.Error(err))
		return nil, err
	}

	buf, err := services.BuildComplaintsWorkbook(complaints)
	if err != nil {
		e.log.Warn("[JOB] Export failed to build workbook", zap.Error(err))
		return nil, err
	}

	key := services.GenerateExportKey(e.now())
	data := buf.Bytes()
	result, err := e.storage.UploadReader(ctx, bytes.NewReader(data), key, services.XLSXContentType, int64(len(data)))
	if err != nil {
		e.log.Warn("[JOB] Export upload failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to store export: %w", err)
	}

	e.mu.Lock()
	e.latest = result.Key
	e.mu.Unlock()

	e.log.Info("[JOB] Complaints exported", zap.String("key", result.Key), zap.Int("rows", len(complaints)))
	return result, nil
}

// Latest returns the storage key of the most recent export made by this process
func (e *ExportJob) Latest() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest, e.latest != ""
}
