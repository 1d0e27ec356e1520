package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"trace_app_go/config"
	"trace_app_go/db"
	"trace_app_go/models"
	"trace_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "correct-horse"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(testDB) })

	require.NoError(t, db.AutoMigrate(testDB, &models.Complaint{}, &models.Admin{}, &models.AdminSession{}))
	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

type stubExtractor struct {
	entities services.Entities
}

func (s stubExtractor) Extract(ctx context.Context, text string) (services.Entities, error) {
	return s.entities, nil
}

type recordingScheduler struct {
	mu  sync.Mutex
	ids []uint
}

func (r *recordingScheduler) Schedule(ctx context.Context, id uint, delay time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
	return nil
}

func (r *recordingScheduler) IDs() []uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint(nil), r.ids...)
}

type testEnv struct {
	db        *gorm.DB
	store     *services.GormComplaintStore
	auth      *services.AdminAuth
	scheduler *recordingScheduler
	handler   *Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testDB := setupTestDB(t)
	store := services.NewComplaintStore(testDB)
	auth := services.NewAdminAuth(testDB, nil)
	scheduler := &recordingScheduler{}
	extractor := stubExtractor{entities: services.Entities{Persons: []string{"Ravi"}, Locations: []string{"Pune"}}}
	intake := services.NewIntakeService(store, extractor, scheduler, 15*time.Second, nil)

	_, err := auth.CreateAdmin(context.Background(), testAdminUsername, testAdminPassword)
	require.NoError(t, err)

	return &testEnv{
		db:        testDB,
		store:     store,
		auth:      auth,
		scheduler: scheduler,
		handler:   New(testDB, intake, store, auth, services.NewLocalStorage(t.TempDir()), nil, services.DefaultPDFOptions(""), nil),
	}
}

// seedComplaint stores a complaint directly, bypassing intake
func (env *testEnv) seedComplaint(t *testing.T, name, contact string) *models.Complaint {
	t.Helper()
	complaint := &models.Complaint{
		Name:          name,
		Contact:       contact,
		Area:          "Shivaji Nagar",
		IncidentDate:  "2024-05-01",
		IncidentPlace: "Bus stand",
		Description:   "Phone stolen",
		FormattedText: "FORMAL COMPLAINT for " + name,
	}
	_, err := env.store.Create(context.Background(), complaint)
	require.NoError(t, err)
	return complaint
}

func stringToPtr(s string) *string {
	return &s
}
