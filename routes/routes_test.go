package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"medicore/handlers"
	"medicore/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

type stubDoctorRepo struct{}

func (stubDoctorRepo) Create(doc *models.Doctor) error { return nil }
func (stubDoctorRepo) GetByID(id string) (*models.Doctor, error) { return nil, nil }
func (stubDoctorRepo) GetByEmail(email string) (*models.Doctor, error) { return nil, nil }
func (stubDoctorRepo) GetByTokenHash(hash string) (*models.Doctor, error) { return nil, nil }
func (stubDoctorRepo) GetAll() ([]models.Doctor, error) { return nil, nil }
func (stubDoctorRepo) GetAvailableOn(weekday string) ([]models.Doctor, error) {
	return nil, nil
}
func (stubDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (stubDoctorRepo) Count() (int64, error) { return 0, nil }

type stubStaffRepo struct{}

func (stubStaffRepo) Create(s *models.Staff) error { return nil }
func (stubStaffRepo) GetByID(id string) (*models.Staff, error) { return nil, nil }
func (stubStaffRepo) GetByEmail(email string) (*models.Staff, error) { return nil, nil }
func (stubStaffRepo) GetByTokenHash(hash string) (*models.Staff, error) { return nil, nil }
func (stubStaffRepo) GetOnDuty() ([]models.Staff, error) { return nil, nil }
func (stubStaffRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}
func (stubStaffRepo) Count() (int64, error) { return 0, nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Handlers are never reached in these tests; the auth middleware aborts
	// first, so an empty bundle is enough.
	RegisterRoutes(r, &handlers.HandlerBundle{}, stubDoctorRepo{}, stubStaffRepo{})
	return r
}

func TestPaymentEndpointsRequireAuthentication(t *testing.T) {
	router := newTestRouter()

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/payments/appt-1"},
		{http.MethodPost, "/api/payments/create-order"},
		{http.MethodPost, "/api/payments/verify-payment"},
	}
	for _, req := range requests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(req.method, req.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should demand a session", req.method, req.path)
	}
}

func TestDoctorFeesRequiresAuthentication(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/doctors/fees", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
