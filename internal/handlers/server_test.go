package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"farm_manager/internal/events"
	"farm_manager/internal/models"
	"farm_manager/internal/redis"
	"farm_manager/internal/repository"
	"farm_manager/internal/services"
	"farm_manager/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]redis.SessionData
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: map[string]redis.SessionData{}}
}

func (s *sessionStore) SetSession(token string, data *redis.SessionData, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = *data
	return nil
}

func (s *sessionStore) GetSession(token string) (*redis.SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[token]
	if !ok {
		return nil, models.ErrUnauthenticated
	}
	return &data, nil
}

func (s *sessionStore) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T, checks ...HealthCheck) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	log := zap.NewNop()
	publisher := events.NopPublisher{}

	gardenRepo := repository.NewGardenRepository(db)
	cropTypeRepo := repository.NewCropTypeRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := services.NewAuthService(repository.NewUserRepository(db), newSessionStore(), time.Hour)
	harvestService := services.NewHarvestService(cropTypeRepo, repository.NewHarvestRepository(db), gardenRepo)
	inventoryService := services.NewInventoryService(repository.NewInventoryRepository(db), publisher, log)
	careService := services.NewCareService(repository.NewCareRepository(db), gardenRepo, publisher, log)
	laborService := services.NewLaborService(repository.NewWorkerRepository(db), repository.NewLaborRecordRepository(db))
	orderService := services.NewOrderService(services.OrderServiceDeps{
		Orders:     orderRepo,
		OrderItems: repository.NewOrderItemRepository(db),
		Customers:  repository.NewCustomerRepository(db),
		CropTypes:  cropTypeRepo,
		Publisher:  publisher,
		Log:        log,
	})
	statisticsService := services.NewStatisticsService(repository.NewStatisticsRepository(db), orderRepo)

	h := Handlers{
		Auth:       NewAuthHandler(authService),
		Garden:     NewGardenHandler(services.NewGardenService(gardenRepo)),
		Harvest:    NewHarvestHandler(harvestService),
		Inventory:  NewInventoryHandler(inventoryService),
		Care:       NewCareHandler(careService),
		Labor:      NewLaborHandler(laborService),
		Order:      NewOrderHandler(orderService),
		Statistics: NewStatisticsHandler(statisticsService),
		Health:     NewHealthHandler(checks...),
	}

	return &testServer{t: t, db: db, router: NewRouter(h, authService, log)}
}

// do sends a JSON request. body may be nil.
func (s *testServer) do(method, path, token string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login registers a user with the given email and returns a session token.
func (s *testServer) login(email string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "secret123",
		"full_name": "Nguyễn Văn A",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"identifier": email,
		"password":   "secret123",
	})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var result services.LoginResult
	decode(s.t, w, &result)
	require.NotEmpty(s.t, result.Token)
	return result.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	decode(t, w, &body)
	return body
}
