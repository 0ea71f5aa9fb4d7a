//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	"github.com/ammerola/phone-inventory/internal/adapters/queue"
	redis_a "github.com/ammerola/phone-inventory/internal/adapters/redis_adapter"
	"github.com/ammerola/phone-inventory/internal/adapters/storage"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/handlers"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
	"github.com/ammerola/phone-inventory/internal/workers"
	"github.com/ammerola/phone-inventory/test/helpers"
)

// inlineEnqueuer hands every task straight to the worker mux
type inlineEnqueuer struct {
	mux *asynq.ServeMux
}

func (e inlineEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if err := e.mux.ProcessTask(ctx, task); err != nil {
		return nil, err
	}
	return &asynq.TaskInfo{ID: "inline", Queue: workers.QueueCritical}, nil
}

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Count      *int              `json:"count"`
	Data       json.RawMessage   `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
	Error      *struct {
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

type PhoneInventoryE2ESuite struct {
	suite.Suite
	server      *httptest.Server
	client      *http.Client
	baseURL     string
	testRedis   *helpers.TestRedis
	store       *memory.Store
	mux         *asynq.ServeMux
	snapshotDir string
}

func (s *PhoneInventoryE2ESuite) SetupSuite() {
	s.testRedis = helpers.SetupTestRedis(s.T())
	s.snapshotDir = s.T().TempDir()
	s.client = &http.Client{Timeout: 10 * time.Second}
}

func (s *PhoneInventoryE2ESuite) SetupTest() {
	s.testRedis.Server.FlushAll()
	s.server = s.startTestServer()
	s.baseURL = s.server.URL + "/api"
}

func (s *PhoneInventoryE2ESuite) TearDownTest() {
	s.server.Close()
}

func (s *PhoneInventoryE2ESuite) TestCompletePhoneWorkflow() {
	// 1. Create a phone
	resp, env := s.makeRequest(http.MethodPost, "/phones", map[string]interface{}{
		"name":      "Galaxy S24 Ultra",
		"brand":     "Samsung",
		"price":     33_990_000,
		"costPrice": 30_000_000,
		"quantity":  10,
		"color":     "Titanium Gray",
		"imeiList":  []string{"350000000000001", "350000000000002"},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	created := decode[domain.Phone](s, env)
	s.Equal(domain.StatusInStock, created.Status)
	id := created.ID.String()

	// 2. Retrieve it
	resp, env = s.makeRequest(http.MethodGet, "/phones/"+id, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Galaxy S24 Ultra", decode[domain.Phone](s, env).Name)

	// 3. Partial update keeps untouched fields
	resp, env = s.makeRequest(http.MethodPut, "/phones/"+id, map[string]interface{}{"price": 31_990_000})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated := decode[domain.Phone](s, env)
	s.Equal(31_990_000.0, updated.Price)
	s.Equal("Titanium Gray", updated.Color)

	// 4. Selling down to low stock raises an alert
	resp, env = s.makeRequest(http.MethodPatch, "/phones/"+id+"/stock", map[string]interface{}{
		"quantity": 7, "operation": "subtract",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(domain.StatusLowStock, decode[domain.Phone](s, env).Status)

	resp, env = s.makeRequest(http.MethodGet, "/reports/stock-alerts", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	alerts := decode[[]domain.StockAlert](s, env)
	s.Require().Len(alerts, 1)
	s.Equal(created.ID, alerts[0].PhoneID)
	s.Equal(domain.StatusLowStock, alerts[0].Status)
	s.Equal(domain.StatusInStock, alerts[0].PreviousStatus)

	// 5. Reports reflect the change
	resp, env = s.makeRequest(http.MethodGet, "/reports/summary", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	summary := decode[domain.InventorySummary](s, env)
	s.Equal(int64(1), summary.TotalProducts)
	s.Equal(int64(3), summary.TotalQuantity)

	resp, env = s.makeRequest(http.MethodGet, "/reports/low-stock", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(decode[[]domain.Phone](s, env), 1)

	// 6. Export the workbook
	resp, _ = s.makeRequest(http.MethodGet, "/reports/export", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(spreadsheet.ContentType, resp.Header.Get("Content-Type"))

	// 7. Soft delete hides the phone
	resp, env = s.makeRequest(http.MethodDelete, "/phones/"+id, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(services.MsgDeleted, env.Message)

	resp, _ = s.makeRequest(http.MethodGet, "/phones/"+id, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// 8. Permanent delete still finds the soft deleted record
	resp, env = s.makeRequest(http.MethodDelete, "/phones/"+id+"/permanent", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(services.MsgDeletedPermanently, env.Message)

	resp, _ = s.makeRequest(http.MethodDelete, "/phones/"+id+"/permanent", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *PhoneInventoryE2ESuite) TestSearchAndFilter() {
	phones := []map[string]interface{}{
		{"name": "iPhone 15", "brand": "Apple", "price": 22_990_000, "quantity": 6, "color": "Blue"},
		{"name": "iPhone 13", "brand": "Apple", "price": 13_490_000, "quantity": 0},
		{"name": "Pixel 8", "brand": "Google", "price": 17_490_000, "quantity": 3, "color": "Blue"},
	}
	for _, p := range phones {
		resp, _ := s.makeRequest(http.MethodPost, "/phones", p)
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
	}

	resp, env := s.makeRequest(http.MethodGet, "/phones/search?q=blue", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(2, *env.Count)

	resp, env = s.makeRequest(http.MethodGet, "/phones?brand=APP&status=out_of_stock", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(int64(1), env.Pagination.Total)
	s.Equal("iPhone 13", decode[[]domain.Phone](s, env)[0].Name)

	resp, env = s.makeRequest(http.MethodGet, "/phones?sortBy=price&sortOrder=asc", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	list := decode[[]domain.Phone](s, env)
	s.Require().Len(list, 3)
	s.Equal("iPhone 13", list[0].Name)
	s.Equal("iPhone 15", list[2].Name)

	resp, env = s.makeRequest(http.MethodGet, "/reports/by-brand", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(decode[[]domain.BrandReport](s, env), 2)
}

func (s *PhoneInventoryE2ESuite) TestConcurrentStockAdjustments() {
	resp, env := s.makeRequest(http.MethodPost, "/phones", map[string]interface{}{
		"name": "Redmi Note 13", "brand": "Xiaomi", "price": 4_890_000, "quantity": 0,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	id := decode[domain.Phone](s, env).ID.String()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, _ := s.makeRequest(http.MethodPatch, "/phones/"+id+"/stock", map[string]interface{}{
				"quantity": 1, "operation": "add",
			})
			s.Equal(http.StatusOK, resp.StatusCode)
		}()
	}
	wg.Wait()

	resp, env = s.makeRequest(http.MethodGet, "/phones/"+id, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	phone := decode[domain.Phone](s, env)
	s.Equal(20, phone.Quantity)
	s.Equal(domain.StatusInStock, phone.Status)
}

func (s *PhoneInventoryE2ESuite) TestBackgroundTasks() {
	ctx := context.Background()
	resp, env := s.makeRequest(http.MethodPost, "/phones", map[string]interface{}{
		"name": "Nokia 105", "brand": "Nokia", "price": 490_000, "quantity": 12,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	id := decode[domain.Phone](s, env).ID.String()

	// Snapshot lands under the local snapshot directory
	s.Require().NoError(s.mux.ProcessTask(ctx, workers.NewSnapshotTask()))
	files, err := filepath.Glob(filepath.Join(s.snapshotDir, storage.SnapshotPrefix, "*", "*", "*", "*.xlsx"))
	s.Require().NoError(err)
	s.Require().NotEmpty(files)
	data, err := os.ReadFile(files[0])
	s.Require().NoError(err)
	s.Equal("PK", string(data[:2]))

	// Purge removes soft deleted phones once the retention window passed
	resp, _ = s.makeRequest(http.MethodDelete, "/phones/"+id, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NoError(s.mux.ProcessTask(ctx, workers.NewPurgeDeletedTask()))

	resp, _ = s.makeRequest(http.MethodDelete, "/phones/"+id+"/permanent", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	s.NoError(s.mux.ProcessTask(ctx, workers.NewReportWarmupTask()))
}

func (s *PhoneInventoryE2ESuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var health handlers.HealthStatus
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&health))
	s.Equal(handlers.StatusHealthy, health.Status)
	s.Contains(health.Services, "store")
	s.Contains(health.Services, "redis")
}

// Helper methods

func (s *PhoneInventoryE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	s.store = memory.NewStore()
	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)

	reports := services.NewReportService(s.store.Reports(), cache, time.Minute, logger)
	exports := services.NewExportService(s.store.Phones(), s.store.Reports(), logger)

	// The purger's clock runs ahead of the one minute retention window
	purger := services.NewPhoneService(s.store.Phones(), logger,
		services.WithClock(func() time.Time { return time.Now().UTC().Add(2 * time.Minute) }))

	s.mux = workers.NewServeMux(
		workers.NewStockAlertProcessor(cache, logger),
		workers.NewReportWarmupProcessor(reports, logger),
		workers.NewCleanupProcessor(purger, time.Minute, logger),
		workers.NewSnapshotProcessor(exports, storage.NewLocalStorage(s.snapshotDir, logger), logger),
	)

	phones := services.NewPhoneService(s.store.Phones(), logger,
		services.WithReportInvalidation(reports),
		services.WithStockAlerts(queue.NewClient(inlineEnqueuer{mux: s.mux}, logger)))

	respond := handlers.NewResponder(logger, false)
	router := handlers.NewRouter(handlers.RouterConfig{
		Phones:  handlers.NewPhoneHandler(phones, respond, logger),
		Reports: handlers.NewReportHandler(reports, cache, respond, logger),
		Export:  handlers.NewExportHandler(exports, respond, logger),
		Health:  handlers.NewHealthHandler(s.store, s.testRedis.Client, nil, handlers.BuildInfo{Version: "e2e", StoreDriver: "memory"}, logger),
		Respond: respond,
		Logger:  logger,
		Version: "e2e",

		AllowedOrigins: []string{"*"},
	})

	return httptest.NewServer(router)
}

func (s *PhoneInventoryE2ESuite) makeRequest(method, path string, body interface{}) (*http.Response, envelope) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.NoError(err)

	var env envelope
	if resp.Header.Get("Content-Type") != spreadsheet.ContentType {
		s.NoError(json.Unmarshal(raw, &env), fmt.Sprintf("%s %s: %s", method, path, raw))
	}
	return resp, env
}

func decode[T any](s *PhoneInventoryE2ESuite, env envelope) T {
	var v T
	s.Require().NoError(json.Unmarshal(env.Data, &v))
	return v
}

func TestPhoneInventoryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(PhoneInventoryE2ESuite))
}
