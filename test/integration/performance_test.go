package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/catalog-api/internal/api"
	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/middleware"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/internal/tenant"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

const tenantID = "11111111-1111-1111-1111-111111111111"

// newProductRouter wires the real tenant resolution middleware in front of the
// product handler. Tenants are looked up through a mock on every request.
func newProductRouter(mockService *mocks.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	lookup := new(mocks.Lookup)
	lookup.On("FindByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Slug: "acme", Active: true, RateLimit: 1000}, nil)

	resolver := tenant.NewResolver(lookup, nil, tenant.DefaultStrategies()...)
	handler := api.NewProductHandler(api.NewBaseHandler(log), mockService, 1<<20)

	router := gin.New()
	router.Use(middleware.NewTenantMiddleware(resolver, log).Resolve())
	router.POST("/products", handler.CreateProduct)
	router.GET("/products", handler.ListProducts)
	return router
}

func newRequest(method, target string, body []byte) *http.Request {
	req, _ := http.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenant.HeaderTenantID, tenantID)
	return req
}

func createPayload(sku string) []byte {
	payload, _ := json.Marshal(dto.CreateProductRequest{
		Name:        "Margherita",
		SKU:         sku,
		Price:       9.9,
		Stock:       100,
		CategoryIDs: []string{"cat-1"},
	})
	return payload
}

func BenchmarkCreateProduct(b *testing.B) {
	mockService := new(mocks.ProductService)
	router := newProductRouter(mockService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateProductRequest")).
		Return(dto.ProductResponse{ID: "p-1", Name: "Margherita", SKU: "A1"}, nil)
	payload := createPayload("A1")

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(http.MethodPost, "/products", payload))

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkListProducts(b *testing.B) {
	mockService := new(mocks.ProductService)
	router := newProductRouter(mockService)

	products := make([]dto.ProductResponse, 100)
	for i := range products {
		products[i] = dto.ProductResponse{
			ID:         fmt.Sprintf("p-%d", i),
			Name:       fmt.Sprintf("Product %d", i),
			SKU:        fmt.Sprintf("SKU-%d", i),
			Price:      9.9,
			Active:     true,
			Categories: []dto.CategoryRefResponse{{ID: "cat-1", Name: "Pizzas"}},
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
	}
	mockService.On("FindAll", mock.Anything, mock.AnythingOfType("domain.ProductFilter")).Return(products, nil)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(http.MethodGet, "/products?take=100&active=true", nil))

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyCreateProducts tests the API under high concurrent load
func TestHighConcurrencyCreateProducts(t *testing.T) {
	mockService := new(mocks.ProductService)
	router := newProductRouter(mockService)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateProductRequest")).
		Return(dto.ProductResponse{ID: "p-1"}, nil).
		Run(func(args mock.Arguments) {
			time.Sleep(1 * time.Millisecond) // Simulate database latency
		})

	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var minLatency time.Duration = time.Hour
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				payload := createPayload(fmt.Sprintf("SKU-%d-%d", worker, j))
				reqStart := time.Now()

				w := httptest.NewRecorder()
				router.ServeHTTP(w, newRequest(http.MethodPost, "/products", payload))

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if reqLatency < minLatency {
					minLatency = reqLatency
				}

				if w.Code == http.StatusCreated {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}(i)
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	t.Logf("=== High Concurrency Test Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Min latency: %v", minLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
	assert.True(t, avgLatency < 100*time.Millisecond, "Average latency should be under 100ms, got %v", avgLatency)
}

// TestSustainedLoad mixes writes and reads for a fixed duration
func TestSustainedLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sustained load test in short mode")
	}

	mockService := new(mocks.ProductService)
	router := newProductRouter(mockService)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateProductRequest")).Return(dto.ProductResponse{}, nil)
	mockService.On("FindAll", mock.Anything, mock.AnythingOfType("domain.ProductFilter")).Return([]dto.ProductResponse{}, nil)

	duration := 5 * time.Second
	startTime := time.Now()
	requestCount := 0
	failures := 0

	for time.Since(startTime) < duration {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodPost, "/products", createPayload(fmt.Sprintf("SKU-%d", requestCount))))
		if w.Code != http.StatusCreated {
			failures++
		}

		if requestCount%100 == 0 {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, newRequest(http.MethodGet, "/products?take=20", nil))
			if w.Code != http.StatusOK {
				failures++
			}
		}

		requestCount++
	}

	totalTime := time.Since(startTime)
	throughput := float64(requestCount) / totalTime.Seconds()

	t.Logf("=== Sustained Load Test Results ===")
	t.Logf("Duration: %v", duration)
	t.Logf("Total requests: %d", requestCount)
	t.Logf("Average throughput: %.2f requests/second", throughput)

	assert.Zero(t, failures)
	assert.True(t, throughput >= 500, "Should maintain at least 500 requests/second under sustained load")
}
