package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/internal/service"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.TenantService
	handler     *TenantHandler
}

func (s *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(mocks.TenantService)
	s.handler = NewTenantHandler(NewBaseHandler(logger.NewNop()), s.mockService)

	s.router.POST("/admin/tenants", s.handler.CreateTenant)
	s.router.GET("/admin/tenants", s.handler.ListTenants)
	s.router.GET("/admin/tenants/:id", s.handler.GetTenant)
	s.router.PUT("/admin/tenants/:id", s.handler.UpdateTenant)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Success() {
	// Arrange
	now := time.Now().UTC().Truncate(time.Second)
	req := dto.CreateTenantRequest{Name: "Acme Store", Slug: "acme"}
	expectedResponse := dto.TenantResponse{
		ID:        "tenant1",
		Name:      req.Name,
		Slug:      "acme",
		Active:    true,
		RateLimit: 1000,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mockService.On("Create", mock.Anything, req).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/tenants", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expectedResponse, response)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCreateTenant_InvalidSlug() {
	// Arrange
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/tenants", bytes.NewBufferString(`{"name":"Acme","slug":"a"}`))

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Conflict() {
	// Arrange
	s.mockService.On("Create", mock.Anything, mock.Anything).Return(dto.TenantResponse{}, service.ErrTenantExists)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/tenants", bytes.NewBufferString(`{"name":"Acme","slug":"acme"}`))

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *TenantHandlerTestSuite) TestListTenants_Success() {
	// Arrange
	s.mockService.On("List", mock.Anything).Return([]dto.TenantResponse{{ID: "t1", Slug: "acme"}, {ID: "t2", Slug: "beta"}}, nil)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/admin/tenants", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
}

func (s *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrTenantNotFound)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/admin/tenants/missing", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TenantHandlerTestSuite) TestGetTenant_Success() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", Slug: "acme", Active: true}, nil)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/admin/tenants/t1", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"slug":"acme"`)
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_Deactivate() {
	// Arrange
	inactive := false
	s.mockService.On("Update", mock.Anything, "t1", dto.UpdateTenantRequest{Active: &inactive}).
		Return(dto.TenantResponse{ID: "t1", Active: false}, nil)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPut, "/admin/tenants/t1", bytes.NewBufferString(`{"active":false}`))

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
