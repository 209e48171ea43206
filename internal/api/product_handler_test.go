package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/internal/service"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.ProductService
	handler     *ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(mocks.ProductService)
	s.handler = NewProductHandler(NewBaseHandler(logger.NewNop()), s.mockService, 1024)

	s.router.POST("/products", s.handler.CreateProduct)
	s.router.GET("/products", s.handler.ListProducts)
	s.router.GET("/products/search", s.handler.SearchProducts)
	s.router.GET("/products/:id", s.handler.GetProduct)
	s.router.DELETE("/products/:id", s.handler.DeleteProduct)
	s.router.POST("/products/:id/images", s.handler.UploadImage)
}

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ProductHandlerTestSuite) TestCreateProduct_Success() {
	// Arrange
	req := dto.CreateProductRequest{Name: "Margherita", SKU: "A1", Price: 9.9, CategoryIDs: []string{"c-1"}}
	s.mockService.On("Create", mock.Anything, req).Return(dto.ProductResponse{ID: "p-1", Name: "Margherita", SKU: "A1"}, nil)
	body, _ := json.Marshal(req)

	// Act
	w := s.do(httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body)))

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var resp dto.ProductResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("p-1", resp.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestCreateProduct_ValidationError() {
	// Act
	w := s.do(httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name":"Margherita"}`)))

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ProductHandlerTestSuite) TestCreateProduct_DuplicateSKU() {
	// Arrange
	s.mockService.On("Create", mock.Anything, mock.Anything).Return(dto.ProductResponse{}, service.ErrSKUExists)

	// Act
	w := s.do(httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name":"Margherita","sku":"A1"}`)))

	// Assert
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), service.ErrSKUExists.Error())
}

func (s *ProductHandlerTestSuite) TestListProducts_ParsesFilter() {
	// Arrange
	active := true
	filter := domain.ProductFilter{Skip: 10, Take: 100, Active: &active, Search: "pizza", CategoryID: "c-1"}
	s.mockService.On("FindAll", mock.Anything, filter).Return([]dto.ProductResponse{{ID: "p-1"}}, nil)

	// Act
	w := s.do(httptest.NewRequest(http.MethodGet, "/products?skip=10&take=500&active=true&search=pizza&categoryId=c-1", nil))

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestListProducts_InvalidSkip() {
	// Act
	w := s.do(httptest.NewRequest(http.MethodGet, "/products?skip=-1", nil))

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ProductHandlerTestSuite) TestSearchProducts() {
	// Arrange
	query := domain.ProductSearchQuery{Query: "marg", Page: 2, PageSize: 5}
	s.mockService.On("Search", mock.Anything, query).Return([]dto.ProductResponse{{ID: "p-1"}}, nil)

	// Act
	w := s.do(httptest.NewRequest(http.MethodGet, "/products/search?q=marg&page=2&page_size=5", nil))

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	// Arrange
	s.mockService.On("FindByID", mock.Anything, "p-9").Return(dto.ProductResponse{}, service.ErrProductNotFound)

	// Act
	w := s.do(httptest.NewRequest(http.MethodGet, "/products/p-9", nil))

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ProductHandlerTestSuite) TestGetProduct_InternalErrorIsHidden() {
	// Arrange
	s.mockService.On("FindByID", mock.Anything, "p-1").Return(dto.ProductResponse{}, errors.New("pq: relation does not exist"))

	// Act
	w := s.do(httptest.NewRequest(http.MethodGet, "/products/p-1", nil))

	// Assert
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "relation")
}

func (s *ProductHandlerTestSuite) TestDeleteProduct_HardFlag() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "p-1", true).Return(dto.ProductResponse{ID: "p-1"}, nil)

	// Act
	w := s.do(httptest.NewRequest(http.MethodDelete, "/products/p-1?hard=true", nil))

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestDeleteProduct_DefaultsToSoft() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "p-1", false).Return(dto.ProductResponse{ID: "p-1"}, nil)

	// Act
	w := s.do(httptest.NewRequest(http.MethodDelete, "/products/p-1", nil))

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func imageRequest(s *ProductHandlerTestSuite, size int) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="pizza.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	s.Require().NoError(err)
	_, err = part.Write(bytes.Repeat([]byte{0x89}, size))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/products/p-1/images", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (s *ProductHandlerTestSuite) TestUploadImage_Success() {
	// Arrange
	s.mockService.On("AddImage", mock.Anything, "p-1", "pizza.png", "image/png", mock.Anything).
		Return(dto.ImageUploadResponse{URL: "https://cdn/pizza.png", Product: dto.ProductResponse{ID: "p-1"}}, nil)

	// Act
	w := s.do(imageRequest(s, 512))

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "https://cdn/pizza.png")
}

func (s *ProductHandlerTestSuite) TestUploadImage_TooLarge() {
	// Act
	w := s.do(imageRequest(s, 2048))

	// Assert
	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
	s.mockService.AssertNotCalled(s.T(), "AddImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProductHandlerTestSuite) TestUploadImage_MissingFile() {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/products/p-1/images", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")

	// Act
	w := s.do(req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}
