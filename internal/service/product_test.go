package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/catalog-api/internal/api/dto"
	"github.com/kingrain94/catalog-api/internal/cache"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
	"github.com/kingrain94/catalog-api/pkg/logger"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockProduct   *mocks.ProductRepository
	mockCategory  *mocks.CategoryRepository
	mockIndex     *mocks.ProductIndex
	mockImages    *mocks.ImageStore
	mockPublisher *mocks.EventPublisher
	gateway       cache.Gateway
	now           time.Time
	service       *ProductService
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProduct = new(mocks.ProductRepository)
	s.mockCategory = new(mocks.CategoryRepository)
	s.mockIndex = new(mocks.ProductIndex)
	s.mockImages = new(mocks.ImageStore)
	s.mockPublisher = new(mocks.EventPublisher)
	s.gateway = newTestGateway()
	s.now = time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC)

	s.mockRepo.On("Product").Return(s.mockProduct)
	s.mockRepo.On("Category").Return(s.mockCategory)
	s.mockRepo.On("Search").Return(s.mockIndex)

	notifier := NewNotifier(logger.NewNop(), s.mockPublisher)
	s.service = NewProductService(s.mockRepo, s.gateway, testCacheConfig(), s.mockImages, notifier, logger.NewNop())
	s.service.now = func() time.Time { return s.now }
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (s *ProductServiceTestSuite) live(id, tenantID string) *domain.Product {
	return &domain.Product{ID: id, TenantID: tenantID, Name: "Margherita", SKU: "A1", Price: 9.9, Active: true}
}

func (s *ProductServiceTestSuite) expectEvent(eventType domain.CatalogEventType) {
	s.mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *domain.CatalogEvent) bool {
		return e.Type == eventType
	})).Return(nil).Once()
}

func (s *ProductServiceTestSuite) TestCreate_SameSKUInTwoTenants() {
	// Arrange
	for tenantID, id := range map[string]string{tenantAcme: product1, tenantBeta: product2} {
		owner := tenantID
		s.mockProduct.On("GetBySKU", mock.Anything, "A1").Return(nil, gorm.ErrRecordNotFound).Once()
		s.mockProduct.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product"), []string{}).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Product)
				p.ID = id
				p.TenantID = owner
			}).
			Return(nil).Once()
		s.mockProduct.On("GetByID", mock.Anything, id).Return(s.live(id, owner), nil).Once()
	}
	s.mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	// Act
	acme, err1 := s.service.Create(tenantCtx(tenantAcme), dto.CreateProductRequest{Name: "Margherita", SKU: "A1", Price: 9.9})
	beta, err2 := s.service.Create(tenantCtx(tenantBeta), dto.CreateProductRequest{Name: "Margherita", SKU: "A1", Price: 9.9})

	// Assert
	s.NoError(err1)
	s.NoError(err2)
	s.Equal(product1, acme.ID)
	s.Equal(product2, beta.ID)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreate_DuplicateSKUIncludesDeleted() {
	// Arrange
	deleted := s.live(productOld, tenantAcme)
	deleted.DeletedAt = gorm.DeletedAt{Time: s.now.Add(-time.Hour), Valid: true}
	s.mockProduct.On("GetBySKU", mock.Anything, "A1").Return(deleted, nil)

	// Act
	_, err := s.service.Create(tenantCtx(tenantAcme), dto.CreateProductRequest{Name: "Margherita", SKU: "A1"})

	// Assert
	s.ErrorIs(err, ErrSKUExists)
	s.mockProduct.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestCreate_UnknownCategory() {
	// Arrange
	s.mockProduct.On("GetBySKU", mock.Anything, "A1").Return(nil, gorm.ErrRecordNotFound)
	s.mockCategory.On("CountByIDs", mock.Anything, []string{category1, categoryBeta}).Return(int64(1), nil)

	// Act
	_, err := s.service.Create(tenantCtx(tenantAcme), dto.CreateProductRequest{
		Name:        "Margherita",
		SKU:         "A1",
		CategoryIDs: []string{category1, categoryBeta, category1},
	})

	// Assert
	s.ErrorIs(err, ErrUnknownCategory)
	s.mockProduct.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestCreate_InvalidatesAndNotifies() {
	// Arrange
	ctx := tenantCtx(tenantAcme)
	productsKey := seed(s.gateway, cache.DomainProducts, tenantAcme)
	catalogKey := seed(s.gateway, cache.DomainCatalog, tenantAcme)
	categoriesKey := seed(s.gateway, cache.DomainCategories, tenantAcme)

	s.mockProduct.On("GetBySKU", mock.Anything, "A1").Return(nil, gorm.ErrRecordNotFound)
	s.mockCategory.On("CountByIDs", mock.Anything, []string{category1}).Return(int64(1), nil)
	s.mockProduct.On("Create", mock.Anything, mock.Anything, []string{category1}).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Product)
			p.ID = product1
			p.TenantID = tenantAcme
		}).
		Return(nil)
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(s.live(product1, tenantAcme), nil)
	s.expectEvent(domain.EventProductCreated)

	// Act
	_, err := s.service.Create(ctx, dto.CreateProductRequest{Name: "Margherita", SKU: "A1", CategoryIDs: []string{category1}})

	// Assert
	s.NoError(err)
	s.False(cached(s.gateway, productsKey))
	s.False(cached(s.gateway, catalogKey))
	s.True(cached(s.gateway, categoriesKey))
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestFindByID_OtherTenantIsNotFound() {
	// Arrange
	s.mockProduct.On("GetByID", mock.Anything, productBeta).Return(s.live(productBeta, tenantBeta), nil)

	// Act
	_, err := s.service.FindByID(tenantCtx(tenantAcme), productBeta)

	// Assert
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ProductServiceTestSuite) TestFindByID_ReturnsSoftDeleted() {
	// Arrange
	p := s.live(product1, tenantAcme)
	p.DeletedAt = gorm.DeletedAt{Time: s.now, Valid: true}
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(p, nil)

	// Act
	resp, err := s.service.FindByID(tenantCtx(tenantAcme), product1)

	// Assert
	s.NoError(err)
	s.NotNil(resp.DeletedAt)
	s.Equal(s.now, *resp.DeletedAt)
}

func (s *ProductServiceTestSuite) TestUpdate_DeletedProductIsNotFound() {
	// Arrange
	p := s.live(product1, tenantAcme)
	p.DeletedAt = gorm.DeletedAt{Time: s.now, Valid: true}
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(p, nil)
	name := "Diavola"

	// Act
	_, err := s.service.Update(tenantCtx(tenantAcme), product1, dto.UpdateProductRequest{Name: &name})

	// Assert
	s.ErrorIs(err, ErrProductNotFound)
	s.mockProduct.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestUpdate_SKUOwnedByAnotherProduct() {
	// Arrange
	sku := "B2"
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(s.live(product1, tenantAcme), nil)
	s.mockProduct.On("GetBySKU", mock.Anything, "B2").Return(s.live(product2, tenantAcme), nil)

	// Act
	_, err := s.service.Update(tenantCtx(tenantAcme), product1, dto.UpdateProductRequest{SKU: &sku})

	// Assert
	s.ErrorIs(err, ErrSKUExists)
}

func (s *ProductServiceTestSuite) TestUpdate_ReplacesCategories() {
	// Arrange
	ids := []string{category2, category2}
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(s.live(product1, tenantAcme), nil)
	s.mockCategory.On("CountByIDs", mock.Anything, []string{category2}).Return(int64(1), nil)
	s.mockProduct.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(r domain.ProductRelations) bool {
		return r.CategoryIDs != nil && len(*r.CategoryIDs) == 1 && r.Variants == nil && r.Addons == nil
	})).Return(nil)
	s.expectEvent(domain.EventProductUpdated)

	// Act
	_, err := s.service.Update(tenantCtx(tenantAcme), product1, dto.UpdateProductRequest{CategoryIDs: &ids})

	// Assert
	s.NoError(err)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestDelete_SoftDeleteIsIdempotent() {
	// Arrange
	p := s.live(product1, tenantAcme)
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(p, nil)
	s.mockProduct.On("SoftDelete", mock.Anything, product1, s.now).Return(nil).Once()
	s.expectEvent(domain.EventProductDeleted)

	// Act
	first, err1 := s.service.Delete(tenantCtx(tenantAcme), product1, false)
	second, err2 := s.service.Delete(tenantCtx(tenantAcme), product1, false)

	// Assert
	s.NoError(err1)
	s.NoError(err2)
	s.Require().NotNil(first.DeletedAt)
	s.Require().NotNil(second.DeletedAt)
	s.Equal(*first.DeletedAt, *second.DeletedAt)
	s.mockProduct.AssertNumberOfCalls(s.T(), "SoftDelete", 1)
	s.mockPublisher.AssertNumberOfCalls(s.T(), "Publish", 1)
}

func (s *ProductServiceTestSuite) TestDelete_Hard() {
	// Arrange
	p := s.live(product1, tenantAcme)
	p.DeletedAt = gorm.DeletedAt{Time: s.now, Valid: true}
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(p, nil)
	s.mockProduct.On("HardDelete", mock.Anything, product1).Return(nil)
	s.expectEvent(domain.EventProductHardDeleted)

	// Act
	resp, err := s.service.Delete(tenantCtx(tenantAcme), product1, true)

	// Assert
	s.NoError(err)
	s.Equal(product1, resp.ID)
	s.mockProduct.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestAddImage_RejectsNonImage() {
	// Act
	_, err := s.service.AddImage(tenantCtx(tenantAcme), product1, "notes.txt", "text/plain", strings.NewReader("x"))

	// Assert
	s.ErrorIs(err, ErrInvalidImageType)
	s.mockImages.AssertNotCalled(s.T(), "UploadProductImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestAddImage_Success() {
	// Arrange
	url := "https://bucket.s3.amazonaws.com/tenants/acme/products/p-1/img.png"
	p := s.live(product1, tenantAcme)
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(p, nil)
	s.mockImages.On("UploadProductImage", mock.Anything, tenantAcme, product1, "img.png", "image/png", mock.Anything).
		Return("tenants/acme/products/p-1/img.png", url, nil)
	s.mockProduct.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return len(p.Images) == 1 && p.Images[0] == url
	}), domain.ProductRelations{}).Return(nil)
	s.expectEvent(domain.EventProductUpdated)

	// Act
	resp, err := s.service.AddImage(tenantCtx(tenantAcme), product1, "img.png", "image/png", strings.NewReader("png"))

	// Assert
	s.NoError(err)
	s.Equal(url, resp.URL)
	s.Contains(resp.Product.Images, url)
	s.mockImages.AssertNotCalled(s.T(), "DeleteObject", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestAddImage_RemovesOrphanWhenUpdateFails() {
	// Arrange
	key := "tenants/acme/products/p-1/img.png"
	s.mockProduct.On("GetByID", mock.Anything, product1).Return(s.live(product1, tenantAcme), nil)
	s.mockImages.On("UploadProductImage", mock.Anything, tenantAcme, product1, "img.png", "image/png", mock.Anything).
		Return(key, "https://cdn/img.png", nil)
	s.mockProduct.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))
	s.mockImages.On("DeleteObject", mock.Anything, key).Return(nil)

	// Act
	_, err := s.service.AddImage(tenantCtx(tenantAcme), product1, "img.png", "image/png", strings.NewReader("png"))

	// Assert
	s.Error(err)
	s.mockImages.AssertExpectations(s.T())
	s.mockPublisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestSearch_RequiresTenant() {
	// Act
	_, err := s.service.Search(context.Background(), domain.ProductSearchQuery{Query: "pizza"})

	// Assert
	s.ErrorIs(err, ErrTenantContextMissing)
	s.mockIndex.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestSearch_Success() {
	// Arrange
	query := domain.ProductSearchQuery{Query: "pizza", Page: 1, PageSize: 10}
	s.mockIndex.On("Search", mock.Anything, query).Return([]domain.Product{*s.live(product1, tenantAcme)}, nil)

	// Act
	results, err := s.service.Search(tenantCtx(tenantAcme), query)

	// Assert
	s.NoError(err)
	s.Len(results, 1)
	s.Equal("A1", results[0].SKU)
}

func (s *ProductServiceTestSuite) TestFindByID_MalformedIDIsNotFound() {
	// Act
	_, err := s.service.FindByID(tenantCtx(tenantAcme), "abc")

	// Assert
	s.ErrorIs(err, ErrProductNotFound)
	s.mockProduct.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestFindAll_MalformedCategoryFilter() {
	// Act
	_, err := s.service.FindAll(tenantCtx(tenantAcme), domain.ProductFilter{CategoryID: "pizzas", Take: 20})

	// Assert
	s.ErrorIs(err, ErrUnknownCategory)
	s.mockProduct.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestCreate_MalformedCategoryID() {
	// Arrange
	s.mockProduct.On("GetBySKU", mock.Anything, "A1").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.Create(tenantCtx(tenantAcme), dto.CreateProductRequest{
		Name:        "Margherita",
		SKU:         "A1",
		CategoryIDs: []string{category1, "not-a-uuid"},
	})

	// Assert
	s.ErrorIs(err, ErrUnknownCategory)
	s.mockCategory.AssertNotCalled(s.T(), "CountByIDs", mock.Anything, mock.Anything)
	s.mockProduct.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}
