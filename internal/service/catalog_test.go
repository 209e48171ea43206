package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/mocks"
)

func TestGroupCatalog(t *testing.T) {
	pizzas := domain.Category{ID: "c-pizza", Name: "Pizzas", SortOrder: 1}
	drinks := domain.Category{ID: "c-drink", Name: "Drinks", SortOrder: 2}
	hidden := domain.Category{ID: "c-hidden", Name: "Seasonal"}

	products := []domain.Product{
		{ID: product1, Name: "Margherita", Categories: []domain.Category{pizzas}},
		{ID: product2, Name: "Combo", Categories: []domain.Category{pizzas, drinks}},
		{ID: product3, Name: "Gift card"},
		{ID: product4, Name: "Pumpkin pie", Categories: []domain.Category{hidden}},
	}

	catalog := groupCatalog([]domain.Category{pizzas, drinks}, products)

	require.Len(t, catalog.Sections, 2)
	assert.Equal(t, "c-pizza", catalog.Sections[0].Category.ID)
	assert.Len(t, catalog.Sections[0].Products, 2)
	assert.Equal(t, "c-drink", catalog.Sections[1].Category.ID)
	assert.Len(t, catalog.Sections[1].Products, 1)
	require.Len(t, catalog.Uncategorized, 1)
	assert.Equal(t, product3, catalog.Uncategorized[0].ID)
}

func TestGroupCatalog_EmptySectionsAreNotNil(t *testing.T) {
	catalog := groupCatalog([]domain.Category{{ID: "c-1"}}, nil)

	require.Len(t, catalog.Sections, 1)
	assert.NotNil(t, catalog.Sections[0].Products)
	assert.NotNil(t, catalog.Uncategorized)
}

func TestCatalogService_Storefront(t *testing.T) {
	mockRepo := new(mocks.Repository)
	mockCategory := new(mocks.CategoryRepository)
	mockProduct := new(mocks.ProductRepository)
	mockRepo.On("Category").Return(mockCategory)
	mockRepo.On("Product").Return(mockProduct)

	pizzas := domain.Category{ID: "c-pizza", TenantID: tenantAcme, Name: "Pizzas", Active: true}
	mockCategory.On("List", mock.Anything, mock.MatchedBy(func(f domain.CategoryFilter) bool {
		return f.Active != nil && *f.Active
	})).Return([]domain.Category{pizzas}, nil).Once()
	mockProduct.On("List", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.Active != nil && *f.Active && f.Skip == 0 && f.Take == 10
	})).Return([]domain.Product{{ID: product1, TenantID: tenantAcme, Active: true, Categories: []domain.Category{pizzas}}}, nil).Once()

	service := NewCatalogService(mockRepo, newTestGateway(), testCacheConfig())
	ctx := tenantCtx(tenantAcme)
	query := domain.CatalogQuery{Take: 10}

	first, err := service.Storefront(ctx, query)
	require.NoError(t, err)
	second, err := service.Storefront(ctx, query)
	require.NoError(t, err)

	require.Len(t, first.Sections, 1)
	require.Len(t, second.Sections, 1)
	assert.Equal(t, product1, first.Sections[0].Products[0].ID)
	assert.Equal(t, product1, second.Sections[0].Products[0].ID)
	mockCategory.AssertNumberOfCalls(t, "List", 1)
	mockProduct.AssertNumberOfCalls(t, "List", 1)
}
