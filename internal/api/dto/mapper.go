package dto

import (
	"github.com/lib/pq"

	"github.com/kingrain94/catalog-api/internal/domain"
)

func FromTenant(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Domain:    t.Domain,
		Active:    t.Active,
		RateLimit: t.RateLimit,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = FromTenant(&tenants[i])
	}
	return responses
}

// ToCategory converts a CreateCategoryRequest to a Category. Categories are
// active unless the request says otherwise.
func (r *CreateCategoryRequest) ToCategory() *domain.Category {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Category{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		SortOrder:   r.SortOrder,
		Active:      active,
	}
}

// ApplyTo copies the fields present in the request onto category.
func (r *UpdateCategoryRequest) ApplyTo(category *domain.Category) {
	if r.Name != nil {
		category.Name = *r.Name
	}
	if r.Description != nil {
		category.Description = r.Description
	}
	if r.Image != nil {
		category.Image = r.Image
	}
	if r.SortOrder != nil {
		category.SortOrder = *r.SortOrder
	}
	if r.Active != nil {
		category.Active = *r.Active
	}
}

func FromCategory(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		SortOrder:   c.SortOrder,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCategories(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = FromCategory(&categories[i])
	}
	return responses
}

func toVariants(reqs []VariantRequest) []domain.Variant {
	variants := make([]domain.Variant, len(reqs))
	for i, v := range reqs {
		variants[i] = domain.Variant{Name: v.Name, PriceDelta: v.PriceDelta, SortOrder: v.SortOrder}
	}
	return variants
}

func toAddons(reqs []AddonRequest) []domain.Addon {
	addons := make([]domain.Addon, len(reqs))
	for i, a := range reqs {
		addons[i] = domain.Addon{Name: a.Name, Price: a.Price, SortOrder: a.SortOrder}
	}
	return addons
}

// ToProduct converts a CreateProductRequest to a Product with its variants
// and addons. Category links are returned separately.
func (r *CreateProductRequest) ToProduct() (*domain.Product, []string) {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	images := pq.StringArray{}
	if r.Images != nil {
		images = pq.StringArray(r.Images)
	}
	return &domain.Product{
		Name:        r.Name,
		Description: r.Description,
		SKU:         r.SKU,
		Price:       r.Price,
		TaxRate:     r.TaxRate,
		Stock:       r.Stock,
		Images:      images,
		Active:      active,
		Variants:    toVariants(r.Variants),
		Addons:      toAddons(r.Addons),
	}, r.CategoryIDs
}

// ApplyTo copies the scalar fields present in the request onto product and
// returns the relations to replace.
func (r *UpdateProductRequest) ApplyTo(product *domain.Product) domain.ProductRelations {
	if r.Name != nil {
		product.Name = *r.Name
	}
	if r.Description != nil {
		product.Description = r.Description
	}
	if r.SKU != nil {
		product.SKU = *r.SKU
	}
	if r.Price != nil {
		product.Price = *r.Price
	}
	if r.TaxRate != nil {
		product.TaxRate = *r.TaxRate
	}
	if r.Stock != nil {
		product.Stock = *r.Stock
	}
	if r.Images != nil {
		product.Images = pq.StringArray(*r.Images)
	}
	if r.Active != nil {
		product.Active = *r.Active
	}

	var relations domain.ProductRelations
	if r.CategoryIDs != nil {
		ids := append([]string{}, (*r.CategoryIDs)...)
		relations.CategoryIDs = &ids
	}
	if r.Variants != nil {
		variants := toVariants(*r.Variants)
		relations.Variants = &variants
	}
	if r.Addons != nil {
		addons := toAddons(*r.Addons)
		relations.Addons = &addons
	}
	return relations
}

func FromProduct(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		Stock:       p.Stock,
		Images:      []string(p.Images),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Variants:    make([]VariantResponse, len(p.Variants)),
		Addons:      make([]AddonResponse, len(p.Addons)),
		Categories:  make([]CategoryRefResponse, len(p.Categories)),
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if p.DeletedAt.Valid {
		deletedAt := p.DeletedAt.Time
		resp.DeletedAt = &deletedAt
	}
	for i, v := range p.Variants {
		resp.Variants[i] = VariantResponse{ID: v.ID, Name: v.Name, PriceDelta: v.PriceDelta, SortOrder: v.SortOrder}
	}
	for i, a := range p.Addons {
		resp.Addons[i] = AddonResponse{ID: a.ID, Name: a.Name, Price: a.Price, SortOrder: a.SortOrder}
	}
	for i, c := range p.Categories {
		resp.Categories[i] = CategoryRefResponse{ID: c.ID, Name: c.Name}
	}
	return resp
}

func FromProducts(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = FromProduct(&products[i])
	}
	return responses
}

func FromCatalog(catalog *domain.Catalog) CatalogResponse {
	resp := CatalogResponse{
		Sections:      make([]CatalogSectionResponse, len(catalog.Sections)),
		Uncategorized: FromProducts(catalog.Uncategorized),
	}
	for i := range catalog.Sections {
		resp.Sections[i] = CatalogSectionResponse{
			Category: FromCategory(&catalog.Sections[i].Category),
			Products: FromProducts(catalog.Sections[i].Products),
		}
	}
	return resp
}

func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Roles:     []string(u.Roles),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = FromUser(&users[i])
	}
	return responses
}

// ToCreateUserRequest turns a self-registration into a customer account
// request; registration never grants elevated roles.
func (r *RegisterRequest) ToCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Roles:      []string{string(domain.RoleCustomer)},
		TenantSlug: r.TenantSlug,
	}
}
