package dto

import (
	"time"
)

type TenantResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme Store"`
	Slug      string    `json:"slug" example:"acme"`
	Domain    *string   `json:"domain,omitempty" example:"shop.acme.com"`
	Active    bool      `json:"active" example:"true"`
	RateLimit int       `json:"rateLimit" example:"1000"`
	CreatedAt time.Time `json:"createdAt" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-07-17T21:20:48Z"`
}

type CategoryResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Pizzas"`
	Description *string   `json:"description" example:"Stone baked"`
	Image       *string   `json:"image" example:"https://cdn.example.com/pizzas.png"`
	SortOrder   int       `json:"sortOrder" example:"1"`
	Active      bool      `json:"active" example:"true"`
	CreatedAt   time.Time `json:"createdAt" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2025-07-17T21:20:48Z"`
}

type VariantResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name" example:"Large"`
	PriceDelta float64 `json:"priceDelta" example:"2.5"`
	SortOrder  int     `json:"sortOrder" example:"0"`
}

type AddonResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" example:"Extra cheese"`
	Price     float64 `json:"price" example:"1.2"`
	SortOrder int     `json:"sortOrder" example:"0"`
}

type CategoryRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name" example:"Pizzas"`
}

type ProductResponse struct {
	ID          string                `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string                `json:"name" example:"Margherita"`
	Description *string               `json:"description" example:"Tomato, mozzarella, basil"`
	SKU         string                `json:"sku" example:"A1"`
	Price       float64               `json:"price" example:"9.9"`
	TaxRate     float64               `json:"taxRate" example:"0.1"`
	Stock       int                   `json:"stock" example:"100"`
	Images      []string              `json:"images"`
	Active      bool                  `json:"active" example:"true"`
	DeletedAt   *time.Time            `json:"deletedAt"`
	CreatedAt   time.Time             `json:"createdAt" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time             `json:"updatedAt" example:"2025-07-17T21:20:48Z"`
	Variants    []VariantResponse     `json:"variants"`
	Addons      []AddonResponse       `json:"addons"`
	Categories  []CategoryRefResponse `json:"categories"`
}

type CatalogSectionResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

type CatalogResponse struct {
	Sections      []CatalogSectionResponse `json:"sections"`
	Uncategorized []ProductResponse        `json:"uncategorized"`
}

type UserResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string    `json:"email" example:"jane@acme.com"`
	FirstName *string   `json:"firstName" example:"Jane"`
	LastName  *string   `json:"lastName" example:"Doe"`
	Phone     *string   `json:"phone" example:"+15550100"`
	Roles     []string  `json:"roles" example:"customer"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"createdAt" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-07-17T21:20:48Z"`
}

type AuthUserResponse struct {
	ID        string   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string   `json:"email" example:"jane@acme.com"`
	FirstName *string  `json:"firstName" example:"Jane"`
	LastName  *string  `json:"lastName" example:"Doe"`
	Roles     []string `json:"roles" example:"customer"`
}

type AuthResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	ExpiresIn    int64            `json:"expiresIn" example:"900"`
	User         AuthUserResponse `json:"user"`
}

type RevokeResponse struct {
	Revoked int64 `json:"revoked" example:"3"`
}

type ImageUploadResponse struct {
	URL     string          `json:"url" example:"https://catalog-product-images.s3.us-east-1.amazonaws.com/t/products/p/img.png"`
	Product ProductResponse `json:"product"`
}

type HealthCheck struct {
	Status  string `json:"status" example:"up"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string                 `json:"status" example:"ok"`
	Timestamp time.Time              `json:"timestamp" example:"2025-07-17T21:20:48Z"`
	Checks    map[string]HealthCheck `json:"checks"`
}
