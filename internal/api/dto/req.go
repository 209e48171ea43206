package dto

type CreateTenantRequest struct {
	Name      string  `json:"name" binding:"required" example:"Acme Store"`
	Slug      string  `json:"slug" binding:"required,min=2,max=63" example:"acme"`
	Domain    *string `json:"domain" example:"shop.acme.com"`
	RateLimit *int    `json:"rateLimit" binding:"omitempty,gt=0" example:"1000"`
}

type UpdateTenantRequest struct {
	Name      *string `json:"name" example:"Acme Store"`
	Domain    *string `json:"domain" example:"shop.acme.com"`
	Active    *bool   `json:"active" example:"true"`
	RateLimit *int    `json:"rateLimit" binding:"omitempty,gt=0" example:"1000"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required" example:"Pizzas"`
	Description *string `json:"description" example:"Stone baked"`
	Image       *string `json:"image" example:"https://cdn.example.com/pizzas.png"`
	SortOrder   int     `json:"sortOrder" example:"1"`
	Active      *bool   `json:"active" example:"true"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" example:"Pizzas"`
	Description *string `json:"description" example:"Stone baked"`
	Image       *string `json:"image" example:"https://cdn.example.com/pizzas.png"`
	SortOrder   *int    `json:"sortOrder" example:"1"`
	Active      *bool   `json:"active" example:"true"`
}

type VariantRequest struct {
	Name       string  `json:"name" binding:"required" example:"Large"`
	PriceDelta float64 `json:"priceDelta" example:"2.5"`
	SortOrder  int     `json:"sortOrder" example:"0"`
}

type AddonRequest struct {
	Name      string  `json:"name" binding:"required" example:"Extra cheese"`
	Price     float64 `json:"price" binding:"gte=0" example:"1.2"`
	SortOrder int     `json:"sortOrder" example:"0"`
}

type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required" example:"Margherita"`
	Description *string          `json:"description" example:"Tomato, mozzarella, basil"`
	SKU         string           `json:"sku" binding:"required" example:"A1"`
	Price       float64          `json:"price" binding:"gte=0" example:"9.9"`
	TaxRate     float64          `json:"taxRate" binding:"gte=0,lte=1" example:"0.1"`
	Stock       int              `json:"stock" binding:"gte=0" example:"100"`
	Images      []string         `json:"images"`
	Active      *bool            `json:"active" example:"true"`
	CategoryIDs []string         `json:"categoryIds"`
	Variants    []VariantRequest `json:"variants" binding:"dive"`
	Addons      []AddonRequest   `json:"addons" binding:"dive"`
}

// UpdateProductRequest replaces a relation wholesale whenever its field is
// present in the body, including as an empty array.
type UpdateProductRequest struct {
	Name        *string           `json:"name" example:"Margherita"`
	Description *string           `json:"description" example:"Tomato, mozzarella, basil"`
	SKU         *string           `json:"sku" example:"A1"`
	Price       *float64          `json:"price" binding:"omitempty,gte=0" example:"9.9"`
	TaxRate     *float64          `json:"taxRate" binding:"omitempty,gte=0,lte=1" example:"0.1"`
	Stock       *int              `json:"stock" binding:"omitempty,gte=0" example:"100"`
	Images      *[]string         `json:"images"`
	Active      *bool             `json:"active" example:"true"`
	CategoryIDs *[]string         `json:"categoryIds"`
	Variants    *[]VariantRequest `json:"variants"`
	Addons      *[]AddonRequest   `json:"addons"`
}

type CreateUserRequest struct {
	Email      string   `json:"email" binding:"required,email" example:"jane@acme.com"`
	Password   string   `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FirstName  *string  `json:"firstName" example:"Jane"`
	LastName   *string  `json:"lastName" example:"Doe"`
	Phone      *string  `json:"phone" example:"+15550100"`
	Roles      []string `json:"roles" example:"customer"`
	TenantSlug string   `json:"tenantSlug" example:"acme"`
}

type UpdateUserRequest struct {
	Email     *string   `json:"email" binding:"omitempty,email" example:"jane@acme.com"`
	Password  *string   `json:"password" binding:"omitempty,min=8" example:"n3wsecretpass"`
	FirstName *string   `json:"firstName" example:"Jane"`
	LastName  *string   `json:"lastName" example:"Doe"`
	Phone     *string   `json:"phone" example:"+15550100"`
	Roles     *[]string `json:"roles"`
	Active    *bool     `json:"active" example:"true"`
}

type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email" example:"jane@acme.com"`
	Password   string  `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FirstName  *string `json:"firstName" example:"Jane"`
	LastName   *string `json:"lastName" example:"Doe"`
	Phone      *string `json:"phone" example:"+15550100"`
	TenantSlug string  `json:"tenantSlug" binding:"required" example:"acme"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email" example:"jane@acme.com"`
	Password   string `json:"password" binding:"required" example:"s3cretpass"`
	TenantSlug string `json:"tenantSlug" example:"acme"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
