package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Product struct {
	ID          string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string         `gorm:"type:uuid;not null;uniqueIndex:ux_products_tenant_sku,priority:1" json:"-"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description"`
	SKU         string         `gorm:"column:sku;type:text;not null;uniqueIndex:ux_products_tenant_sku,priority:2" json:"sku"`
	Price       float64        `gorm:"type:numeric(12,2);not null" json:"price"`
	TaxRate     float64        `gorm:"type:numeric(5,4);not null;default:0" json:"tax_rate"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	Images      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"images"`
	Active      bool           `gorm:"not null" json:"active"`
	DeletedAt   gorm.DeletedAt `gorm:"type:timestamp with time zone;index" json:"deleted_at"`
	CreatedAt   time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Variants   []Variant  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	Addons     []Addon    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"addons"`
	Categories []Category `gorm:"many2many:product_categories" json:"categories"`
}

func (Product) TableName() string {
	return "products"
}

// IsDeleted reports whether the product has been soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.DeletedAt.Valid
}

type Variant struct {
	ID         string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ProductID  string  `gorm:"type:uuid;not null;index" json:"-"`
	Name       string  `gorm:"type:text;not null" json:"name"`
	PriceDelta float64 `gorm:"type:numeric(12,2);not null;default:0" json:"price_delta"`
	SortOrder  int     `gorm:"not null;default:0" json:"sort_order"`
}

func (Variant) TableName() string {
	return "product_variants"
}

type Addon struct {
	ID        string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ProductID string  `gorm:"type:uuid;not null;index" json:"-"`
	Name      string  `gorm:"type:text;not null" json:"name"`
	Price     float64 `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	SortOrder int     `gorm:"not null;default:0" json:"sort_order"`
}

func (Addon) TableName() string {
	return "product_addons"
}

type ProductCategory struct {
	ProductID  string `gorm:"primaryKey;type:uuid"`
	CategoryID string `gorm:"primaryKey;type:uuid"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// ProductFilter is also the cache key payload for product lists, so field
// order and tags must stay stable.
type ProductFilter struct {
	Skip       int    `json:"skip"`
	Take       int    `json:"take"`
	Active     *bool  `json:"active,omitempty"`
	Search     string `json:"search,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
}

// ProductRelations carries the to-many collections supplied on update. A nil
// field leaves that relation untouched; a non-nil (possibly empty) slice
// replaces it entirely.
type ProductRelations struct {
	CategoryIDs *[]string
	Variants    *[]Variant
	Addons      *[]Addon
}

type ProductSearchQuery struct {
	Query    string `json:"q"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
