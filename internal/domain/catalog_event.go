package domain

import "time"

type CatalogEventType string

const (
	EventCategoryCreated CatalogEventType = "category.created"
	EventCategoryUpdated CatalogEventType = "category.updated"
	EventCategoryDeleted CatalogEventType = "category.deleted"

	EventProductCreated     CatalogEventType = "product.created"
	EventProductUpdated     CatalogEventType = "product.updated"
	EventProductDeleted     CatalogEventType = "product.deleted"
	EventProductHardDeleted CatalogEventType = "product.hard_deleted"
)

// CatalogEvent announces a committed change to a tenant's catalog. It is
// fanned out to the search indexer (SQS) and live subscribers (Redis pubsub).
type CatalogEvent struct {
	Type       CatalogEventType `json:"type"`
	TenantID   string           `json:"tenant_id"`
	EntityID   string           `json:"entity_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// IsProductEvent reports whether the event concerns a product document.
func (e CatalogEvent) IsProductEvent() bool {
	switch e.Type {
	case EventProductCreated, EventProductUpdated, EventProductDeleted, EventProductHardDeleted:
		return true
	}
	return false
}

// CatalogSection is one category of the storefront with its products.
type CatalogSection struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

// Catalog is the storefront view: active categories in display order with
// their active products, plus active products not linked to any category.
type Catalog struct {
	Sections      []CatalogSection `json:"sections"`
	Uncategorized []Product        `json:"uncategorized"`
}

type CatalogQuery struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}
