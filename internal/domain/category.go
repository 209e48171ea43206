package domain

import "time"

type Category struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string    `gorm:"type:uuid;not null;uniqueIndex:ux_categories_tenant_name,priority:1" json:"-"`
	Name        string    `gorm:"type:text;not null;uniqueIndex:ux_categories_tenant_name,priority:2" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       *string   `gorm:"type:text" json:"image"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryFilter is also the cache key payload for category lists, so field
// order and tags must stay stable.
type CategoryFilter struct {
	Skip   int   `json:"skip"`
	Take   int   `json:"take"`
	Active *bool `json:"active,omitempty"`
}
