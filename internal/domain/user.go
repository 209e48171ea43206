package domain

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     string         `gorm:"type:uuid;not null;uniqueIndex:ux_users_tenant_email,priority:1" json:"-"`
	Email        string         `gorm:"type:text;not null;uniqueIndex:ux_users_tenant_email,priority:2" json:"email"`
	PasswordHash string         `gorm:"type:text;not null" json:"-"`
	FirstName    *string        `gorm:"type:text" json:"first_name"`
	LastName     *string        `gorm:"type:text" json:"last_name"`
	Phone        *string        `gorm:"type:text" json:"phone"`
	Roles        pq.StringArray `gorm:"type:text[];not null;default:'{customer}'" json:"roles"`
	Active       bool           `gorm:"not null" json:"active"`
	CreatedAt    time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type UserFilter struct {
	Active *bool `json:"active,omitempty"`
	Skip   int   `json:"skip"`
	Take   int   `json:"take"`
}
