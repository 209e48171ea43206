package cache

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	DomainCategories = "categories"
	DomainProducts   = "products"
	DomainCatalog    = "catalog"
)

// Key builds "{domain}:{tenantID}:{json(params)}". params should be a struct
// so the JSON field order is deterministic.
func Key(domain, tenantID string, params any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to serialize cache key params: %w", err)
	}
	return fmt.Sprintf("%s:%s:%s", domain, tenantID, raw), nil
}

// Pattern builds the invalidation pattern "{domain}:{tenantID}:*".
func Pattern(domain, tenantID string) string {
	return fmt.Sprintf("%s:%s:*", domain, tenantID)
}

// prefixOf turns a trailing-wildcard pattern into a literal prefix.
func prefixOf(pattern string) string {
	return strings.TrimSuffix(pattern, "*")
}
