package tenant

import "errors"

var (
	// ErrNoTenantInContext means a scoped operation ran without a bound tenant.
	// It signals a wiring bug (missing middleware), never a client mistake.
	ErrNoTenantInContext = errors.New("tenant context not found")

	// ErrTenantNotFound is returned by Lookup implementations on a miss.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantUnresolved covers both "no strategy matched" and "tenant inactive"
	// so callers cannot probe which tenants exist.
	ErrTenantUnresolved = errors.New("tenant could not be resolved")
)
