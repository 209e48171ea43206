package tenant

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kingrain94/catalog-api/internal/domain"
)

const (
	HeaderTenantID   = "X-Tenant-Id"
	HeaderTenantSlug = "X-Tenant-Slug"
)

//go:generate mockery --name Lookup --output ../mocks
type Lookup interface {
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	FindByDomain(ctx context.Context, domain string) (*domain.Tenant, error)
}

// Strategy extracts a tenant from a request. It returns (nil, nil) when the
// request carries nothing it can use or the lookup misses.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, r *http.Request, lookup Lookup) (*domain.Tenant, error)
}

// HeaderIDStrategy looks the tenant up by the X-Tenant-Id header.
type HeaderIDStrategy struct{}

func (HeaderIDStrategy) Name() string { return "header_id" }

func (HeaderIDStrategy) Resolve(ctx context.Context, r *http.Request, lookup Lookup) (*domain.Tenant, error) {
	id := strings.TrimSpace(r.Header.Get(HeaderTenantID))
	if id == "" {
		return nil, nil
	}
	// A malformed id can never match; skip it instead of sending it to the store.
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return found(lookup.FindByID(ctx, id))
}

// HeaderSlugStrategy looks the tenant up by the X-Tenant-Slug header.
type HeaderSlugStrategy struct{}

func (HeaderSlugStrategy) Name() string { return "header_slug" }

func (HeaderSlugStrategy) Resolve(ctx context.Context, r *http.Request, lookup Lookup) (*domain.Tenant, error) {
	slug := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderTenantSlug)))
	if slug == "" {
		return nil, nil
	}
	return found(lookup.FindBySlug(ctx, slug))
}

// SubdomainStrategy uses the first host label as a slug.
type SubdomainStrategy struct{}

func (SubdomainStrategy) Name() string { return "subdomain" }

func (SubdomainStrategy) Resolve(ctx context.Context, r *http.Request, lookup Lookup) (*domain.Tenant, error) {
	label := Subdomain(r.Host)
	if label == "" {
		return nil, nil
	}
	return found(lookup.FindBySlug(ctx, label))
}

// CustomDomainStrategy matches the full host against tenant custom domains.
type CustomDomainStrategy struct{}

func (CustomDomainStrategy) Name() string { return "custom_domain" }

func (CustomDomainStrategy) Resolve(ctx context.Context, r *http.Request, lookup Lookup) (*domain.Tenant, error) {
	host := stripPort(r.Host)
	if host == "" {
		return nil, nil
	}
	return found(lookup.FindByDomain(ctx, host))
}

// Subdomain returns the first label of host, or "" for localhost, numeric
// labels (IP addresses) and empty hosts.
func Subdomain(host string) string {
	host = stripPort(host)
	if host == "" {
		return ""
	}
	label := strings.ToLower(strings.SplitN(host, ".", 2)[0])
	if label == "" || label == "localhost" || isNumeric(label) {
		return ""
	}
	return label
}

func stripPort(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func found(t *domain.Tenant, err error) (*domain.Tenant, error) {
	if errors.Is(err, ErrTenantNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DefaultStrategies returns the resolution chain in precedence order:
// explicit headers first, then host-derived strategies.
func DefaultStrategies() []Strategy {
	return []Strategy{
		HeaderIDStrategy{},
		HeaderSlugStrategy{},
		SubdomainStrategy{},
		CustomDomainStrategy{},
	}
}

type Resolver struct {
	lookup      Lookup
	strategies  []Strategy
	publicPaths []string
}

func NewResolver(lookup Lookup, publicPaths []string, strategies ...Strategy) *Resolver {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Resolver{
		lookup:      lookup,
		strategies:  strategies,
		publicPaths: publicPaths,
	}
}

// IsPublic reports whether path starts with one of the configured public prefixes.
func (r *Resolver) IsPublic(path string) bool {
	for _, p := range r.publicPaths {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Resolve runs the strategy chain and returns the first active tenant found.
// The returned strategy name is empty on failure.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) (*domain.Tenant, string, error) {
	for _, s := range r.strategies {
		t, err := s.Resolve(ctx, req, r.lookup)
		if err != nil {
			return nil, "", err
		}
		if t == nil {
			continue
		}
		if !t.Active {
			return nil, "", ErrTenantUnresolved
		}
		return t, s.Name(), nil
	}
	return nil, "", ErrTenantUnresolved
}
