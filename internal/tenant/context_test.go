package tenant

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/catalog-api/internal/domain"
)

func TestIDFromContext_Unbound(t *testing.T) {
	_, err := IDFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoTenantInContext)
}

func TestWithTenant_RoundTrip(t *testing.T) {
	acme := &domain.Tenant{ID: "tenant-acme", Slug: "acme"}
	ctx := WithTenant(context.Background(), acme)

	id, err := IDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tenant-acme", id)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, acme, got)
}

func TestWithTenant_InnerBindingWins(t *testing.T) {
	outer := WithTenant(context.Background(), &domain.Tenant{ID: "outer"})
	inner := WithTenant(outer, &domain.Tenant{ID: "inner"})

	id, err := IDFromContext(inner)
	require.NoError(t, err)
	assert.Equal(t, "inner", id)

	id, err = IDFromContext(outer)
	require.NoError(t, err)
	assert.Equal(t, "outer", id)
}

func TestClear(t *testing.T) {
	ctx := Clear(WithTenant(context.Background(), &domain.Tenant{ID: "tenant-acme"}))

	_, ok := FromContext(ctx)
	assert.False(t, ok)
	_, err := IDFromContext(ctx)
	assert.ErrorIs(t, err, ErrNoTenantInContext)
}

func TestMustFromContext_Panics(t *testing.T) {
	assert.PanicsWithValue(t, ErrNoTenantInContext, func() {
		MustFromContext(context.Background())
	})
}

func TestWithTenant_ConcurrentRequestsStayIsolated(t *testing.T) {
	const workers = 200
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := fmt.Sprintf("tenant-%d", i)
			ctx := WithTenant(context.Background(), &domain.Tenant{ID: want})
			for j := 0; j < 100; j++ {
				got, err := IDFromContext(ctx)
				if err != nil || got != want {
					errs <- fmt.Errorf("worker %d saw %q (%v)", i, got, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
