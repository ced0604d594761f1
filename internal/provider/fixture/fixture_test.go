package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketScanner/internal/provider"
)

func TestProvider(t *testing.T) {
	boom := errors.New("boom")
	p := New().WithCloses("AAA", 1, 2, 3).WithError("BBB", boom)
	ctx := context.Background()

	closes, err := p.FetchDailyCloses(ctx, "AAA", 90)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, closes)

	// callers cannot mutate the stored series
	closes[0] = 99
	again, _ := p.FetchDailyCloses(ctx, "AAA", 90)
	assert.Equal(t, 1.0, again[0])

	_, err = p.FetchDailyCloses(ctx, "BBB", 90)
	assert.ErrorIs(t, err, boom)

	_, err = p.FetchDailyCloses(ctx, "CCC", 90)
	assert.ErrorIs(t, err, provider.ErrNoData)

	assert.Equal(t, []string{"AAA", "AAA", "BBB", "CCC"}, p.Calls())
}
