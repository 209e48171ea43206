package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		skip     string
		take     string
		wantSkip int
		wantTake int
		wantErr  bool
	}{
		{name: "defaults", wantSkip: 0, wantTake: DefaultTake},
		{name: "explicit", skip: "40", take: "10", wantSkip: 40, wantTake: 10},
		{name: "take capped", take: "1000", wantTake: MaxTake},
		{name: "negative skip", skip: "-1", wantErr: true},
		{name: "zero take", take: "0", wantErr: true},
		{name: "not a number", take: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, take, err := ParsePagination(tt.skip, tt.take)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantTake, take)
		})
	}
}

func TestParseOptionalBool(t *testing.T) {
	v, err := ParseOptionalBool("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalBool("false")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.False(t, *v)

	v, err = ParseOptionalBool("TRUE")
	require.NoError(t, err)
	assert.True(t, *v)

	_, err = ParseOptionalBool("maybe")
	assert.Error(t, err)
}

func TestParsePage(t *testing.T) {
	page, size, err := ParsePage("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultTake, size)

	page, size, err = ParsePage("3", "500")
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxTake, size)

	_, _, err = ParsePage("0", "")
	assert.Error(t, err)
}
