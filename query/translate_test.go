package q

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestTranslateArgs(t *testing.T) {
	cases := []struct {
		name     string
		page     Page
		expected PageRequest
	}{
		{
			name:     "defaults",
			page:     Page{},
			expected: PageRequest{Page: 1, Size: 10},
		},
		{
			name:     "first only",
			page:     Page{First: intPtr(25)},
			expected: PageRequest{Page: 1, Size: 25},
		},
		{
			name:     "after only uses default size",
			page:     Page{After: EncodeCursor(9)},
			expected: PageRequest{Page: 2, Size: 10, Offset: 10},
		},
		{
			name:     "first and after on a page boundary",
			page:     Page{First: intPtr(2), After: EncodeCursor(3)},
			expected: PageRequest{Page: 3, Size: 2, Offset: 4},
		},
		{
			name:     "after inside a page",
			page:     Page{First: intPtr(10), After: EncodeCursor(14)},
			expected: PageRequest{Page: 2, Size: 10, Offset: 15},
		},
		{
			name:     "last and before on a page boundary",
			page:     Page{Last: intPtr(10), Before: EncodeCursor(20)},
			expected: PageRequest{Page: 2, Size: 10, Offset: 10},
		},
		{
			name:     "last and before inside a page",
			page:     Page{Last: intPtr(10), Before: EncodeCursor(25)},
			expected: PageRequest{Page: 3, Size: 10, Offset: 15},
		},
		{
			name:     "before the first item",
			page:     Page{Last: intPtr(10), Before: EncodeCursor(0)},
			expected: PageRequest{Page: 1, Size: 10, Offset: 0},
		},
		{
			name:     "before only uses default size",
			page:     Page{Before: EncodeCursor(5)},
			expected: PageRequest{Page: 1, Size: 10, Offset: 0},
		},
		{
			name:     "total count is passed through",
			page:     Page{First: intPtr(5), WantTotalCount: true},
			expected: PageRequest{Page: 1, Size: 5, WantTotalCount: true},
		},
		{
			name:     "maximum size is allowed",
			page:     Page{First: intPtr(100)},
			expected: PageRequest{Page: 1, Size: 100},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := TranslateArgs(c.page, 10, 100)
			require.NoError(t, err)
			assert.Equal(t, c.expected, req)
		})
	}
}

func TestTranslateArgsFarBeyondTheEnd(t *testing.T) {
	req, err := TranslateArgs(Page{First: intPtr(10), After: EncodeCursor(1_000_000_000)}, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 100_000_001, req.Page)

	req, err = TranslateArgs(Page{First: intPtr(10), After: EncodeCursor(math.MaxInt)}, 10, 100)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, req.Page, 1)
	assert.GreaterOrEqual(t, req.PageStart(), 0)
}

func TestTranslateArgsInvalidArguments(t *testing.T) {
	cases := map[string]Page{
		"zero first":        {First: intPtr(0)},
		"negative first":    {First: intPtr(-1)},
		"zero last":         {Last: intPtr(0), Before: EncodeCursor(10)},
		"first over max":    {First: intPtr(10000)},
		"last over max":     {Last: intPtr(101), Before: EncodeCursor(200)},
		"first and last":    {First: intPtr(1), Last: intPtr(1)},
		"after and before":  {After: EncodeCursor(1), Before: EncodeCursor(5)},
		"first and before":  {First: intPtr(1), Before: EncodeCursor(5)},
		"last without tail": {Last: intPtr(5)},
	}

	for name, page := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := TranslateArgs(page, 10, 100)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestTranslateArgsInvalidCursor(t *testing.T) {
	_, err := TranslateArgs(Page{After: "not-a-real-cursor"}, 10, 100)
	assert.True(t, errors.Is(err, ErrInvalidCursor))

	_, err = TranslateArgs(Page{Last: intPtr(2), Before: "nope"}, 10, 100)
	assert.True(t, errors.Is(err, ErrInvalidCursor))
}

func TestTranslateArgsDefaultAboveMax(t *testing.T) {
	_, err := TranslateArgs(Page{}, 500, 100)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
