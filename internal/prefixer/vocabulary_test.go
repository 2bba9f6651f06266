package prefixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyFamily(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		body   string
		family Family
		known  bool
	}{
		{"flex", FamilyLayout, true},
		{"flex-col", FamilyFlexGrid, true},
		{"bg-red-500", FamilyBackgrounds, true},
		{"p-4", FamilySpacing, true},
		{"-mt-4", FamilySpacing, true},
		{"text-sm", FamilyTypography, true},
		{"translate-x-1/2", FamilyTransforms, true},
		{"backdrop-blur-sm", FamilyFilters, true},
		{"border-spacing-x-2", FamilyTables, true},
		{"rounded", FamilyBorders, true},
		{"sr-only", FamilyAccessibility, true},
		{"group", FamilyInteractivity, true},
		{"lorem", "", false},
		{"card", "", false},
		{"", "", false},
		{"-", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			family, ok := v.Family(tt.body)
			require.Equal(t, tt.known, ok)
			assert.Equal(t, tt.family, family)
			assert.Equal(t, tt.known, v.IsKnownUtility(tt.body))
		})
	}
}

func TestVocabularyLongestStemWins(t *testing.T) {
	v := NewVocabulary("scroll-", "scroll-m-")
	v2 := DefaultVocabulary()

	f, ok := v2.Family("border-spacing-4")
	require.True(t, ok)
	assert.Equal(t, FamilyTables, f, "border-spacing- is more specific than border-")

	assert.True(t, v.IsKnownUtility("scroll-m-2"))
	assert.True(t, v.IsKnownUtility("scroll-smooth"))
	assert.False(t, v.IsKnownUtility("scroll"), "a stem only matches bodies that extend it")
}

func TestVocabularyWith(t *testing.T) {
	base := DefaultVocabulary()
	extended := base.With("btn", "-stack-", "  ")

	assert.False(t, base.IsKnownUtility("btn"), "With must not mutate the receiver")
	assert.True(t, extended.IsKnownUtility("btn"))
	assert.True(t, extended.IsKnownUtility("stack-4"))
	assert.Equal(t, base.Len()+2, extended.Len())

	f, _ := extended.Family("btn")
	assert.Equal(t, FamilyCustom, f)

	entries := extended.Entries()
	assert.Contains(t, entries, "stack-")
	assert.IsNonDecreasing(t, entries)
}
