package sections

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockList_Unmarshal_DispatchesOnType(t *testing.T) {
	raw := `[
		{"_type": "hero", "_key": "h1", "headline": "Hello"},
		{"_type": "faq", "_key": "f1", "items": [{"_key": "q1", "question": "Why?", "answer": "Because."}]},
		{"_type": "pricing", "_key": "p1", "plans": [{"_key": "pl1", "name": "Starter", "popular": true}]}
	]`

	var blocks BlockList
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))
	require.Len(t, blocks, 3)

	hero, ok := blocks[0].(HeroSection)
	require.True(t, ok)
	assert.Equal(t, "h1", hero.Key)
	assert.Equal(t, "Hello", hero.Headline)

	faq, ok := blocks[1].(FAQSection)
	require.True(t, ok)
	require.Len(t, faq.Items, 1)
	assert.Equal(t, "Why?", faq.Items[0].Question)

	pricing, ok := blocks[2].(PricingSection)
	require.True(t, ok)
	require.Len(t, pricing.Plans, 1)
	assert.True(t, pricing.Plans[0].Popular)
}

func TestBlockList_Unmarshal_PreservesOrder(t *testing.T) {
	// The store's list order is render order; decoding must not reorder.
	raw := `[
		{"_type": "faq", "_key": "a"},
		{"_type": "hero", "_key": "b"},
		{"_type": "calendlyWidget", "_key": "c"},
		{"_type": "hero", "_key": "d"}
	]`

	var blocks BlockList
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))
	require.Len(t, blocks, 4)

	keys := make([]string, 0, len(blocks))
	for _, b := range blocks {
		keys = append(keys, b.BlockKey())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestBlockList_Unmarshal_UnknownTypeBecomesMarker(t *testing.T) {
	raw := `[
		{"_type": "hero", "_key": "h1"},
		{"_type": "banner", "_key": "b1", "text": "new section type"},
		{"_type": "faq", "_key": "f1"}
	]`

	var blocks BlockList
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))
	require.Len(t, blocks, 3)

	unknown, ok := blocks[1].(UnknownSection)
	require.True(t, ok)
	assert.Equal(t, "banner", unknown.BlockType())
	assert.Equal(t, "b1", unknown.BlockKey())
}

func TestBlockList_Unmarshal_EmptyFieldsAllowed(t *testing.T) {
	// Every payload field is optional; a bare _type/_key pair decodes fine.
	raw := `[{"_type": "workShowcase", "_key": "w1"}]`

	var blocks BlockList
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))

	work, ok := blocks[0].(WorkShowcaseSection)
	require.True(t, ok)
	assert.Empty(t, work.Title)
	assert.Empty(t, work.Items)
}

func TestBlockList_Unmarshal_MalformedArray(t *testing.T) {
	var blocks BlockList
	assert.Error(t, json.Unmarshal([]byte(`{"not": "an array"}`), &blocks))
}
