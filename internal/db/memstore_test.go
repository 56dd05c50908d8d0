package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee/internal/model"
)

func strPtr(s string) *string { return &s }

func TestMemStoreRuleOrderSemantics(t *testing.T) {
	store := NewMemStore()

	a, err := store.CreateRule("a", []string{"Monday"}, "07:00", "09:00", strPtr("breakfast"), nil, true)
	require.NoError(t, err)
	b, err := store.CreateRule("b", []string{"Monday"}, "09:00", "11:00", strPtr("brunch"), nil, true)
	require.NoError(t, err)
	c, err := store.CreateRule("c", []string{"Monday"}, "11:00", "15:00", strPtr("lunch"), nil, true)
	require.NoError(t, err)

	// create appends to the end of the stored order
	list, err := store.ListRules()
	require.NoError(t, err)
	assert.Equal(t, []int{a.ID, b.ID, c.ID}, ruleIDs(list))

	// update keeps the rule's position
	_, err = store.UpdateRule(b.ID, strPtr("b2"), nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	list, _ = store.ListRules()
	assert.Equal(t, []int{a.ID, b.ID, c.ID}, ruleIDs(list))
	assert.Equal(t, "b2", list[1].Name)

	// reorder rewrites the stored order
	require.NoError(t, store.ReorderRules([]int{c.ID, a.ID, b.ID}))
	list, _ = store.ListRules()
	assert.Equal(t, []int{c.ID, a.ID, b.ID}, ruleIDs(list))

	// delete closes the gap without disturbing the others
	require.NoError(t, store.DeleteRule(a.ID))
	list, _ = store.ListRules()
	assert.Equal(t, []int{c.ID, b.ID}, ruleIDs(list))
}

func TestMemStoreUpdateRuleClearsReference(t *testing.T) {
	store := NewMemStore()
	r, err := store.CreateRule("r", []string{"Monday"}, "07:00", "09:00", strPtr("breakfast"), nil, true)
	require.NoError(t, err)

	// switch the rule from a menu to a slideshow
	updated, err := store.UpdateRule(r.ID, nil, nil, nil, nil, strPtr(""), strPtr("specials"), nil)
	require.NoError(t, err)
	assert.Nil(t, updated.Menu)
	require.NotNil(t, updated.Slideshow)
	assert.Equal(t, "specials", *updated.Slideshow)
}

func TestMemStoreScheduleConfigSnapshot(t *testing.T) {
	store := NewMemStore()
	_, err := store.CreateRule("r", []string{"Monday"}, "07:00", "09:00", strPtr("breakfast"), nil, true)
	require.NoError(t, err)
	_, err = store.UpdateScheduleSettings(true, model.Defaults{Menu: strPtr("dinner")})
	require.NoError(t, err)

	cfg, err := store.GetScheduleConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Len(t, cfg.Rules, 1)
	require.NotNil(t, cfg.Defaults.Menu)
	assert.Equal(t, "dinner", *cfg.Defaults.Menu)
}

func TestMemStoreDisplayPairing(t *testing.T) {
	store := NewMemStore()
	d, err := store.CreateDisplay("front window", strPtr("entrance"), 1)
	require.NoError(t, err)
	assert.False(t, d.Paired)

	require.NoError(t, store.PairDisplay(d.ID, "device-123"))

	paired, err := store.GetDisplayByDeviceID("device-123")
	require.NoError(t, err)
	assert.True(t, paired.Paired)
	assert.Equal(t, d.ID, paired.ID)
}

func ruleIDs(rules []model.Rule) []int {
	out := make([]int, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.ID)
	}
	return out
}
