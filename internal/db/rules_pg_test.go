package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the transactional reorder against a real database. The commit
// must land before the snapshot cache is invalidated, so a reader refilling
// the cache right after a reorder always sees the new order.
func TestReorderRulesPersistsNewOrder(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	require.NoError(t, InitTestDB("../../migrations"))
	store := TestStore

	first, err := store.CreateRule("first", []string{"Monday"}, "07:00", "11:00", strPtr("menus/a.txt"), nil, true)
	require.NoError(t, err)
	second, err := store.CreateRule("second", []string{"Monday"}, "07:00", "11:00", strPtr("menus/b.txt"), nil, true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.DeleteRule(first.ID)
		_ = store.DeleteRule(second.ID)
	})

	require.NoError(t, store.ReorderRules([]int{second.ID, first.ID}))

	rules, err := store.ListRules()
	require.NoError(t, err)
	indexOf := make(map[int]int, len(rules))
	for i, r := range rules {
		indexOf[r.ID] = i
	}
	assert.Less(t, indexOf[second.ID], indexOf[first.ID])

	// the post-commit snapshot carries the new order too
	cfg, err := store.GetScheduleConfig()
	require.NoError(t, err)
	indexOf = make(map[int]int, len(cfg.Rules))
	for i, r := range cfg.Rules {
		indexOf[r.ID] = i
	}
	assert.Less(t, indexOf[second.ID], indexOf[first.ID])
}
