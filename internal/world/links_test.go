package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_SetOverwrites(t *testing.T) {
	t.Parallel()

	w := New()
	bilbo := w.Spawn()
	gandalf := w.Spawn()
	gollum := w.Spawn()

	require.NoError(t, w.SetLink(bilbo, "talking_to", gandalf))
	require.NoError(t, w.SetLink(bilbo, "talking_to", gollum))

	assert.Equal(t, []Entity{gollum}, w.Links(bilbo, "talking_to"))
	assert.False(t, w.IsLinked(bilbo, "talking_to", gandalf))
	assert.True(t, w.IsLinked(bilbo, "talking_to", gollum))
}

func TestLinks_AddAccumulates(t *testing.T) {
	t.Parallel()

	w := New()
	warg := w.Spawn()
	troll := w.Spawn()
	goblin := w.Spawn()

	require.NoError(t, w.AddLink(warg, "looking_at", troll))
	require.NoError(t, w.AddLink(warg, "looking_at", goblin))
	require.NoError(t, w.AddLink(warg, "looking_at", goblin))

	assert.Equal(t, []Entity{troll, goblin}, w.Links(warg, "looking_at"))
}

func TestLinks_RemoveAndClear(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()
	a := w.Spawn()
	b := w.Spawn()

	require.NoError(t, w.AddLink(e, "sees", a))
	require.NoError(t, w.AddLink(e, "sees", b))

	require.NoError(t, w.RemoveLink(e, "sees", a))
	assert.Equal(t, []Entity{b}, w.Links(e, "sees"))

	require.NoError(t, w.ClearLink(e, "sees"))
	assert.Empty(t, w.Links(e, "sees"))
	assert.Empty(t, w.LinkNames(e))
}

func TestLinks_LinkNamesSorted(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()
	target := w.Spawn()

	require.NoError(t, w.SetLink(e, "talking_to", target))
	require.NoError(t, w.SetLink(e, "angry_at", target))
	require.NoError(t, w.SetLink(e, "following", target))

	assert.Equal(t, []string{"angry_at", "following", "talking_to"}, w.LinkNames(e))
}

func TestLinks_FollowSkipsDeadTargets(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()
	dead := w.Spawn()
	live := w.Spawn()

	require.NoError(t, w.AddLink(e, "ally", dead))
	require.NoError(t, w.AddLink(e, "ally", live))
	require.NoError(t, w.Despawn(dead))

	// The dangling target is still recorded but never followed.
	assert.Equal(t, []Entity{dead, live}, w.Links(e, "ally"))

	got, ok := w.Follow(e, "ally")
	require.True(t, ok)
	assert.Equal(t, live, got)
}

func TestLinks_LinkedPrefersLiveTargets(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()
	dead := w.Spawn()
	live := w.Spawn()

	require.NoError(t, w.AddLink(e, "ally", dead))
	require.NoError(t, w.AddLink(e, "ally", live))
	require.NoError(t, w.Despawn(dead))

	// The lower-id target is dead, so the live one is picked.
	got, ok := w.Linked(e, "ally")
	require.True(t, ok)
	assert.Equal(t, live, got)

	// With every target dead a dangling one is still reported.
	require.NoError(t, w.Despawn(live))
	got, ok = w.Linked(e, "ally")
	require.True(t, ok)
	assert.Equal(t, dead, got)
}

func TestLinks_FollowMissing(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()

	_, ok := w.Follow(e, "nothing")
	assert.False(t, ok)

	target := w.Spawn()
	require.NoError(t, w.SetLink(e, "ally", target))
	require.NoError(t, w.Despawn(target))

	_, ok = w.Follow(e, "ally")
	assert.False(t, ok)
}

func TestLinks_ExploreReturnsOnlyLive(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()
	a := w.Spawn()
	b := w.Spawn()
	c := w.Spawn()

	require.NoError(t, w.AddLink(e, "sees", a))
	require.NoError(t, w.AddLink(e, "sees", b))
	require.NoError(t, w.AddLink(e, "sees", c))
	require.NoError(t, w.Despawn(b))

	assert.Equal(t, []Entity{a, c}, w.Explore(e, "sees"))
}

func TestLinks_FollowPath(t *testing.T) {
	t.Parallel()

	w := New()
	bilbo := w.Spawn()
	gandalf := w.Spawn()
	shadowfax := w.Spawn()

	require.NoError(t, w.SetLink(bilbo, "talking_to", gandalf))
	require.NoError(t, w.SetLink(gandalf, "riding", shadowfax))

	got, ok := w.FollowPath(bilbo, "talking_to", "riding")
	require.True(t, ok)
	assert.Equal(t, shadowfax, got)

	// A broken hop fails the whole path.
	require.NoError(t, w.Despawn(shadowfax))
	_, ok = w.FollowPath(bilbo, "talking_to", "riding")
	assert.False(t, ok)

	// Zero hops resolve to the live starting entity.
	got, ok = w.FollowPath(bilbo)
	require.True(t, ok)
	assert.Equal(t, bilbo, got)
}

func TestLinks_DeadEntity(t *testing.T) {
	t.Parallel()

	w := New()
	e := w.Spawn()
	target := w.Spawn()
	require.NoError(t, w.Despawn(e))

	var notSpawned *NotSpawnedError
	require.ErrorAs(t, w.SetLink(e, "x", target), &notSpawned)
	require.ErrorAs(t, w.AddLink(e, "x", target), &notSpawned)
	require.ErrorAs(t, w.RemoveLink(e, "x", target), &notSpawned)
	require.ErrorAs(t, w.ClearLink(e, "x"), &notSpawned)

	assert.False(t, w.IsLinked(e, "x", target))
	assert.Empty(t, w.Links(e, "x"))
	_, ok := w.Linked(e, "x")
	assert.False(t, ok)
	_, ok = w.FollowPath(e, "x")
	assert.False(t, ok)
}
