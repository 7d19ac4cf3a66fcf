// Package grouping holds the field grouping state machine for one content type.
//
// Initialize builds the starting state from the live schema and whatever was
// persisted before, reconciling the stored groups when the schema version has
// moved on. Reduce applies one Action and returns a new state; it never
// mutates its input. Unassigned derives the fields that belong to no group.
//
// Store ties the three together for a single editing session:
//
//	store := grouping.NewStore(contentType.Snapshot(), cfg.Lookup(key))
//	store.Dispatch(grouping.CreateGroup{})
//	unassigned := store.Unassigned()
//
// Precondition violations (unknown group ids, out-of-range indices, moving
// the first group up) are no-ops in Reduce and Dispatch. Check and Store.Apply
// report them as errors wrapping the sentinels in errors.go.
package grouping
