// Package identity allocates record identifiers within a collection.
package identity

// NextID returns the next unused identifier for a collection whose current
// ids are given. An empty collection starts at 1; otherwise the result is
// one past the maximum id seen, so ids are never reused while higher ones
// exist.
//
// A non-positive id is the decoded image of a record whose persisted id was
// absent or unusable. When one is present the maximum is no longer
// trustworthy and the allocator degrades to len+1, which is deterministic
// but may collide; the legacy migration is the only writer that can repair
// such records.
func NextID(ids []int) int {
	if len(ids) == 0 {
		return 1
	}
	max := 0
	for _, id := range ids {
		if id <= 0 {
			return len(ids) + 1
		}
		if id > max {
			max = id
		}
	}
	return max + 1
}
