package docedit

import "sort"

// AppendSentinel is the index value meaning "append at the end" for
// operations that place content after a paragraph.
const AppendSentinel = -1

// checkIndex validates 0 <= idx < length and returns a range error naming
// the collection when it is not.
func checkIndex(idx, length int, what string) *Error {
	if idx < 0 || idx >= length {
		return errf(KindRange, "%s index %d out of range (document has %d)", what, idx, length)
	}
	return nil
}

// checkInsertIndex is checkIndex that additionally admits the append
// sentinel.
func checkInsertIndex(idx, length int, what string) *Error {
	if idx == AppendSentinel {
		return nil
	}
	return checkIndex(idx, length, what)
}

// deleteOrder validates a set of deletion indices against the collection
// length and returns them deduplicated in descending order, so applying
// them one by one never shifts a later target. This is the one place the
// descending-delete rule lives.
func deleteOrder(indices []int, length int, what string) ([]int, *Error) {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if err := checkIndex(idx, length, what); err != nil {
			return nil, err
		}
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}
