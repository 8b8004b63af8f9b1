package services

// Storage keys, one per collection plus one for the session pair.
const (
	usersKey   = "users"
	tasksKey   = "tasks"
	sessionKey = "session"
)

// nextID allocates 1 + max(existing ids), or 1 for an empty collection.
// Deleted ids are never reassigned: the maximum only ever grows while a
// record holding it exists, and removing the maximum still cannot resurrect
// an id below a later allocation.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

// indexByID returns the position of the record with the given id, or -1.
func indexByID[T any](items []T, id func(T) int, want int) int {
	for i, it := range items {
		if id(it) == want {
			return i
		}
	}
	return -1
}
