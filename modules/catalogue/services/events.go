package services

// Mutation events published on the bus after a successful commit. Entity is
// the table-level name ("work", "publisher", ...), so handlers can subscribe
// either to a concrete instantiation or inspect the name.
type CreatedEvent[T any] struct {
	Entity string
	Result T
}

type UpdatedEvent[T any] struct {
	Entity   string
	Previous T
	Result   T
}

type DeletedEvent[T any] struct {
	Entity string
	Result T
}
