package errs

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these so that handlers can map them to a response with errors.Is.
var (
	// Bad input; nothing was written.
	ErrValidation = New("validation error")
	// A referenced entity does not exist; nothing was written.
	ErrNotFound = New("not found")
	// A storage write failed; counters and entities keep their previous state
	// and the whole operation is safe to retry.
	ErrPersistence = New("persistence error")
	// Authentication or authorization failure.
	ErrUnauthorized = New("unauthorized")
)

var taxonomy = []error{ErrValidation, ErrNotFound, ErrPersistence, ErrUnauthorized}

// Validation marks err as a validation failure.
func Validation(err error) error {
	return Mark(err, ErrValidation)
}

// NotFound marks err as a missing-entity failure.
func NotFound(err error) error {
	return Mark(err, ErrNotFound)
}

// Persistence marks err as a storage failure.
func Persistence(err error) error {
	return Mark(err, ErrPersistence)
}

// Unauthorized marks err as an authentication failure.
func Unauthorized(err error) error {
	return Mark(err, ErrUnauthorized)
}

// IsTaxonomy reports whether err already carries one of the taxonomy marks.
func IsTaxonomy(err error) bool {
	return Is(err, ErrValidation) || Is(err, ErrNotFound) || Is(err, ErrPersistence) || Is(err, ErrUnauthorized)
}
