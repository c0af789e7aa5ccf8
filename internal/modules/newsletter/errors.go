package newsletter

import "onpauling/internal/repository"

// ErrEmailExists is what the store reports for a concurrent duplicate insert.
var ErrEmailExists = repository.ErrDuplicateEmail

const defaultSource = "website"
