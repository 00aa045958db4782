package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for cycle and request
// correlation IDs; declared as a var so tests can pin it.
var NewULID = func() string {
	return ulid.Make().String()
}
