package formtree

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Errors is a map of child keys to their validation errors. It is an alias
// for [validation.Errors] from ozzo-validation and implements the error
// interface with a JSON-friendly string representation. Nested collections
// nest their own Errors value under their key.
type Errors = validation.Errors
