// Package repository wraps the backend REST endpoints the web tier
// consumes.  Handlers depend on these repositories instead of building
// requests themselves, which keeps endpoint paths and payload shapes in one
// place.
package repository

import "errors"

// ErrEmptyCredentials is returned when the backend login succeeds but does
// not hand back an access credential.  Handlers treat it like any other
// backend failure.
var ErrEmptyCredentials = errors.New("backend returned no access credential")
