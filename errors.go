package cssengine

import (
	"errors"

	"github.com/yacobolo/cssengine/internal/cssgen"
)

// ErrNoTheme is returned when theme dependent styles are resolved while no
// theme is active.
var ErrNoTheme = errors.New("no active theme")

// ErrMalformedRule is returned by MemoryDocument sheets for rules they refuse
// to insert. Engine.Insert logs and drops such rules.
var ErrMalformedRule = cssgen.ErrMalformedRule
