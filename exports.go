package jsonx

import "github.com/hengadev/jsonx/internal/exclusion"

// Re-exported exclusion vocabulary so callers can configure field policies
// without importing internal packages.

// Modifier is the bitmask a modifier-based exclusion strategy matches on.
type Modifier = exclusion.Modifier

const (
	// ModifierTransient marks fields tagged `jsonx:"-"`.
	ModifierTransient = exclusion.ModifierTransient
	// ModifierUnexported marks fields the declaring package keeps private.
	ModifierUnexported = exclusion.ModifierUnexported
)

// Versioned is implemented by types declaring a minimum version for all of
// their fields; a field-level since tag overrides it.
type Versioned = exclusion.Versioned

// TagName is the struct tag the engine consults for field naming and the
// transient marker; SinceTagName carries a field's minimum version.
const (
	TagName      = exclusion.TagName
	SinceTagName = exclusion.SinceTagName
)
