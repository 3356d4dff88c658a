package urlkit

// Part selects components for (*URL).Part. Flags may be combined freely.
type Part uint32

const (
	PartScheme   Part = 1 << iota // Scheme, followed by "://" (or ":") when anything else is selected.
	PartUser                      // Username, when non-empty.
	PartPassword                  // ":" + password, when present.
	PartHostname                  // Host, preceded by "@" when credentials were written.
	PartPort                      // ":" + port, when explicit.
	PartPath                      // Path exactly as serialized.
	PartQuery                     // "?" + query, when present.
	PartHash                      // "#" + fragment, when present.

	PartAll = PartScheme | PartUser | PartPassword | PartHostname | PartPort | PartPath | PartQuery | PartHash
)

// ParseOpt bundles options for New.
type ParseOpt struct {
	// Grammar overrides the global grammar for this URL and every URL derived
	// from it (Clone, Resolve).
	Grammar Grammar
	// MaxBytes rejects longer specs with CodeOverflow. Zero means no limit.
	MaxBytes int64
}
