// Package catalog ships ready-made, immutable reference bodies for the Earth
// and other celestial bodies, each carrying a citation for the origin of its
// parameter values.
//
// The records are constructed once at package initialization and never
// mutated; they can be used directly with the coord and gravity packages:
//
//	gamma, err := gravity.NormalGravity(catalog.WGS84, 45, 0, nil)
//
// Use Get to look a body up by its short name, or All to enumerate the
// catalog.
//
// Errors:
//
//	ErrUnknownBody - Get was called with a name not in the catalog.
package catalog
