// Package sonyaces converts Sony camera log encodings (S-Log1/2/3 over the
// S-Gamut family) into scene-linear ACES primaries.
//
// The conversions are the input device transforms published for the ACES
// OpenColorIO configs: a piecewise log-to-linear decode per channel followed
// by a fixed 3x3 gamut matrix, with alpha carried through untouched. Everything
// is pure per-pixel arithmetic with no shared state, so all functions are safe
// for concurrent use without locking.
package sonyaces
