// Package errs collects the sentinel errors returned by the asterix
// decoder.
//
// Every error a caller might want to branch on with errors.Is is
// declared here once. Packages that need positional context wrap one
// of these with fmt.Errorf("...: %w", errs.ErrXxx) rather than
// minting a new error type, so errors.Is still matches the sentinel
// regardless of how much context was added along the way.
package errs

import "errors"

var (
	// ErrTooShort is returned when a datagram is below the 6-byte
	// minimum header size, or a record is truncated mid-decode.
	ErrTooShort = errors.New("asterix: buffer too short")

	// ErrBadLength is returned when the announced message length is
	// inconsistent with the buffer that carries it.
	ErrBadLength = errors.New("asterix: bad message length")

	// ErrBadFspec is returned when an FSPEC is empty, starts with a
	// zero byte, or extends beyond the 8-byte cap.
	ErrBadFspec = errors.New("asterix: bad FSPEC")

	// ErrUndefinedUapBit is returned when an FSPEC bit is set but the
	// UAP has no entry for it.
	ErrUndefinedUapBit = errors.New("asterix: undefined UAP bit")

	// ErrUnderflow is returned when an item reports zero or negative
	// bytes consumed.
	ErrUnderflow = errors.New("asterix: item consumed no bytes")

	// ErrOverflow is returned when cumulative consumption exceeds the
	// message's announced length.
	ErrOverflow = errors.New("asterix: consumed more bytes than announced")

	// ErrBadCompoundChild is returned when a Compound item selects a
	// subitem of a disallowed kind (anything but Fixed, Variable, or
	// Repetitive).
	ErrBadCompoundChild = errors.New("asterix: compound subitem of disallowed kind")

	// ErrBadExplicitLength is returned when an Explicit item's payload
	// length is not an exact multiple of its slab-sequence size.
	ErrBadExplicitLength = errors.New("asterix: explicit item length not a multiple of slab size")

	// ErrMissingMandatory is returned, only when the policy requests
	// it, when a mandatory UAP slot's FSPEC bit is clear.
	ErrMissingMandatory = errors.New("asterix: mandatory item missing")

	// ErrUnknownItemFormat is returned for an item descriptor whose
	// Kind tag the decoder does not recognize. Static impossibility
	// for descriptors built through this module's constructors; kept
	// for defence against hand-built or corrupted descriptors.
	ErrUnknownItemFormat = errors.New("asterix: unknown item format")

	// Build-time descriptor errors, raised by the bitfield/item/category
	// constructors rather than by the decoder.

	// ErrInvalidWidth is returned when a bitfield's effective width
	// falls outside [1, 64].
	ErrInvalidWidth = errors.New("asterix: bitfield width out of range")

	// ErrInvalidPosition is returned when a range position has
	// from < to, or a position bound is zero. A field that extends
	// past its slab's bit count is reported by item.NewSlab with
	// ErrSlabCoverage instead.
	ErrInvalidPosition = errors.New("asterix: invalid bitfield position")

	// ErrSlabCoverage is returned when a slab's bitfields overlap or
	// fail to cover every bit of its declared length.
	ErrSlabCoverage = errors.New("asterix: slab bitfields do not exactly cover its length")

	// ErrInvalidSlabLength is returned when a slab's byte length falls
	// outside [1, 24].
	ErrInvalidSlabLength = errors.New("asterix: slab length out of range")

	// ErrEmptySlabSequence is returned when a Variable, Repetitive, or
	// Explicit item is constructed with no slabs.
	ErrEmptySlabSequence = errors.New("asterix: item has no slabs")

	// ErrNestedCompound is returned when a Compound item's subitem is
	// itself a Compound item.
	ErrNestedCompound = errors.New("asterix: compound item nested inside compound")

	// ErrDuplicateUapBit names a category codec that declares the same
	// FSPEC bit index twice. category.New takes its UAP as a map keyed
	// by bit index, so it never returns this error.
	ErrDuplicateUapBit = errors.New("asterix: duplicate UAP bit index")

	// ErrReservedUapBit is returned when a category codec assigns an
	// item to an FX bit position (7, 15, 23, ...).
	ErrReservedUapBit = errors.New("asterix: UAP bit index collides with an FX position")

	// ErrCodeCollision is returned by the symbol table when two
	// different names share the same xxHash64 fingerprint, or when
	// its 65536-entry dense code space is exhausted.
	ErrCodeCollision = errors.New("asterix: symbol code collision")
)
