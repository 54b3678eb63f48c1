// Package isa models a curated subset of the A64 instruction set as
// bit-pattern templates.
//
// Each instruction variant is described by a Descriptor: a 32-bit base
// encoding, a mask of architecturally fixed bit positions, and a table of
// named bitfields. Descriptors are grouped into instruction classes and
// collected into an immutable Catalog, constructed once at startup and
// validated against the data-model invariants (unique mnemonics, in-range
// field windows). An alias table rewrites alternate mnemonics (CMP, CMN,
// TST) into their canonical base mnemonic plus implied field locks.
package isa
