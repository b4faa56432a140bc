// Package decimal wraps an arbitrary-precision decimal primitive with an
// immutable precision policy, so that relativistic formulas can be written
// as chained arithmetic expressions while every intermediate result honors
// a single chosen precision and rounding rule.
//
// The two types are:
//
//   - [Context]: significant-digit count, rounding rule, and exponent bound.
//     Built once, never mutated.
//   - [Value]: an immutable magnitude tagged with a Context. Every binary
//     operation evaluates under the LEFT operand's Context and tags the
//     result with it, so one "seed" Value governs an entire derived
//     expression without threading a context parameter through every call.
//
// Operations carry errors on the Value itself (a sticky error slot) instead
// of returning them per call; check [Value.Err] once at the end of a chain.
// Any operation touching a zero-value Value fails with [ErrMissingOperand]
// rather than silently producing a zero magnitude.
//
// # Thread Safety
//
// Context and Value are immutable after construction; all operations return
// new Values. The package-level default Context is created at init and never
// reassigned, so everything here is safe for concurrent use without locks.
package decimal
