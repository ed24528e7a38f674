// Package token defines the raw lexical tokens produced by the tokenizer.
// Invariants:
//   - A Token carries only its kind and byte length; positions are derived by
//     the consumer from the running sum of lengths.
//   - Every input maps to some Kind. Ill-formed lexemes are described by flags
//     (Terminated, EmptyInt, EmptyExponent) and never by a failure.
//   - Keywords are not token kinds. They are identifiers whose interned symbol
//     falls in the predefined keyword range (see package symbol).
package token
