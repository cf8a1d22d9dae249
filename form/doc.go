// Package form is the input/output boundary of the solver: it turns user
// text into views and solver errors into user messages.
//
// Input: ParseSystem takes an n×n grid of decimal strings and an n-cell
// column; ReadSystem reads the same data from line-oriented text. Bad
// numbers fail with ErrInvalidInput, which is kept distinct from the solver's
// classification errors.
//
// Output: Message maps any error to one of MsgInvalidInput, MsgIncompatible,
// MsgNoSolution or MsgInfinite; SolveStrings bundles everything into an
// Outcome ready for display.
package form
