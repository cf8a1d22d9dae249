// Package report renders solver outcomes for people: text through pongo2
// templates (DefaultTemplate or a user template) and bar charts of the
// solution vector through gonum/plot.
package report
