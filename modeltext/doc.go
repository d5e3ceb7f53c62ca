// Package modeltext serializes a parfactor graph into the textual model
// description an external lifted-inference engine consumes: one type
// declaration and one guaranteed-individuals declaration per logical
// variable, one random-function declaration per PRV, and one
// factor/parfactor statement per parfactor.
//
// Only Boolean ranges (the two-element set {"true", "false"}) translate
// to a concrete engine type today; anything else fails with
// errkind.UnsupportedRange.
//
// A parfactor with no logical variables anywhere in its scope emits a
// `factor` statement; otherwise a `parfactor` statement that first binds
// a local placeholder (X1, X2, …) to each distinct logical variable its
// scope touches, assigned in first-encounter order over the scope, then
// lists potentials in strictly descending lexicographic order of their
// assignment key. Arguments are printed in scope order; a counting RV
// argument (which groupbuild moves to the front of its parfactor's scope)
// uses the bracket syntax `#(LV Xn)[PRVName(Xn)]` instead of a plain
// application.
package modeltext
