// Package strval partially evaluates expressions that name a module.
//
// Evaluation is side-effect free and covers literals, "+" concatenation and
// the conditional operator. The outcome is the most specific of:
//
//   - Static: a single literal value
//   - Conditional: a finite list of literal alternatives
//   - Partial: a known literal prefix followed by unknown text
//   - Dynamic: nothing useful is known
//
// EvaluateStatic and EvaluateStaticArray are the strict variants used where a
// call shape demands a literal; they return *UnsupportedError otherwise.
package strval
