// Package poly provides an immutable real-coefficient polynomial and the
// Horner-style kernels used by the root finders.
//
// Coefficients are stored in ascending degree order: index 0 is the constant
// term. Construction trims trailing zeros so that the stored slice never ends
// in 0 unless the polynomial is the zero polynomial [0].
//
// ✨ Key features:
//   - Horner evaluation for real and complex arguments
//   - algebra returning fresh values: Add, Subtract, Negate, Multiply (convolution)
//   - differentiation (Derivative / Differentiate)
//   - Polynomial satisfies core.Function, so it can be handed to any solver
//
// ⚙️ Usage:
//
//	p, err := poly.New(-3, 5, 2)     // 2x² + 5x − 3
//	y := p.Value(0.5)                // 0
//	dp := p.Derivative()             // 4x + 5
//	fmt.Println(p)                   // -3 + 5 x + 2 x^2
//
// Complexity:
//
//   - Value / Evaluate:  O(n)
//   - Add / Subtract:    O(max(n,m))
//   - Multiply:          O(n·m)
package poly
