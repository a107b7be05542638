// Package calc implements a floating-point calculator with single-letter
// variables.
//
// Expressions use + - * / % ^ with the usual precedence, parentheses, and
// unary + and -. "a^b" is exponentiation and is right-associative, so
// "2^3^2" is 512. Unary minus applies before exponentiation: "-2^2" is the
// same as "(-2)^2". "%" is the floating-point remainder, with the sign of the
// dividend.
//
// The variables A through Z start at 0. "A = B = 5" sets both to 5, and an
// assignment is itself an expression with the assigned value, so it may
// appear inside parentheses: "2 * (X = 3)". Lowercase letters name the same
// variables as uppercase ones. Names longer than one letter are errors.
//
// Assignments take effect as soon as they are evaluated. If a later part of
// the same expression fails, they stay in effect.
//
package calc
