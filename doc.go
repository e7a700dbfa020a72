// Package flt parses arithmetic expressions into syntax trees.
//
// The language is the arithmetic you'd type into a calculator: decimal
// numbers, "+", "-", "*", "/", prefix "-", and parentheses. "*" and "/" bind
// more tightly than "+" and "-", operators of the same precedence group from
// the left, and "--3" negates twice. Parentheses are kept in the tree as Group
// nodes, so "(1 + 2)" and "1 + 2" parse differently.
//
// Parse reads one expression from the start of a string and returns the text
// after it, leaving it to the caller to decide whether leftover text is a
// mistake. Errors report the byte offset at which parsing failed. Nothing is
// evaluated.
//
package flt
