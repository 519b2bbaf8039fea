// Package bigmath implements the modular arithmetic underneath MyRSA:
// square-and-multiply exponentiation, double-and-add multiplication and the
// extended Euclidean algorithm.
//
// The routines operate on math/big integers and never modify their arguments.
// Like math/big, they panic on precondition violations such as a non-positive
// modulus; such inputs are programming errors, not runtime conditions.
package bigmath
