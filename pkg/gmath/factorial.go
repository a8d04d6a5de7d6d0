package gmath

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// MaxFactorial is the largest n whose factorial fits into an int64.
const MaxFactorial = 20

var factorials = func() [MaxFactorial + 1]int64 {
	var table [MaxFactorial + 1]int64
	table[0] = 1
	for i := 1; i <= MaxFactorial; i++ {
		table[i] = table[i-1] * int64(i)
	}
	return table
}()

// Factorial returns n! for 0 <= n <= MaxFactorial.
func Factorial(n int) (int64, error) {
	if n < 0 || n > MaxFactorial {
		return 0, fmt.Errorf("%w: factorial of %d", ErrInvalidArgument, n)
	}
	return factorials[n], nil
}

// BinomialCoefficient returns n over k for 0 <= k <= n <= MaxFactorial.
func BinomialCoefficient(n, k int) (int64, error) {
	if n < 0 || n > MaxFactorial || k < 0 || k > n {
		return 0, fmt.Errorf("%w: binomial coefficient (%d over %d)", ErrInvalidArgument, n, k)
	}
	return factorials[n] / (factorials[k] * factorials[n-k]), nil
}
