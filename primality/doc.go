// Package primality decides whether big integers are prime.
//
// Tester runs the Miller-Rabin probabilistic test using witnesses drawn from
// a random.Source. Each round bounds the false-positive probability by 1/4
// and the round count is never allowed below limits.MinRounds, so a composite
// survives with probability at most 4^-20 regardless of the candidate size.
//
//	tester := primality.NewTester(random.NewCryptoSource())
//	if tester.IsProbablePrime(candidate, 20, 1024) {
//	    // candidate is prime with overwhelming probability
//	}
//
// IsPrimeTrialDivision is an exact, exponential-time check intended for small
// values such as test vectors and toy keys.
package primality
