// Package main provides the myrsa command, a demonstration of textbook RSA
// signing.
//
// # Usage
//
//	go run ./cmd/myrsa -bits 512 218739
//
// The command generates a keypair whose primes have the requested size, signs
// the message reduced modulo n, and verifies the signature. It then verifies
// two tampered copies, one with the message incremented and one with the
// signature incremented, both of which must be rejected.
//
// # Configuration Options
//
//   - -bits: size of each prime in bits, at least 8 (default: 1024)
//   - -rounds: Miller-Rabin rounds, raised to 20 when lower (default: MYRSA_ROUNDS or 20)
//   - -log-level: logrus level (default: warn)
//   - -help: show the usage message
//
// Retry caps come from MYRSA_MAX_PRIME_ATTEMPTS and MYRSA_MAX_KEY_ATTEMPTS, and
// MYRSA_ROUNDS sets a round floor.
//
// # Exit Codes
//
//   - 0: the genuine signature verified and both tampered copies were rejected
//   - 1: invalid arguments, key generation failure, or an unexpected
//     verification result
package main
