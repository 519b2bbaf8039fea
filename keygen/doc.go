// Package keygen generates textbook RSA keypairs from scratch.
//
// Key generation draws odd candidates of exactly the requested bit length
// from a random.Source, keeps the first two distinct ones that pass the
// Miller-Rabin test, and derives the modulus n = p*q and the totient
// phi = (p-1)(q-1). The public exponent is the largest Fermat prime
// (65537, 257, 17, 5 or 3) below phi whose coprimality with phi is confirmed
// by the extended Euclidean algorithm; the private exponent is its inverse
// modulo phi. If no Fermat prime is coprime the primes are discarded and the
// search starts over.
//
//	kp, err := keygen.Generate(1024, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer kp.Wipe()
//
// # Retry Caps
//
// Every loop is bounded by Config. Reaching a cap fails with
// limits.ErrKeyGenerationExhausted instead of hanging; callers may retry.
// ConfigFromEnv reads MYRSA_ROUNDS, MYRSA_MAX_PRIME_ATTEMPTS and
// MYRSA_MAX_KEY_ATTEMPTS.
//
// # Deterministic Testing
//
// Any random.Source can drive a Generator, so tests obtain reproducible keys
// from a seeded source:
//
//	gen := keygen.NewGenerator(random.NewSeededSource(seed), keygen.DefaultConfig())
//	kp, _ := gen.Generate(16, 20)
//
// # Thread Safety
//
// A Keypair is immutable after generation apart from Wipe, and its accessors
// return copies. Generators are stateless between calls.
package keygen
