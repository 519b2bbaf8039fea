// Package random supplies the non-negative random integers consumed by
// primality testing and key generation.
//
// All sampling goes through the Source interface so tests can substitute a
// reproducible stream. NewCryptoSource reads the operating system CSPRNG and
// is the only source suitable for real keys; NewSeededSource derives a
// ChaCha20 keystream from a seed and exists for deterministic tests.
//
// # Bit Length Convention
//
// Int(bits) reads ceil(bits/8) bytes, discards the bits above the requested
// length and then clears bit bits-1, the analogue of clearing the sign bit of
// a two's complement buffer. The result therefore lies in [0, 2^(bits-1)) and
// may have fewer significant bits than requested. Callers that need an exact
// bit length, such as the key generator, condition the value themselves.
package random
