// Package signature signs and verifies integer messages with textbook RSA.
//
// A signature is s = m^d mod n and verifies when s^e mod n equals m. No
// padding or hashing is applied: the message is the integer itself and must
// already lie in [0, n). Callers holding larger values reduce them first.
//
//	kp, _ := keygen.Generate(1024, 20)
//	m := new(big.Int).Mod(value, kp.Public().N)
//	s, err := signature.Sign(kp.Private(), m)
//	ok := signature.Verify(kp.Public(), m, s)
//
// Sign and Verify are stateless and safe for concurrent use. Verification
// failure is reported as false, never as an error.
package signature
