// Package myrsa generates textbook RSA keypairs and signs and verifies
// integer messages with them.
//
// Everything is built from first principles on math/big: random candidate
// sampling, Miller-Rabin primality testing, the extended Euclidean algorithm
// and square-and-multiply modular exponentiation. The arithmetic is not
// hardened against side channels and no padding scheme is applied, so the
// package is meant for study and testing rather than protecting real data.
//
// # Getting Started
//
//	kp, err := myrsa.GenerateKeypair(1024, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer kp.Wipe()
//
//	m := new(big.Int).Mod(big.NewInt(218739), kp.Public().N)
//	s, err := myrsa.Sign(kp, m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(myrsa.Verify(kp, m, s)) // true
//
// # Packages
//
//   - [github.com/SomgBird/MyRSA/random]: random integer sources
//   - [github.com/SomgBird/MyRSA/bigmath]: modular exponentiation and inverses
//   - [github.com/SomgBird/MyRSA/primality]: Miller-Rabin testing
//   - [github.com/SomgBird/MyRSA/keygen]: keypair generation and configuration
//   - [github.com/SomgBird/MyRSA/signature]: signing and verification
//
// # Errors
//
// Failures wrap the sentinels re-exported here and are matched with
// errors.Is. A signature that does not verify is reported as false, not as
// an error.
package myrsa
