// Package logging provides the structured logging helper shared by the MyRSA
// packages. It wraps github.com/sirupsen/logrus with a small builder that
// stamps every entry with the originating package and function.
//
// Key material must never reach a log line. Use SecretFields to record the
// shape of a secret integer (its bit length) instead of its value:
//
//	logging.NewLogger("keygen", "Generate").
//	    WithFields(logging.SecretFields("d", d)).
//	    Debug("Private exponent derived")
package logging
