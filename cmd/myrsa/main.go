package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/SomgBird/MyRSA/keygen"
	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/random"
	"github.com/SomgBird/MyRSA/signature"
	"github.com/sirupsen/logrus"
)

// CLI configuration
type CLIConfig struct {
	bits     int
	rounds   int
	logLevel string
	message  *big.Int
}

// parseCLIFlags parses args into a configuration. Usage text and flag
// errors go to output; -h and -help yield flag.ErrHelp.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, error) {
	config := &CLIConfig{}

	fs := flag.NewFlagSet("myrsa", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { printUsage(fs, output) }

	fs.IntVar(&config.bits, "bits", limits.DefaultKeyBits, "Size of each prime in bits")
	fs.IntVar(&config.rounds, "rounds", keygen.ConfigFromEnv().Rounds, "Miller-Rabin rounds per candidate (default from MYRSA_ROUNDS)")
	fs.StringVar(&config.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errors.New("expected exactly one message argument")
	}
	message, ok := new(big.Int).SetString(strings.TrimSpace(fs.Arg(0)), 10)
	if !ok {
		return nil, fmt.Errorf("message %q is not a decimal integer", fs.Arg(0))
	}
	config.message = message

	return config, nil
}

// printUsage prints the usage information.
func printUsage(fs *flag.FlagSet, output io.Writer) {
	fmt.Fprintln(output, "Textbook RSA signature demo")
	fmt.Fprintln(output, "===========================")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Usage:")
	fmt.Fprintln(output, "  myrsa [options] <message>")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Examples:")
	fmt.Fprintln(output, "  myrsa -bits 512 218739")
	fmt.Fprintln(output, "  MYRSA_MAX_PRIME_ATTEMPTS=500 myrsa -bits 64 -log-level debug 42")
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if err := limits.ValidateKeyBits(config.bits); err != nil {
		return err
	}
	if err := limits.ValidateRounds(config.rounds); err != nil {
		return err
	}
	if config.message == nil {
		return errors.New("message is required")
	}
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return err
	}
	return nil
}

func printSignedMessage(out io.Writer, sm *signature.SignedMessage) {
	fmt.Fprintf(out, "Message:\n%s\n\n", sm.Message)
	fmt.Fprintf(out, "Signature:\n%s\n\n", sm.Signature)
}

// checkSignedMessage prints the verification result and reports whether it
// matched want.
func checkSignedMessage(out io.Writer, pub *keygen.PublicKey, sm *signature.SignedMessage, want bool) bool {
	ok := signature.VerifySignedMessage(pub, sm)
	if ok {
		fmt.Fprintln(out, "✅ Signature is valid")
	} else {
		fmt.Fprintln(out, "❌ Signature is invalid")
	}
	fmt.Fprintln(out)
	return ok == want
}

// run executes the demo and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	config, err := parseCLIFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "❌ Configuration error: %v\n", err)
		fmt.Fprintf(stderr, "Use -help for usage information.\n")
		return 1
	}
	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(stderr, "❌ Configuration error: %v\n", err)
		return 1
	}

	level, _ := logrus.ParseLevel(config.logLevel)
	logrus.SetLevel(level)

	fmt.Fprintf(stdout, "Prime size: %d bits\n\n", config.bits)

	gen := keygen.NewGenerator(random.NewCryptoSource(), keygen.ConfigFromEnv())
	kp, err := gen.Generate(config.bits, config.rounds)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Key generation failed: %v\n", err)
		return 1
	}
	defer kp.Wipe()

	pub := kp.Public()
	m := new(big.Int).Mod(config.message, pub.N)

	sm, err := signature.SignMessage(kp.Private(), m)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Signing failed: %v\n", err)
		return 1
	}

	passed := true

	printSignedMessage(stdout, sm)
	fmt.Fprintln(stdout, "Checking the signed message:")
	passed = checkSignedMessage(stdout, pub, sm, true) && passed

	brokenMessage := sm.Tampered(1, 0)
	fmt.Fprintln(stdout, "Checking after changing the message:")
	printSignedMessage(stdout, brokenMessage)
	passed = checkSignedMessage(stdout, pub, brokenMessage, false) && passed

	brokenSignature := sm.Tampered(0, 1)
	fmt.Fprintln(stdout, "Checking after changing the signature:")
	printSignedMessage(stdout, brokenSignature)
	passed = checkSignedMessage(stdout, pub, brokenSignature, false) && passed

	if !passed {
		fmt.Fprintln(stderr, "❌ Verification results did not match expectations")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
