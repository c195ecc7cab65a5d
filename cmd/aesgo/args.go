package main

import (
	"errors"
	"flag"
	"fmt"
)

// Mode selects which mode of operation a command runs under.
type Mode string

const (
	ModeECB Mode = "ecb"
	ModeCTR Mode = "ctr"
	ModeGCM Mode = "gcm"
)

// These Err* values are the error taxonomy for argument validation, separate
// from the library's own error values: these are mistakes in how the
// command was invoked, not cryptographic failures.
var (
	ErrMissingCommand  = errors.New("aesgo: expected a \"encrypt\" or \"decrypt\" subcommand")
	ErrUnknownCommand  = errors.New("aesgo: unknown subcommand")
	ErrMissingFlag     = errors.New("aesgo: missing required flag")
	ErrUnknownMode     = errors.New("aesgo: unknown mode")
	ErrUnknownKeySize  = errors.New("aesgo: unknown key size")
	ErrAadInvalidMode  = errors.New("aesgo: -aad is only valid with -mode gcm")
	ErrKeySizeNoGenKey = errors.New("aesgo: -key-size requires -gen-key")
)

// commonArgs holds the flags shared by both encrypt and decrypt.
type commonArgs struct {
	mode   Mode
	input  string
	output string
	key    string
}

// encryptArgs extends commonArgs with the flags only encrypt accepts.
type encryptArgs struct {
	commonArgs
	genKey  bool
	keySize int
	aadHex  string
}

// parseCommon registers the flags shared by encrypt and decrypt. The
// returned commonArgs' mode field is only filled in after fs.Parse
// has run — callers must re-read it via fs.Lookup("mode") once
// parsing completes.
func parseCommon(fs *flag.FlagSet) *commonArgs {
	a := &commonArgs{}
	fs.String("mode", string(ModeGCM), "mode of operation: ecb, ctr, or gcm")
	fs.StringVar(&a.input, "input", "", "input file path")
	fs.StringVar(&a.output, "output", "", "output file path")
	fs.StringVar(&a.key, "key", "", "key file path")
	return a
}

func parseEncryptArgs(argv []string) (*encryptArgs, error) {
	fs := flag.NewFlagSet("encrypt", flag.ContinueOnError)
	common := parseCommon(fs)
	e := &encryptArgs{}
	fs.BoolVar(&e.genKey, "gen-key", false, "generate a random key, written to the key file path")
	keySizeSet := fs.Int("key-size", 256, "key size in bits when generating a key: 128, 192, or 256")
	fs.StringVar(&e.aadHex, "aad", "", "associated data as a hex string (GCM only)")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	// fs.String captures the mode flag by value before parsing populates
	// it; re-read it from the flag set now that Parse has run.
	if v := fs.Lookup("mode"); v != nil {
		common.mode = Mode(v.Value.String())
	}
	e.commonArgs = *common
	e.keySize = *keySizeSet

	if err := e.validate(fs); err != nil {
		return nil, err
	}
	return e, nil
}

func parseDecryptArgs(argv []string) (*commonArgs, error) {
	fs := flag.NewFlagSet("decrypt", flag.ContinueOnError)
	common := parseCommon(fs)
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if v := fs.Lookup("mode"); v != nil {
		common.mode = Mode(v.Value.String())
	}
	if err := common.validate(fs); err != nil {
		return nil, err
	}
	return common, nil
}

func (a *commonArgs) validate(fs *flag.FlagSet) error {
	if a.input == "" {
		return fmt.Errorf("%w: -input", ErrMissingFlag)
	}
	if a.output == "" {
		return fmt.Errorf("%w: -output", ErrMissingFlag)
	}
	if a.key == "" {
		return fmt.Errorf("%w: -key", ErrMissingFlag)
	}
	switch a.mode {
	case ModeECB, ModeCTR, ModeGCM:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, a.mode)
	}
	return nil
}

func (e *encryptArgs) validate(fs *flag.FlagSet) error {
	if err := e.commonArgs.validate(fs); err != nil {
		return err
	}
	if e.aadHex != "" && e.mode != ModeGCM {
		return ErrAadInvalidMode
	}
	if !e.genKey {
		keySizeSet := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "key-size" {
				keySizeSet = true
			}
		})
		if keySizeSet {
			return ErrKeySizeNoGenKey
		}
	}
	switch e.keySize {
	case 128, 192, 256:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKeySize, e.keySize)
	}
	return nil
}
