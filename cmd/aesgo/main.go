// Command aesgo is a thin file-IO wrapper around the aesgo library: it
// reads a key and input file from disk, calls into the library for
// exactly one of ECB/CTR/GCM encrypt or decrypt, and writes the
// result back out. It performs no cryptographic work of its own.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/tobygrice/aesgo"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("aesgo: ")

	if len(os.Args) < 2 {
		log.Fatal(ErrMissingCommand)
	}

	var err error
	switch os.Args[1] {
	case "encrypt":
		err = runEncrypt(os.Args[2:])
	case "decrypt":
		err = runDecrypt(os.Args[2:])
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, os.Args[1])
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runEncrypt(argv []string) error {
	args, err := parseEncryptArgs(argv)
	if err != nil {
		return err
	}

	var key *aesgo.Key
	if args.genKey {
		key, err = generateKey(args.keySize)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args.key, key.Bytes(), 0600); err != nil {
			return fmt.Errorf("writing generated key file %s: %w", args.key, err)
		}
		log.Printf("generated %d-bit key written to %s", key.Bits(), args.key)
	} else {
		key, err = loadKey(args.key)
		if err != nil {
			return err
		}
	}

	plaintext, err := os.ReadFile(args.input)
	if err != nil {
		return fmt.Errorf("reading input file %s: %w", args.input, err)
	}

	var aad []byte
	if args.aadHex != "" {
		aad, err = hex.DecodeString(args.aadHex)
		if err != nil {
			return fmt.Errorf("decoding -aad hex string: %w", err)
		}
	}

	cipher := aesgo.New(key)

	var out []byte
	switch args.mode {
	case ModeECB:
		out = cipher.EncryptECB(plaintext)
	case ModeCTR:
		out, err = cipher.EncryptCTR(plaintext)
	case ModeGCM:
		out, err = cipher.EncryptGCM(plaintext, aad)
	}
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}

	if err := os.WriteFile(args.output, out, 0600); err != nil {
		return fmt.Errorf("writing output file %s: %w", args.output, err)
	}
	log.Printf("encrypted %d bytes (%s) -> %d bytes written to %s", len(plaintext), args.mode, len(out), args.output)
	return nil
}

func runDecrypt(argv []string) error {
	args, err := parseDecryptArgs(argv)
	if err != nil {
		return err
	}

	key, err := loadKey(args.key)
	if err != nil {
		return err
	}

	ciphertext, err := os.ReadFile(args.input)
	if err != nil {
		return fmt.Errorf("reading input file %s: %w", args.input, err)
	}

	cipher := aesgo.New(key)

	var out []byte
	var aad []byte
	switch args.mode {
	case ModeECB:
		out, err = cipher.DecryptECB(ciphertext)
	case ModeCTR:
		out, err = cipher.DecryptCTR(ciphertext)
	case ModeGCM:
		out, aad, err = cipher.DecryptGCM(ciphertext)
	}
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	if err := os.WriteFile(args.output, out, 0600); err != nil {
		return fmt.Errorf("writing output file %s: %w", args.output, err)
	}
	if len(aad) > 0 {
		fmt.Println(hex.EncodeToString(aad))
		log.Printf("decrypted %d bytes (%s, aad %d bytes) -> %d bytes written to %s", len(ciphertext), args.mode, len(aad), len(out), args.output)
	} else {
		log.Printf("decrypted %d bytes (%s) -> %d bytes written to %s", len(ciphertext), args.mode, len(out), args.output)
	}
	return nil
}

func loadKey(path string) (*aesgo.Key, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file %s: %w", path, err)
	}
	key, err := aesgo.NewKey(raw)
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}
	return key, nil
}

func generateKey(bits int) (*aesgo.Key, error) {
	switch bits {
	case 128:
		return aesgo.RandomKey128()
	case 192:
		return aesgo.RandomKey192()
	case 256:
		return aesgo.RandomKey256()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeySize, bits)
	}
}
