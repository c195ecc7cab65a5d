package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEncryptArgsDefaultsToGCM(t *testing.T) {
	args, err := parseEncryptArgs([]string{"-input", "in", "-output", "out", "-key", "k"})
	require.NoError(t, err)
	require.Equal(t, ModeGCM, args.mode)
	require.Equal(t, 256, args.keySize)
}

func TestParseEncryptArgsRejectsAadOutsideGCM(t *testing.T) {
	_, err := parseEncryptArgs([]string{
		"-input", "in", "-output", "out", "-key", "k",
		"-mode", "ecb", "-aad", "deadbeef",
	})
	require.ErrorIs(t, err, ErrAadInvalidMode)
}

func TestParseEncryptArgsRejectsKeySizeWithoutGenKey(t *testing.T) {
	_, err := parseEncryptArgs([]string{
		"-input", "in", "-output", "out", "-key", "k", "-key-size", "128",
	})
	require.ErrorIs(t, err, ErrKeySizeNoGenKey)
}

func TestParseEncryptArgsAcceptsGenKeyWithKeySize(t *testing.T) {
	args, err := parseEncryptArgs([]string{
		"-input", "in", "-output", "out", "-key", "k",
		"-gen-key", "-key-size", "128",
	})
	require.NoError(t, err)
	require.True(t, args.genKey)
	require.Equal(t, 128, args.keySize)
}

func TestParseEncryptArgsRequiresAllCommonFlags(t *testing.T) {
	_, err := parseEncryptArgs([]string{"-input", "in"})
	require.ErrorIs(t, err, ErrMissingFlag)
}

func TestParseDecryptArgsRejectsUnknownMode(t *testing.T) {
	_, err := parseDecryptArgs([]string{
		"-input", "in", "-output", "out", "-key", "k", "-mode", "xts",
	})
	require.ErrorIs(t, err, ErrUnknownMode)
}
