// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	_ "embed"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-agent/models"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// confusables are glyphs that are easy to misread or mistype when a
	// password is copied by hand.
	confusables = "0Oo1lI|5S2Z8B"

	// DicewareSeparator joins diceware words.
	DicewareSeparator = " "

	// MaxLength caps character passwords at the size of an entry field.
	MaxLength = 10 << 10
	// MaxDicewareWords caps diceware passphrases.
	MaxDicewareWords = 64
)

//go:embed wordlist.txt
var wordlistFile string

var wordlist = sync.OnceValue(func() []string {
	return strings.Fields(wordlistFile)
})

// Wordlist returns the embedded diceware word list.
func Wordlist() []string {
	return wordlist()
}

// Generate returns a random password for policy. For character policies the
// result has exactly length characters. For [models.PolicyDiceware] length
// is the number of words.
func Generate(policy models.PasswordPolicy, length int) (string, error) {
	return generate(rand.Reader, policy, length)
}

func generate(r io.Reader, policy models.PasswordPolicy, length int) (string, error) {
	if err := CheckLength(policy, length); err != nil {
		return "", err
	}

	if policy == models.PolicyDiceware {
		return diceware(r, length)
	}

	charset, err := Alphabet(policy)
	if err != nil {
		return "", err
	}

	out := make([]byte, length)
	for i := range out {
		idx, err := randIndex(r, len(charset))
		if err != nil {
			return "", err
		}
		out[i] = charset[idx]
	}
	return string(out), nil
}

// CheckLength reports whether length is usable for policy.
func CheckLength(policy models.PasswordPolicy, length int) error {
	limit := MaxLength
	if policy == models.PolicyDiceware {
		limit = MaxDicewareWords
	}
	if length <= 0 || length > limit {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidLength, length, limit)
	}
	return nil
}

// Alphabet returns the character set a non-diceware policy draws from.
func Alphabet(policy models.PasswordPolicy) (string, error) {
	switch policy {
	case models.PolicyAllChars, "":
		return lowercase + uppercase + digits + symbols, nil
	case models.PolicyNoSymbols:
		return lowercase + uppercase + digits, nil
	case models.PolicyNumbersOnly:
		return digits, nil
	case models.PolicyNonConfusables:
		return strip(lowercase+uppercase+digits+symbols, confusables), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}
}

func diceware(r io.Reader, words int) (string, error) {
	list := wordlist()
	out := make([]string, words)
	for i := range out {
		idx, err := randIndex(r, len(list))
		if err != nil {
			return "", err
		}
		out[i] = list[idx]
	}
	return strings.Join(out, DicewareSeparator), nil
}

func randIndex(r io.Reader, n int) (int, error) {
	idx, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random index: %w", err)
	}
	return int(idx.Int64()), nil
}

func strip(s, cut string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cut, r) {
			return -1
		}
		return r
	}, s)
}
