// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordPolicy selects the alphabet used by the password generator.
type PasswordPolicy string

const (
	PolicyAllChars       PasswordPolicy = "all"
	PolicyNoSymbols      PasswordPolicy = "no_symbols"
	PolicyNumbersOnly    PasswordPolicy = "numbers"
	PolicyNonConfusables PasswordPolicy = "nonconfusables"
	// PolicyDiceware draws whole words; length is the word count.
	PolicyDiceware PasswordPolicy = "diceware"
)

// Valid reports whether p is a known policy.
func (p PasswordPolicy) Valid() bool {
	switch p {
	case PolicyAllChars, PolicyNoSymbols, PolicyNumbersOnly, PolicyNonConfusables, PolicyDiceware:
		return true
	}
	return false
}
