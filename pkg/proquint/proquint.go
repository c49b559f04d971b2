// Package proquint encodes integers as pronounceable quintuplets
// ("proquints"): every 16 bits become consonant-vowel-consonant-vowel-consonant.
package proquint

import (
	"fmt"
	"strings"
)

const (
	consonants = "bdfghjklmnprstvz"
	vowels     = "aiou"
	separator  = '-'
)

// EncodeUint32 returns the two-word proquint of v, high word first
// (e.g. 0x7F000001 -> "lusab-babad").
func EncodeUint32(v uint32) string {
	var sb strings.Builder
	sb.Grow(11)
	writeWord(&sb, uint16(v>>16))
	sb.WriteByte(separator)
	writeWord(&sb, uint16(v))
	return sb.String()
}

func writeWord(sb *strings.Builder, w uint16) {
	sb.WriteByte(consonants[(w>>12)&0x0F])
	sb.WriteByte(vowels[(w>>10)&0x03])
	sb.WriteByte(consonants[(w>>6)&0x0F])
	sb.WriteByte(vowels[(w>>4)&0x03])
	sb.WriteByte(consonants[w&0x0F])
}

// DecodeUint32 parses a two-word proquint produced by EncodeUint32.
func DecodeUint32(s string) (uint32, error) {
	words := strings.Split(s, string(separator))
	if len(words) != 2 {
		return 0, fmt.Errorf("proquint: expected 2 words, got %d in %q", len(words), s)
	}

	var out uint32
	for _, word := range words {
		w, err := decodeWord(word)
		if err != nil {
			return 0, err
		}
		out = out<<16 | uint32(w)
	}
	return out, nil
}

func decodeWord(word string) (uint16, error) {
	if len(word) != 5 {
		return 0, fmt.Errorf("proquint: word %q must have 5 letters", word)
	}

	var w uint16
	for i := 0; i < 5; i++ {
		if i%2 == 0 {
			idx := strings.IndexByte(consonants, word[i])
			if idx < 0 {
				return 0, fmt.Errorf("proquint: %q is not a consonant in %q", word[i], word)
			}
			w = w<<4 | uint16(idx)
			continue
		}
		idx := strings.IndexByte(vowels, word[i])
		if idx < 0 {
			return 0, fmt.Errorf("proquint: %q is not a vowel in %q", word[i], word)
		}
		w = w<<2 | uint16(idx)
	}
	return w, nil
}

// Valid reports whether s is a well-formed two-word proquint.
func Valid(s string) bool {
	_, err := DecodeUint32(s)
	return err == nil
}
