package trie

import (
	"errors"
	"fmt"
)

// alphabetSize is the fan-out of every node.
const alphabetSize = 26

// ErrInvalidCharacter is matched by every error returned for a word that
// contains something other than the letters 'a' through 'z'.
var ErrInvalidCharacter = errors.New("trie: invalid character")

// InvalidCharacterError reports the first character of a word that cannot
// be stored.
type InvalidCharacterError struct {
	Word   string
	Offset int // byte offset of Char within Word
	Char   rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("trie: invalid character %q at offset %d in %q", e.Char, e.Offset, e.Word)
}

// Is makes errors.Is(err, ErrInvalidCharacter) hold.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Letter is one of the 26 lowercase letters, 0 for 'a' through 25 for 'z'.
type Letter uint8

// LetterOf returns the Letter for r, or ErrInvalidCharacter.
func LetterOf(r rune) (Letter, error) {
	if r < 'a' || r > 'z' {
		return 0, ErrInvalidCharacter
	}
	return Letter(r - 'a'), nil
}

// Rune returns the character of the letter.
func (l Letter) Rune() rune {
	return 'a' + rune(l)
}

func (l Letter) String() string {
	return string(l.Rune())
}

// Validate returns an *InvalidCharacterError for the first character of word
// outside 'a'..'z', or nil if the word can be inserted.
func Validate(word string) error {
	for pos, ch := range word {
		if _, err := LetterOf(ch); err != nil {
			return &InvalidCharacterError{Word: word, Offset: pos, Char: ch}
		}
	}
	return nil
}
