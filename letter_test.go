package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterOf(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		l, err := LetterOf(r)
		require.NoError(t, err)
		assert.Equal(t, Letter(r-'a'), l)
		assert.Equal(t, r, l.Rune())
		assert.Equal(t, string(r), l.String())
	}

	for _, r := range []rune{'A', 'Z', '`', '{', '0', ' ', 'é', 0} {
		_, err := LetterOf(r)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "LetterOf(%q)", r)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("abcdefghijklmnopqrstuvwxyz"))

	tests := []struct {
		word   string
		offset int
		char   rune
	}{
		{"Apple", 0, 'A'},
		{"don't", 3, '\''},
		{"café", 3, 'é'},
		{"naïve", 2, 'ï'},
		{"two words", 3, ' '},
	}

	for _, tt := range tests {
		err := Validate(tt.word)
		var charErr *InvalidCharacterError
		require.True(t, errors.As(err, &charErr), tt.word)
		assert.Equal(t, tt.word, charErr.Word)
		assert.Equal(t, tt.offset, charErr.Offset)
		assert.Equal(t, tt.char, charErr.Char)
		assert.True(t, errors.Is(err, ErrInvalidCharacter))
	}
}

func TestChildSlots(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("az"))

	a := tr.root.children[0]
	require.NotNil(t, a)
	assert.False(t, a.final)
	require.NotNil(t, a.children[alphabetSize-1])
	assert.True(t, a.children[alphabetSize-1].final)

	for i, child := range tr.root.children {
		if i != 0 {
			assert.Nil(t, child)
		}
	}
}
