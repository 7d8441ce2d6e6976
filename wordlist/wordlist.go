// Package wordlist reads dictionary files and builds word fixtures for
// exercising a trie: shuffled word orders and near-miss non-words.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/mmap"
)

// Read returns the whitespace separated words of r, in order.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load reads the words of a dictionary file. The file is mapped into memory
// rather than read through a buffer, and unmapped before Load returns.
func Load(filename string) ([]string, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	words, err := Read(io.NewSectionReader(f, 0, int64(f.Len())))
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", filename, err)
	}

	log.Debug().Str("path", filename).Int("bytes", f.Len()).Int("words", len(words)).Msg("Loaded dictionary")
	return words, nil
}

// Shuffle puts words in a random order. The same seed always gives the same
// order.
func Shuffle(words []string, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

// maxAttemptsPerWord bounds NonWords when most perturbations land on real
// words, as they do for tiny dictionaries.
const maxAttemptsPerWord = 100

// NonWords returns up to n distinct strings that are not in words. Each is a
// random word from words with one position replaced by a random lowercase
// letter. Fewer than n are returned if they cannot be found in a reasonable
// number of attempts.
func NonWords(words []string, n int, seed int64) []string {
	dictionary := make(map[string]bool, len(words))
	for _, word := range words {
		if word != "" {
			dictionary[word] = true
		}
	}
	if len(dictionary) == 0 || n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	seen := make(map[string]bool, n)
	var result []string
	for attempts := n * maxAttemptsPerWord; attempts > 0 && len(result) < n; attempts-- {
		word := []byte(words[rng.Intn(len(words))])
		if len(word) == 0 {
			continue
		}
		word[rng.Intn(len(word))] = byte('a' + rng.Intn(26))

		s := string(word)
		if dictionary[s] || seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
	}
	return result
}
