package trie

// WalkFn is called by Walk for every node beneath the prefix. word is the
// path from the root to the node, and final tells whether it was inserted.
type WalkFn = func(word string, final bool) WalkResult

// WalkResult is returned by the walk function to indicate whether the walk
// should continue below this node or stop altogether
type WalkResult = int

const (
	// Continue walking all words below this node
	Continue WalkResult = iota

	// Skip will skip all words below this node
	Skip

	// Stop will immediately stop walking
	Stop
)

type node struct {
	final    bool
	children [alphabetSize]*node
}

// Trie is a prefix tree of lowercase words. The zero value is not usable;
// create one with New.
type Trie struct {
	root     *node
	numAdded int
	numNodes int
}

// New creates a new, empty Trie
func New() *Trie {
	return &Trie{
		root:     &node{},
		numNodes: 1,
	}
}

// Insert adds a word to the trie. If the word contains a character other than
// 'a' through 'z', an *InvalidCharacterError is returned and the trie is left
// as it was. Inserting a word that is already present does nothing.
func (t *Trie) Insert(word string) error {
	if err := Validate(word); err != nil {
		return err
	}

	current := t.root
	for i := 0; i < len(word); i++ {
		letter := Letter(word[i] - 'a')
		next := current.children[letter]
		if next == nil {
			next = &node{}
			current.children[letter] = next
			t.numNodes++
		}
		current = next
	}

	if !current.final {
		current.final = true
		t.numAdded++
	}
	return nil
}

// MustInsert is like Insert but panics if the word cannot be stored.
func (t *Trie) MustInsert(word string) {
	if err := t.Insert(word); err != nil {
		panic(err)
	}
}

// Contains returns true if the word was inserted.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.final
}

// IsPrefix returns true if at least one inserted word begins with s. The
// empty string is a prefix of everything, even in an empty trie.
func (t *Trie) IsPrefix(s string) bool {
	return t.find(s) != nil
}

// Extend appends to out every inserted word beginning with prefix, in
// alphabetical order, and returns the extended slice. The prefix itself is
// included if it was inserted. If no word begins with prefix, out is
// returned unchanged.
func (t *Trie) Extend(prefix string, out []string) []string {
	n := t.find(prefix)
	if n == nil {
		return out
	}

	buf := make([]byte, len(prefix), len(prefix)+16)
	copy(buf, prefix)
	return n.collect(buf, out)
}

// Walk calls fn for the node reached by prefix and every node beneath it,
// depth first, visiting children in alphabetical order. Nodes that are only
// part of longer words are passed with final set to false. Nothing is called
// if no inserted word begins with prefix.
func (t *Trie) Walk(prefix string, fn WalkFn) {
	n := t.find(prefix)
	if n == nil {
		return
	}
	n.walk([]byte(prefix), fn)
}

// NumAdded returns the number of distinct words inserted
func (t *Trie) NumAdded() int {
	return t.numAdded
}

// NumNodes returns the number of nodes in the trie, counting the root.
func (t *Trie) NumNodes() int {
	return t.numNodes
}

// find follows s from the root and returns the node it ends at, or nil if
// some edge along the way is missing.
func (t *Trie) find(s string) *node {
	current := t.root
	for _, ch := range s {
		letter, err := LetterOf(ch)
		if err != nil {
			return nil
		}
		current = current.children[letter]
		if current == nil {
			return nil
		}
	}
	return current
}

// collect appends the words at and beneath n. The children are visited from
// 'a' to 'z', which is what makes the output sorted.
func (n *node) collect(word []byte, out []string) []string {
	if n.final {
		out = append(out, string(word))
	}

	l := len(word)
	word = append(word, 0)
	for i, child := range n.children {
		if child == nil {
			continue
		}
		word[l] = byte(Letter(i).Rune())
		out = child.collect(word, out)
	}
	return out
}

func (n *node) walk(word []byte, fn WalkFn) WalkResult {
	result := fn(string(word), n.final)
	if result != Continue {
		return result
	}

	l := len(word)
	word = append(word, 0)
	for i, child := range n.children {
		if child == nil {
			continue
		}
		word[l] = byte(Letter(i).Rune())
		if child.walk(word, fn) == Stop {
			return Stop
		}
	}
	return Continue
}
