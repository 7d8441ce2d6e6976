/*
Package trie is a prefix tree over lowercase words, such as those found in a
dictionary file.

A Trie answers three kinds of questions about the words added to it: whether
a word was added (Contains), whether any added word starts with a string
(IsPrefix), and which added words start with a string (Extend). Completions
from Extend are always returned in alphabetical order.

Each node has one slot for every letter from 'a' to 'z', so a lookup costs one
array index per character, independent of how many words are stored. Words
must consist of those 26 letters only. Insert rejects anything else with an
error matching ErrInvalidCharacter, and leaves the trie unchanged.

In general, you create a trie with trie.New() and call Insert for each word.
Words may be added in any order, and adding a word twice has no effect.
Nothing is ever removed.

A Trie is not safe for concurrent use while it is being modified. Any number
of goroutines may query it once all the words have been inserted.
*/
package trie
