package structures

import "sort"

type trieNode struct {
	children map[byte]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

// Trie is a byte-wise prefix tree. Lookup cost is O(len(key)),
// independent of how many keys are stored, which is the whole appeal.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie builds a trie holding words.
func NewTrie(words ...string) *Trie {
	t := &Trie{root: newTrieNode()}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word and reports whether it was new.
func (t *Trie) Insert(word string) bool {
	cur := t.root
	for i := 0; i < len(word); i++ {
		b := word[i]
		next, ok := cur.children[b]
		if !ok {
			next = newTrieNode()
			cur.children[b] = next
		}
		cur = next
	}
	if cur.terminal {
		return false
	}
	cur.terminal = true
	t.size++
	return true
}

// walk returns the node at the end of key, or nil.
func (t *Trie) walk(key string) *trieNode {
	cur := t.root
	for i := 0; i < len(key); i++ {
		next, ok := cur.children[key[i]]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Has reports whether word was inserted as a whole word.
func (t *Trie) Has(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// WithPrefix returns every stored word starting with prefix, sorted.
func (t *Trie) WithPrefix(prefix string) []string {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}
	var out []string
	var collect func(n *trieNode, acc string)
	collect = func(n *trieNode, acc string) {
		if n.terminal {
			out = append(out, acc)
		}
		for b, child := range n.children {
			collect(child, acc+string(b))
		}
	}
	collect(start, prefix)
	sort.Strings(out)
	return out
}

// Len returns the number of stored words.
func (t *Trie) Len() int { return t.size }
