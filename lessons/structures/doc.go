// Package structures is lesson 37: the classic containers, written
// with type parameters.
//
// It implements a linked list, stack, queue, binary search tree, trie,
// LRU cache, and union-find at teaching scale, each with its cost
// story. The split across files mirrors the structures:
//
//	list.go       singly linked list with a tail pointer
//	stackqueue.go slice-backed stack and queue
//	bst.go        unbalanced binary search tree
//	trie.go       byte-wise prefix tree
//	lru.go        container/list + map LRU cache
//	unionfind.go  disjoint sets with path compression
//
// None of these replace a battle-tested library in production code;
// the lesson is the shape of each structure and why its operations
// cost what they cost.
package structures
