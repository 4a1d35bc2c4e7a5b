// Package uset provides immutable sets of Unicode scalar values.
//
// Sets are assembled with a Builder and frozen into a Set. A frozen Set has
// no mutating methods, so it can be shared between goroutines freely.
package uset

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Builder accumulates scalar values for a Set. The zero value is an empty builder.
type Builder struct {
	runes map[rune]struct{}
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{runes: make(map[rune]struct{})}
}

func (b *Builder) init() {
	if b.runes == nil {
		b.runes = make(map[rune]struct{})
	}
}

// AddRune adds a single scalar. Surrogates and out of range values are ignored.
func (b *Builder) AddRune(r rune) *Builder {
	b.init()
	if utf8.ValidRune(r) {
		b.runes[r] = struct{}{}
	}
	return b
}

// AddRange adds every scalar in [lo, hi].
func (b *Builder) AddRange(lo, hi rune) *Builder {
	for r := lo; r <= hi; r++ {
		b.AddRune(r)
	}
	return b
}

// AddTable adds every scalar of a range table.
func (b *Builder) AddTable(rt *unicode.RangeTable) *Builder {
	b.init()
	if rt == nil {
		return b
	}
	rangetable.Visit(rt, func(r rune) {
		b.runes[r] = struct{}{}
	})
	return b
}

// AddSet adds every member of a frozen set.
func (b *Builder) AddSet(s *Set) *Builder {
	if s == nil {
		return b
	}
	return b.AddTable(s.table)
}

// Remove deletes a single scalar.
func (b *Builder) Remove(r rune) *Builder {
	delete(b.runes, r)
	return b
}

// RemoveRange deletes every scalar in [lo, hi].
func (b *Builder) RemoveRange(lo, hi rune) *Builder {
	for r := lo; r <= hi; r++ {
		delete(b.runes, r)
	}
	return b
}

// Len returns the number of scalars currently in the builder.
func (b *Builder) Len() int { return len(b.runes) }

// Freeze returns an immutable Set with the builder's current contents.
// The builder may continue to be used; later changes do not affect the Set.
func (b *Builder) Freeze() *Set {
	rs := make([]rune, 0, len(b.runes))
	for r := range b.runes {
		rs = append(rs, r)
	}
	return &Set{table: rangetable.New(rs...), size: len(rs)}
}

// Set is a frozen set of scalar values.
type Set struct {
	table *unicode.RangeTable
	size  int
}

// Contains reports whether r is a member of the set.
func (s *Set) Contains(r rune) bool {
	if s == nil || s.size == 0 {
		return false
	}
	return unicode.Is(s.table, r)
}

// ContainsAny reports whether any scalar of str is a member of the set.
func (s *Set) ContainsAny(str string) bool {
	for _, r := range str {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every scalar of str is a member of the set.
// The empty string is trivially contained.
func (s *Set) ContainsAll(str string) bool {
	for _, r := range str {
		if !s.Contains(r) {
			return false
		}
	}
	return true
}

// Len returns the number of scalars in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Table exposes the set as a range table for use with the unicode package.
// Callers must not modify the returned table.
func (s *Set) Table() *unicode.RangeTable {
	if s == nil {
		return &unicode.RangeTable{}
	}
	return s.table
}
