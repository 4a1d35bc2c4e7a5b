package uset

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrBadPattern is returned (wrapped) for any malformed set pattern.
var ErrBadPattern = errors.New("uset: malformed pattern")

// Parse compiles a bracketed set pattern into a frozen Set.
//
// The accepted syntax is the subset of UnicodeSet patterns needed for fixed
// policy tables:
//
//	[abc]          literal scalars
//	[a-z]          inclusive ranges
//	[\u3078-\u307a] \uXXXX and \UXXXXXXXX escapes
//	[\-\]\\]       backslash escapes any other scalar
//
// Property expressions, nesting and negation are rejected.
func Parse(pattern string) (*Set, error) {
	p := &parser{src: pattern}
	b := NewBuilder()
	if err := p.parse(b); err != nil {
		return nil, err
	}
	return b.Freeze(), nil
}

// MustParse is like Parse but panics on error. Intended for package-level tables.
func MustParse(pattern string) *Set {
	s, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrBadPattern, fmt.Sprintf(format, args...), p.pos, p.src)
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) next() (rune, error) {
	r, n := utf8.DecodeRuneInString(p.src[p.pos:])
	if r == utf8.RuneError && n <= 1 {
		return 0, p.errorf("invalid UTF-8")
	}
	p.pos += n
	return r, nil
}

func (p *parser) parse(b *Builder) error {
	if p.eof() || p.peek() != '[' {
		return p.errorf("expected '['")
	}
	p.pos++
	if !p.eof() {
		switch p.peek() {
		case '^':
			return p.errorf("negated sets are not supported")
		case ':':
			return p.errorf("property expressions are not supported")
		}
	}
	for {
		if p.eof() {
			return p.errorf("missing ']'")
		}
		if p.peek() == ']' {
			p.pos++
			break
		}
		lo, err := p.item()
		if err != nil {
			return err
		}
		if !p.eof() && p.peek() == '-' {
			p.pos++
			if p.eof() || p.peek() == ']' {
				return p.errorf("dangling '-'")
			}
			hi, err := p.item()
			if err != nil {
				return err
			}
			if hi < lo {
				return p.errorf("inverted range %U-%U", lo, hi)
			}
			b.AddRange(lo, hi)
			continue
		}
		b.AddRune(lo)
	}
	if !p.eof() {
		return p.errorf("trailing input")
	}
	return nil
}

func (p *parser) item() (rune, error) {
	r, err := p.next()
	if err != nil {
		return 0, err
	}
	switch r {
	case '[':
		return 0, p.errorf("nested sets are not supported")
	case '-':
		return 0, p.errorf("unexpected '-'")
	case '\\':
		return p.escape()
	}
	return r, nil
}

func (p *parser) escape() (rune, error) {
	if p.eof() {
		return 0, p.errorf("incomplete escape")
	}
	r, err := p.next()
	if err != nil {
		return 0, err
	}
	switch r {
	case 'u':
		return p.hex(4)
	case 'U':
		return p.hex(8)
	case 'p', 'P', 'N':
		return 0, p.errorf("property escapes are not supported")
	}
	return r, nil
}

func (p *parser) hex(n int) (rune, error) {
	if p.pos+n > len(p.src) {
		return 0, p.errorf("short hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil {
		return 0, p.errorf("bad hex escape %q", p.src[p.pos:p.pos+n])
	}
	p.pos += n
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, p.errorf("escape %U is not a scalar value", r)
	}
	return r, nil
}
