package domain

import "strings"

// Renderer accumulates a display string from the labels of a Name.
//
// ProcessLabel is called once per label from the rightmost label to the
// leftmost one. isEnd is true only for the leftmost label, which is the last
// one visited.
type Renderer interface {
	ProcessLabel(label Label, isEnd bool)
	Result() string
}

// Name is a parsed domain: its labels in left-to-right order.
// An FQDN carries a trailing empty label.
type Name struct {
	Labels []Label
}

// Render drives r over the labels of n, right to left, and returns its result.
func (n Name) Render(r Renderer) string {
	for i := len(n.Labels) - 1; i >= 0; i-- {
		r.ProcessLabel(n.Labels[i], i == 0)
	}
	return r.Result()
}

// ASCII returns the ASCII form of the whole name.
func (n Name) ASCII() string {
	parts := make([]string, len(n.Labels))
	for i, l := range n.Labels {
		parts[i] = l.ASCII
	}
	return strings.Join(parts, ".")
}

// IsFQDN reports whether the name ends with the empty root label.
func (n Name) IsFQDN() bool {
	return len(n.Labels) > 1 && n.Labels[len(n.Labels)-1].ASCII == ""
}

// HasIDN reports whether any label required IDNA processing.
func (n Name) HasIDN() bool {
	for _, l := range n.Labels {
		if l.IsIDN {
			return true
		}
	}
	return false
}

// TopLevel returns the rightmost non-empty label, or false for an empty name.
func (n Name) TopLevel() (Label, bool) {
	for i := len(n.Labels) - 1; i >= 0; i-- {
		if n.Labels[i].ASCII != "" {
			return n.Labels[i], true
		}
	}
	return Label{}, false
}
