// Package render turns parsed domain names into display strings.
//
// Each renderer is fed labels right to left by domain.Name.Render and is
// meant for a single name; create a new one per domain.
package render

import (
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/services/spoofcheck"
)

// Classifier decides whether a label may be displayed in Unicode.
type Classifier interface {
	Classify(label domain.Label, topLevelDomain string) domain.CheckResult
}

// SpoofChecked renders IDN labels in Unicode only when the classifier says
// they are safe, and in ASCII otherwise.
type SpoofChecked struct {
	classifier Classifier
	result     string
	tld        string
	tldFixed   bool
	verdicts   []domain.LabelVerdict
}

// NewSpoofChecked returns a renderer backed by c, or by the shared
// classifier when c is nil.
func NewSpoofChecked(c Classifier) *SpoofChecked {
	if c == nil {
		c = spoofcheck.Shared()
	}
	return &SpoofChecked{classifier: c}
}

// ProcessLabel implements domain.Renderer.
func (r *SpoofChecked) ProcessLabel(label domain.Label, isEnd bool) {
	if !r.tldFixed {
		if r.result == "" && label.ASCII == "" {
			// empty rightmost label: FQDN root
			r.result = "."
			return
		}
		r.tld = label.Display()
		r.tldFixed = true
	}

	if !label.IsIDN {
		r.record(label, domain.CheckSafe)
		r.result = label.ASCIIWithLeadingDelimiter() + r.result
		return
	}

	verdict := r.classifier.Classify(label, r.tld)
	r.record(label, verdict)
	if verdict != domain.CheckSafe {
		r.result = label.ASCIIWithLeadingDelimiter() + r.result
		return
	}
	r.result = label.Unicode + r.result
	if !isEnd {
		r.result = "." + r.result
	}
}

func (r *SpoofChecked) record(label domain.Label, result domain.CheckResult) {
	r.verdicts = append(r.verdicts, domain.LabelVerdict{
		ASCII:   label.ASCII,
		Unicode: label.Unicode,
		IsIDN:   label.IsIDN,
		Result:  result,
	})
}

// Result implements domain.Renderer.
func (r *SpoofChecked) Result() string { return r.result }

// TopLevelDomain returns the TLD the labels were checked against.
func (r *SpoofChecked) TopLevelDomain() string { return r.tld }

// Verdicts returns the classification of every non-root label, leftmost first.
func (r *SpoofChecked) Verdicts() []domain.LabelVerdict {
	out := make([]domain.LabelVerdict, len(r.verdicts))
	for i, v := range r.verdicts {
		out[len(out)-1-i] = v
	}
	return out
}

// UncheckedUnicode renders every IDN label in Unicode.
type UncheckedUnicode struct {
	result string
}

// ProcessLabel implements domain.Renderer.
func (r *UncheckedUnicode) ProcessLabel(label domain.Label, isEnd bool) {
	r.result = label.Display() + r.result
	if !isEnd {
		r.result = "." + r.result
	}
}

// Result implements domain.Renderer.
func (r *UncheckedUnicode) Result() string { return r.result }

// ASCII renders every label in its ASCII form.
type ASCII struct {
	result string
}

// ProcessLabel implements domain.Renderer.
func (r *ASCII) ProcessLabel(label domain.Label, _ bool) {
	r.result = label.ASCIIWithLeadingDelimiter() + r.result
}

// Result implements domain.Renderer.
func (r *ASCII) Result() string { return r.result }

// Checked renders name with the shared classifier.
func Checked(name domain.Name) string {
	return name.Render(NewSpoofChecked(nil))
}

// Unchecked renders name with every IDN label in Unicode.
func Unchecked(name domain.Name) string {
	return name.Render(&UncheckedUnicode{})
}
