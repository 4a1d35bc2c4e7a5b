package domain

// LabelVerdict records how one label was classified.
type LabelVerdict struct {
	ASCII   string      `json:"ascii"`
	Unicode string      `json:"unicode"`
	IsIDN   bool        `json:"idn"`
	Result  CheckResult `json:"result"`
}

// Display is the outcome of preparing a domain for presentation.
type Display struct {
	Input       string         `json:"input"`
	ASCII       string         `json:"ascii"`
	Unchecked   string         `json:"unchecked"`
	Checked     string         `json:"checked"`
	Registrable string         `json:"registrable,omitempty"`
	TopLevel    string         `json:"tld,omitempty"`
	Override    *OverrideRule  `json:"override,omitempty"`
	Labels      []LabelVerdict `json:"labels,omitempty"`
}

// Spoofed reports whether any label fell back to ASCII.
func (d Display) Spoofed() bool {
	return d.Checked != d.Unchecked
}
