package model

// CodeRange is an inclusive interval over account-code numeric values.
type CodeRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Contains reports whether code falls inside the range. A reversed
// range (from > to) contains nothing.
func (r CodeRange) Contains(code int) bool {
	return r.From <= r.To && code >= r.From && code <= r.To
}

// MappingRule maps account codes onto one statement line. Rules are
// operator-edited data; the engine only reads a fixed snapshot.
type MappingRule struct {
	LineID   string      `yaml:"id"`
	Title    string      `yaml:"title,omitempty"`
	Ranges   []CodeRange `yaml:"ranges,omitempty"`
	Includes []int       `yaml:"includes,omitempty"`
	Excludes []int       `yaml:"excludes,omitempty"`
}

// Matches decides whether an account code belongs to this line.
// Precedence is fixed: an exclude overrides everything, an include
// overrides ranges, then range membership decides. A rule with no
// ranges and no includes matches nothing.
func (m MappingRule) Matches(code int) bool {
	for _, ex := range m.Excludes {
		if code == ex {
			return false
		}
	}
	for _, in := range m.Includes {
		if code == in {
			return true
		}
	}
	for _, r := range m.Ranges {
		if r.Contains(code) {
			return true
		}
	}
	return false
}
