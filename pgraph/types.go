package pgraph

import (
	"strconv"
	"strings"
)

// LogVar is a named, finite, ordered domain of individuals used to
// parameterize a PRV.
type LogVar struct {
	Name   string
	Domain []string
}

// NewLogVar constructs an LV. Returns ErrEmptyDomain if domain is empty.
func NewLogVar(name string, domain []string) (*LogVar, error) {
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}
	return &LogVar{Name: name, Domain: append([]string(nil), domain...)}, nil
}

// Size is the number of individuals in the domain.
func (l *LogVar) Size() int {
	return len(l.Domain)
}

// Equal is deep equality including Name.
func (l *LogVar) Equal(other *LogVar) bool {
	if other == nil || l.Name != other.Name || len(l.Domain) != len(other.Domain) {
		return false
	}
	for i, v := range l.Domain {
		if other.Domain[i] != v {
			return false
		}
	}
	return true
}

// PRV is a parameterized random variable: a range identical to the
// ground RVs it abstracts, zero or more logical variables (empty means
// propositional), and — when it acts as a counting RV in some parfactor
// — the logical variable it counts over.
type PRV struct {
	Name        string
	Range       []string
	LogVars     []*LogVar
	CountedOver *LogVar

	// CountedIn holds the names of every parfactor this PRV counts over
	// as a CRV. Deliberately a list of handles, not *Parfactor pointers
	// (see doc.go), and skipped entirely by Equal.
	CountedIn []string
}

// NewPRV constructs a PRV with the given range and logical variables
// (nil or empty => propositional). Returns ErrEmptyRange if rng is empty.
func NewPRV(name string, rng []string, logvars []*LogVar) (*PRV, error) {
	if len(rng) == 0 {
		return nil, ErrEmptyRange
	}
	return &PRV{
		Name:    name,
		Range:   append([]string(nil), rng...),
		LogVars: append([]*LogVar(nil), logvars...),
	}, nil
}

// Propositional reports whether p carries no logical variables.
func (p *PRV) Propositional() bool {
	return len(p.LogVars) == 0
}

// IsCountingIn reports whether p acts as a counting RV within the
// parfactor named pfName: it has a CountedOver LV and pfName appears in
// CountedIn.
func (p *PRV) IsCountingIn(pfName string) bool {
	if p.CountedOver == nil {
		return false
	}
	for _, n := range p.CountedIn {
		if n == pfName {
			return true
		}
	}
	return false
}

// MarkCounting sets p's CountedOver LV and appends pfName to CountedIn.
// Returns ErrMultipleLogVar if p does not carry exactly one LV.
func (p *PRV) MarkCounting(pfName string) error {
	if len(p.LogVars) != 1 {
		return ErrMultipleLogVar
	}
	p.CountedOver = p.LogVars[0]
	p.CountedIn = append(p.CountedIn, pfName)
	return nil
}

// Equal is deep equality over Name, Range, and LogVars. CountedOver and
// CountedIn are deliberately excluded (see doc.go).
func (p *PRV) Equal(other *PRV) bool {
	if other == nil || p.Name != other.Name || len(p.LogVars) != len(other.LogVars) {
		return false
	}
	if len(p.Range) != len(other.Range) {
		return false
	}
	for i, v := range p.Range {
		if other.Range[i] != v {
			return false
		}
	}
	for i, lv := range p.LogVars {
		if !lv.Equal(other.LogVars[i]) {
			return false
		}
	}
	return true
}

// Signature encodes (Range, LogVar domain sizes) for grouping purposes.
func (p *PRV) Signature() string {
	sizes := make([]string, len(p.LogVars))
	for i, lv := range p.LogVars {
		sizes[i] = strconv.Itoa(lv.Size())
	}
	return strings.Join(p.Range, "|") + "#" + strings.Join(sizes, ",")
}

func (p *PRV) clone() *PRV {
	cp := &PRV{
		Name:    p.Name,
		Range:   append([]string(nil), p.Range...),
		LogVars: append([]*LogVar(nil), p.LogVars...),
	}
	if p.CountedOver != nil {
		lv := *p.CountedOver
		cp.CountedOver = &lv
	}
	cp.CountedIn = append([]string(nil), p.CountedIn...)
	return cp
}

// Parfactor is a factor-like object whose arguments are PRVs. Its
// potential table is keyed directly by formatted assignment strings; see
// doc.go for why this differs from fgraph.Factor's index-tuple encoding.
type Parfactor struct {
	Name  string
	Scope []*PRV
	table map[string]float64
}

// NewParfactor constructs a Parfactor with an empty scope and table.
func NewParfactor(name string) *Parfactor {
	return &Parfactor{Name: name}
}

// AppendScope appends prv to f's scope if it is not already present.
func (f *Parfactor) AppendScope(prv *PRV) {
	for _, existing := range f.Scope {
		if existing == prv {
			return
		}
	}
	f.Scope = append(f.Scope, prv)
}

// Set records the potential for a formatted assignment key.
func (f *Parfactor) Set(key string, p float64) {
	if f.table == nil {
		f.table = make(map[string]float64)
	}
	f.table[key] = p
}

// Get returns the potential for a formatted assignment key.
func (f *Parfactor) Get(key string) (float64, bool) {
	p, ok := f.table[key]
	return p, ok
}

// Table returns a defensive copy of f's potential table.
func (f *Parfactor) Table() map[string]float64 {
	out := make(map[string]float64, len(f.table))
	for k, v := range f.table {
		out[k] = v
	}
	return out
}

// HasCRV reports whether any PRV in f's scope is a counting RV for f.
func (f *Parfactor) HasCRV() bool {
	for _, p := range f.Scope {
		if p.IsCountingIn(f.Name) {
			return true
		}
	}
	return false
}
