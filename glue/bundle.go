package glue

import (
	"encoding/json"
	"io"

	"github.com/liftgraph/liftgraph/fgraph"
)

// Query is one inference request: the variable to query, and an
// evidence assignment over zero or more other variables, all named by
// their original (ground) RV names.
type Query struct {
	VarName  string            `json:"var_name"`
	Evidence map[string]string `json:"evidence,omitempty"`
}

// Bundle is the persisted unit the loader consumes: a factor graph and
// the queries to run against its lifted form.
type Bundle struct {
	FactorGraph *fgraph.FactorGraph `json:"factor_graph"`
	Queries     []Query             `json:"queries,omitempty"`
}

// LoadBundle decodes a Bundle from r.
func LoadBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	b.FactorGraph = fgraph.NewFactorGraph()
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBundle encodes b to w.
func SaveBundle(w io.Writer, b *Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
