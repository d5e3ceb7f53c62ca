package glue

import (
	"fmt"
	"sort"
)

// Rewrite translates a Query expressed over original (ground) random
// variable names into the statements a lifted model expects, using the
// rvToIndividual mapping produced by constructing the model (see
// groupbuild.Build's second return value). Evidence is emitted in
// ascending key order so the output is reproducible across calls.
func Rewrite(q Query, rvToIndividual map[string]string) ([]string, error) {
	queryName, ok := rvToIndividual[q.VarName]
	if !ok {
		return nil, errUnknownQueryVar(q.VarName)
	}

	keys := make([]string, 0, len(q.Evidence))
	for k := range q.Evidence {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stmts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		name, ok := rvToIndividual[k]
		if !ok {
			return nil, errUnknownQueryVar(k)
		}
		stmts = append(stmts, fmt.Sprintf("obs %s=%s;", name, q.Evidence[k]))
	}
	stmts = append(stmts, fmt.Sprintf("query %s;", queryName))

	return stmts, nil
}
