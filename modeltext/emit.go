package modeltext

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/liftgraph/liftgraph/pgraph"
)

// Emit serializes pfg into the engine's textual model description.
func Emit(pfg *pgraph.ParfactorGraph) (string, error) {
	var b strings.Builder

	lvs := collectLogVars(pfg)
	for _, lv := range lvs {
		fmt.Fprintf(&b, "type %s;\n", lv.Name)
	}
	for _, lv := range lvs {
		fmt.Fprintf(&b, "guaranteed %s %s;\n", lv.Name, strings.Join(lv.Domain, ", "))
	}

	for _, p := range pfg.PRVs() {
		engineType, ok := booleanType(p.Range)
		if !ok {
			return "", errUnsupportedRange(p.Name, p.Range)
		}
		if p.Propositional() {
			fmt.Fprintf(&b, "random %s %s;\n", engineType, p.Name)
			continue
		}
		names := make([]string, len(p.LogVars))
		for i, lv := range p.LogVars {
			names[i] = lv.Name
		}
		fmt.Fprintf(&b, "random %s %s(%s);\n", engineType, p.Name, strings.Join(names, ", "))
	}

	for _, pf := range pfg.Parfactors() {
		line, err := emitParfactor(pf)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// collectLogVars returns every distinct logical variable referenced by
// any PRV, in first-encounter order over pfg.PRVs().
func collectLogVars(pfg *pgraph.ParfactorGraph) []*pgraph.LogVar {
	seen := make(map[string]bool)
	var out []*pgraph.LogVar
	for _, p := range pfg.PRVs() {
		for _, lv := range p.LogVars {
			if seen[lv.Name] {
				continue
			}
			seen[lv.Name] = true
			out = append(out, lv)
		}
	}
	return out
}

// booleanType is the only range-to-engine-type mapping this emitter
// supports: the exact two-element set {"true", "false"}.
func booleanType(rng []string) (string, bool) {
	if len(rng) != 2 {
		return "", false
	}
	sorted := append([]string(nil), rng...)
	sort.Strings(sorted)
	if sorted[0] == "false" && sorted[1] == "true" {
		return "Boolean", true
	}
	return "", false
}

func emitParfactor(pf *pgraph.Parfactor) (string, error) {
	placeholder, order := assignPlaceholders(pf)

	keys := make([]string, 0, len(pf.Table()))
	table := pf.Table()
	for k := range table {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = strconv.FormatFloat(table[k], 'g', -1, 64)
	}

	args := make([]string, len(pf.Scope))
	for i, p := range pf.Scope {
		if p.IsCountingIn(pf.Name) {
			args[i] = fmt.Sprintf("#(%s %s)[%s(%s)]", p.CountedOver.Name, placeholder[p.CountedOver.Name], p.Name, placeholder[p.CountedOver.Name])
			continue
		}
		if len(p.LogVars) == 0 {
			args[i] = p.Name
			continue
		}
		names := make([]string, len(p.LogVars))
		for j, lv := range p.LogVars {
			names[j] = placeholder[lv.Name]
		}
		args[i] = fmt.Sprintf("%s(%s)", p.Name, strings.Join(names, ", "))
	}

	potentials := fmt.Sprintf("MultiArrayPotential[[%s]] (%s)", strings.Join(values, ", "), strings.Join(args, ", "))

	if len(order) == 0 {
		return fmt.Sprintf("factor %s;", potentials), nil
	}

	binders := make([]string, len(order))
	for i, lv := range order {
		binders[i] = fmt.Sprintf("%s %s", lv.Name, placeholder[lv.Name])
	}
	return fmt.Sprintf("parfactor %s. %s;", strings.Join(binders, ", "), potentials), nil
}

// assignPlaceholders maps each distinct logical variable pf's scope
// touches to a fresh local name (X1, X2, …) in first-encounter order.
func assignPlaceholders(pf *pgraph.Parfactor) (map[string]string, []*pgraph.LogVar) {
	placeholder := make(map[string]string)
	var order []*pgraph.LogVar
	for _, p := range pf.Scope {
		for _, lv := range p.LogVars {
			if _, ok := placeholder[lv.Name]; ok {
				continue
			}
			placeholder[lv.Name] = fmt.Sprintf("X%d", len(order)+1)
			order = append(order, lv)
		}
	}
	return placeholder, order
}
