package groupbuild

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liftgraph/liftgraph/fgraph"
	"github.com/liftgraph/liftgraph/pgraph"
)

// Build translates a refined factor graph coloring into a parfactor
// graph and a map from every ground RV to its lifted representative
// name. caches may be nil when no factor group is expected to need a
// CRV; Build fails with errkind.MissingCommutativityAnnotation the
// moment one is needed and the caches don't cover it.
func Build(fg *fgraph.FactorGraph, nodeColor, factorColor map[string]int, caches *Caches) (*pgraph.ParfactorGraph, map[string]string, error) {
	rvg := rvGroups(fg, nodeColor)
	byFactorColor := factorGroups(fg, factorColor)

	pfg := pgraph.NewParfactorGraph()

	prvByColor, err := buildPRVs(pfg, rvg)
	if err != nil {
		return nil, nil, err
	}

	if err := shareLogicalVariables(rvg, fg, nodeColor, prvByColor); err != nil {
		return nil, nil, err
	}

	pfByColor, err := buildParfactors(pfg, byFactorColor, nodeColor, prvByColor)
	if err != nil {
		return nil, nil, err
	}

	if err := encodePotentials(byFactorColor, nodeColor, prvByColor, pfByColor, caches); err != nil {
		return nil, nil, err
	}

	rvToIndividual := assignIndividuals(fg, nodeColor, prvByColor)

	return pfg, rvToIndividual, nil
}

// buildPRVs implements stage 2's PRV half: one PRV per RV group, with a
// fresh logical variable when the group has more than one member.
func buildPRVs(pfg *pgraph.ParfactorGraph, rvg map[int][]*fgraph.RandVar) (map[int]*pgraph.PRV, error) {
	prvByColor := make(map[int]*pgraph.PRV, len(rvg))
	for _, g := range sortedKeys(rvg) {
		members := rvg[g]
		rep := members[0]

		var lvs []*pgraph.LogVar
		if len(members) > 1 {
			domain := make([]string, len(members))
			for i := range members {
				domain[i] = fmt.Sprintf("l_%d_%d", g, i+1)
			}
			lv, err := pgraph.NewLogVar(fmt.Sprintf("L%d", g), domain)
			if err != nil {
				return nil, err
			}
			lvs = []*pgraph.LogVar{lv}
		}

		prv, err := pgraph.NewPRV(fmt.Sprintf("R%d", g), rep.Range, lvs)
		if err != nil {
			return nil, err
		}
		if err := pfg.AddPRV(prv); err != nil {
			return nil, err
		}
		prvByColor[g] = prv
	}
	return prvByColor, nil
}

// buildParfactors implements stage 2's parfactor half: one parfactor per
// factor group, its scope the distinct PRVs touched by any member
// factor's scope, wired before the parfactor is added because
// AddParfactor checks that every scope PRV is owned by the graph.
func buildParfactors(pfg *pgraph.ParfactorGraph, byFactorColor map[int][]*fgraph.Factor, nodeColor map[string]int, prvByColor map[int]*pgraph.PRV) (map[int]*pgraph.Parfactor, error) {
	pfByColor := make(map[int]*pgraph.Parfactor, len(byFactorColor))
	for _, g := range sortedFactorKeys(byFactorColor) {
		pf := pgraph.NewParfactor(fmt.Sprintf("pf%d", g))
		for _, f := range byFactorColor[g] {
			for _, rv := range f.Scope {
				pf.AppendScope(prvByColor[nodeColor[rv.Name]])
			}
		}
		if err := pfg.AddParfactor(pf); err != nil {
			return nil, err
		}
		pfByColor[g] = pf
	}
	return pfByColor, nil
}

// shareLogicalVariables implements stage 3: for every ascending pair of
// equal-size RV groups linked by a consistent bijection over their
// common incident factors, the later group's PRV adopts the earlier
// group's logical variable.
func shareLogicalVariables(rvg map[int][]*fgraph.RandVar, fg *fgraph.FactorGraph, nodeColor map[string]int, prvByColor map[int]*pgraph.PRV) error {
	keys := sortedKeys(rvg)
	for _, g1 := range keys {
		if len(rvg[g1]) <= 1 {
			continue
		}
		for _, g2 := range keys {
			if g2 <= g1 || len(rvg[g2]) != len(rvg[g1]) {
				continue
			}
			shared, err := hasIdenticalLogVar(fg, nodeColor, rvg[g1], rvg[g2], g1, g2)
			if err != nil {
				return err
			}
			if shared {
				prvByColor[g2].LogVars = prvByColor[g1].LogVars
			}
		}
	}
	return nil
}

// hasIdenticalLogVar tests whether g1 and g2's members are linked by a
// consistent one-to-one correspondence across every factor touching a
// member of both groups: each such factor must be incident to exactly
// one member of g1 and one of g2, and that pairing must agree across
// every factor that witnesses it.
func hasIdenticalLogVar(fg *fgraph.FactorGraph, nodeColor map[string]int, g1, g2 []*fgraph.RandVar, g1Color, g2Color int) (bool, error) {
	inG1 := make(map[string]bool, len(g1))
	for _, rv := range g1 {
		inG1[rv.Name] = true
	}
	inG2 := make(map[string]bool, len(g2))
	for _, rv := range g2 {
		inG2[rv.Name] = true
	}

	common := commonFactors(fg, g1, g2)
	if len(common) == 0 {
		return false, nil
	}

	fwd := make(map[string]string) // g1 rv name -> g2 rv name
	bwd := make(map[string]string)
	for _, f := range common {
		var a, b *fgraph.RandVar
		var countA, countB int
		for _, rv := range f.Scope {
			if inG1[rv.Name] {
				a = rv
				countA++
			}
			if inG2[rv.Name] {
				b = rv
				countB++
			}
		}
		if countA != 1 || countB != 1 {
			return false, errInconsistentLogVarSharing(g1Color, g2Color)
		}
		if prev, ok := fwd[a.Name]; ok && prev != b.Name {
			return false, nil
		}
		if prev, ok := bwd[b.Name]; ok && prev != a.Name {
			return false, nil
		}
		fwd[a.Name] = b.Name
		bwd[b.Name] = a.Name
	}
	return true, nil
}

// commonFactors returns, in fg's factor insertion order, every factor
// incident to at least one member of g1 and at least one member of g2.
func commonFactors(fg *fgraph.FactorGraph, g1, g2 []*fgraph.RandVar) []*fgraph.Factor {
	touches := func(group []*fgraph.RandVar, f *fgraph.Factor) bool {
		for _, rv := range group {
			for _, s := range f.Scope {
				if s.Name == rv.Name {
					return true
				}
			}
		}
		return false
	}

	seen := make(map[string]bool)
	var out []*fgraph.Factor
	for _, rv := range append(append([]*fgraph.RandVar(nil), g1...), g2...) {
		for _, f := range fg.Neighbors(rv.Name) {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			if touches(g1, f) && touches(g2, f) {
				out = append(out, f)
			}
		}
	}
	return out
}

// encodePotentials implements stage 4: verbatim translation when a
// parfactor's scope matches its representative factor's arity, or CRV
// synthesis plus histogram-cache-driven re-encoding otherwise.
func encodePotentials(byFactorColor map[int][]*fgraph.Factor, nodeColor map[string]int, prvByColor map[int]*pgraph.PRV, pfByColor map[int]*pgraph.Parfactor, caches *Caches) error {
	for _, g := range sortedFactorKeys(byFactorColor) {
		repF := byFactorColor[g][0]
		pf := pfByColor[g]

		if len(repF.Scope) == len(pf.Scope) {
			copyPotentialsVerbatim(repF, pf)
			continue
		}

		if err := encodeCountingPotentials(repF, nodeColor, prvByColor, pf, caches); err != nil {
			return err
		}
	}
	return nil
}

func copyPotentialsVerbatim(f *fgraph.Factor, pf *pgraph.Parfactor) {
	for key, val := range f.Table() {
		idx := fgraph.DecodeIndices(key)
		vals := make([]string, len(idx))
		for i, ix := range idx {
			vals[i] = f.Scope[i].Range[ix]
		}
		pf.Set(strings.Join(vals, ","), val)
	}
}

func encodeCountingPotentials(f *fgraph.Factor, nodeColor map[string]int, prvByColor map[int]*pgraph.PRV, pf *pgraph.Parfactor, caches *Caches) error {
	if caches == nil {
		return errMissingCommutativity(f.Name)
	}
	commutativeArgs, ok := caches.CommutativeArgs[f.Name]
	if !ok || len(commutativeArgs) == 0 {
		return errMissingCommutativity(f.Name)
	}
	entries, ok := caches.Histograms[f.Name]
	if !ok {
		return errMissingCommutativity(f.Name)
	}

	commutative := make(map[string]bool, len(commutativeArgs))
	for _, n := range commutativeArgs {
		commutative[n] = true
	}
	var anyC *fgraph.RandVar
	for _, rv := range f.Scope {
		if commutative[rv.Name] {
			anyC = rv
			break
		}
	}
	if anyC == nil {
		return errMissingCommutativity(f.Name)
	}

	p := prvByColor[nodeColor[anyC.Name]]
	if len(p.LogVars) != 1 {
		return errCountingPRVNotUnary(p.Name)
	}
	if err := p.MarkCounting(pf.Name); err != nil {
		return errCountingPRVNotUnary(p.Name)
	}

	reordered := make([]*pgraph.PRV, 0, len(pf.Scope))
	reordered = append(reordered, p)
	for _, other := range pf.Scope {
		if other != p {
			reordered = append(reordered, other)
		}
	}
	pf.Scope = reordered

	for _, e := range entries {
		parts := make([]string, len(e.Histogram))
		for i, c := range e.Histogram {
			parts[i] = strconv.Itoa(c)
		}
		key := strings.Join(parts, ";")
		if len(e.Rest) > 0 {
			restVals := make([]string, len(e.Rest))
			for i, ix := range e.Rest {
				restVals[i] = pf.Scope[i+1].Range[ix]
			}
			key += ", " + strings.Join(restVals, ",")
		}
		pf.Set(key, e.Potential)
	}
	return nil
}

// assignIndividuals implements stage 5: every ground RV maps to its
// PRV's name, applied to the next unused individual from its logical
// variable's domain when the PRV is not propositional.
func assignIndividuals(fg *fgraph.FactorGraph, nodeColor map[string]int, prvByColor map[int]*pgraph.PRV) map[string]string {
	counters := make(map[string]int)
	out := make(map[string]string, len(fg.RandVars()))
	for _, rv := range fg.RandVars() {
		p := prvByColor[nodeColor[rv.Name]]
		if p.Propositional() {
			out[rv.Name] = p.Name
			continue
		}
		idx := counters[p.Name]
		individual := p.LogVars[0].Domain[idx]
		out[rv.Name] = fmt.Sprintf("%s(%s)", p.Name, individual)
		counters[p.Name] = idx + 1
	}
	return out
}
