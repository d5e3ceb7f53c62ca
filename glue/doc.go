// Package glue implements the three surfaces the pipeline core exposes
// to the outside world: loading/saving a persisted factor graph and its
// queries, a structural similarity score between two factor graphs, and
// rewriting a query over original RV names into the statements a
// rewritten (lifted) model expects.
//
// Bundle persistence uses plain encoding/json: the bundle is the only
// I/O boundary the core owns, and the graph types already carry custom
// MarshalJSON/UnmarshalJSON (see fgraph/json.go), so there is nothing a
// heavier serialization library would buy here.
package glue
