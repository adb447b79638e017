// Package bounds models parameter bounds of covariance models: interval
// validation, value classification against open/closed endpoints, and
// default-value derivation.
//
// 🚀 What is a bound here?
//
//	Every named parameter of a covariance model (variance, length scale,
//	nugget, shape parameters …) is constrained to an interval
//	(Lower, Upper) with a two-character tag describing endpoint openness:
//	  "oo" open–open     lower < v < upper
//	  "oc" open–closed   lower < v ≤ upper
//	  "co" closed–open   lower ≤ v < upper
//	  "cc" closed–closed lower ≤ v ≤ upper   (the default)
//
// Check validates a bound spec structurally, Classify places a value
// against a bound and reports which inequality (if any) it violates,
// CheckArg/CheckModelArg do the same for a named parameter of a Model,
// and Default picks a representative value inside a bound.
//
// ⚙️ Usage:
//
//	import "github.com/srfkit/covmodel/bounds"
//
//	b := bounds.Bounds{Lower: 0, Upper: 1, Type: bounds.OpenOpen}
//	if !bounds.Check(b) { ... }
//	switch bounds.Classify(b, 0) {
//	case bounds.InBounds:       // value accepted
//	case bounds.AtOrBelowLower: // 0 violates the open lower endpoint
//	}
//
// Classification is pure branch logic; nothing here allocates, blocks,
// or retains state between calls.
package bounds
