// Package counterpoint generates a counterpoint voice above a cantus firmus
// under first or second species rules.
//
// Generation is generate-and-test: a Shaper lists the admissible pitches at
// every position, a SearchSpace is the cross-product of those sets, and an
// Enumerator runs the Validator over every line of the space, keeping the
// ones that break no rule. A Selector then picks one survivor uniformly.
//
// There is no backtracking or pruning across candidates. Each line is judged
// on its own, so the enumeration is split across workers and the solution
// set does not depend on how many there are.
package counterpoint
