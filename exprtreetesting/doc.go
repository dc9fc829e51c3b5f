// Package exprtreetesting provides reusable node types, tick contexts and
// a small test harness for exercising computation trees in tests and
// benchmarks. Nothing in this package belongs on a device; it exists so
// hosts (and this repository's own tests) do not have to reinvent
// instrumented leaves and branches.
package exprtreetesting
