// Package jsonschema compiles JSON Schema documents (Draft 4 through
// 2020-12) into a typed intermediate representation and evaluates that IR
// against JSON instances, separating the one-time cost of interpreting a
// schema's keywords from the per-instance cost of checking data against it.
package jsonschema
