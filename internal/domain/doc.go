// Package domain defines the core types, service interfaces and error
// taxonomy shared across the pickaxe CLI.
//
// It has no dependencies on the concrete stores, clients or prompts; those
// live in their own packages and satisfy the interfaces declared here.
package domain
