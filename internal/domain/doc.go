// Package domain contains types shared across the domain sub-packages.
// The age calculator itself lives in domain/age; this root package holds
// the sentinel errors and the field-level ValidationError used at the
// adapter boundaries.
package domain
