// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ARSessionEvent is the predicate function for arsessionevent builders.
type ARSessionEvent func(*sql.Selector)

// CollectionEvent is the predicate function for collectionevent builders.
type CollectionEvent func(*sql.Selector)

// ScanEvent is the predicate function for scanevent builders.
type ScanEvent func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
