// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Balloon is the predicate function for balloon builders.
type Balloon func(*sql.Selector)

// Drawing is the predicate function for drawing builders.
type Drawing func(*sql.Selector)

// ExtractedField is the predicate function for extractedfield builders.
type ExtractedField func(*sql.Selector)

// Revision is the predicate function for revision builders.
type Revision func(*sql.Selector)
