// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IngestRun is the predicate function for ingestrun builders.
type IngestRun func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
