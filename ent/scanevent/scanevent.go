// Code generated by ent, DO NOT EDIT.

package scanevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scanevent type in the database.
	Label = "scan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAnchorsCreated holds the string denoting the anchors_created field in the database.
	FieldAnchorsCreated = "anchors_created"
	// FieldObjectsDetected holds the string denoting the objects_detected field in the database.
	FieldObjectsDetected = "objects_detected"
	// Table holds the table name of the scanevent in the database.
	Table = "scan_events"
)

// Columns holds all SQL columns for scanevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAnchorsCreated,
	FieldObjectsDetected,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultAnchorsCreated holds the default value on creation for the "anchors_created" field.
	DefaultAnchorsCreated int
	// AnchorsCreatedValidator is a validator for the "anchors_created" field. It is called by the builders before save.
	AnchorsCreatedValidator func(int) error
	// DefaultObjectsDetected holds the default value on creation for the "objects_detected" field.
	DefaultObjectsDetected int
	// ObjectsDetectedValidator is a validator for the "objects_detected" field. It is called by the builders before save.
	ObjectsDetectedValidator func(int) error
)

// OrderOption defines the ordering options for the ScanEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAnchorsCreated orders the results by the anchors_created field.
func ByAnchorsCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnchorsCreated, opts...).ToFunc()
}

// ByObjectsDetected orders the results by the objects_detected field.
func ByObjectsDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectsDetected, opts...).ToFunc()
}
