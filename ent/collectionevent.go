// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hyejin/orbquest/ent/collectionevent"
)

// CollectionEvent is the model entity for the CollectionEvent schema.
type CollectionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in one scan-screen session
	SessionID string `json:"session_id,omitempty"`
	// Caller-authoritative running total carried by the event
	TotalAfter int `json:"total_after,omitempty"`
	// Detected object the sphere was attached to, when known
	ObjectName *string `json:"object_name,omitempty"`
	// Accepted holds the value of the "accepted" field.
	Accepted     bool `json:"accepted,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollectionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collectionevent.FieldAccepted:
			values[i] = new(sql.NullBool)
		case collectionevent.FieldID, collectionevent.FieldSequence, collectionevent.FieldTotalAfter:
			values[i] = new(sql.NullInt64)
		case collectionevent.FieldSessionID, collectionevent.FieldObjectName:
			values[i] = new(sql.NullString)
		case collectionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollectionEvent fields.
func (_m *CollectionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collectionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case collectionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case collectionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case collectionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case collectionevent.FieldTotalAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_after", values[i])
			} else if value.Valid {
				_m.TotalAfter = int(value.Int64)
			}
		case collectionevent.FieldObjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field object_name", values[i])
			} else if value.Valid {
				_m.ObjectName = new(string)
				*_m.ObjectName = value.String
			}
		case collectionevent.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				_m.Accepted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollectionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CollectionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CollectionEvent.
// Note that you need to call CollectionEvent.Unwrap() before calling this method if this CollectionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollectionEvent) Update() *CollectionEventUpdateOne {
	return NewCollectionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollectionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollectionEvent) Unwrap() *CollectionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollectionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollectionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CollectionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("total_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAfter))
	builder.WriteString(", ")
	if v := _m.ObjectName; v != nil {
		builder.WriteString("object_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accepted))
	builder.WriteByte(')')
	return builder.String()
}

// CollectionEvents is a parsable slice of CollectionEvent.
type CollectionEvents []*CollectionEvent
