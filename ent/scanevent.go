// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hyejin/orbquest/ent/scanevent"
)

// ScanEvent is the model entity for the ScanEvent schema.
type ScanEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in one scan-screen session
	SessionID string `json:"session_id,omitempty"`
	// AnchorsCreated holds the value of the "anchors_created" field.
	AnchorsCreated int `json:"anchors_created,omitempty"`
	// ObjectsDetected holds the value of the "objects_detected" field.
	ObjectsDetected int `json:"objects_detected,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanevent.FieldID, scanevent.FieldSequence, scanevent.FieldAnchorsCreated, scanevent.FieldObjectsDetected:
			values[i] = new(sql.NullInt64)
		case scanevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case scanevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanEvent fields.
func (_m *ScanEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scanevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scanevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scanevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case scanevent.FieldAnchorsCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field anchors_created", values[i])
			} else if value.Valid {
				_m.AnchorsCreated = int(value.Int64)
			}
		case scanevent.FieldObjectsDetected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field objects_detected", values[i])
			} else if value.Valid {
				_m.ObjectsDetected = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScanEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScanEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScanEvent.
// Note that you need to call ScanEvent.Unwrap() before calling this method if this ScanEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScanEvent) Update() *ScanEventUpdateOne {
	return NewScanEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScanEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScanEvent) Unwrap() *ScanEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScanEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScanEvent(")
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
	builder.WriteString("anchors_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnchorsCreated))
	builder.WriteString(", ")
	builder.WriteString("objects_detected=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObjectsDetected))
	builder.WriteByte(')')
	return builder.String()
}

// ScanEvents is a parsable slice of ScanEvent.
type ScanEvents []*ScanEvent
