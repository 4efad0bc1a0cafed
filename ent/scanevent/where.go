// Code generated by ent, DO NOT EDIT.

package scanevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hyejin/orbquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldSessionID, v))
}

// AnchorsCreated applies equality check predicate on the "anchors_created" field. It's identical to AnchorsCreatedEQ.
func AnchorsCreated(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldAnchorsCreated, v))
}

// ObjectsDetected applies equality check predicate on the "objects_detected" field. It's identical to ObjectsDetectedEQ.
func ObjectsDetected(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldObjectsDetected, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// AnchorsCreatedEQ applies the EQ predicate on the "anchors_created" field.
func AnchorsCreatedEQ(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldAnchorsCreated, v))
}

// AnchorsCreatedNEQ applies the NEQ predicate on the "anchors_created" field.
func AnchorsCreatedNEQ(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNEQ(FieldAnchorsCreated, v))
}

// AnchorsCreatedIn applies the In predicate on the "anchors_created" field.
func AnchorsCreatedIn(vs ...int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldIn(FieldAnchorsCreated, vs...))
}

// AnchorsCreatedNotIn applies the NotIn predicate on the "anchors_created" field.
func AnchorsCreatedNotIn(vs ...int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNotIn(FieldAnchorsCreated, vs...))
}

// AnchorsCreatedGT applies the GT predicate on the "anchors_created" field.
func AnchorsCreatedGT(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGT(FieldAnchorsCreated, v))
}

// AnchorsCreatedGTE applies the GTE predicate on the "anchors_created" field.
func AnchorsCreatedGTE(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGTE(FieldAnchorsCreated, v))
}

// AnchorsCreatedLT applies the LT predicate on the "anchors_created" field.
func AnchorsCreatedLT(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLT(FieldAnchorsCreated, v))
}

// AnchorsCreatedLTE applies the LTE predicate on the "anchors_created" field.
func AnchorsCreatedLTE(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLTE(FieldAnchorsCreated, v))
}

// ObjectsDetectedEQ applies the EQ predicate on the "objects_detected" field.
func ObjectsDetectedEQ(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldEQ(FieldObjectsDetected, v))
}

// ObjectsDetectedNEQ applies the NEQ predicate on the "objects_detected" field.
func ObjectsDetectedNEQ(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNEQ(FieldObjectsDetected, v))
}

// ObjectsDetectedIn applies the In predicate on the "objects_detected" field.
func ObjectsDetectedIn(vs ...int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldIn(FieldObjectsDetected, vs...))
}

// ObjectsDetectedNotIn applies the NotIn predicate on the "objects_detected" field.
func ObjectsDetectedNotIn(vs ...int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldNotIn(FieldObjectsDetected, vs...))
}

// ObjectsDetectedGT applies the GT predicate on the "objects_detected" field.
func ObjectsDetectedGT(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGT(FieldObjectsDetected, v))
}

// ObjectsDetectedGTE applies the GTE predicate on the "objects_detected" field.
func ObjectsDetectedGTE(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldGTE(FieldObjectsDetected, v))
}

// ObjectsDetectedLT applies the LT predicate on the "objects_detected" field.
func ObjectsDetectedLT(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLT(FieldObjectsDetected, v))
}

// ObjectsDetectedLTE applies the LTE predicate on the "objects_detected" field.
func ObjectsDetectedLTE(v int) predicate.ScanEvent {
	return predicate.ScanEvent(sql.FieldLTE(FieldObjectsDetected, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScanEvent) predicate.ScanEvent {
	return predicate.ScanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScanEvent) predicate.ScanEvent {
	return predicate.ScanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScanEvent) predicate.ScanEvent {
	return predicate.ScanEvent(sql.NotPredicates(p))
}
