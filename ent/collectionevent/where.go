// Code generated by ent, DO NOT EDIT.

package collectionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hyejin/orbquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldSessionID, v))
}

// TotalAfter applies equality check predicate on the "total_after" field. It's identical to TotalAfterEQ.
func TotalAfter(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldTotalAfter, v))
}

// ObjectName applies equality check predicate on the "object_name" field. It's identical to ObjectNameEQ.
func ObjectName(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldObjectName, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldAccepted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TotalAfterEQ applies the EQ predicate on the "total_after" field.
func TotalAfterEQ(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldTotalAfter, v))
}

// TotalAfterNEQ applies the NEQ predicate on the "total_after" field.
func TotalAfterNEQ(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldTotalAfter, v))
}

// TotalAfterIn applies the In predicate on the "total_after" field.
func TotalAfterIn(vs ...int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIn(FieldTotalAfter, vs...))
}

// TotalAfterNotIn applies the NotIn predicate on the "total_after" field.
func TotalAfterNotIn(vs ...int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotIn(FieldTotalAfter, vs...))
}

// TotalAfterGT applies the GT predicate on the "total_after" field.
func TotalAfterGT(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGT(FieldTotalAfter, v))
}

// TotalAfterGTE applies the GTE predicate on the "total_after" field.
func TotalAfterGTE(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGTE(FieldTotalAfter, v))
}

// TotalAfterLT applies the LT predicate on the "total_after" field.
func TotalAfterLT(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLT(FieldTotalAfter, v))
}

// TotalAfterLTE applies the LTE predicate on the "total_after" field.
func TotalAfterLTE(v int) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLTE(FieldTotalAfter, v))
}

// ObjectNameEQ applies the EQ predicate on the "object_name" field.
func ObjectNameEQ(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldObjectName, v))
}

// ObjectNameNEQ applies the NEQ predicate on the "object_name" field.
func ObjectNameNEQ(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldObjectName, v))
}

// ObjectNameIn applies the In predicate on the "object_name" field.
func ObjectNameIn(vs ...string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIn(FieldObjectName, vs...))
}

// ObjectNameNotIn applies the NotIn predicate on the "object_name" field.
func ObjectNameNotIn(vs ...string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotIn(FieldObjectName, vs...))
}

// ObjectNameGT applies the GT predicate on the "object_name" field.
func ObjectNameGT(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGT(FieldObjectName, v))
}

// ObjectNameGTE applies the GTE predicate on the "object_name" field.
func ObjectNameGTE(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldGTE(FieldObjectName, v))
}

// ObjectNameLT applies the LT predicate on the "object_name" field.
func ObjectNameLT(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLT(FieldObjectName, v))
}

// ObjectNameLTE applies the LTE predicate on the "object_name" field.
func ObjectNameLTE(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldLTE(FieldObjectName, v))
}

// ObjectNameContains applies the Contains predicate on the "object_name" field.
func ObjectNameContains(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldContains(FieldObjectName, v))
}

// ObjectNameHasPrefix applies the HasPrefix predicate on the "object_name" field.
func ObjectNameHasPrefix(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldHasPrefix(FieldObjectName, v))
}

// ObjectNameHasSuffix applies the HasSuffix predicate on the "object_name" field.
func ObjectNameHasSuffix(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldHasSuffix(FieldObjectName, v))
}

// ObjectNameIsNil applies the IsNil predicate on the "object_name" field.
func ObjectNameIsNil() predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldIsNull(FieldObjectName))
}

// ObjectNameNotNil applies the NotNil predicate on the "object_name" field.
func ObjectNameNotNil() predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNotNull(FieldObjectName))
}

// ObjectNameEqualFold applies the EqualFold predicate on the "object_name" field.
func ObjectNameEqualFold(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEqualFold(FieldObjectName, v))
}

// ObjectNameContainsFold applies the ContainsFold predicate on the "object_name" field.
func ObjectNameContainsFold(v string) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldContainsFold(FieldObjectName, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.FieldNEQ(FieldAccepted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollectionEvent) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollectionEvent) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollectionEvent) predicate.CollectionEvent {
	return predicate.CollectionEvent(sql.NotPredicates(p))
}
