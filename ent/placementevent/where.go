// Code generated by ent, DO NOT EDIT.

package placementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/futbolquiz/futbolquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// PlayerName applies equality check predicate on the "player_name" field. It's identical to PlayerNameEQ.
func PlayerName(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldPlayerName, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCategoryID, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCorrect, v))
}

// CellsFilled applies equality check predicate on the "cells_filled" field. It's identical to CellsFilledEQ.
func CellsFilled(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCellsFilled, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldPoints, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// PlayerNameEQ applies the EQ predicate on the "player_name" field.
func PlayerNameEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldPlayerName, v))
}

// PlayerNameNEQ applies the NEQ predicate on the "player_name" field.
func PlayerNameNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldPlayerName, v))
}

// PlayerNameIn applies the In predicate on the "player_name" field.
func PlayerNameIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldPlayerName, vs...))
}

// PlayerNameNotIn applies the NotIn predicate on the "player_name" field.
func PlayerNameNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldPlayerName, vs...))
}

// PlayerNameGT applies the GT predicate on the "player_name" field.
func PlayerNameGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldPlayerName, v))
}

// PlayerNameGTE applies the GTE predicate on the "player_name" field.
func PlayerNameGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldPlayerName, v))
}

// PlayerNameLT applies the LT predicate on the "player_name" field.
func PlayerNameLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldPlayerName, v))
}

// PlayerNameLTE applies the LTE predicate on the "player_name" field.
func PlayerNameLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldPlayerName, v))
}

// PlayerNameContains applies the Contains predicate on the "player_name" field.
func PlayerNameContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldPlayerName, v))
}

// PlayerNameHasPrefix applies the HasPrefix predicate on the "player_name" field.
func PlayerNameHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldPlayerName, v))
}

// PlayerNameHasSuffix applies the HasSuffix predicate on the "player_name" field.
func PlayerNameHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldPlayerName, v))
}

// PlayerNameEqualFold applies the EqualFold predicate on the "player_name" field.
func PlayerNameEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldPlayerName, v))
}

// PlayerNameContainsFold applies the ContainsFold predicate on the "player_name" field.
func PlayerNameContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldPlayerName, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldCategoryID, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CellsFilledEQ applies the EQ predicate on the "cells_filled" field.
func CellsFilledEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCellsFilled, v))
}

// CellsFilledNEQ applies the NEQ predicate on the "cells_filled" field.
func CellsFilledNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldCellsFilled, v))
}

// CellsFilledIn applies the In predicate on the "cells_filled" field.
func CellsFilledIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldCellsFilled, vs...))
}

// CellsFilledNotIn applies the NotIn predicate on the "cells_filled" field.
func CellsFilledNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldCellsFilled, vs...))
}

// CellsFilledGT applies the GT predicate on the "cells_filled" field.
func CellsFilledGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldCellsFilled, v))
}

// CellsFilledGTE applies the GTE predicate on the "cells_filled" field.
func CellsFilledGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldCellsFilled, v))
}

// CellsFilledLT applies the LT predicate on the "cells_filled" field.
func CellsFilledLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldCellsFilled, v))
}

// CellsFilledLTE applies the LTE predicate on the "cells_filled" field.
func CellsFilledLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldCellsFilled, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldPoints, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.NotPredicates(p))
}
