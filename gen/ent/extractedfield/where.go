// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldID, id))
}

// DrawingID applies equality check predicate on the "drawing_id" field. It's identical to DrawingIDEQ.
func DrawingID(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldDrawingID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldValue, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldConfidence, v))
}

// X applies equality check predicate on the "x" field. It's identical to XEQ.
func X(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldX, v))
}

// Y applies equality check predicate on the "y" field. It's identical to YEQ.
func Y(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldY, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldHeight, v))
}

// DrawingIDEQ applies the EQ predicate on the "drawing_id" field.
func DrawingIDEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldDrawingID, v))
}

// DrawingIDNEQ applies the NEQ predicate on the "drawing_id" field.
func DrawingIDNEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldDrawingID, v))
}

// DrawingIDIn applies the In predicate on the "drawing_id" field.
func DrawingIDIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldDrawingID, vs...))
}

// DrawingIDNotIn applies the NotIn predicate on the "drawing_id" field.
func DrawingIDNotIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldDrawingID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldValue, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldConfidence, v))
}

// XEQ applies the EQ predicate on the "x" field.
func XEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldX, v))
}

// XNEQ applies the NEQ predicate on the "x" field.
func XNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldX, v))
}

// XIn applies the In predicate on the "x" field.
func XIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldX, vs...))
}

// XNotIn applies the NotIn predicate on the "x" field.
func XNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldX, vs...))
}

// XGT applies the GT predicate on the "x" field.
func XGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldX, v))
}

// XGTE applies the GTE predicate on the "x" field.
func XGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldX, v))
}

// XLT applies the LT predicate on the "x" field.
func XLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldX, v))
}

// XLTE applies the LTE predicate on the "x" field.
func XLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldX, v))
}

// YEQ applies the EQ predicate on the "y" field.
func YEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldY, v))
}

// YNEQ applies the NEQ predicate on the "y" field.
func YNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldY, v))
}

// YIn applies the In predicate on the "y" field.
func YIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldY, vs...))
}

// YNotIn applies the NotIn predicate on the "y" field.
func YNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldY, vs...))
}

// YGT applies the GT predicate on the "y" field.
func YGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldY, v))
}

// YGTE applies the GTE predicate on the "y" field.
func YGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldY, v))
}

// YLT applies the LT predicate on the "y" field.
func YLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldY, v))
}

// YLTE applies the LTE predicate on the "y" field.
func YLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldY, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldWidth, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldHeight, v))
}

// HasDrawing applies the HasEdge predicate on the "drawing" edge.
func HasDrawing() predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDrawingWith applies the HasEdge predicate on the "drawing" edge with a given conditions (other predicates).
func HasDrawingWith(preds ...predicate.Drawing) predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := newDrawingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.NotPredicates(p))
}
