// Code generated by ent, DO NOT EDIT.

package balloon

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldID, id))
}

// DrawingID applies equality check predicate on the "drawing_id" field. It's identical to DrawingIDEQ.
func DrawingID(v uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldDrawingID, v))
}

// BalloonNumber applies equality check predicate on the "balloon_number" field. It's identical to BalloonNumberEQ.
func BalloonNumber(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldBalloonNumber, v))
}

// PartName applies equality check predicate on the "part_name" field. It's identical to PartNameEQ.
func PartName(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldPartName, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldQuantity, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldConfidence, v))
}

// X applies equality check predicate on the "x" field. It's identical to XEQ.
func X(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldX, v))
}

// Y applies equality check predicate on the "y" field. It's identical to YEQ.
func Y(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldY, v))
}

// DrawingIDEQ applies the EQ predicate on the "drawing_id" field.
func DrawingIDEQ(v uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldDrawingID, v))
}

// DrawingIDNEQ applies the NEQ predicate on the "drawing_id" field.
func DrawingIDNEQ(v uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldDrawingID, v))
}

// DrawingIDIn applies the In predicate on the "drawing_id" field.
func DrawingIDIn(vs ...uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldDrawingID, vs...))
}

// DrawingIDNotIn applies the NotIn predicate on the "drawing_id" field.
func DrawingIDNotIn(vs ...uuid.UUID) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldDrawingID, vs...))
}

// BalloonNumberEQ applies the EQ predicate on the "balloon_number" field.
func BalloonNumberEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldBalloonNumber, v))
}

// BalloonNumberNEQ applies the NEQ predicate on the "balloon_number" field.
func BalloonNumberNEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldBalloonNumber, v))
}

// BalloonNumberIn applies the In predicate on the "balloon_number" field.
func BalloonNumberIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldBalloonNumber, vs...))
}

// BalloonNumberNotIn applies the NotIn predicate on the "balloon_number" field.
func BalloonNumberNotIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldBalloonNumber, vs...))
}

// BalloonNumberGT applies the GT predicate on the "balloon_number" field.
func BalloonNumberGT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldBalloonNumber, v))
}

// BalloonNumberGTE applies the GTE predicate on the "balloon_number" field.
func BalloonNumberGTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldBalloonNumber, v))
}

// BalloonNumberLT applies the LT predicate on the "balloon_number" field.
func BalloonNumberLT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldBalloonNumber, v))
}

// BalloonNumberLTE applies the LTE predicate on the "balloon_number" field.
func BalloonNumberLTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldBalloonNumber, v))
}

// PartNameEQ applies the EQ predicate on the "part_name" field.
func PartNameEQ(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldPartName, v))
}

// PartNameNEQ applies the NEQ predicate on the "part_name" field.
func PartNameNEQ(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldPartName, v))
}

// PartNameIn applies the In predicate on the "part_name" field.
func PartNameIn(vs ...string) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldPartName, vs...))
}

// PartNameNotIn applies the NotIn predicate on the "part_name" field.
func PartNameNotIn(vs ...string) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldPartName, vs...))
}

// PartNameGT applies the GT predicate on the "part_name" field.
func PartNameGT(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldPartName, v))
}

// PartNameGTE applies the GTE predicate on the "part_name" field.
func PartNameGTE(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldPartName, v))
}

// PartNameLT applies the LT predicate on the "part_name" field.
func PartNameLT(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldPartName, v))
}

// PartNameLTE applies the LTE predicate on the "part_name" field.
func PartNameLTE(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldPartName, v))
}

// PartNameContains applies the Contains predicate on the "part_name" field.
func PartNameContains(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldContains(FieldPartName, v))
}

// PartNameHasPrefix applies the HasPrefix predicate on the "part_name" field.
func PartNameHasPrefix(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldHasPrefix(FieldPartName, v))
}

// PartNameHasSuffix applies the HasSuffix predicate on the "part_name" field.
func PartNameHasSuffix(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldHasSuffix(FieldPartName, v))
}

// PartNameIsNil applies the IsNil predicate on the "part_name" field.
func PartNameIsNil() predicate.Balloon {
	return predicate.Balloon(sql.FieldIsNull(FieldPartName))
}

// PartNameNotNil applies the NotNil predicate on the "part_name" field.
func PartNameNotNil() predicate.Balloon {
	return predicate.Balloon(sql.FieldNotNull(FieldPartName))
}

// PartNameEqualFold applies the EqualFold predicate on the "part_name" field.
func PartNameEqualFold(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldEqualFold(FieldPartName, v))
}

// PartNameContainsFold applies the ContainsFold predicate on the "part_name" field.
func PartNameContainsFold(v string) predicate.Balloon {
	return predicate.Balloon(sql.FieldContainsFold(FieldPartName, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldQuantity, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldConfidence, v))
}

// XEQ applies the EQ predicate on the "x" field.
func XEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldX, v))
}

// XNEQ applies the NEQ predicate on the "x" field.
func XNEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldX, v))
}

// XIn applies the In predicate on the "x" field.
func XIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldX, vs...))
}

// XNotIn applies the NotIn predicate on the "x" field.
func XNotIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldX, vs...))
}

// XGT applies the GT predicate on the "x" field.
func XGT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldX, v))
}

// XGTE applies the GTE predicate on the "x" field.
func XGTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldX, v))
}

// XLT applies the LT predicate on the "x" field.
func XLT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldX, v))
}

// XLTE applies the LTE predicate on the "x" field.
func XLTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldX, v))
}

// YEQ applies the EQ predicate on the "y" field.
func YEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldEQ(FieldY, v))
}

// YNEQ applies the NEQ predicate on the "y" field.
func YNEQ(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNEQ(FieldY, v))
}

// YIn applies the In predicate on the "y" field.
func YIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldIn(FieldY, vs...))
}

// YNotIn applies the NotIn predicate on the "y" field.
func YNotIn(vs ...int) predicate.Balloon {
	return predicate.Balloon(sql.FieldNotIn(FieldY, vs...))
}

// YGT applies the GT predicate on the "y" field.
func YGT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGT(FieldY, v))
}

// YGTE applies the GTE predicate on the "y" field.
func YGTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldGTE(FieldY, v))
}

// YLT applies the LT predicate on the "y" field.
func YLT(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLT(FieldY, v))
}

// YLTE applies the LTE predicate on the "y" field.
func YLTE(v int) predicate.Balloon {
	return predicate.Balloon(sql.FieldLTE(FieldY, v))
}

// HasDrawing applies the HasEdge predicate on the "drawing" edge.
func HasDrawing() predicate.Balloon {
	return predicate.Balloon(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDrawingWith applies the HasEdge predicate on the "drawing" edge with a given conditions (other predicates).
func HasDrawingWith(preds ...predicate.Drawing) predicate.Balloon {
	return predicate.Balloon(func(s *sql.Selector) {
		step := newDrawingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Balloon) predicate.Balloon {
	return predicate.Balloon(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Balloon) predicate.Balloon {
	return predicate.Balloon(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Balloon) predicate.Balloon {
	return predicate.Balloon(sql.NotPredicates(p))
}
