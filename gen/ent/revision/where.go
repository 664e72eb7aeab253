// Code generated by ent, DO NOT EDIT.

package revision

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldID, id))
}

// DrawingID applies equality check predicate on the "drawing_id" field. It's identical to DrawingIDEQ.
func DrawingID(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldDrawingID, v))
}

// RevisionNumber applies equality check predicate on the "revision_number" field. It's identical to RevisionNumberEQ.
func RevisionNumber(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldRevisionNumber, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldDate, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldDescription, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldAuthor, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldConfidence, v))
}

// DrawingIDEQ applies the EQ predicate on the "drawing_id" field.
func DrawingIDEQ(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldDrawingID, v))
}

// DrawingIDNEQ applies the NEQ predicate on the "drawing_id" field.
func DrawingIDNEQ(v uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldDrawingID, v))
}

// DrawingIDIn applies the In predicate on the "drawing_id" field.
func DrawingIDIn(vs ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldDrawingID, vs...))
}

// DrawingIDNotIn applies the NotIn predicate on the "drawing_id" field.
func DrawingIDNotIn(vs ...uuid.UUID) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldDrawingID, vs...))
}

// RevisionNumberEQ applies the EQ predicate on the "revision_number" field.
func RevisionNumberEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldRevisionNumber, v))
}

// RevisionNumberNEQ applies the NEQ predicate on the "revision_number" field.
func RevisionNumberNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldRevisionNumber, v))
}

// RevisionNumberIn applies the In predicate on the "revision_number" field.
func RevisionNumberIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldRevisionNumber, vs...))
}

// RevisionNumberNotIn applies the NotIn predicate on the "revision_number" field.
func RevisionNumberNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldRevisionNumber, vs...))
}

// RevisionNumberGT applies the GT predicate on the "revision_number" field.
func RevisionNumberGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldRevisionNumber, v))
}

// RevisionNumberGTE applies the GTE predicate on the "revision_number" field.
func RevisionNumberGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldRevisionNumber, v))
}

// RevisionNumberLT applies the LT predicate on the "revision_number" field.
func RevisionNumberLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldRevisionNumber, v))
}

// RevisionNumberLTE applies the LTE predicate on the "revision_number" field.
func RevisionNumberLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldRevisionNumber, v))
}

// RevisionNumberContains applies the Contains predicate on the "revision_number" field.
func RevisionNumberContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldRevisionNumber, v))
}

// RevisionNumberHasPrefix applies the HasPrefix predicate on the "revision_number" field.
func RevisionNumberHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldRevisionNumber, v))
}

// RevisionNumberHasSuffix applies the HasSuffix predicate on the "revision_number" field.
func RevisionNumberHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldRevisionNumber, v))
}

// RevisionNumberEqualFold applies the EqualFold predicate on the "revision_number" field.
func RevisionNumberEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldRevisionNumber, v))
}

// RevisionNumberContainsFold applies the ContainsFold predicate on the "revision_number" field.
func RevisionNumberContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldRevisionNumber, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldDate, v))
}

// DateIsNil applies the IsNil predicate on the "date" field.
func DateIsNil() predicate.Revision {
	return predicate.Revision(sql.FieldIsNull(FieldDate))
}

// DateNotNil applies the NotNil predicate on the "date" field.
func DateNotNil() predicate.Revision {
	return predicate.Revision(sql.FieldNotNull(FieldDate))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldDate, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Revision {
	return predicate.Revision(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Revision {
	return predicate.Revision(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldDescription, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Revision {
	return predicate.Revision(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Revision {
	return predicate.Revision(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldAuthor, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldConfidence, v))
}

// HasDrawing applies the HasEdge predicate on the "drawing" edge.
func HasDrawing() predicate.Revision {
	return predicate.Revision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDrawingWith applies the HasEdge predicate on the "drawing" edge with a given conditions (other predicates).
func HasDrawingWith(preds ...predicate.Drawing) predicate.Revision {
	return predicate.Revision(func(s *sql.Selector) {
		step := newDrawingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.NotPredicates(p))
}
