// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// DrawingUpdate is the builder for updating Drawing entities.
type DrawingUpdate struct {
	config
	hooks    []Hook
	mutation *DrawingMutation
}

// Where appends a list predicates to the DrawingUpdate builder.
func (_u *DrawingUpdate) Where(ps ...predicate.Drawing) *DrawingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPdfFilename sets the "pdf_filename" field.
func (_u *DrawingUpdate) SetPdfFilename(v string) *DrawingUpdate {
	_u.mutation.SetPdfFilename(v)
	return _u
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillablePdfFilename(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetPdfFilename(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DrawingUpdate) SetStoragePath(v string) *DrawingUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableStoragePath(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetThumbnailPath sets the "thumbnail_path" field.
func (_u *DrawingUpdate) SetThumbnailPath(v string) *DrawingUpdate {
	_u.mutation.SetThumbnailPath(v)
	return _u
}

// SetNillableThumbnailPath sets the "thumbnail_path" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableThumbnailPath(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetThumbnailPath(*v)
	}
	return _u
}

// ClearThumbnailPath clears the value of the "thumbnail_path" field.
func (_u *DrawingUpdate) ClearThumbnailPath() *DrawingUpdate {
	_u.mutation.ClearThumbnailPath()
	return _u
}

// SetRotation sets the "rotation" field.
func (_u *DrawingUpdate) SetRotation(v int) *DrawingUpdate {
	_u.mutation.ResetRotation()
	_u.mutation.SetRotation(v)
	return _u
}

// SetNillableRotation sets the "rotation" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableRotation(v *int) *DrawingUpdate {
	if v != nil {
		_u.SetRotation(*v)
	}
	return _u
}

// AddRotation adds value to the "rotation" field.
func (_u *DrawingUpdate) AddRotation(v int) *DrawingUpdate {
	_u.mutation.AddRotation(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DrawingUpdate) SetStatus(v string) *DrawingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableStatus(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *DrawingUpdate) SetClassification(v string) *DrawingUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableClassification(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *DrawingUpdate) ClearClassification() *DrawingUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_u *DrawingUpdate) SetClassificationConfidence(v float64) *DrawingUpdate {
	_u.mutation.ResetClassificationConfidence()
	_u.mutation.SetClassificationConfidence(v)
	return _u
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableClassificationConfidence(v *float64) *DrawingUpdate {
	if v != nil {
		_u.SetClassificationConfidence(*v)
	}
	return _u
}

// AddClassificationConfidence adds value to the "classification_confidence" field.
func (_u *DrawingUpdate) AddClassificationConfidence(v float64) *DrawingUpdate {
	_u.mutation.AddClassificationConfidence(v)
	return _u
}

// ClearClassificationConfidence clears the value of the "classification_confidence" field.
func (_u *DrawingUpdate) ClearClassificationConfidence() *DrawingUpdate {
	_u.mutation.ClearClassificationConfidence()
	return _u
}

// SetClassificationReason sets the "classification_reason" field.
func (_u *DrawingUpdate) SetClassificationReason(v string) *DrawingUpdate {
	_u.mutation.SetClassificationReason(v)
	return _u
}

// SetNillableClassificationReason sets the "classification_reason" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableClassificationReason(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetClassificationReason(*v)
	}
	return _u
}

// ClearClassificationReason clears the value of the "classification_reason" field.
func (_u *DrawingUpdate) ClearClassificationReason() *DrawingUpdate {
	_u.mutation.ClearClassificationReason()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DrawingUpdate) SetSummary(v string) *DrawingUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableSummary(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DrawingUpdate) ClearSummary() *DrawingUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetShapeFeatures sets the "shape_features" field.
func (_u *DrawingUpdate) SetShapeFeatures(v json.RawMessage) *DrawingUpdate {
	_u.mutation.SetShapeFeatures(v)
	return _u
}

// AppendShapeFeatures appends value to the "shape_features" field.
func (_u *DrawingUpdate) AppendShapeFeatures(v json.RawMessage) *DrawingUpdate {
	_u.mutation.AppendShapeFeatures(v)
	return _u
}

// ClearShapeFeatures clears the value of the "shape_features" field.
func (_u *DrawingUpdate) ClearShapeFeatures() *DrawingUpdate {
	_u.mutation.ClearShapeFeatures()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DrawingUpdate) SetErrorMessage(v string) *DrawingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableErrorMessage(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DrawingUpdate) ClearErrorMessage() *DrawingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *DrawingUpdate) SetCreatedBy(v string) *DrawingUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableCreatedBy(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DrawingUpdate) SetUploadedAt(v time.Time) *DrawingUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableUploadedAt(v *time.Time) *DrawingUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *DrawingUpdate) SetAnalyzedAt(v time.Time) *DrawingUpdate {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableAnalyzedAt(v *time.Time) *DrawingUpdate {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *DrawingUpdate) ClearAnalyzedAt() *DrawingUpdate {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *DrawingUpdate) SetApprovedAt(v time.Time) *DrawingUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableApprovedAt(v *time.Time) *DrawingUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *DrawingUpdate) ClearApprovedAt() *DrawingUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_u *DrawingUpdate) AddFieldIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_u *DrawingUpdate) AddFields(v ...*ExtractedField) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddBalloonIDs adds the "balloons" edge to the Balloon entity by IDs.
func (_u *DrawingUpdate) AddBalloonIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.AddBalloonIDs(ids...)
	return _u
}

// AddBalloons adds the "balloons" edges to the Balloon entity.
func (_u *DrawingUpdate) AddBalloons(v ...*Balloon) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBalloonIDs(ids...)
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_u *DrawingUpdate) AddRevisionIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_u *DrawingUpdate) AddRevisions(v ...*Revision) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// Mutation returns the DrawingMutation object of the builder.
func (_u *DrawingUpdate) Mutation() *DrawingMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the ExtractedField entity.
func (_u *DrawingUpdate) ClearFields() *DrawingUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractedField entities by IDs.
func (_u *DrawingUpdate) RemoveFieldIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractedField entities.
func (_u *DrawingUpdate) RemoveFields(v ...*ExtractedField) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearBalloons clears all "balloons" edges to the Balloon entity.
func (_u *DrawingUpdate) ClearBalloons() *DrawingUpdate {
	_u.mutation.ClearBalloons()
	return _u
}

// RemoveBalloonIDs removes the "balloons" edge to Balloon entities by IDs.
func (_u *DrawingUpdate) RemoveBalloonIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.RemoveBalloonIDs(ids...)
	return _u
}

// RemoveBalloons removes "balloons" edges to Balloon entities.
func (_u *DrawingUpdate) RemoveBalloons(v ...*Balloon) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBalloonIDs(ids...)
}

// ClearRevisions clears all "revisions" edges to the Revision entity.
func (_u *DrawingUpdate) ClearRevisions() *DrawingUpdate {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Revision entities by IDs.
func (_u *DrawingUpdate) RemoveRevisionIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Revision entities.
func (_u *DrawingUpdate) RemoveRevisions(v ...*Revision) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrawingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrawingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrawingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrawingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrawingUpdate) check() error {
	if v, ok := _u.mutation.PdfFilename(); ok {
		if err := drawing.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "Drawing.pdf_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := drawing.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Drawing.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := drawing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Drawing.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := drawing.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Drawing.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *DrawingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drawing.Table, drawing.Columns, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PdfFilename(); ok {
		_spec.SetField(drawing.FieldPdfFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(drawing.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailPath(); ok {
		_spec.SetField(drawing.FieldThumbnailPath, field.TypeString, value)
	}
	if _u.mutation.ThumbnailPathCleared() {
		_spec.ClearField(drawing.FieldThumbnailPath, field.TypeString)
	}
	if value, ok := _u.mutation.Rotation(); ok {
		_spec.SetField(drawing.FieldRotation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRotation(); ok {
		_spec.AddField(drawing.FieldRotation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(drawing.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(drawing.FieldClassification, field.TypeString, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(drawing.FieldClassification, field.TypeString)
	}
	if value, ok := _u.mutation.ClassificationConfidence(); ok {
		_spec.SetField(drawing.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClassificationConfidence(); ok {
		_spec.AddField(drawing.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ClassificationConfidenceCleared() {
		_spec.ClearField(drawing.FieldClassificationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClassificationReason(); ok {
		_spec.SetField(drawing.FieldClassificationReason, field.TypeString, value)
	}
	if _u.mutation.ClassificationReasonCleared() {
		_spec.ClearField(drawing.FieldClassificationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(drawing.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(drawing.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ShapeFeatures(); ok {
		_spec.SetField(drawing.FieldShapeFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedShapeFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, drawing.FieldShapeFeatures, value)
		})
	}
	if _u.mutation.ShapeFeaturesCleared() {
		_spec.ClearField(drawing.FieldShapeFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(drawing.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(drawing.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(drawing.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(drawing.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(drawing.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(drawing.FieldAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(drawing.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(drawing.FieldApprovedAt, field.TypeTime)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldsTable,
			Columns: []string{drawing.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldsTable,
			Columns: []string{drawing.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldsTable,
			Columns: []string{drawing.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BalloonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.BalloonsTable,
			Columns: []string{drawing.BalloonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBalloonsIDs(); len(nodes) > 0 && !_u.mutation.BalloonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.BalloonsTable,
			Columns: []string{drawing.BalloonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BalloonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.BalloonsTable,
			Columns: []string{drawing.BalloonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.RevisionsTable,
			Columns: []string{drawing.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.RevisionsTable,
			Columns: []string{drawing.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.RevisionsTable,
			Columns: []string{drawing.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drawing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrawingUpdateOne is the builder for updating a single Drawing entity.
type DrawingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrawingMutation
}

// SetPdfFilename sets the "pdf_filename" field.
func (_u *DrawingUpdateOne) SetPdfFilename(v string) *DrawingUpdateOne {
	_u.mutation.SetPdfFilename(v)
	return _u
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillablePdfFilename(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetPdfFilename(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *DrawingUpdateOne) SetStoragePath(v string) *DrawingUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableStoragePath(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetThumbnailPath sets the "thumbnail_path" field.
func (_u *DrawingUpdateOne) SetThumbnailPath(v string) *DrawingUpdateOne {
	_u.mutation.SetThumbnailPath(v)
	return _u
}

// SetNillableThumbnailPath sets the "thumbnail_path" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableThumbnailPath(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetThumbnailPath(*v)
	}
	return _u
}

// ClearThumbnailPath clears the value of the "thumbnail_path" field.
func (_u *DrawingUpdateOne) ClearThumbnailPath() *DrawingUpdateOne {
	_u.mutation.ClearThumbnailPath()
	return _u
}

// SetRotation sets the "rotation" field.
func (_u *DrawingUpdateOne) SetRotation(v int) *DrawingUpdateOne {
	_u.mutation.ResetRotation()
	_u.mutation.SetRotation(v)
	return _u
}

// SetNillableRotation sets the "rotation" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableRotation(v *int) *DrawingUpdateOne {
	if v != nil {
		_u.SetRotation(*v)
	}
	return _u
}

// AddRotation adds value to the "rotation" field.
func (_u *DrawingUpdateOne) AddRotation(v int) *DrawingUpdateOne {
	_u.mutation.AddRotation(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DrawingUpdateOne) SetStatus(v string) *DrawingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableStatus(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *DrawingUpdateOne) SetClassification(v string) *DrawingUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableClassification(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *DrawingUpdateOne) ClearClassification() *DrawingUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_u *DrawingUpdateOne) SetClassificationConfidence(v float64) *DrawingUpdateOne {
	_u.mutation.ResetClassificationConfidence()
	_u.mutation.SetClassificationConfidence(v)
	return _u
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableClassificationConfidence(v *float64) *DrawingUpdateOne {
	if v != nil {
		_u.SetClassificationConfidence(*v)
	}
	return _u
}

// AddClassificationConfidence adds value to the "classification_confidence" field.
func (_u *DrawingUpdateOne) AddClassificationConfidence(v float64) *DrawingUpdateOne {
	_u.mutation.AddClassificationConfidence(v)
	return _u
}

// ClearClassificationConfidence clears the value of the "classification_confidence" field.
func (_u *DrawingUpdateOne) ClearClassificationConfidence() *DrawingUpdateOne {
	_u.mutation.ClearClassificationConfidence()
	return _u
}

// SetClassificationReason sets the "classification_reason" field.
func (_u *DrawingUpdateOne) SetClassificationReason(v string) *DrawingUpdateOne {
	_u.mutation.SetClassificationReason(v)
	return _u
}

// SetNillableClassificationReason sets the "classification_reason" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableClassificationReason(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetClassificationReason(*v)
	}
	return _u
}

// ClearClassificationReason clears the value of the "classification_reason" field.
func (_u *DrawingUpdateOne) ClearClassificationReason() *DrawingUpdateOne {
	_u.mutation.ClearClassificationReason()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DrawingUpdateOne) SetSummary(v string) *DrawingUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableSummary(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DrawingUpdateOne) ClearSummary() *DrawingUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetShapeFeatures sets the "shape_features" field.
func (_u *DrawingUpdateOne) SetShapeFeatures(v json.RawMessage) *DrawingUpdateOne {
	_u.mutation.SetShapeFeatures(v)
	return _u
}

// AppendShapeFeatures appends value to the "shape_features" field.
func (_u *DrawingUpdateOne) AppendShapeFeatures(v json.RawMessage) *DrawingUpdateOne {
	_u.mutation.AppendShapeFeatures(v)
	return _u
}

// ClearShapeFeatures clears the value of the "shape_features" field.
func (_u *DrawingUpdateOne) ClearShapeFeatures() *DrawingUpdateOne {
	_u.mutation.ClearShapeFeatures()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DrawingUpdateOne) SetErrorMessage(v string) *DrawingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableErrorMessage(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DrawingUpdateOne) ClearErrorMessage() *DrawingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *DrawingUpdateOne) SetCreatedBy(v string) *DrawingUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableCreatedBy(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DrawingUpdateOne) SetUploadedAt(v time.Time) *DrawingUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableUploadedAt(v *time.Time) *DrawingUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *DrawingUpdateOne) SetAnalyzedAt(v time.Time) *DrawingUpdateOne {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableAnalyzedAt(v *time.Time) *DrawingUpdateOne {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *DrawingUpdateOne) ClearAnalyzedAt() *DrawingUpdateOne {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *DrawingUpdateOne) SetApprovedAt(v time.Time) *DrawingUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableApprovedAt(v *time.Time) *DrawingUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *DrawingUpdateOne) ClearApprovedAt() *DrawingUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_u *DrawingUpdateOne) AddFieldIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_u *DrawingUpdateOne) AddFields(v ...*ExtractedField) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddBalloonIDs adds the "balloons" edge to the Balloon entity by IDs.
func (_u *DrawingUpdateOne) AddBalloonIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.AddBalloonIDs(ids...)
	return _u
}

// AddBalloons adds the "balloons" edges to the Balloon entity.
func (_u *DrawingUpdateOne) AddBalloons(v ...*Balloon) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBalloonIDs(ids...)
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_u *DrawingUpdateOne) AddRevisionIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_u *DrawingUpdateOne) AddRevisions(v ...*Revision) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// Mutation returns the DrawingMutation object of the builder.
func (_u *DrawingUpdateOne) Mutation() *DrawingMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the ExtractedField entity.
func (_u *DrawingUpdateOne) ClearFields() *DrawingUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractedField entities by IDs.
func (_u *DrawingUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractedField entities.
func (_u *DrawingUpdateOne) RemoveFields(v ...*ExtractedField) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearBalloons clears all "balloons" edges to the Balloon entity.
func (_u *DrawingUpdateOne) ClearBalloons() *DrawingUpdateOne {
	_u.mutation.ClearBalloons()
	return _u
}

// RemoveBalloonIDs removes the "balloons" edge to Balloon entities by IDs.
func (_u *DrawingUpdateOne) RemoveBalloonIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.RemoveBalloonIDs(ids...)
	return _u
}

// RemoveBalloons removes "balloons" edges to Balloon entities.
func (_u *DrawingUpdateOne) RemoveBalloons(v ...*Balloon) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBalloonIDs(ids...)
}

// ClearRevisions clears all "revisions" edges to the Revision entity.
func (_u *DrawingUpdateOne) ClearRevisions() *DrawingUpdateOne {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Revision entities by IDs.
func (_u *DrawingUpdateOne) RemoveRevisionIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Revision entities.
func (_u *DrawingUpdateOne) RemoveRevisions(v ...*Revision) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// Where appends a list predicates to the DrawingUpdate builder.
func (_u *DrawingUpdateOne) Where(ps ...predicate.Drawing) *DrawingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrawingUpdateOne) Select(field string, fields ...string) *DrawingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Drawing entity.
func (_u *DrawingUpdateOne) Save(ctx context.Context) (*Drawing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrawingUpdateOne) SaveX(ctx context.Context) *Drawing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrawingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrawingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrawingUpdateOne) check() error {
	if v, ok := _u.mutation.PdfFilename(); ok {
		if err := drawing.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "Drawing.pdf_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := drawing.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Drawing.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := drawing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Drawing.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := drawing.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Drawing.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *DrawingUpdateOne) sqlSave(ctx context.Context) (_node *Drawing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drawing.Table, drawing.Columns, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Drawing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drawing.FieldID)
		for _, f := range fields {
			if !drawing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drawing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PdfFilename(); ok {
		_spec.SetField(drawing.FieldPdfFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(drawing.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailPath(); ok {
		_spec.SetField(drawing.FieldThumbnailPath, field.TypeString, value)
	}
	if _u.mutation.ThumbnailPathCleared() {
		_spec.ClearField(drawing.FieldThumbnailPath, field.TypeString)
	}
	if value, ok := _u.mutation.Rotation(); ok {
		_spec.SetField(drawing.FieldRotation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRotation(); ok {
		_spec.AddField(drawing.FieldRotation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(drawing.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(drawing.FieldClassification, field.TypeString, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(drawing.FieldClassification, field.TypeString)
	}
	if value, ok := _u.mutation.ClassificationConfidence(); ok {
		_spec.SetField(drawing.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClassificationConfidence(); ok {
		_spec.AddField(drawing.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ClassificationConfidenceCleared() {
		_spec.ClearField(drawing.FieldClassificationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClassificationReason(); ok {
		_spec.SetField(drawing.FieldClassificationReason, field.TypeString, value)
	}
	if _u.mutation.ClassificationReasonCleared() {
		_spec.ClearField(drawing.FieldClassificationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(drawing.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(drawing.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ShapeFeatures(); ok {
		_spec.SetField(drawing.FieldShapeFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedShapeFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, drawing.FieldShapeFeatures, value)
		})
	}
	if _u.mutation.ShapeFeaturesCleared() {
		_spec.ClearField(drawing.FieldShapeFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(drawing.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(drawing.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(drawing.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(drawing.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(drawing.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(drawing.FieldAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(drawing.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(drawing.FieldApprovedAt, field.TypeTime)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldsTable,
			Columns: []string{drawing.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldsTable,
			Columns: []string{drawing.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldsTable,
			Columns: []string{drawing.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BalloonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.BalloonsTable,
			Columns: []string{drawing.BalloonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBalloonsIDs(); len(nodes) > 0 && !_u.mutation.BalloonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.BalloonsTable,
			Columns: []string{drawing.BalloonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BalloonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.BalloonsTable,
			Columns: []string{drawing.BalloonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.RevisionsTable,
			Columns: []string{drawing.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.RevisionsTable,
			Columns: []string{drawing.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.RevisionsTable,
			Columns: []string{drawing.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Drawing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drawing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
