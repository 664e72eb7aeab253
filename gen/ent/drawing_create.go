// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// DrawingCreate is the builder for creating a Drawing entity.
type DrawingCreate struct {
	config
	mutation *DrawingMutation
	hooks    []Hook
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *DrawingCreate) SetOriginalFilename(v string) *DrawingCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetPdfFilename sets the "pdf_filename" field.
func (_c *DrawingCreate) SetPdfFilename(v string) *DrawingCreate {
	_c.mutation.SetPdfFilename(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *DrawingCreate) SetStoragePath(v string) *DrawingCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetThumbnailPath sets the "thumbnail_path" field.
func (_c *DrawingCreate) SetThumbnailPath(v string) *DrawingCreate {
	_c.mutation.SetThumbnailPath(v)
	return _c
}

// SetNillableThumbnailPath sets the "thumbnail_path" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableThumbnailPath(v *string) *DrawingCreate {
	if v != nil {
		_c.SetThumbnailPath(*v)
	}
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *DrawingCreate) SetPageNumber(v int) *DrawingCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetRotation sets the "rotation" field.
func (_c *DrawingCreate) SetRotation(v int) *DrawingCreate {
	_c.mutation.SetRotation(v)
	return _c
}

// SetNillableRotation sets the "rotation" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableRotation(v *int) *DrawingCreate {
	if v != nil {
		_c.SetRotation(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DrawingCreate) SetStatus(v string) *DrawingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableStatus(v *string) *DrawingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *DrawingCreate) SetClassification(v string) *DrawingCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableClassification(v *string) *DrawingCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_c *DrawingCreate) SetClassificationConfidence(v float64) *DrawingCreate {
	_c.mutation.SetClassificationConfidence(v)
	return _c
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableClassificationConfidence(v *float64) *DrawingCreate {
	if v != nil {
		_c.SetClassificationConfidence(*v)
	}
	return _c
}

// SetClassificationReason sets the "classification_reason" field.
func (_c *DrawingCreate) SetClassificationReason(v string) *DrawingCreate {
	_c.mutation.SetClassificationReason(v)
	return _c
}

// SetNillableClassificationReason sets the "classification_reason" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableClassificationReason(v *string) *DrawingCreate {
	if v != nil {
		_c.SetClassificationReason(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *DrawingCreate) SetSummary(v string) *DrawingCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableSummary(v *string) *DrawingCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetShapeFeatures sets the "shape_features" field.
func (_c *DrawingCreate) SetShapeFeatures(v json.RawMessage) *DrawingCreate {
	_c.mutation.SetShapeFeatures(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DrawingCreate) SetErrorMessage(v string) *DrawingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableErrorMessage(v *string) *DrawingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *DrawingCreate) SetCreatedBy(v string) *DrawingCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DrawingCreate) SetUploadedAt(v time.Time) *DrawingCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableUploadedAt(v *time.Time) *DrawingCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_c *DrawingCreate) SetAnalyzedAt(v time.Time) *DrawingCreate {
	_c.mutation.SetAnalyzedAt(v)
	return _c
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableAnalyzedAt(v *time.Time) *DrawingCreate {
	if v != nil {
		_c.SetAnalyzedAt(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *DrawingCreate) SetApprovedAt(v time.Time) *DrawingCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableApprovedAt(v *time.Time) *DrawingCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DrawingCreate) SetID(v uuid.UUID) *DrawingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DrawingCreate) SetNillableID(v *uuid.UUID) *DrawingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_c *DrawingCreate) AddFieldIDs(ids ...uuid.UUID) *DrawingCreate {
	_c.mutation.AddFieldIDs(ids...)
	return _c
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_c *DrawingCreate) AddFields(v ...*ExtractedField) *DrawingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldIDs(ids...)
}

// AddBalloonIDs adds the "balloons" edge to the Balloon entity by IDs.
func (_c *DrawingCreate) AddBalloonIDs(ids ...uuid.UUID) *DrawingCreate {
	_c.mutation.AddBalloonIDs(ids...)
	return _c
}

// AddBalloons adds the "balloons" edges to the Balloon entity.
func (_c *DrawingCreate) AddBalloons(v ...*Balloon) *DrawingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBalloonIDs(ids...)
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_c *DrawingCreate) AddRevisionIDs(ids ...uuid.UUID) *DrawingCreate {
	_c.mutation.AddRevisionIDs(ids...)
	return _c
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_c *DrawingCreate) AddRevisions(v ...*Revision) *DrawingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRevisionIDs(ids...)
}

// Mutation returns the DrawingMutation object of the builder.
func (_c *DrawingCreate) Mutation() *DrawingMutation {
	return _c.mutation
}

// Save creates the Drawing in the database.
func (_c *DrawingCreate) Save(ctx context.Context) (*Drawing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrawingCreate) SaveX(ctx context.Context) *Drawing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrawingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrawingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrawingCreate) defaults() {
	if _, ok := _c.mutation.Rotation(); !ok {
		v := drawing.DefaultRotation
		_c.mutation.SetRotation(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := drawing.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := drawing.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := drawing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrawingCreate) check() error {
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Drawing.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := drawing.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Drawing.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PdfFilename(); !ok {
		return &ValidationError{Name: "pdf_filename", err: errors.New(`ent: missing required field "Drawing.pdf_filename"`)}
	}
	if v, ok := _c.mutation.PdfFilename(); ok {
		if err := drawing.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "Drawing.pdf_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "Drawing.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := drawing.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "Drawing.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "Drawing.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := drawing.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "Drawing.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rotation(); !ok {
		return &ValidationError{Name: "rotation", err: errors.New(`ent: missing required field "Drawing.rotation"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Drawing.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := drawing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Drawing.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Drawing.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := drawing.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Drawing.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Drawing.uploaded_at"`)}
	}
	return nil
}

func (_c *DrawingCreate) sqlSave(ctx context.Context) (*Drawing, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrawingCreate) createSpec() (*Drawing, *sqlgraph.CreateSpec) {
	var (
		_node = &Drawing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drawing.Table, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(drawing.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.PdfFilename(); ok {
		_spec.SetField(drawing.FieldPdfFilename, field.TypeString, value)
		_node.PdfFilename = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(drawing.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.ThumbnailPath(); ok {
		_spec.SetField(drawing.FieldThumbnailPath, field.TypeString, value)
		_node.ThumbnailPath = value
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(drawing.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.Rotation(); ok {
		_spec.SetField(drawing.FieldRotation, field.TypeInt, value)
		_node.Rotation = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(drawing.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(drawing.FieldClassification, field.TypeString, value)
		_node.Classification = &value
	}
	if value, ok := _c.mutation.ClassificationConfidence(); ok {
		_spec.SetField(drawing.FieldClassificationConfidence, field.TypeFloat64, value)
		_node.ClassificationConfidence = &value
	}
	if value, ok := _c.mutation.ClassificationReason(); ok {
		_spec.SetField(drawing.FieldClassificationReason, field.TypeString, value)
		_node.ClassificationReason = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(drawing.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ShapeFeatures(); ok {
		_spec.SetField(drawing.FieldShapeFeatures, field.TypeJSON, value)
		_node.ShapeFeatures = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(drawing.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(drawing.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(drawing.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.AnalyzedAt(); ok {
		_spec.SetField(drawing.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(drawing.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if nodes := _c.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BalloonsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RevisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DrawingCreateBulk is the builder for creating many Drawing entities in bulk.
type DrawingCreateBulk struct {
	config
	err      error
	builders []*DrawingCreate
}

// Save creates the Drawing entities in the database.
func (_c *DrawingCreateBulk) Save(ctx context.Context) ([]*Drawing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Drawing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrawingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DrawingCreateBulk) SaveX(ctx context.Context) []*Drawing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrawingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrawingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
