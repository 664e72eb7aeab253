// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// RevisionUpdate is the builder for updating Revision entities.
type RevisionUpdate struct {
	config
	hooks    []Hook
	mutation *RevisionMutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (_u *RevisionUpdate) Where(ps ...predicate.Revision) *RevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *RevisionUpdate) SetDrawingID(v uuid.UUID) *RevisionUpdate {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableDrawingID(v *uuid.UUID) *RevisionUpdate {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetRevisionNumber sets the "revision_number" field.
func (_u *RevisionUpdate) SetRevisionNumber(v string) *RevisionUpdate {
	_u.mutation.SetRevisionNumber(v)
	return _u
}

// SetNillableRevisionNumber sets the "revision_number" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableRevisionNumber(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetRevisionNumber(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *RevisionUpdate) SetDate(v string) *RevisionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableDate(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *RevisionUpdate) ClearDate() *RevisionUpdate {
	_u.mutation.ClearDate()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RevisionUpdate) SetDescription(v string) *RevisionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableDescription(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RevisionUpdate) ClearDescription() *RevisionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *RevisionUpdate) SetAuthor(v string) *RevisionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableAuthor(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *RevisionUpdate) ClearAuthor() *RevisionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RevisionUpdate) SetConfidence(v float64) *RevisionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableConfidence(v *float64) *RevisionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RevisionUpdate) AddConfidence(v float64) *RevisionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *RevisionUpdate) SetDrawing(v *Drawing) *RevisionUpdate {
	return _u.SetDrawingID(v.ID)
}

// Mutation returns the RevisionMutation object of the builder.
func (_u *RevisionUpdate) Mutation() *RevisionMutation {
	return _u.mutation
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *RevisionUpdate) ClearDrawing() *RevisionUpdate {
	_u.mutation.ClearDrawing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RevisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevisionUpdate) check() error {
	if v, ok := _u.mutation.RevisionNumber(); ok {
		if err := revision.RevisionNumberValidator(v); err != nil {
			return &ValidationError{Name: "revision_number", err: fmt.Errorf(`ent: validator failed for field "Revision.revision_number": %w`, err)}
		}
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Revision.drawing"`)
	}
	return nil
}

func (_u *RevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RevisionNumber(); ok {
		_spec.SetField(revision.FieldRevisionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(revision.FieldDate, field.TypeString, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(revision.FieldDate, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(revision.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(revision.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(revision.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(revision.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(revision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(revision.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   revision.DrawingTable,
			Columns: []string{revision.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   revision.DrawingTable,
			Columns: []string{revision.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RevisionUpdateOne is the builder for updating a single Revision entity.
type RevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevisionMutation
}

// SetDrawingID sets the "drawing_id" field.
func (_u *RevisionUpdateOne) SetDrawingID(v uuid.UUID) *RevisionUpdateOne {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableDrawingID(v *uuid.UUID) *RevisionUpdateOne {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetRevisionNumber sets the "revision_number" field.
func (_u *RevisionUpdateOne) SetRevisionNumber(v string) *RevisionUpdateOne {
	_u.mutation.SetRevisionNumber(v)
	return _u
}

// SetNillableRevisionNumber sets the "revision_number" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableRevisionNumber(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetRevisionNumber(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *RevisionUpdateOne) SetDate(v string) *RevisionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableDate(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *RevisionUpdateOne) ClearDate() *RevisionUpdateOne {
	_u.mutation.ClearDate()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RevisionUpdateOne) SetDescription(v string) *RevisionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableDescription(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RevisionUpdateOne) ClearDescription() *RevisionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *RevisionUpdateOne) SetAuthor(v string) *RevisionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableAuthor(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *RevisionUpdateOne) ClearAuthor() *RevisionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RevisionUpdateOne) SetConfidence(v float64) *RevisionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableConfidence(v *float64) *RevisionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RevisionUpdateOne) AddConfidence(v float64) *RevisionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *RevisionUpdateOne) SetDrawing(v *Drawing) *RevisionUpdateOne {
	return _u.SetDrawingID(v.ID)
}

// Mutation returns the RevisionMutation object of the builder.
func (_u *RevisionUpdateOne) Mutation() *RevisionMutation {
	return _u.mutation
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *RevisionUpdateOne) ClearDrawing() *RevisionUpdateOne {
	_u.mutation.ClearDrawing()
	return _u
}

// Where appends a list predicates to the RevisionUpdate builder.
func (_u *RevisionUpdateOne) Where(ps ...predicate.Revision) *RevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RevisionUpdateOne) Select(field string, fields ...string) *RevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Revision entity.
func (_u *RevisionUpdateOne) Save(ctx context.Context) (*Revision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevisionUpdateOne) SaveX(ctx context.Context) *Revision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevisionUpdateOne) check() error {
	if v, ok := _u.mutation.RevisionNumber(); ok {
		if err := revision.RevisionNumberValidator(v); err != nil {
			return &ValidationError{Name: "revision_number", err: fmt.Errorf(`ent: validator failed for field "Revision.revision_number": %w`, err)}
		}
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Revision.drawing"`)
	}
	return nil
}

func (_u *RevisionUpdateOne) sqlSave(ctx context.Context) (_node *Revision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Revision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revision.FieldID)
		for _, f := range fields {
			if !revision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revision.FieldID {
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
	if value, ok := _u.mutation.RevisionNumber(); ok {
		_spec.SetField(revision.FieldRevisionNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(revision.FieldDate, field.TypeString, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(revision.FieldDate, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(revision.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(revision.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(revision.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(revision.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(revision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(revision.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   revision.DrawingTable,
			Columns: []string{revision.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   revision.DrawingTable,
			Columns: []string{revision.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Revision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
