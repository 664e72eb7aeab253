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
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// ExtractedFieldUpdate is the builder for updating ExtractedField entities.
type ExtractedFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdate) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *ExtractedFieldUpdate) SetDrawingID(v uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableDrawingID(v *uuid.UUID) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractedFieldUpdate) SetName(v string) *ExtractedFieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableName(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedFieldUpdate) SetValue(v string) *ExtractedFieldUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableValue(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedFieldUpdate) SetConfidence(v float64) *ExtractedFieldUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableConfidence(v *float64) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedFieldUpdate) AddConfidence(v float64) *ExtractedFieldUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetX sets the "x" field.
func (_u *ExtractedFieldUpdate) SetX(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableX(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *ExtractedFieldUpdate) AddX(v int) *ExtractedFieldUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *ExtractedFieldUpdate) SetY(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableY(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *ExtractedFieldUpdate) AddY(v int) *ExtractedFieldUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *ExtractedFieldUpdate) SetWidth(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableWidth(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *ExtractedFieldUpdate) AddWidth(v int) *ExtractedFieldUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *ExtractedFieldUpdate) SetHeight(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableHeight(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *ExtractedFieldUpdate) AddHeight(v int) *ExtractedFieldUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *ExtractedFieldUpdate) SetDrawing(v *Drawing) *ExtractedFieldUpdate {
	return _u.SetDrawingID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdate) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *ExtractedFieldUpdate) ClearDrawing() *ExtractedFieldUpdate {
	_u.mutation.ClearDrawing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := extractedfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.name": %w`, err)}
		}
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.drawing"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractedfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(extractedfield.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(extractedfield.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(extractedfield.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(extractedfield.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(extractedfield.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(extractedfield.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(extractedfield.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(extractedfield.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DrawingTable,
			Columns: []string{extractedfield.DrawingColumn},
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
			Table:   extractedfield.DrawingTable,
			Columns: []string{extractedfield.DrawingColumn},
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
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFieldUpdateOne is the builder for updating a single ExtractedField entity.
type ExtractedFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// SetDrawingID sets the "drawing_id" field.
func (_u *ExtractedFieldUpdateOne) SetDrawingID(v uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableDrawingID(v *uuid.UUID) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractedFieldUpdateOne) SetName(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableName(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedFieldUpdateOne) SetValue(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableValue(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedFieldUpdateOne) SetConfidence(v float64) *ExtractedFieldUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableConfidence(v *float64) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedFieldUpdateOne) AddConfidence(v float64) *ExtractedFieldUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetX sets the "x" field.
func (_u *ExtractedFieldUpdateOne) SetX(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableX(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *ExtractedFieldUpdateOne) AddX(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *ExtractedFieldUpdateOne) SetY(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableY(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *ExtractedFieldUpdateOne) AddY(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *ExtractedFieldUpdateOne) SetWidth(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableWidth(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *ExtractedFieldUpdateOne) AddWidth(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *ExtractedFieldUpdateOne) SetHeight(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableHeight(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *ExtractedFieldUpdateOne) AddHeight(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *ExtractedFieldUpdateOne) SetDrawing(v *Drawing) *ExtractedFieldUpdateOne {
	return _u.SetDrawingID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdateOne) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *ExtractedFieldUpdateOne) ClearDrawing() *ExtractedFieldUpdateOne {
	_u.mutation.ClearDrawing()
	return _u
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdateOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFieldUpdateOne) Select(field string, fields ...string) *ExtractedFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedField entity.
func (_u *ExtractedFieldUpdateOne) Save(ctx context.Context) (*ExtractedField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) SaveX(ctx context.Context) *ExtractedField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := extractedfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.name": %w`, err)}
		}
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.drawing"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfield.FieldID)
		for _, f := range fields {
			if !extractedfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfield.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractedfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractedfield.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(extractedfield.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(extractedfield.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(extractedfield.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(extractedfield.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(extractedfield.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(extractedfield.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(extractedfield.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(extractedfield.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DrawingTable,
			Columns: []string{extractedfield.DrawingColumn},
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
			Table:   extractedfield.DrawingTable,
			Columns: []string{extractedfield.DrawingColumn},
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
	_node = &ExtractedField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
