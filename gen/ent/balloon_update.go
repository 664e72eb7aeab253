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
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// BalloonUpdate is the builder for updating Balloon entities.
type BalloonUpdate struct {
	config
	hooks    []Hook
	mutation *BalloonMutation
}

// Where appends a list predicates to the BalloonUpdate builder.
func (_u *BalloonUpdate) Where(ps ...predicate.Balloon) *BalloonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *BalloonUpdate) SetDrawingID(v uuid.UUID) *BalloonUpdate {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillableDrawingID(v *uuid.UUID) *BalloonUpdate {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetBalloonNumber sets the "balloon_number" field.
func (_u *BalloonUpdate) SetBalloonNumber(v int) *BalloonUpdate {
	_u.mutation.ResetBalloonNumber()
	_u.mutation.SetBalloonNumber(v)
	return _u
}

// SetNillableBalloonNumber sets the "balloon_number" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillableBalloonNumber(v *int) *BalloonUpdate {
	if v != nil {
		_u.SetBalloonNumber(*v)
	}
	return _u
}

// AddBalloonNumber adds value to the "balloon_number" field.
func (_u *BalloonUpdate) AddBalloonNumber(v int) *BalloonUpdate {
	_u.mutation.AddBalloonNumber(v)
	return _u
}

// SetPartName sets the "part_name" field.
func (_u *BalloonUpdate) SetPartName(v string) *BalloonUpdate {
	_u.mutation.SetPartName(v)
	return _u
}

// SetNillablePartName sets the "part_name" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillablePartName(v *string) *BalloonUpdate {
	if v != nil {
		_u.SetPartName(*v)
	}
	return _u
}

// ClearPartName clears the value of the "part_name" field.
func (_u *BalloonUpdate) ClearPartName() *BalloonUpdate {
	_u.mutation.ClearPartName()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *BalloonUpdate) SetQuantity(v int) *BalloonUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillableQuantity(v *int) *BalloonUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *BalloonUpdate) AddQuantity(v int) *BalloonUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BalloonUpdate) SetConfidence(v float64) *BalloonUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillableConfidence(v *float64) *BalloonUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BalloonUpdate) AddConfidence(v float64) *BalloonUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetX sets the "x" field.
func (_u *BalloonUpdate) SetX(v int) *BalloonUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillableX(v *int) *BalloonUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *BalloonUpdate) AddX(v int) *BalloonUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *BalloonUpdate) SetY(v int) *BalloonUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *BalloonUpdate) SetNillableY(v *int) *BalloonUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *BalloonUpdate) AddY(v int) *BalloonUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *BalloonUpdate) SetDrawing(v *Drawing) *BalloonUpdate {
	return _u.SetDrawingID(v.ID)
}

// Mutation returns the BalloonMutation object of the builder.
func (_u *BalloonUpdate) Mutation() *BalloonMutation {
	return _u.mutation
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *BalloonUpdate) ClearDrawing() *BalloonUpdate {
	_u.mutation.ClearDrawing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BalloonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BalloonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BalloonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BalloonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BalloonUpdate) check() error {
	if v, ok := _u.mutation.BalloonNumber(); ok {
		if err := balloon.BalloonNumberValidator(v); err != nil {
			return &ValidationError{Name: "balloon_number", err: fmt.Errorf(`ent: validator failed for field "Balloon.balloon_number": %w`, err)}
		}
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Balloon.drawing"`)
	}
	return nil
}

func (_u *BalloonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(balloon.Table, balloon.Columns, sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BalloonNumber(); ok {
		_spec.SetField(balloon.FieldBalloonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalloonNumber(); ok {
		_spec.AddField(balloon.FieldBalloonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PartName(); ok {
		_spec.SetField(balloon.FieldPartName, field.TypeString, value)
	}
	if _u.mutation.PartNameCleared() {
		_spec.ClearField(balloon.FieldPartName, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(balloon.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(balloon.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(balloon.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(balloon.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(balloon.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(balloon.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(balloon.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(balloon.FieldY, field.TypeInt, value)
	}
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   balloon.DrawingTable,
			Columns: []string{balloon.DrawingColumn},
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
			Table:   balloon.DrawingTable,
			Columns: []string{balloon.DrawingColumn},
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
			err = &NotFoundError{balloon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BalloonUpdateOne is the builder for updating a single Balloon entity.
type BalloonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BalloonMutation
}

// SetDrawingID sets the "drawing_id" field.
func (_u *BalloonUpdateOne) SetDrawingID(v uuid.UUID) *BalloonUpdateOne {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillableDrawingID(v *uuid.UUID) *BalloonUpdateOne {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetBalloonNumber sets the "balloon_number" field.
func (_u *BalloonUpdateOne) SetBalloonNumber(v int) *BalloonUpdateOne {
	_u.mutation.ResetBalloonNumber()
	_u.mutation.SetBalloonNumber(v)
	return _u
}

// SetNillableBalloonNumber sets the "balloon_number" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillableBalloonNumber(v *int) *BalloonUpdateOne {
	if v != nil {
		_u.SetBalloonNumber(*v)
	}
	return _u
}

// AddBalloonNumber adds value to the "balloon_number" field.
func (_u *BalloonUpdateOne) AddBalloonNumber(v int) *BalloonUpdateOne {
	_u.mutation.AddBalloonNumber(v)
	return _u
}

// SetPartName sets the "part_name" field.
func (_u *BalloonUpdateOne) SetPartName(v string) *BalloonUpdateOne {
	_u.mutation.SetPartName(v)
	return _u
}

// SetNillablePartName sets the "part_name" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillablePartName(v *string) *BalloonUpdateOne {
	if v != nil {
		_u.SetPartName(*v)
	}
	return _u
}

// ClearPartName clears the value of the "part_name" field.
func (_u *BalloonUpdateOne) ClearPartName() *BalloonUpdateOne {
	_u.mutation.ClearPartName()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *BalloonUpdateOne) SetQuantity(v int) *BalloonUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillableQuantity(v *int) *BalloonUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *BalloonUpdateOne) AddQuantity(v int) *BalloonUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BalloonUpdateOne) SetConfidence(v float64) *BalloonUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillableConfidence(v *float64) *BalloonUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BalloonUpdateOne) AddConfidence(v float64) *BalloonUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetX sets the "x" field.
func (_u *BalloonUpdateOne) SetX(v int) *BalloonUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillableX(v *int) *BalloonUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *BalloonUpdateOne) AddX(v int) *BalloonUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *BalloonUpdateOne) SetY(v int) *BalloonUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *BalloonUpdateOne) SetNillableY(v *int) *BalloonUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *BalloonUpdateOne) AddY(v int) *BalloonUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *BalloonUpdateOne) SetDrawing(v *Drawing) *BalloonUpdateOne {
	return _u.SetDrawingID(v.ID)
}

// Mutation returns the BalloonMutation object of the builder.
func (_u *BalloonUpdateOne) Mutation() *BalloonMutation {
	return _u.mutation
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *BalloonUpdateOne) ClearDrawing() *BalloonUpdateOne {
	_u.mutation.ClearDrawing()
	return _u
}

// Where appends a list predicates to the BalloonUpdate builder.
func (_u *BalloonUpdateOne) Where(ps ...predicate.Balloon) *BalloonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BalloonUpdateOne) Select(field string, fields ...string) *BalloonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Balloon entity.
func (_u *BalloonUpdateOne) Save(ctx context.Context) (*Balloon, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BalloonUpdateOne) SaveX(ctx context.Context) *Balloon {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BalloonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BalloonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BalloonUpdateOne) check() error {
	if v, ok := _u.mutation.BalloonNumber(); ok {
		if err := balloon.BalloonNumberValidator(v); err != nil {
			return &ValidationError{Name: "balloon_number", err: fmt.Errorf(`ent: validator failed for field "Balloon.balloon_number": %w`, err)}
		}
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Balloon.drawing"`)
	}
	return nil
}

func (_u *BalloonUpdateOne) sqlSave(ctx context.Context) (_node *Balloon, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(balloon.Table, balloon.Columns, sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Balloon.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, balloon.FieldID)
		for _, f := range fields {
			if !balloon.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != balloon.FieldID {
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
	if value, ok := _u.mutation.BalloonNumber(); ok {
		_spec.SetField(balloon.FieldBalloonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalloonNumber(); ok {
		_spec.AddField(balloon.FieldBalloonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PartName(); ok {
		_spec.SetField(balloon.FieldPartName, field.TypeString, value)
	}
	if _u.mutation.PartNameCleared() {
		_spec.ClearField(balloon.FieldPartName, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(balloon.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(balloon.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(balloon.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(balloon.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(balloon.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(balloon.FieldX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(balloon.FieldY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(balloon.FieldY, field.TypeInt, value)
	}
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   balloon.DrawingTable,
			Columns: []string{balloon.DrawingColumn},
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
			Table:   balloon.DrawingTable,
			Columns: []string{balloon.DrawingColumn},
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
	_node = &Balloon{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{balloon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
