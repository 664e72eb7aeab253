// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
)

// BalloonCreate is the builder for creating a Balloon entity.
type BalloonCreate struct {
	config
	mutation *BalloonMutation
	hooks    []Hook
}

// SetDrawingID sets the "drawing_id" field.
func (_c *BalloonCreate) SetDrawingID(v uuid.UUID) *BalloonCreate {
	_c.mutation.SetDrawingID(v)
	return _c
}

// SetBalloonNumber sets the "balloon_number" field.
func (_c *BalloonCreate) SetBalloonNumber(v int) *BalloonCreate {
	_c.mutation.SetBalloonNumber(v)
	return _c
}

// SetPartName sets the "part_name" field.
func (_c *BalloonCreate) SetPartName(v string) *BalloonCreate {
	_c.mutation.SetPartName(v)
	return _c
}

// SetNillablePartName sets the "part_name" field if the given value is not nil.
func (_c *BalloonCreate) SetNillablePartName(v *string) *BalloonCreate {
	if v != nil {
		_c.SetPartName(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *BalloonCreate) SetQuantity(v int) *BalloonCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *BalloonCreate) SetNillableQuantity(v *int) *BalloonCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BalloonCreate) SetConfidence(v float64) *BalloonCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BalloonCreate) SetNillableConfidence(v *float64) *BalloonCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetX sets the "x" field.
func (_c *BalloonCreate) SetX(v int) *BalloonCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_c *BalloonCreate) SetNillableX(v *int) *BalloonCreate {
	if v != nil {
		_c.SetX(*v)
	}
	return _c
}

// SetY sets the "y" field.
func (_c *BalloonCreate) SetY(v int) *BalloonCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_c *BalloonCreate) SetNillableY(v *int) *BalloonCreate {
	if v != nil {
		_c.SetY(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BalloonCreate) SetID(v uuid.UUID) *BalloonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BalloonCreate) SetNillableID(v *uuid.UUID) *BalloonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_c *BalloonCreate) SetDrawing(v *Drawing) *BalloonCreate {
	return _c.SetDrawingID(v.ID)
}

// Mutation returns the BalloonMutation object of the builder.
func (_c *BalloonCreate) Mutation() *BalloonMutation {
	return _c.mutation
}

// Save creates the Balloon in the database.
func (_c *BalloonCreate) Save(ctx context.Context) (*Balloon, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BalloonCreate) SaveX(ctx context.Context) *Balloon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BalloonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BalloonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BalloonCreate) defaults() {
	if _, ok := _c.mutation.Quantity(); !ok {
		v := balloon.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := balloon.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.X(); !ok {
		v := balloon.DefaultX
		_c.mutation.SetX(v)
	}
	if _, ok := _c.mutation.Y(); !ok {
		v := balloon.DefaultY
		_c.mutation.SetY(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := balloon.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BalloonCreate) check() error {
	if _, ok := _c.mutation.DrawingID(); !ok {
		return &ValidationError{Name: "drawing_id", err: errors.New(`ent: missing required field "Balloon.drawing_id"`)}
	}
	if _, ok := _c.mutation.BalloonNumber(); !ok {
		return &ValidationError{Name: "balloon_number", err: errors.New(`ent: missing required field "Balloon.balloon_number"`)}
	}
	if v, ok := _c.mutation.BalloonNumber(); ok {
		if err := balloon.BalloonNumberValidator(v); err != nil {
			return &ValidationError{Name: "balloon_number", err: fmt.Errorf(`ent: validator failed for field "Balloon.balloon_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "Balloon.quantity"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Balloon.confidence"`)}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "Balloon.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "Balloon.y"`)}
	}
	if len(_c.mutation.DrawingIDs()) == 0 {
		return &ValidationError{Name: "drawing", err: errors.New(`ent: missing required edge "Balloon.drawing"`)}
	}
	return nil
}

func (_c *BalloonCreate) sqlSave(ctx context.Context) (*Balloon, error) {
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

func (_c *BalloonCreate) createSpec() (*Balloon, *sqlgraph.CreateSpec) {
	var (
		_node = &Balloon{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(balloon.Table, sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BalloonNumber(); ok {
		_spec.SetField(balloon.FieldBalloonNumber, field.TypeInt, value)
		_node.BalloonNumber = value
	}
	if value, ok := _c.mutation.PartName(); ok {
		_spec.SetField(balloon.FieldPartName, field.TypeString, value)
		_node.PartName = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(balloon.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(balloon.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(balloon.FieldX, field.TypeInt, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(balloon.FieldY, field.TypeInt, value)
		_node.Y = value
	}
	if nodes := _c.mutation.DrawingIDs(); len(nodes) > 0 {
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
		_node.DrawingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BalloonCreateBulk is the builder for creating many Balloon entities in bulk.
type BalloonCreateBulk struct {
	config
	err      error
	builders []*BalloonCreate
}

// Save creates the Balloon entities in the database.
func (_c *BalloonCreateBulk) Save(ctx context.Context) ([]*Balloon, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Balloon, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BalloonMutation)
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
func (_c *BalloonCreateBulk) SaveX(ctx context.Context) []*Balloon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BalloonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BalloonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
