// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
)

// ExtractedFieldCreate is the builder for creating a ExtractedField entity.
type ExtractedFieldCreate struct {
	config
	mutation *ExtractedFieldMutation
	hooks    []Hook
}

// SetDrawingID sets the "drawing_id" field.
func (_c *ExtractedFieldCreate) SetDrawingID(v uuid.UUID) *ExtractedFieldCreate {
	_c.mutation.SetDrawingID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExtractedFieldCreate) SetName(v string) *ExtractedFieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ExtractedFieldCreate) SetValue(v string) *ExtractedFieldCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractedFieldCreate) SetConfidence(v float64) *ExtractedFieldCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableConfidence(v *float64) *ExtractedFieldCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetX sets the "x" field.
func (_c *ExtractedFieldCreate) SetX(v int) *ExtractedFieldCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableX(v *int) *ExtractedFieldCreate {
	if v != nil {
		_c.SetX(*v)
	}
	return _c
}

// SetY sets the "y" field.
func (_c *ExtractedFieldCreate) SetY(v int) *ExtractedFieldCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableY(v *int) *ExtractedFieldCreate {
	if v != nil {
		_c.SetY(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *ExtractedFieldCreate) SetWidth(v int) *ExtractedFieldCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableWidth(v *int) *ExtractedFieldCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *ExtractedFieldCreate) SetHeight(v int) *ExtractedFieldCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableHeight(v *int) *ExtractedFieldCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedFieldCreate) SetID(v uuid.UUID) *ExtractedFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableID(v *uuid.UUID) *ExtractedFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_c *ExtractedFieldCreate) SetDrawing(v *Drawing) *ExtractedFieldCreate {
	return _c.SetDrawingID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_c *ExtractedFieldCreate) Mutation() *ExtractedFieldMutation {
	return _c.mutation
}

// Save creates the ExtractedField in the database.
func (_c *ExtractedFieldCreate) Save(ctx context.Context) (*ExtractedField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedFieldCreate) SaveX(ctx context.Context) *ExtractedField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedFieldCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractedfield.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.X(); !ok {
		v := extractedfield.DefaultX
		_c.mutation.SetX(v)
	}
	if _, ok := _c.mutation.Y(); !ok {
		v := extractedfield.DefaultY
		_c.mutation.SetY(v)
	}
	if _, ok := _c.mutation.Width(); !ok {
		v := extractedfield.DefaultWidth
		_c.mutation.SetWidth(v)
	}
	if _, ok := _c.mutation.Height(); !ok {
		v := extractedfield.DefaultHeight
		_c.mutation.SetHeight(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedFieldCreate) check() error {
	if _, ok := _c.mutation.DrawingID(); !ok {
		return &ValidationError{Name: "drawing_id", err: errors.New(`ent: missing required field "ExtractedField.drawing_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ExtractedField.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := extractedfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ExtractedField.value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractedField.confidence"`)}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "ExtractedField.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "ExtractedField.y"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "ExtractedField.width"`)}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "ExtractedField.height"`)}
	}
	if len(_c.mutation.DrawingIDs()) == 0 {
		return &ValidationError{Name: "drawing", err: errors.New(`ent: missing required edge "ExtractedField.drawing"`)}
	}
	return nil
}

func (_c *ExtractedFieldCreate) sqlSave(ctx context.Context) (*ExtractedField, error) {
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

func (_c *ExtractedFieldCreate) createSpec() (*ExtractedField, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedfield.Table, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(extractedfield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(extractedfield.FieldX, field.TypeInt, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(extractedfield.FieldY, field.TypeInt, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(extractedfield.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(extractedfield.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if nodes := _c.mutation.DrawingIDs(); len(nodes) > 0 {
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
		_node.DrawingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedFieldCreateBulk is the builder for creating many ExtractedField entities in bulk.
type ExtractedFieldCreateBulk struct {
	config
	err      error
	builders []*ExtractedFieldCreate
}

// Save creates the ExtractedField entities in the database.
func (_c *ExtractedFieldCreateBulk) Save(ctx context.Context) ([]*ExtractedField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedFieldMutation)
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
func (_c *ExtractedFieldCreateBulk) SaveX(ctx context.Context) []*ExtractedField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
