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
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// RevisionCreate is the builder for creating a Revision entity.
type RevisionCreate struct {
	config
	mutation *RevisionMutation
	hooks    []Hook
}

// SetDrawingID sets the "drawing_id" field.
func (_c *RevisionCreate) SetDrawingID(v uuid.UUID) *RevisionCreate {
	_c.mutation.SetDrawingID(v)
	return _c
}

// SetRevisionNumber sets the "revision_number" field.
func (_c *RevisionCreate) SetRevisionNumber(v string) *RevisionCreate {
	_c.mutation.SetRevisionNumber(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *RevisionCreate) SetDate(v string) *RevisionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *RevisionCreate) SetNillableDate(v *string) *RevisionCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *RevisionCreate) SetDescription(v string) *RevisionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RevisionCreate) SetNillableDescription(v *string) *RevisionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *RevisionCreate) SetAuthor(v string) *RevisionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *RevisionCreate) SetNillableAuthor(v *string) *RevisionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RevisionCreate) SetConfidence(v float64) *RevisionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *RevisionCreate) SetNillableConfidence(v *float64) *RevisionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RevisionCreate) SetID(v uuid.UUID) *RevisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RevisionCreate) SetNillableID(v *uuid.UUID) *RevisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_c *RevisionCreate) SetDrawing(v *Drawing) *RevisionCreate {
	return _c.SetDrawingID(v.ID)
}

// Mutation returns the RevisionMutation object of the builder.
func (_c *RevisionCreate) Mutation() *RevisionMutation {
	return _c.mutation
}

// Save creates the Revision in the database.
func (_c *RevisionCreate) Save(ctx context.Context) (*Revision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RevisionCreate) SaveX(ctx context.Context) *Revision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RevisionCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := revision.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := revision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RevisionCreate) check() error {
	if _, ok := _c.mutation.DrawingID(); !ok {
		return &ValidationError{Name: "drawing_id", err: errors.New(`ent: missing required field "Revision.drawing_id"`)}
	}
	if _, ok := _c.mutation.RevisionNumber(); !ok {
		return &ValidationError{Name: "revision_number", err: errors.New(`ent: missing required field "Revision.revision_number"`)}
	}
	if v, ok := _c.mutation.RevisionNumber(); ok {
		if err := revision.RevisionNumberValidator(v); err != nil {
			return &ValidationError{Name: "revision_number", err: fmt.Errorf(`ent: validator failed for field "Revision.revision_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Revision.confidence"`)}
	}
	if len(_c.mutation.DrawingIDs()) == 0 {
		return &ValidationError{Name: "drawing", err: errors.New(`ent: missing required edge "Revision.drawing"`)}
	}
	return nil
}

func (_c *RevisionCreate) sqlSave(ctx context.Context) (*Revision, error) {
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

func (_c *RevisionCreate) createSpec() (*Revision, *sqlgraph.CreateSpec) {
	var (
		_node = &Revision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(revision.Table, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RevisionNumber(); ok {
		_spec.SetField(revision.FieldRevisionNumber, field.TypeString, value)
		_node.RevisionNumber = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(revision.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(revision.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(revision.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(revision.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if nodes := _c.mutation.DrawingIDs(); len(nodes) > 0 {
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
		_node.DrawingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RevisionCreateBulk is the builder for creating many Revision entities in bulk.
type RevisionCreateBulk struct {
	config
	err      error
	builders []*RevisionCreate
}

// Save creates the Revision entities in the database.
func (_c *RevisionCreateBulk) Save(ctx context.Context) ([]*Revision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Revision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RevisionMutation)
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
func (_c *RevisionCreateBulk) SaveX(ctx context.Context) []*Revision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
