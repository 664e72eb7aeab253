// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBalloon        = "Balloon"
	TypeDrawing        = "Drawing"
	TypeExtractedField = "ExtractedField"
	TypeRevision       = "Revision"
)

// BalloonMutation represents an operation that mutates the Balloon nodes in the graph.
type BalloonMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	balloon_number    *int
	addballoon_number *int
	part_name         *string
	quantity          *int
	addquantity       *int
	confidence        *float64
	addconfidence     *float64
	x                 *int
	addx              *int
	y                 *int
	addy              *int
	clearedFields     map[string]struct{}
	drawing           *uuid.UUID
	cleareddrawing    bool
	done              bool
	oldValue          func(context.Context) (*Balloon, error)
	predicates        []predicate.Balloon
}

var _ ent.Mutation = (*BalloonMutation)(nil)

// balloonOption allows management of the mutation configuration using functional options.
type balloonOption func(*BalloonMutation)

// newBalloonMutation creates new mutation for the Balloon entity.
func newBalloonMutation(c config, op Op, opts ...balloonOption) *BalloonMutation {
	m := &BalloonMutation{
		config:        c,
		op:            op,
		typ:           TypeBalloon,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBalloonID sets the ID field of the mutation.
func withBalloonID(id uuid.UUID) balloonOption {
	return func(m *BalloonMutation) {
		var (
			err   error
			once  sync.Once
			value *Balloon
		)
		m.oldValue = func(ctx context.Context) (*Balloon, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Balloon.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBalloon sets the old Balloon of the mutation.
func withBalloon(node *Balloon) balloonOption {
	return func(m *BalloonMutation) {
		m.oldValue = func(context.Context) (*Balloon, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BalloonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BalloonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Balloon entities.
func (m *BalloonMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BalloonMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BalloonMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Balloon.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDrawingID sets the "drawing_id" field.
func (m *BalloonMutation) SetDrawingID(u uuid.UUID) {
	m.drawing = &u
}

// DrawingID returns the value of the "drawing_id" field in the mutation.
func (m *BalloonMutation) DrawingID() (r uuid.UUID, exists bool) {
	v := m.drawing
	if v == nil {
		return
	}
	return *v, true
}

// OldDrawingID returns the old "drawing_id" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldDrawingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrawingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrawingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrawingID: %w", err)
	}
	return oldValue.DrawingID, nil
}

// ResetDrawingID resets all changes to the "drawing_id" field.
func (m *BalloonMutation) ResetDrawingID() {
	m.drawing = nil
}

// SetBalloonNumber sets the "balloon_number" field.
func (m *BalloonMutation) SetBalloonNumber(i int) {
	m.balloon_number = &i
	m.addballoon_number = nil
}

// BalloonNumber returns the value of the "balloon_number" field in the mutation.
func (m *BalloonMutation) BalloonNumber() (r int, exists bool) {
	v := m.balloon_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBalloonNumber returns the old "balloon_number" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldBalloonNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalloonNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalloonNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalloonNumber: %w", err)
	}
	return oldValue.BalloonNumber, nil
}

// AddBalloonNumber adds i to the "balloon_number" field.
func (m *BalloonMutation) AddBalloonNumber(i int) {
	if m.addballoon_number != nil {
		*m.addballoon_number += i
	} else {
		m.addballoon_number = &i
	}
}

// AddedBalloonNumber returns the value that was added to the "balloon_number" field in this mutation.
func (m *BalloonMutation) AddedBalloonNumber() (r int, exists bool) {
	v := m.addballoon_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalloonNumber resets all changes to the "balloon_number" field.
func (m *BalloonMutation) ResetBalloonNumber() {
	m.balloon_number = nil
	m.addballoon_number = nil
}

// SetPartName sets the "part_name" field.
func (m *BalloonMutation) SetPartName(s string) {
	m.part_name = &s
}

// PartName returns the value of the "part_name" field in the mutation.
func (m *BalloonMutation) PartName() (r string, exists bool) {
	v := m.part_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPartName returns the old "part_name" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldPartName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartName: %w", err)
	}
	return oldValue.PartName, nil
}

// ClearPartName clears the value of the "part_name" field.
func (m *BalloonMutation) ClearPartName() {
	m.part_name = nil
	m.clearedFields[balloon.FieldPartName] = struct{}{}
}

// PartNameCleared returns if the "part_name" field was cleared in this mutation.
func (m *BalloonMutation) PartNameCleared() bool {
	_, ok := m.clearedFields[balloon.FieldPartName]
	return ok
}

// ResetPartName resets all changes to the "part_name" field.
func (m *BalloonMutation) ResetPartName() {
	m.part_name = nil
	delete(m.clearedFields, balloon.FieldPartName)
}

// SetQuantity sets the "quantity" field.
func (m *BalloonMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *BalloonMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *BalloonMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *BalloonMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *BalloonMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetConfidence sets the "confidence" field.
func (m *BalloonMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BalloonMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BalloonMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BalloonMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BalloonMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetX sets the "x" field.
func (m *BalloonMutation) SetX(i int) {
	m.x = &i
	m.addx = nil
}

// X returns the value of the "x" field in the mutation.
func (m *BalloonMutation) X() (r int, exists bool) {
	v := m.x
	if v == nil {
		return
	}
	return *v, true
}

// OldX returns the old "x" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldX(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldX: %w", err)
	}
	return oldValue.X, nil
}

// AddX adds i to the "x" field.
func (m *BalloonMutation) AddX(i int) {
	if m.addx != nil {
		*m.addx += i
	} else {
		m.addx = &i
	}
}

// AddedX returns the value that was added to the "x" field in this mutation.
func (m *BalloonMutation) AddedX() (r int, exists bool) {
	v := m.addx
	if v == nil {
		return
	}
	return *v, true
}

// ResetX resets all changes to the "x" field.
func (m *BalloonMutation) ResetX() {
	m.x = nil
	m.addx = nil
}

// SetY sets the "y" field.
func (m *BalloonMutation) SetY(i int) {
	m.y = &i
	m.addy = nil
}

// Y returns the value of the "y" field in the mutation.
func (m *BalloonMutation) Y() (r int, exists bool) {
	v := m.y
	if v == nil {
		return
	}
	return *v, true
}

// OldY returns the old "y" field's value of the Balloon entity.
// If the Balloon object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalloonMutation) OldY(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldY: %w", err)
	}
	return oldValue.Y, nil
}

// AddY adds i to the "y" field.
func (m *BalloonMutation) AddY(i int) {
	if m.addy != nil {
		*m.addy += i
	} else {
		m.addy = &i
	}
}

// AddedY returns the value that was added to the "y" field in this mutation.
func (m *BalloonMutation) AddedY() (r int, exists bool) {
	v := m.addy
	if v == nil {
		return
	}
	return *v, true
}

// ResetY resets all changes to the "y" field.
func (m *BalloonMutation) ResetY() {
	m.y = nil
	m.addy = nil
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (m *BalloonMutation) ClearDrawing() {
	m.cleareddrawing = true
	m.clearedFields[balloon.FieldDrawingID] = struct{}{}
}

// DrawingCleared reports if the "drawing" edge to the Drawing entity was cleared.
func (m *BalloonMutation) DrawingCleared() bool {
	return m.cleareddrawing
}

// DrawingIDs returns the "drawing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DrawingID instead. It exists only for internal usage by the builders.
func (m *BalloonMutation) DrawingIDs() (ids []uuid.UUID) {
	if id := m.drawing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDrawing resets all changes to the "drawing" edge.
func (m *BalloonMutation) ResetDrawing() {
	m.drawing = nil
	m.cleareddrawing = false
}

// Where appends a list predicates to the BalloonMutation builder.
func (m *BalloonMutation) Where(ps ...predicate.Balloon) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BalloonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BalloonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Balloon, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BalloonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BalloonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Balloon).
func (m *BalloonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BalloonMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.drawing != nil {
		fields = append(fields, balloon.FieldDrawingID)
	}
	if m.balloon_number != nil {
		fields = append(fields, balloon.FieldBalloonNumber)
	}
	if m.part_name != nil {
		fields = append(fields, balloon.FieldPartName)
	}
	if m.quantity != nil {
		fields = append(fields, balloon.FieldQuantity)
	}
	if m.confidence != nil {
		fields = append(fields, balloon.FieldConfidence)
	}
	if m.x != nil {
		fields = append(fields, balloon.FieldX)
	}
	if m.y != nil {
		fields = append(fields, balloon.FieldY)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BalloonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case balloon.FieldDrawingID:
		return m.DrawingID()
	case balloon.FieldBalloonNumber:
		return m.BalloonNumber()
	case balloon.FieldPartName:
		return m.PartName()
	case balloon.FieldQuantity:
		return m.Quantity()
	case balloon.FieldConfidence:
		return m.Confidence()
	case balloon.FieldX:
		return m.X()
	case balloon.FieldY:
		return m.Y()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BalloonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case balloon.FieldDrawingID:
		return m.OldDrawingID(ctx)
	case balloon.FieldBalloonNumber:
		return m.OldBalloonNumber(ctx)
	case balloon.FieldPartName:
		return m.OldPartName(ctx)
	case balloon.FieldQuantity:
		return m.OldQuantity(ctx)
	case balloon.FieldConfidence:
		return m.OldConfidence(ctx)
	case balloon.FieldX:
		return m.OldX(ctx)
	case balloon.FieldY:
		return m.OldY(ctx)
	}
	return nil, fmt.Errorf("unknown Balloon field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BalloonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case balloon.FieldDrawingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrawingID(v)
		return nil
	case balloon.FieldBalloonNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalloonNumber(v)
		return nil
	case balloon.FieldPartName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartName(v)
		return nil
	case balloon.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case balloon.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case balloon.FieldX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetX(v)
		return nil
	case balloon.FieldY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetY(v)
		return nil
	}
	return fmt.Errorf("unknown Balloon field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BalloonMutation) AddedFields() []string {
	var fields []string
	if m.addballoon_number != nil {
		fields = append(fields, balloon.FieldBalloonNumber)
	}
	if m.addquantity != nil {
		fields = append(fields, balloon.FieldQuantity)
	}
	if m.addconfidence != nil {
		fields = append(fields, balloon.FieldConfidence)
	}
	if m.addx != nil {
		fields = append(fields, balloon.FieldX)
	}
	if m.addy != nil {
		fields = append(fields, balloon.FieldY)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BalloonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case balloon.FieldBalloonNumber:
		return m.AddedBalloonNumber()
	case balloon.FieldQuantity:
		return m.AddedQuantity()
	case balloon.FieldConfidence:
		return m.AddedConfidence()
	case balloon.FieldX:
		return m.AddedX()
	case balloon.FieldY:
		return m.AddedY()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BalloonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case balloon.FieldBalloonNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalloonNumber(v)
		return nil
	case balloon.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case balloon.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case balloon.FieldX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddX(v)
		return nil
	case balloon.FieldY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddY(v)
		return nil
	}
	return fmt.Errorf("unknown Balloon numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BalloonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(balloon.FieldPartName) {
		fields = append(fields, balloon.FieldPartName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BalloonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BalloonMutation) ClearField(name string) error {
	switch name {
	case balloon.FieldPartName:
		m.ClearPartName()
		return nil
	}
	return fmt.Errorf("unknown Balloon nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BalloonMutation) ResetField(name string) error {
	switch name {
	case balloon.FieldDrawingID:
		m.ResetDrawingID()
		return nil
	case balloon.FieldBalloonNumber:
		m.ResetBalloonNumber()
		return nil
	case balloon.FieldPartName:
		m.ResetPartName()
		return nil
	case balloon.FieldQuantity:
		m.ResetQuantity()
		return nil
	case balloon.FieldConfidence:
		m.ResetConfidence()
		return nil
	case balloon.FieldX:
		m.ResetX()
		return nil
	case balloon.FieldY:
		m.ResetY()
		return nil
	}
	return fmt.Errorf("unknown Balloon field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BalloonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.drawing != nil {
		edges = append(edges, balloon.EdgeDrawing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BalloonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case balloon.EdgeDrawing:
		if id := m.drawing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BalloonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BalloonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BalloonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddrawing {
		edges = append(edges, balloon.EdgeDrawing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BalloonMutation) EdgeCleared(name string) bool {
	switch name {
	case balloon.EdgeDrawing:
		return m.cleareddrawing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BalloonMutation) ClearEdge(name string) error {
	switch name {
	case balloon.EdgeDrawing:
		m.ClearDrawing()
		return nil
	}
	return fmt.Errorf("unknown Balloon unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BalloonMutation) ResetEdge(name string) error {
	switch name {
	case balloon.EdgeDrawing:
		m.ResetDrawing()
		return nil
	}
	return fmt.Errorf("unknown Balloon edge %s", name)
}

// DrawingMutation represents an operation that mutates the Drawing nodes in the graph.
type DrawingMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	original_filename            *string
	pdf_filename                 *string
	storage_path                 *string
	thumbnail_path               *string
	page_number                  *int
	addpage_number               *int
	rotation                     *int
	addrotation                  *int
	status                       *string
	classification               *string
	classification_confidence    *float64
	addclassification_confidence *float64
	classification_reason        *string
	summary                      *string
	shape_features               *json.RawMessage
	appendshape_features         json.RawMessage
	error_message                *string
	created_by                   *string
	uploaded_at                  *time.Time
	analyzed_at                  *time.Time
	approved_at                  *time.Time
	clearedFields                map[string]struct{}
	fields                       map[uuid.UUID]struct{}
	removedfields                map[uuid.UUID]struct{}
	clearedfields                bool
	balloons                     map[uuid.UUID]struct{}
	removedballoons              map[uuid.UUID]struct{}
	clearedballoons              bool
	revisions                    map[uuid.UUID]struct{}
	removedrevisions             map[uuid.UUID]struct{}
	clearedrevisions             bool
	done                         bool
	oldValue                     func(context.Context) (*Drawing, error)
	predicates                   []predicate.Drawing
}

var _ ent.Mutation = (*DrawingMutation)(nil)

// drawingOption allows management of the mutation configuration using functional options.
type drawingOption func(*DrawingMutation)

// newDrawingMutation creates new mutation for the Drawing entity.
func newDrawingMutation(c config, op Op, opts ...drawingOption) *DrawingMutation {
	m := &DrawingMutation{
		config:        c,
		op:            op,
		typ:           TypeDrawing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDrawingID sets the ID field of the mutation.
func withDrawingID(id uuid.UUID) drawingOption {
	return func(m *DrawingMutation) {
		var (
			err   error
			once  sync.Once
			value *Drawing
		)
		m.oldValue = func(ctx context.Context) (*Drawing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Drawing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDrawing sets the old Drawing of the mutation.
func withDrawing(node *Drawing) drawingOption {
	return func(m *DrawingMutation) {
		m.oldValue = func(context.Context) (*Drawing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DrawingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DrawingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Drawing entities.
func (m *DrawingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DrawingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DrawingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Drawing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOriginalFilename sets the "original_filename" field.
func (m *DrawingMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *DrawingMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *DrawingMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetPdfFilename sets the "pdf_filename" field.
func (m *DrawingMutation) SetPdfFilename(s string) {
	m.pdf_filename = &s
}

// PdfFilename returns the value of the "pdf_filename" field in the mutation.
func (m *DrawingMutation) PdfFilename() (r string, exists bool) {
	v := m.pdf_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfFilename returns the old "pdf_filename" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldPdfFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfFilename: %w", err)
	}
	return oldValue.PdfFilename, nil
}

// ResetPdfFilename resets all changes to the "pdf_filename" field.
func (m *DrawingMutation) ResetPdfFilename() {
	m.pdf_filename = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DrawingMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DrawingMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DrawingMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetThumbnailPath sets the "thumbnail_path" field.
func (m *DrawingMutation) SetThumbnailPath(s string) {
	m.thumbnail_path = &s
}

// ThumbnailPath returns the value of the "thumbnail_path" field in the mutation.
func (m *DrawingMutation) ThumbnailPath() (r string, exists bool) {
	v := m.thumbnail_path
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailPath returns the old "thumbnail_path" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldThumbnailPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailPath: %w", err)
	}
	return oldValue.ThumbnailPath, nil
}

// ClearThumbnailPath clears the value of the "thumbnail_path" field.
func (m *DrawingMutation) ClearThumbnailPath() {
	m.thumbnail_path = nil
	m.clearedFields[drawing.FieldThumbnailPath] = struct{}{}
}

// ThumbnailPathCleared returns if the "thumbnail_path" field was cleared in this mutation.
func (m *DrawingMutation) ThumbnailPathCleared() bool {
	_, ok := m.clearedFields[drawing.FieldThumbnailPath]
	return ok
}

// ResetThumbnailPath resets all changes to the "thumbnail_path" field.
func (m *DrawingMutation) ResetThumbnailPath() {
	m.thumbnail_path = nil
	delete(m.clearedFields, drawing.FieldThumbnailPath)
}

// SetPageNumber sets the "page_number" field.
func (m *DrawingMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *DrawingMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *DrawingMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *DrawingMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *DrawingMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetRotation sets the "rotation" field.
func (m *DrawingMutation) SetRotation(i int) {
	m.rotation = &i
	m.addrotation = nil
}

// Rotation returns the value of the "rotation" field in the mutation.
func (m *DrawingMutation) Rotation() (r int, exists bool) {
	v := m.rotation
	if v == nil {
		return
	}
	return *v, true
}

// OldRotation returns the old "rotation" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldRotation(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRotation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRotation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRotation: %w", err)
	}
	return oldValue.Rotation, nil
}

// AddRotation adds i to the "rotation" field.
func (m *DrawingMutation) AddRotation(i int) {
	if m.addrotation != nil {
		*m.addrotation += i
	} else {
		m.addrotation = &i
	}
}

// AddedRotation returns the value that was added to the "rotation" field in this mutation.
func (m *DrawingMutation) AddedRotation() (r int, exists bool) {
	v := m.addrotation
	if v == nil {
		return
	}
	return *v, true
}

// ResetRotation resets all changes to the "rotation" field.
func (m *DrawingMutation) ResetRotation() {
	m.rotation = nil
	m.addrotation = nil
}

// SetStatus sets the "status" field.
func (m *DrawingMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DrawingMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DrawingMutation) ResetStatus() {
	m.status = nil
}

// SetClassification sets the "classification" field.
func (m *DrawingMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *DrawingMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldClassification(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ClearClassification clears the value of the "classification" field.
func (m *DrawingMutation) ClearClassification() {
	m.classification = nil
	m.clearedFields[drawing.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *DrawingMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[drawing.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *DrawingMutation) ResetClassification() {
	m.classification = nil
	delete(m.clearedFields, drawing.FieldClassification)
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (m *DrawingMutation) SetClassificationConfidence(f float64) {
	m.classification_confidence = &f
	m.addclassification_confidence = nil
}

// ClassificationConfidence returns the value of the "classification_confidence" field in the mutation.
func (m *DrawingMutation) ClassificationConfidence() (r float64, exists bool) {
	v := m.classification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldClassificationConfidence returns the old "classification_confidence" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldClassificationConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassificationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassificationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassificationConfidence: %w", err)
	}
	return oldValue.ClassificationConfidence, nil
}

// AddClassificationConfidence adds f to the "classification_confidence" field.
func (m *DrawingMutation) AddClassificationConfidence(f float64) {
	if m.addclassification_confidence != nil {
		*m.addclassification_confidence += f
	} else {
		m.addclassification_confidence = &f
	}
}

// AddedClassificationConfidence returns the value that was added to the "classification_confidence" field in this mutation.
func (m *DrawingMutation) AddedClassificationConfidence() (r float64, exists bool) {
	v := m.addclassification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearClassificationConfidence clears the value of the "classification_confidence" field.
func (m *DrawingMutation) ClearClassificationConfidence() {
	m.classification_confidence = nil
	m.addclassification_confidence = nil
	m.clearedFields[drawing.FieldClassificationConfidence] = struct{}{}
}

// ClassificationConfidenceCleared returns if the "classification_confidence" field was cleared in this mutation.
func (m *DrawingMutation) ClassificationConfidenceCleared() bool {
	_, ok := m.clearedFields[drawing.FieldClassificationConfidence]
	return ok
}

// ResetClassificationConfidence resets all changes to the "classification_confidence" field.
func (m *DrawingMutation) ResetClassificationConfidence() {
	m.classification_confidence = nil
	m.addclassification_confidence = nil
	delete(m.clearedFields, drawing.FieldClassificationConfidence)
}

// SetClassificationReason sets the "classification_reason" field.
func (m *DrawingMutation) SetClassificationReason(s string) {
	m.classification_reason = &s
}

// ClassificationReason returns the value of the "classification_reason" field in the mutation.
func (m *DrawingMutation) ClassificationReason() (r string, exists bool) {
	v := m.classification_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldClassificationReason returns the old "classification_reason" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldClassificationReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassificationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassificationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassificationReason: %w", err)
	}
	return oldValue.ClassificationReason, nil
}

// ClearClassificationReason clears the value of the "classification_reason" field.
func (m *DrawingMutation) ClearClassificationReason() {
	m.classification_reason = nil
	m.clearedFields[drawing.FieldClassificationReason] = struct{}{}
}

// ClassificationReasonCleared returns if the "classification_reason" field was cleared in this mutation.
func (m *DrawingMutation) ClassificationReasonCleared() bool {
	_, ok := m.clearedFields[drawing.FieldClassificationReason]
	return ok
}

// ResetClassificationReason resets all changes to the "classification_reason" field.
func (m *DrawingMutation) ResetClassificationReason() {
	m.classification_reason = nil
	delete(m.clearedFields, drawing.FieldClassificationReason)
}

// SetSummary sets the "summary" field.
func (m *DrawingMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *DrawingMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *DrawingMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[drawing.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *DrawingMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[drawing.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *DrawingMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, drawing.FieldSummary)
}

// SetShapeFeatures sets the "shape_features" field.
func (m *DrawingMutation) SetShapeFeatures(jm json.RawMessage) {
	m.shape_features = &jm
	m.appendshape_features = nil
}

// ShapeFeatures returns the value of the "shape_features" field in the mutation.
func (m *DrawingMutation) ShapeFeatures() (r json.RawMessage, exists bool) {
	v := m.shape_features
	if v == nil {
		return
	}
	return *v, true
}

// OldShapeFeatures returns the old "shape_features" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldShapeFeatures(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShapeFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShapeFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShapeFeatures: %w", err)
	}
	return oldValue.ShapeFeatures, nil
}

// AppendShapeFeatures adds jm to the "shape_features" field.
func (m *DrawingMutation) AppendShapeFeatures(jm json.RawMessage) {
	m.appendshape_features = append(m.appendshape_features, jm...)
}

// AppendedShapeFeatures returns the list of values that were appended to the "shape_features" field in this mutation.
func (m *DrawingMutation) AppendedShapeFeatures() (json.RawMessage, bool) {
	if len(m.appendshape_features) == 0 {
		return nil, false
	}
	return m.appendshape_features, true
}

// ClearShapeFeatures clears the value of the "shape_features" field.
func (m *DrawingMutation) ClearShapeFeatures() {
	m.shape_features = nil
	m.appendshape_features = nil
	m.clearedFields[drawing.FieldShapeFeatures] = struct{}{}
}

// ShapeFeaturesCleared returns if the "shape_features" field was cleared in this mutation.
func (m *DrawingMutation) ShapeFeaturesCleared() bool {
	_, ok := m.clearedFields[drawing.FieldShapeFeatures]
	return ok
}

// ResetShapeFeatures resets all changes to the "shape_features" field.
func (m *DrawingMutation) ResetShapeFeatures() {
	m.shape_features = nil
	m.appendshape_features = nil
	delete(m.clearedFields, drawing.FieldShapeFeatures)
}

// SetErrorMessage sets the "error_message" field.
func (m *DrawingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DrawingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DrawingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[drawing.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DrawingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[drawing.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DrawingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, drawing.FieldErrorMessage)
}

// SetCreatedBy sets the "created_by" field.
func (m *DrawingMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DrawingMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DrawingMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DrawingMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DrawingMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DrawingMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *DrawingMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *DrawingMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (m *DrawingMutation) ClearAnalyzedAt() {
	m.analyzed_at = nil
	m.clearedFields[drawing.FieldAnalyzedAt] = struct{}{}
}

// AnalyzedAtCleared returns if the "analyzed_at" field was cleared in this mutation.
func (m *DrawingMutation) AnalyzedAtCleared() bool {
	_, ok := m.clearedFields[drawing.FieldAnalyzedAt]
	return ok
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *DrawingMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
	delete(m.clearedFields, drawing.FieldAnalyzedAt)
}

// SetApprovedAt sets the "approved_at" field.
func (m *DrawingMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *DrawingMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Drawing entity.
// If the Drawing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DrawingMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *DrawingMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[drawing.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *DrawingMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[drawing.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *DrawingMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, drawing.FieldApprovedAt)
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by ids.
func (m *DrawingMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the ExtractedField entity.
func (m *DrawingMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the ExtractedField entity was cleared.
func (m *DrawingMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the ExtractedField entity by IDs.
func (m *DrawingMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the ExtractedField entity.
func (m *DrawingMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *DrawingMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *DrawingMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddBalloonIDs adds the "balloons" edge to the Balloon entity by ids.
func (m *DrawingMutation) AddBalloonIDs(ids ...uuid.UUID) {
	if m.balloons == nil {
		m.balloons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.balloons[ids[i]] = struct{}{}
	}
}

// ClearBalloons clears the "balloons" edge to the Balloon entity.
func (m *DrawingMutation) ClearBalloons() {
	m.clearedballoons = true
}

// BalloonsCleared reports if the "balloons" edge to the Balloon entity was cleared.
func (m *DrawingMutation) BalloonsCleared() bool {
	return m.clearedballoons
}

// RemoveBalloonIDs removes the "balloons" edge to the Balloon entity by IDs.
func (m *DrawingMutation) RemoveBalloonIDs(ids ...uuid.UUID) {
	if m.removedballoons == nil {
		m.removedballoons = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.balloons, ids[i])
		m.removedballoons[ids[i]] = struct{}{}
	}
}

// RemovedBalloons returns the removed IDs of the "balloons" edge to the Balloon entity.
func (m *DrawingMutation) RemovedBalloonsIDs() (ids []uuid.UUID) {
	for id := range m.removedballoons {
		ids = append(ids, id)
	}
	return
}

// BalloonsIDs returns the "balloons" edge IDs in the mutation.
func (m *DrawingMutation) BalloonsIDs() (ids []uuid.UUID) {
	for id := range m.balloons {
		ids = append(ids, id)
	}
	return
}

// ResetBalloons resets all changes to the "balloons" edge.
func (m *DrawingMutation) ResetBalloons() {
	m.balloons = nil
	m.clearedballoons = false
	m.removedballoons = nil
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by ids.
func (m *DrawingMutation) AddRevisionIDs(ids ...uuid.UUID) {
	if m.revisions == nil {
		m.revisions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.revisions[ids[i]] = struct{}{}
	}
}

// ClearRevisions clears the "revisions" edge to the Revision entity.
func (m *DrawingMutation) ClearRevisions() {
	m.clearedrevisions = true
}

// RevisionsCleared reports if the "revisions" edge to the Revision entity was cleared.
func (m *DrawingMutation) RevisionsCleared() bool {
	return m.clearedrevisions
}

// RemoveRevisionIDs removes the "revisions" edge to the Revision entity by IDs.
func (m *DrawingMutation) RemoveRevisionIDs(ids ...uuid.UUID) {
	if m.removedrevisions == nil {
		m.removedrevisions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.revisions, ids[i])
		m.removedrevisions[ids[i]] = struct{}{}
	}
}

// RemovedRevisions returns the removed IDs of the "revisions" edge to the Revision entity.
func (m *DrawingMutation) RemovedRevisionsIDs() (ids []uuid.UUID) {
	for id := range m.removedrevisions {
		ids = append(ids, id)
	}
	return
}

// RevisionsIDs returns the "revisions" edge IDs in the mutation.
func (m *DrawingMutation) RevisionsIDs() (ids []uuid.UUID) {
	for id := range m.revisions {
		ids = append(ids, id)
	}
	return
}

// ResetRevisions resets all changes to the "revisions" edge.
func (m *DrawingMutation) ResetRevisions() {
	m.revisions = nil
	m.clearedrevisions = false
	m.removedrevisions = nil
}

// Where appends a list predicates to the DrawingMutation builder.
func (m *DrawingMutation) Where(ps ...predicate.Drawing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DrawingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DrawingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Drawing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DrawingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DrawingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Drawing).
func (m *DrawingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DrawingMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.original_filename != nil {
		fields = append(fields, drawing.FieldOriginalFilename)
	}
	if m.pdf_filename != nil {
		fields = append(fields, drawing.FieldPdfFilename)
	}
	if m.storage_path != nil {
		fields = append(fields, drawing.FieldStoragePath)
	}
	if m.thumbnail_path != nil {
		fields = append(fields, drawing.FieldThumbnailPath)
	}
	if m.page_number != nil {
		fields = append(fields, drawing.FieldPageNumber)
	}
	if m.rotation != nil {
		fields = append(fields, drawing.FieldRotation)
	}
	if m.status != nil {
		fields = append(fields, drawing.FieldStatus)
	}
	if m.classification != nil {
		fields = append(fields, drawing.FieldClassification)
	}
	if m.classification_confidence != nil {
		fields = append(fields, drawing.FieldClassificationConfidence)
	}
	if m.classification_reason != nil {
		fields = append(fields, drawing.FieldClassificationReason)
	}
	if m.summary != nil {
		fields = append(fields, drawing.FieldSummary)
	}
	if m.shape_features != nil {
		fields = append(fields, drawing.FieldShapeFeatures)
	}
	if m.error_message != nil {
		fields = append(fields, drawing.FieldErrorMessage)
	}
	if m.created_by != nil {
		fields = append(fields, drawing.FieldCreatedBy)
	}
	if m.uploaded_at != nil {
		fields = append(fields, drawing.FieldUploadedAt)
	}
	if m.analyzed_at != nil {
		fields = append(fields, drawing.FieldAnalyzedAt)
	}
	if m.approved_at != nil {
		fields = append(fields, drawing.FieldApprovedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DrawingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case drawing.FieldOriginalFilename:
		return m.OriginalFilename()
	case drawing.FieldPdfFilename:
		return m.PdfFilename()
	case drawing.FieldStoragePath:
		return m.StoragePath()
	case drawing.FieldThumbnailPath:
		return m.ThumbnailPath()
	case drawing.FieldPageNumber:
		return m.PageNumber()
	case drawing.FieldRotation:
		return m.Rotation()
	case drawing.FieldStatus:
		return m.Status()
	case drawing.FieldClassification:
		return m.Classification()
	case drawing.FieldClassificationConfidence:
		return m.ClassificationConfidence()
	case drawing.FieldClassificationReason:
		return m.ClassificationReason()
	case drawing.FieldSummary:
		return m.Summary()
	case drawing.FieldShapeFeatures:
		return m.ShapeFeatures()
	case drawing.FieldErrorMessage:
		return m.ErrorMessage()
	case drawing.FieldCreatedBy:
		return m.CreatedBy()
	case drawing.FieldUploadedAt:
		return m.UploadedAt()
	case drawing.FieldAnalyzedAt:
		return m.AnalyzedAt()
	case drawing.FieldApprovedAt:
		return m.ApprovedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DrawingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case drawing.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case drawing.FieldPdfFilename:
		return m.OldPdfFilename(ctx)
	case drawing.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case drawing.FieldThumbnailPath:
		return m.OldThumbnailPath(ctx)
	case drawing.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case drawing.FieldRotation:
		return m.OldRotation(ctx)
	case drawing.FieldStatus:
		return m.OldStatus(ctx)
	case drawing.FieldClassification:
		return m.OldClassification(ctx)
	case drawing.FieldClassificationConfidence:
		return m.OldClassificationConfidence(ctx)
	case drawing.FieldClassificationReason:
		return m.OldClassificationReason(ctx)
	case drawing.FieldSummary:
		return m.OldSummary(ctx)
	case drawing.FieldShapeFeatures:
		return m.OldShapeFeatures(ctx)
	case drawing.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case drawing.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case drawing.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case drawing.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	case drawing.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Drawing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrawingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case drawing.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case drawing.FieldPdfFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfFilename(v)
		return nil
	case drawing.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case drawing.FieldThumbnailPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailPath(v)
		return nil
	case drawing.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case drawing.FieldRotation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRotation(v)
		return nil
	case drawing.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case drawing.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case drawing.FieldClassificationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassificationConfidence(v)
		return nil
	case drawing.FieldClassificationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassificationReason(v)
		return nil
	case drawing.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case drawing.FieldShapeFeatures:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShapeFeatures(v)
		return nil
	case drawing.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case drawing.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case drawing.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case drawing.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	case drawing.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Drawing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DrawingMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, drawing.FieldPageNumber)
	}
	if m.addrotation != nil {
		fields = append(fields, drawing.FieldRotation)
	}
	if m.addclassification_confidence != nil {
		fields = append(fields, drawing.FieldClassificationConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DrawingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case drawing.FieldPageNumber:
		return m.AddedPageNumber()
	case drawing.FieldRotation:
		return m.AddedRotation()
	case drawing.FieldClassificationConfidence:
		return m.AddedClassificationConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DrawingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case drawing.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case drawing.FieldRotation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRotation(v)
		return nil
	case drawing.FieldClassificationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassificationConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Drawing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DrawingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(drawing.FieldThumbnailPath) {
		fields = append(fields, drawing.FieldThumbnailPath)
	}
	if m.FieldCleared(drawing.FieldClassification) {
		fields = append(fields, drawing.FieldClassification)
	}
	if m.FieldCleared(drawing.FieldClassificationConfidence) {
		fields = append(fields, drawing.FieldClassificationConfidence)
	}
	if m.FieldCleared(drawing.FieldClassificationReason) {
		fields = append(fields, drawing.FieldClassificationReason)
	}
	if m.FieldCleared(drawing.FieldSummary) {
		fields = append(fields, drawing.FieldSummary)
	}
	if m.FieldCleared(drawing.FieldShapeFeatures) {
		fields = append(fields, drawing.FieldShapeFeatures)
	}
	if m.FieldCleared(drawing.FieldErrorMessage) {
		fields = append(fields, drawing.FieldErrorMessage)
	}
	if m.FieldCleared(drawing.FieldAnalyzedAt) {
		fields = append(fields, drawing.FieldAnalyzedAt)
	}
	if m.FieldCleared(drawing.FieldApprovedAt) {
		fields = append(fields, drawing.FieldApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DrawingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DrawingMutation) ClearField(name string) error {
	switch name {
	case drawing.FieldThumbnailPath:
		m.ClearThumbnailPath()
		return nil
	case drawing.FieldClassification:
		m.ClearClassification()
		return nil
	case drawing.FieldClassificationConfidence:
		m.ClearClassificationConfidence()
		return nil
	case drawing.FieldClassificationReason:
		m.ClearClassificationReason()
		return nil
	case drawing.FieldSummary:
		m.ClearSummary()
		return nil
	case drawing.FieldShapeFeatures:
		m.ClearShapeFeatures()
		return nil
	case drawing.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case drawing.FieldAnalyzedAt:
		m.ClearAnalyzedAt()
		return nil
	case drawing.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown Drawing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DrawingMutation) ResetField(name string) error {
	switch name {
	case drawing.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case drawing.FieldPdfFilename:
		m.ResetPdfFilename()
		return nil
	case drawing.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case drawing.FieldThumbnailPath:
		m.ResetThumbnailPath()
		return nil
	case drawing.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case drawing.FieldRotation:
		m.ResetRotation()
		return nil
	case drawing.FieldStatus:
		m.ResetStatus()
		return nil
	case drawing.FieldClassification:
		m.ResetClassification()
		return nil
	case drawing.FieldClassificationConfidence:
		m.ResetClassificationConfidence()
		return nil
	case drawing.FieldClassificationReason:
		m.ResetClassificationReason()
		return nil
	case drawing.FieldSummary:
		m.ResetSummary()
		return nil
	case drawing.FieldShapeFeatures:
		m.ResetShapeFeatures()
		return nil
	case drawing.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case drawing.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case drawing.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case drawing.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	case drawing.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown Drawing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DrawingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.fields != nil {
		edges = append(edges, drawing.EdgeFields)
	}
	if m.balloons != nil {
		edges = append(edges, drawing.EdgeBalloons)
	}
	if m.revisions != nil {
		edges = append(edges, drawing.EdgeRevisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DrawingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case drawing.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case drawing.EdgeBalloons:
		ids := make([]ent.Value, 0, len(m.balloons))
		for id := range m.balloons {
			ids = append(ids, id)
		}
		return ids
	case drawing.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.revisions))
		for id := range m.revisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DrawingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfields != nil {
		edges = append(edges, drawing.EdgeFields)
	}
	if m.removedballoons != nil {
		edges = append(edges, drawing.EdgeBalloons)
	}
	if m.removedrevisions != nil {
		edges = append(edges, drawing.EdgeRevisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DrawingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case drawing.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case drawing.EdgeBalloons:
		ids := make([]ent.Value, 0, len(m.removedballoons))
		for id := range m.removedballoons {
			ids = append(ids, id)
		}
		return ids
	case drawing.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.removedrevisions))
		for id := range m.removedrevisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DrawingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfields {
		edges = append(edges, drawing.EdgeFields)
	}
	if m.clearedballoons {
		edges = append(edges, drawing.EdgeBalloons)
	}
	if m.clearedrevisions {
		edges = append(edges, drawing.EdgeRevisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DrawingMutation) EdgeCleared(name string) bool {
	switch name {
	case drawing.EdgeFields:
		return m.clearedfields
	case drawing.EdgeBalloons:
		return m.clearedballoons
	case drawing.EdgeRevisions:
		return m.clearedrevisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DrawingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Drawing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DrawingMutation) ResetEdge(name string) error {
	switch name {
	case drawing.EdgeFields:
		m.ResetFields()
		return nil
	case drawing.EdgeBalloons:
		m.ResetBalloons()
		return nil
	case drawing.EdgeRevisions:
		m.ResetRevisions()
		return nil
	}
	return fmt.Errorf("unknown Drawing edge %s", name)
}

// ExtractedFieldMutation represents an operation that mutates the ExtractedField nodes in the graph.
type ExtractedFieldMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	value          *string
	confidence     *float64
	addconfidence  *float64
	x              *int
	addx           *int
	y              *int
	addy           *int
	width          *int
	addwidth       *int
	height         *int
	addheight      *int
	clearedFields  map[string]struct{}
	drawing        *uuid.UUID
	cleareddrawing bool
	done           bool
	oldValue       func(context.Context) (*ExtractedField, error)
	predicates     []predicate.ExtractedField
}

var _ ent.Mutation = (*ExtractedFieldMutation)(nil)

// extractedfieldOption allows management of the mutation configuration using functional options.
type extractedfieldOption func(*ExtractedFieldMutation)

// newExtractedFieldMutation creates new mutation for the ExtractedField entity.
func newExtractedFieldMutation(c config, op Op, opts ...extractedfieldOption) *ExtractedFieldMutation {
	m := &ExtractedFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedFieldID sets the ID field of the mutation.
func withExtractedFieldID(id uuid.UUID) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedField
		)
		m.oldValue = func(ctx context.Context) (*ExtractedField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedField sets the old ExtractedField of the mutation.
func withExtractedField(node *ExtractedField) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		m.oldValue = func(context.Context) (*ExtractedField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedField entities.
func (m *ExtractedFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDrawingID sets the "drawing_id" field.
func (m *ExtractedFieldMutation) SetDrawingID(u uuid.UUID) {
	m.drawing = &u
}

// DrawingID returns the value of the "drawing_id" field in the mutation.
func (m *ExtractedFieldMutation) DrawingID() (r uuid.UUID, exists bool) {
	v := m.drawing
	if v == nil {
		return
	}
	return *v, true
}

// OldDrawingID returns the old "drawing_id" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldDrawingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrawingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrawingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrawingID: %w", err)
	}
	return oldValue.DrawingID, nil
}

// ResetDrawingID resets all changes to the "drawing_id" field.
func (m *ExtractedFieldMutation) ResetDrawingID() {
	m.drawing = nil
}

// SetName sets the "name" field.
func (m *ExtractedFieldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExtractedFieldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExtractedFieldMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *ExtractedFieldMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *ExtractedFieldMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *ExtractedFieldMutation) ResetValue() {
	m.value = nil
}

// SetConfidence sets the "confidence" field.
func (m *ExtractedFieldMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractedFieldMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractedFieldMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractedFieldMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractedFieldMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetX sets the "x" field.
func (m *ExtractedFieldMutation) SetX(i int) {
	m.x = &i
	m.addx = nil
}

// X returns the value of the "x" field in the mutation.
func (m *ExtractedFieldMutation) X() (r int, exists bool) {
	v := m.x
	if v == nil {
		return
	}
	return *v, true
}

// OldX returns the old "x" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldX(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldX: %w", err)
	}
	return oldValue.X, nil
}

// AddX adds i to the "x" field.
func (m *ExtractedFieldMutation) AddX(i int) {
	if m.addx != nil {
		*m.addx += i
	} else {
		m.addx = &i
	}
}

// AddedX returns the value that was added to the "x" field in this mutation.
func (m *ExtractedFieldMutation) AddedX() (r int, exists bool) {
	v := m.addx
	if v == nil {
		return
	}
	return *v, true
}

// ResetX resets all changes to the "x" field.
func (m *ExtractedFieldMutation) ResetX() {
	m.x = nil
	m.addx = nil
}

// SetY sets the "y" field.
func (m *ExtractedFieldMutation) SetY(i int) {
	m.y = &i
	m.addy = nil
}

// Y returns the value of the "y" field in the mutation.
func (m *ExtractedFieldMutation) Y() (r int, exists bool) {
	v := m.y
	if v == nil {
		return
	}
	return *v, true
}

// OldY returns the old "y" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldY(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldY: %w", err)
	}
	return oldValue.Y, nil
}

// AddY adds i to the "y" field.
func (m *ExtractedFieldMutation) AddY(i int) {
	if m.addy != nil {
		*m.addy += i
	} else {
		m.addy = &i
	}
}

// AddedY returns the value that was added to the "y" field in this mutation.
func (m *ExtractedFieldMutation) AddedY() (r int, exists bool) {
	v := m.addy
	if v == nil {
		return
	}
	return *v, true
}

// ResetY resets all changes to the "y" field.
func (m *ExtractedFieldMutation) ResetY() {
	m.y = nil
	m.addy = nil
}

// SetWidth sets the "width" field.
func (m *ExtractedFieldMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *ExtractedFieldMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *ExtractedFieldMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *ExtractedFieldMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *ExtractedFieldMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *ExtractedFieldMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *ExtractedFieldMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *ExtractedFieldMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *ExtractedFieldMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *ExtractedFieldMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (m *ExtractedFieldMutation) ClearDrawing() {
	m.cleareddrawing = true
	m.clearedFields[extractedfield.FieldDrawingID] = struct{}{}
}

// DrawingCleared reports if the "drawing" edge to the Drawing entity was cleared.
func (m *ExtractedFieldMutation) DrawingCleared() bool {
	return m.cleareddrawing
}

// DrawingIDs returns the "drawing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DrawingID instead. It exists only for internal usage by the builders.
func (m *ExtractedFieldMutation) DrawingIDs() (ids []uuid.UUID) {
	if id := m.drawing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDrawing resets all changes to the "drawing" edge.
func (m *ExtractedFieldMutation) ResetDrawing() {
	m.drawing = nil
	m.cleareddrawing = false
}

// Where appends a list predicates to the ExtractedFieldMutation builder.
func (m *ExtractedFieldMutation) Where(ps ...predicate.ExtractedField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedField).
func (m *ExtractedFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedFieldMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.drawing != nil {
		fields = append(fields, extractedfield.FieldDrawingID)
	}
	if m.name != nil {
		fields = append(fields, extractedfield.FieldName)
	}
	if m.value != nil {
		fields = append(fields, extractedfield.FieldValue)
	}
	if m.confidence != nil {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	if m.x != nil {
		fields = append(fields, extractedfield.FieldX)
	}
	if m.y != nil {
		fields = append(fields, extractedfield.FieldY)
	}
	if m.width != nil {
		fields = append(fields, extractedfield.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, extractedfield.FieldHeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldDrawingID:
		return m.DrawingID()
	case extractedfield.FieldName:
		return m.Name()
	case extractedfield.FieldValue:
		return m.Value()
	case extractedfield.FieldConfidence:
		return m.Confidence()
	case extractedfield.FieldX:
		return m.X()
	case extractedfield.FieldY:
		return m.Y()
	case extractedfield.FieldWidth:
		return m.Width()
	case extractedfield.FieldHeight:
		return m.Height()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedfield.FieldDrawingID:
		return m.OldDrawingID(ctx)
	case extractedfield.FieldName:
		return m.OldName(ctx)
	case extractedfield.FieldValue:
		return m.OldValue(ctx)
	case extractedfield.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractedfield.FieldX:
		return m.OldX(ctx)
	case extractedfield.FieldY:
		return m.OldY(ctx)
	case extractedfield.FieldWidth:
		return m.OldWidth(ctx)
	case extractedfield.FieldHeight:
		return m.OldHeight(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldDrawingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrawingID(v)
		return nil
	case extractedfield.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case extractedfield.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case extractedfield.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractedfield.FieldX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetX(v)
		return nil
	case extractedfield.FieldY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetY(v)
		return nil
	case extractedfield.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case extractedfield.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedFieldMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	if m.addx != nil {
		fields = append(fields, extractedfield.FieldX)
	}
	if m.addy != nil {
		fields = append(fields, extractedfield.FieldY)
	}
	if m.addwidth != nil {
		fields = append(fields, extractedfield.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, extractedfield.FieldHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldConfidence:
		return m.AddedConfidence()
	case extractedfield.FieldX:
		return m.AddedX()
	case extractedfield.FieldY:
		return m.AddedY()
	case extractedfield.FieldWidth:
		return m.AddedWidth()
	case extractedfield.FieldHeight:
		return m.AddedHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractedfield.FieldX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddX(v)
		return nil
	case extractedfield.FieldY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddY(v)
		return nil
	case extractedfield.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case extractedfield.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedFieldMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExtractedField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ResetField(name string) error {
	switch name {
	case extractedfield.FieldDrawingID:
		m.ResetDrawingID()
		return nil
	case extractedfield.FieldName:
		m.ResetName()
		return nil
	case extractedfield.FieldValue:
		m.ResetValue()
		return nil
	case extractedfield.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractedfield.FieldX:
		m.ResetX()
		return nil
	case extractedfield.FieldY:
		m.ResetY()
		return nil
	case extractedfield.FieldWidth:
		m.ResetWidth()
		return nil
	case extractedfield.FieldHeight:
		m.ResetHeight()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.drawing != nil {
		edges = append(edges, extractedfield.EdgeDrawing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedfield.EdgeDrawing:
		if id := m.drawing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddrawing {
		edges = append(edges, extractedfield.EdgeDrawing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedfield.EdgeDrawing:
		return m.cleareddrawing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedFieldMutation) ClearEdge(name string) error {
	switch name {
	case extractedfield.EdgeDrawing:
		m.ClearDrawing()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedFieldMutation) ResetEdge(name string) error {
	switch name {
	case extractedfield.EdgeDrawing:
		m.ResetDrawing()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField edge %s", name)
}

// RevisionMutation represents an operation that mutates the Revision nodes in the graph.
type RevisionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	revision_number *string
	date            *string
	description     *string
	author          *string
	confidence      *float64
	addconfidence   *float64
	clearedFields   map[string]struct{}
	drawing         *uuid.UUID
	cleareddrawing  bool
	done            bool
	oldValue        func(context.Context) (*Revision, error)
	predicates      []predicate.Revision
}

var _ ent.Mutation = (*RevisionMutation)(nil)

// revisionOption allows management of the mutation configuration using functional options.
type revisionOption func(*RevisionMutation)

// newRevisionMutation creates new mutation for the Revision entity.
func newRevisionMutation(c config, op Op, opts ...revisionOption) *RevisionMutation {
	m := &RevisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRevision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRevisionID sets the ID field of the mutation.
func withRevisionID(id uuid.UUID) revisionOption {
	return func(m *RevisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Revision
		)
		m.oldValue = func(ctx context.Context) (*Revision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Revision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRevision sets the old Revision of the mutation.
func withRevision(node *Revision) revisionOption {
	return func(m *RevisionMutation) {
		m.oldValue = func(context.Context) (*Revision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RevisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RevisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Revision entities.
func (m *RevisionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RevisionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RevisionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Revision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDrawingID sets the "drawing_id" field.
func (m *RevisionMutation) SetDrawingID(u uuid.UUID) {
	m.drawing = &u
}

// DrawingID returns the value of the "drawing_id" field in the mutation.
func (m *RevisionMutation) DrawingID() (r uuid.UUID, exists bool) {
	v := m.drawing
	if v == nil {
		return
	}
	return *v, true
}

// OldDrawingID returns the old "drawing_id" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldDrawingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrawingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrawingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrawingID: %w", err)
	}
	return oldValue.DrawingID, nil
}

// ResetDrawingID resets all changes to the "drawing_id" field.
func (m *RevisionMutation) ResetDrawingID() {
	m.drawing = nil
}

// SetRevisionNumber sets the "revision_number" field.
func (m *RevisionMutation) SetRevisionNumber(s string) {
	m.revision_number = &s
}

// RevisionNumber returns the value of the "revision_number" field in the mutation.
func (m *RevisionMutation) RevisionNumber() (r string, exists bool) {
	v := m.revision_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisionNumber returns the old "revision_number" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldRevisionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisionNumber: %w", err)
	}
	return oldValue.RevisionNumber, nil
}

// ResetRevisionNumber resets all changes to the "revision_number" field.
func (m *RevisionMutation) ResetRevisionNumber() {
	m.revision_number = nil
}

// SetDate sets the "date" field.
func (m *RevisionMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *RevisionMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ClearDate clears the value of the "date" field.
func (m *RevisionMutation) ClearDate() {
	m.date = nil
	m.clearedFields[revision.FieldDate] = struct{}{}
}

// DateCleared returns if the "date" field was cleared in this mutation.
func (m *RevisionMutation) DateCleared() bool {
	_, ok := m.clearedFields[revision.FieldDate]
	return ok
}

// ResetDate resets all changes to the "date" field.
func (m *RevisionMutation) ResetDate() {
	m.date = nil
	delete(m.clearedFields, revision.FieldDate)
}

// SetDescription sets the "description" field.
func (m *RevisionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RevisionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RevisionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[revision.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RevisionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[revision.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RevisionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, revision.FieldDescription)
}

// SetAuthor sets the "author" field.
func (m *RevisionMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *RevisionMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *RevisionMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[revision.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *RevisionMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[revision.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *RevisionMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, revision.FieldAuthor)
}

// SetConfidence sets the "confidence" field.
func (m *RevisionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RevisionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RevisionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RevisionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RevisionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (m *RevisionMutation) ClearDrawing() {
	m.cleareddrawing = true
	m.clearedFields[revision.FieldDrawingID] = struct{}{}
}

// DrawingCleared reports if the "drawing" edge to the Drawing entity was cleared.
func (m *RevisionMutation) DrawingCleared() bool {
	return m.cleareddrawing
}

// DrawingIDs returns the "drawing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DrawingID instead. It exists only for internal usage by the builders.
func (m *RevisionMutation) DrawingIDs() (ids []uuid.UUID) {
	if id := m.drawing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDrawing resets all changes to the "drawing" edge.
func (m *RevisionMutation) ResetDrawing() {
	m.drawing = nil
	m.cleareddrawing = false
}

// Where appends a list predicates to the RevisionMutation builder.
func (m *RevisionMutation) Where(ps ...predicate.Revision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RevisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RevisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Revision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RevisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RevisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Revision).
func (m *RevisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RevisionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.drawing != nil {
		fields = append(fields, revision.FieldDrawingID)
	}
	if m.revision_number != nil {
		fields = append(fields, revision.FieldRevisionNumber)
	}
	if m.date != nil {
		fields = append(fields, revision.FieldDate)
	}
	if m.description != nil {
		fields = append(fields, revision.FieldDescription)
	}
	if m.author != nil {
		fields = append(fields, revision.FieldAuthor)
	}
	if m.confidence != nil {
		fields = append(fields, revision.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RevisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldDrawingID:
		return m.DrawingID()
	case revision.FieldRevisionNumber:
		return m.RevisionNumber()
	case revision.FieldDate:
		return m.Date()
	case revision.FieldDescription:
		return m.Description()
	case revision.FieldAuthor:
		return m.Author()
	case revision.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RevisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case revision.FieldDrawingID:
		return m.OldDrawingID(ctx)
	case revision.FieldRevisionNumber:
		return m.OldRevisionNumber(ctx)
	case revision.FieldDate:
		return m.OldDate(ctx)
	case revision.FieldDescription:
		return m.OldDescription(ctx)
	case revision.FieldAuthor:
		return m.OldAuthor(ctx)
	case revision.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown Revision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case revision.FieldDrawingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrawingID(v)
		return nil
	case revision.FieldRevisionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisionNumber(v)
		return nil
	case revision.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case revision.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case revision.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case revision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RevisionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, revision.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RevisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case revision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Revision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RevisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(revision.FieldDate) {
		fields = append(fields, revision.FieldDate)
	}
	if m.FieldCleared(revision.FieldDescription) {
		fields = append(fields, revision.FieldDescription)
	}
	if m.FieldCleared(revision.FieldAuthor) {
		fields = append(fields, revision.FieldAuthor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RevisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RevisionMutation) ClearField(name string) error {
	switch name {
	case revision.FieldDate:
		m.ClearDate()
		return nil
	case revision.FieldDescription:
		m.ClearDescription()
		return nil
	case revision.FieldAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown Revision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RevisionMutation) ResetField(name string) error {
	switch name {
	case revision.FieldDrawingID:
		m.ResetDrawingID()
		return nil
	case revision.FieldRevisionNumber:
		m.ResetRevisionNumber()
		return nil
	case revision.FieldDate:
		m.ResetDate()
		return nil
	case revision.FieldDescription:
		m.ResetDescription()
		return nil
	case revision.FieldAuthor:
		m.ResetAuthor()
		return nil
	case revision.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RevisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.drawing != nil {
		edges = append(edges, revision.EdgeDrawing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RevisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case revision.EdgeDrawing:
		if id := m.drawing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RevisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RevisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RevisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddrawing {
		edges = append(edges, revision.EdgeDrawing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RevisionMutation) EdgeCleared(name string) bool {
	switch name {
	case revision.EdgeDrawing:
		return m.cleareddrawing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RevisionMutation) ClearEdge(name string) error {
	switch name {
	case revision.EdgeDrawing:
		m.ClearDrawing()
		return nil
	}
	return fmt.Errorf("unknown Revision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RevisionMutation) ResetEdge(name string) error {
	switch name {
	case revision.EdgeDrawing:
		m.ResetDrawing()
		return nil
	}
	return fmt.Errorf("unknown Revision edge %s", name)
}
