// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
)

// BalloonQuery is the builder for querying Balloon entities.
type BalloonQuery struct {
	config
	ctx         *QueryContext
	order       []balloon.OrderOption
	inters      []Interceptor
	predicates  []predicate.Balloon
	withDrawing *DrawingQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BalloonQuery builder.
func (_q *BalloonQuery) Where(ps ...predicate.Balloon) *BalloonQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BalloonQuery) Limit(limit int) *BalloonQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BalloonQuery) Offset(offset int) *BalloonQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BalloonQuery) Unique(unique bool) *BalloonQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BalloonQuery) Order(o ...balloon.OrderOption) *BalloonQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDrawing chains the current query on the "drawing" edge.
func (_q *BalloonQuery) QueryDrawing() *DrawingQuery {
	query := (&DrawingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(balloon.Table, balloon.FieldID, selector),
			sqlgraph.To(drawing.Table, drawing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, balloon.DrawingTable, balloon.DrawingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Balloon entity from the query.
// Returns a *NotFoundError when no Balloon was found.
func (_q *BalloonQuery) First(ctx context.Context) (*Balloon, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{balloon.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BalloonQuery) FirstX(ctx context.Context) *Balloon {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Balloon ID from the query.
// Returns a *NotFoundError when no Balloon ID was found.
func (_q *BalloonQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{balloon.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BalloonQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Balloon entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Balloon entity is found.
// Returns a *NotFoundError when no Balloon entities are found.
func (_q *BalloonQuery) Only(ctx context.Context) (*Balloon, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{balloon.Label}
	default:
		return nil, &NotSingularError{balloon.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BalloonQuery) OnlyX(ctx context.Context) *Balloon {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Balloon ID in the query.
// Returns a *NotSingularError when more than one Balloon ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BalloonQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{balloon.Label}
	default:
		err = &NotSingularError{balloon.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BalloonQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Balloons.
func (_q *BalloonQuery) All(ctx context.Context) ([]*Balloon, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Balloon, *BalloonQuery]()
	return withInterceptors[[]*Balloon](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BalloonQuery) AllX(ctx context.Context) []*Balloon {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Balloon IDs.
func (_q *BalloonQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(balloon.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BalloonQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BalloonQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BalloonQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BalloonQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BalloonQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BalloonQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BalloonQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BalloonQuery) Clone() *BalloonQuery {
	if _q == nil {
		return nil
	}
	return &BalloonQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]balloon.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Balloon{}, _q.predicates...),
		withDrawing: _q.withDrawing.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDrawing tells the query-builder to eager-load the nodes that are connected to
// the "drawing" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BalloonQuery) WithDrawing(opts ...func(*DrawingQuery)) *BalloonQuery {
	query := (&DrawingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDrawing = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DrawingID uuid.UUID `json:"drawing_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Balloon.Query().
//		GroupBy(balloon.FieldDrawingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BalloonQuery) GroupBy(field string, fields ...string) *BalloonGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BalloonGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = balloon.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DrawingID uuid.UUID `json:"drawing_id,omitempty"`
//	}
//
//	client.Balloon.Query().
//		Select(balloon.FieldDrawingID).
//		Scan(ctx, &v)
func (_q *BalloonQuery) Select(fields ...string) *BalloonSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BalloonSelect{BalloonQuery: _q}
	sbuild.label = balloon.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BalloonSelect configured with the given aggregations.
func (_q *BalloonQuery) Aggregate(fns ...AggregateFunc) *BalloonSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BalloonQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !balloon.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BalloonQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Balloon, error) {
	var (
		nodes       = []*Balloon{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withDrawing != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Balloon).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Balloon{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDrawing; query != nil {
		if err := _q.loadDrawing(ctx, query, nodes, nil,
			func(n *Balloon, e *Drawing) { n.Edges.Drawing = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BalloonQuery) loadDrawing(ctx context.Context, query *DrawingQuery, nodes []*Balloon, init func(*Balloon), assign func(*Balloon, *Drawing)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Balloon)
	for i := range nodes {
		fk := nodes[i].DrawingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(drawing.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "drawing_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *BalloonQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BalloonQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(balloon.Table, balloon.Columns, sqlgraph.NewFieldSpec(balloon.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, balloon.FieldID)
		for i := range fields {
			if fields[i] != balloon.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDrawing != nil {
			_spec.Node.AddColumnOnce(balloon.FieldDrawingID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BalloonQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(balloon.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = balloon.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BalloonGroupBy is the group-by builder for Balloon entities.
type BalloonGroupBy struct {
	selector
	build *BalloonQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BalloonGroupBy) Aggregate(fns ...AggregateFunc) *BalloonGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BalloonGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BalloonQuery, *BalloonGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BalloonGroupBy) sqlScan(ctx context.Context, root *BalloonQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BalloonSelect is the builder for selecting fields of Balloon entities.
type BalloonSelect struct {
	*BalloonQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BalloonSelect) Aggregate(fns ...AggregateFunc) *BalloonSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BalloonSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BalloonQuery, *BalloonSelect](ctx, _s.BalloonQuery, _s, _s.inters, v)
}

func (_s *BalloonSelect) sqlScan(ctx context.Context, root *BalloonQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
