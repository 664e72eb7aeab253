// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/predicate"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// DrawingQuery is the builder for querying Drawing entities.
type DrawingQuery struct {
	config
	ctx           *QueryContext
	order         []drawing.OrderOption
	inters        []Interceptor
	predicates    []predicate.Drawing
	withFields    *ExtractedFieldQuery
	withBalloons  *BalloonQuery
	withRevisions *RevisionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DrawingQuery builder.
func (_q *DrawingQuery) Where(ps ...predicate.Drawing) *DrawingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DrawingQuery) Limit(limit int) *DrawingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DrawingQuery) Offset(offset int) *DrawingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DrawingQuery) Unique(unique bool) *DrawingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DrawingQuery) Order(o ...drawing.OrderOption) *DrawingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFields chains the current query on the "fields" edge.
func (_q *DrawingQuery) QueryFields() *ExtractedFieldQuery {
	query := (&ExtractedFieldClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(drawing.Table, drawing.FieldID, selector),
			sqlgraph.To(extractedfield.Table, extractedfield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, drawing.FieldsTable, drawing.FieldsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBalloons chains the current query on the "balloons" edge.
func (_q *DrawingQuery) QueryBalloons() *BalloonQuery {
	query := (&BalloonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(drawing.Table, drawing.FieldID, selector),
			sqlgraph.To(balloon.Table, balloon.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, drawing.BalloonsTable, drawing.BalloonsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRevisions chains the current query on the "revisions" edge.
func (_q *DrawingQuery) QueryRevisions() *RevisionQuery {
	query := (&RevisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(drawing.Table, drawing.FieldID, selector),
			sqlgraph.To(revision.Table, revision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, drawing.RevisionsTable, drawing.RevisionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Drawing entity from the query.
// Returns a *NotFoundError when no Drawing was found.
func (_q *DrawingQuery) First(ctx context.Context) (*Drawing, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{drawing.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DrawingQuery) FirstX(ctx context.Context) *Drawing {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Drawing ID from the query.
// Returns a *NotFoundError when no Drawing ID was found.
func (_q *DrawingQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{drawing.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DrawingQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Drawing entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Drawing entity is found.
// Returns a *NotFoundError when no Drawing entities are found.
func (_q *DrawingQuery) Only(ctx context.Context) (*Drawing, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{drawing.Label}
	default:
		return nil, &NotSingularError{drawing.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DrawingQuery) OnlyX(ctx context.Context) *Drawing {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Drawing ID in the query.
// Returns a *NotSingularError when more than one Drawing ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DrawingQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{drawing.Label}
	default:
		err = &NotSingularError{drawing.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DrawingQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Drawings.
func (_q *DrawingQuery) All(ctx context.Context) ([]*Drawing, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Drawing, *DrawingQuery]()
	return withInterceptors[[]*Drawing](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DrawingQuery) AllX(ctx context.Context) []*Drawing {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Drawing IDs.
func (_q *DrawingQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(drawing.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DrawingQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DrawingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DrawingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DrawingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DrawingQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DrawingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DrawingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DrawingQuery) Clone() *DrawingQuery {
	if _q == nil {
		return nil
	}
	return &DrawingQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]drawing.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Drawing{}, _q.predicates...),
		withFields:    _q.withFields.Clone(),
		withBalloons:  _q.withBalloons.Clone(),
		withRevisions: _q.withRevisions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFields tells the query-builder to eager-load the nodes that are connected to
// the "fields" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DrawingQuery) WithFields(opts ...func(*ExtractedFieldQuery)) *DrawingQuery {
	query := (&ExtractedFieldClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFields = query
	return _q
}

// WithBalloons tells the query-builder to eager-load the nodes that are connected to
// the "balloons" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DrawingQuery) WithBalloons(opts ...func(*BalloonQuery)) *DrawingQuery {
	query := (&BalloonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBalloons = query
	return _q
}

// WithRevisions tells the query-builder to eager-load the nodes that are connected to
// the "revisions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DrawingQuery) WithRevisions(opts ...func(*RevisionQuery)) *DrawingQuery {
	query := (&RevisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRevisions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OriginalFilename string `json:"original_filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Drawing.Query().
//		GroupBy(drawing.FieldOriginalFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DrawingQuery) GroupBy(field string, fields ...string) *DrawingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DrawingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = drawing.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OriginalFilename string `json:"original_filename,omitempty"`
//	}
//
//	client.Drawing.Query().
//		Select(drawing.FieldOriginalFilename).
//		Scan(ctx, &v)
func (_q *DrawingQuery) Select(fields ...string) *DrawingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DrawingSelect{DrawingQuery: _q}
	sbuild.label = drawing.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DrawingSelect configured with the given aggregations.
func (_q *DrawingQuery) Aggregate(fns ...AggregateFunc) *DrawingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DrawingQuery) prepareQuery(ctx context.Context) error {
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
		if !drawing.ValidColumn(f) {
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

func (_q *DrawingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Drawing, error) {
	var (
		nodes       = []*Drawing{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withFields != nil,
			_q.withBalloons != nil,
			_q.withRevisions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Drawing).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Drawing{config: _q.config}
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
	if query := _q.withFields; query != nil {
		if err := _q.loadFields(ctx, query, nodes,
			func(n *Drawing) { n.Edges.Fields = []*ExtractedField{} },
			func(n *Drawing, e *ExtractedField) { n.Edges.Fields = append(n.Edges.Fields, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBalloons; query != nil {
		if err := _q.loadBalloons(ctx, query, nodes,
			func(n *Drawing) { n.Edges.Balloons = []*Balloon{} },
			func(n *Drawing, e *Balloon) { n.Edges.Balloons = append(n.Edges.Balloons, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRevisions; query != nil {
		if err := _q.loadRevisions(ctx, query, nodes,
			func(n *Drawing) { n.Edges.Revisions = []*Revision{} },
			func(n *Drawing, e *Revision) { n.Edges.Revisions = append(n.Edges.Revisions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DrawingQuery) loadFields(ctx context.Context, query *ExtractedFieldQuery, nodes []*Drawing, init func(*Drawing), assign func(*Drawing, *ExtractedField)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Drawing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedfield.FieldDrawingID)
	}
	query.Where(predicate.ExtractedField(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(drawing.FieldsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DrawingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "drawing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DrawingQuery) loadBalloons(ctx context.Context, query *BalloonQuery, nodes []*Drawing, init func(*Drawing), assign func(*Drawing, *Balloon)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Drawing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(balloon.FieldDrawingID)
	}
	query.Where(predicate.Balloon(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(drawing.BalloonsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DrawingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "drawing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DrawingQuery) loadRevisions(ctx context.Context, query *RevisionQuery, nodes []*Drawing, init func(*Drawing), assign func(*Drawing, *Revision)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Drawing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(revision.FieldDrawingID)
	}
	query.Where(predicate.Revision(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(drawing.RevisionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DrawingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "drawing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DrawingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DrawingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(drawing.Table, drawing.Columns, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drawing.FieldID)
		for i := range fields {
			if fields[i] != drawing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DrawingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(drawing.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = drawing.Columns
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

// DrawingGroupBy is the group-by builder for Drawing entities.
type DrawingGroupBy struct {
	selector
	build *DrawingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DrawingGroupBy) Aggregate(fns ...AggregateFunc) *DrawingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DrawingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DrawingQuery, *DrawingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DrawingGroupBy) sqlScan(ctx context.Context, root *DrawingQuery, v any) error {
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

// DrawingSelect is the builder for selecting fields of Drawing entities.
type DrawingSelect struct {
	*DrawingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DrawingSelect) Aggregate(fns ...AggregateFunc) *DrawingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DrawingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DrawingQuery, *DrawingSelect](ctx, _s.DrawingQuery, _s, _s.inters, v)
}

func (_s *DrawingSelect) sqlScan(ctx context.Context, root *DrawingQuery, v any) error {
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
