// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/takuya-okamoto/zumenkan/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/takuya-okamoto/zumenkan/gen/ent/balloon"
	"github.com/takuya-okamoto/zumenkan/gen/ent/drawing"
	"github.com/takuya-okamoto/zumenkan/gen/ent/extractedfield"
	"github.com/takuya-okamoto/zumenkan/gen/ent/revision"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Balloon is the client for interacting with the Balloon builders.
	Balloon *BalloonClient
	// Drawing is the client for interacting with the Drawing builders.
	Drawing *DrawingClient
	// ExtractedField is the client for interacting with the ExtractedField builders.
	ExtractedField *ExtractedFieldClient
	// Revision is the client for interacting with the Revision builders.
	Revision *RevisionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Balloon = NewBalloonClient(c.config)
	c.Drawing = NewDrawingClient(c.config)
	c.ExtractedField = NewExtractedFieldClient(c.config)
	c.Revision = NewRevisionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Balloon:        NewBalloonClient(cfg),
		Drawing:        NewDrawingClient(cfg),
		ExtractedField: NewExtractedFieldClient(cfg),
		Revision:       NewRevisionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Balloon:        NewBalloonClient(cfg),
		Drawing:        NewDrawingClient(cfg),
		ExtractedField: NewExtractedFieldClient(cfg),
		Revision:       NewRevisionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Balloon.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Balloon.Use(hooks...)
	c.Drawing.Use(hooks...)
	c.ExtractedField.Use(hooks...)
	c.Revision.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Balloon.Intercept(interceptors...)
	c.Drawing.Intercept(interceptors...)
	c.ExtractedField.Intercept(interceptors...)
	c.Revision.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BalloonMutation:
		return c.Balloon.mutate(ctx, m)
	case *DrawingMutation:
		return c.Drawing.mutate(ctx, m)
	case *ExtractedFieldMutation:
		return c.ExtractedField.mutate(ctx, m)
	case *RevisionMutation:
		return c.Revision.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BalloonClient is a client for the Balloon schema.
type BalloonClient struct {
	config
}

// NewBalloonClient returns a client for the Balloon from the given config.
func NewBalloonClient(c config) *BalloonClient {
	return &BalloonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `balloon.Hooks(f(g(h())))`.
func (c *BalloonClient) Use(hooks ...Hook) {
	c.hooks.Balloon = append(c.hooks.Balloon, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `balloon.Intercept(f(g(h())))`.
func (c *BalloonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Balloon = append(c.inters.Balloon, interceptors...)
}

// Create returns a builder for creating a Balloon entity.
func (c *BalloonClient) Create() *BalloonCreate {
	mutation := newBalloonMutation(c.config, OpCreate)
	return &BalloonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Balloon entities.
func (c *BalloonClient) CreateBulk(builders ...*BalloonCreate) *BalloonCreateBulk {
	return &BalloonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BalloonClient) MapCreateBulk(slice any, setFunc func(*BalloonCreate, int)) *BalloonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BalloonCreateBulk{err: fmt.Errorf("calling to BalloonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BalloonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BalloonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Balloon.
func (c *BalloonClient) Update() *BalloonUpdate {
	mutation := newBalloonMutation(c.config, OpUpdate)
	return &BalloonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BalloonClient) UpdateOne(_m *Balloon) *BalloonUpdateOne {
	mutation := newBalloonMutation(c.config, OpUpdateOne, withBalloon(_m))
	return &BalloonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BalloonClient) UpdateOneID(id uuid.UUID) *BalloonUpdateOne {
	mutation := newBalloonMutation(c.config, OpUpdateOne, withBalloonID(id))
	return &BalloonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Balloon.
func (c *BalloonClient) Delete() *BalloonDelete {
	mutation := newBalloonMutation(c.config, OpDelete)
	return &BalloonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BalloonClient) DeleteOne(_m *Balloon) *BalloonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BalloonClient) DeleteOneID(id uuid.UUID) *BalloonDeleteOne {
	builder := c.Delete().Where(balloon.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BalloonDeleteOne{builder}
}

// Query returns a query builder for Balloon.
func (c *BalloonClient) Query() *BalloonQuery {
	return &BalloonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBalloon},
		inters: c.Interceptors(),
	}
}

// Get returns a Balloon entity by its id.
func (c *BalloonClient) Get(ctx context.Context, id uuid.UUID) (*Balloon, error) {
	return c.Query().Where(balloon.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BalloonClient) GetX(ctx context.Context, id uuid.UUID) *Balloon {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDrawing queries the drawing edge of a Balloon.
func (c *BalloonClient) QueryDrawing(_m *Balloon) *DrawingQuery {
	query := (&DrawingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(balloon.Table, balloon.FieldID, id),
			sqlgraph.To(drawing.Table, drawing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, balloon.DrawingTable, balloon.DrawingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BalloonClient) Hooks() []Hook {
	return c.hooks.Balloon
}

// Interceptors returns the client interceptors.
func (c *BalloonClient) Interceptors() []Interceptor {
	return c.inters.Balloon
}

func (c *BalloonClient) mutate(ctx context.Context, m *BalloonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BalloonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BalloonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BalloonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BalloonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Balloon mutation op: %q", m.Op())
	}
}

// DrawingClient is a client for the Drawing schema.
type DrawingClient struct {
	config
}

// NewDrawingClient returns a client for the Drawing from the given config.
func NewDrawingClient(c config) *DrawingClient {
	return &DrawingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `drawing.Hooks(f(g(h())))`.
func (c *DrawingClient) Use(hooks ...Hook) {
	c.hooks.Drawing = append(c.hooks.Drawing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `drawing.Intercept(f(g(h())))`.
func (c *DrawingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Drawing = append(c.inters.Drawing, interceptors...)
}

// Create returns a builder for creating a Drawing entity.
func (c *DrawingClient) Create() *DrawingCreate {
	mutation := newDrawingMutation(c.config, OpCreate)
	return &DrawingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Drawing entities.
func (c *DrawingClient) CreateBulk(builders ...*DrawingCreate) *DrawingCreateBulk {
	return &DrawingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DrawingClient) MapCreateBulk(slice any, setFunc func(*DrawingCreate, int)) *DrawingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DrawingCreateBulk{err: fmt.Errorf("calling to DrawingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DrawingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DrawingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Drawing.
func (c *DrawingClient) Update() *DrawingUpdate {
	mutation := newDrawingMutation(c.config, OpUpdate)
	return &DrawingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DrawingClient) UpdateOne(_m *Drawing) *DrawingUpdateOne {
	mutation := newDrawingMutation(c.config, OpUpdateOne, withDrawing(_m))
	return &DrawingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DrawingClient) UpdateOneID(id uuid.UUID) *DrawingUpdateOne {
	mutation := newDrawingMutation(c.config, OpUpdateOne, withDrawingID(id))
	return &DrawingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Drawing.
func (c *DrawingClient) Delete() *DrawingDelete {
	mutation := newDrawingMutation(c.config, OpDelete)
	return &DrawingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DrawingClient) DeleteOne(_m *Drawing) *DrawingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DrawingClient) DeleteOneID(id uuid.UUID) *DrawingDeleteOne {
	builder := c.Delete().Where(drawing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DrawingDeleteOne{builder}
}

// Query returns a query builder for Drawing.
func (c *DrawingClient) Query() *DrawingQuery {
	return &DrawingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDrawing},
		inters: c.Interceptors(),
	}
}

// Get returns a Drawing entity by its id.
func (c *DrawingClient) Get(ctx context.Context, id uuid.UUID) (*Drawing, error) {
	return c.Query().Where(drawing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DrawingClient) GetX(ctx context.Context, id uuid.UUID) *Drawing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFields queries the fields edge of a Drawing.
func (c *DrawingClient) QueryFields(_m *Drawing) *ExtractedFieldQuery {
	query := (&ExtractedFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(drawing.Table, drawing.FieldID, id),
			sqlgraph.To(extractedfield.Table, extractedfield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, drawing.FieldsTable, drawing.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBalloons queries the balloons edge of a Drawing.
func (c *DrawingClient) QueryBalloons(_m *Drawing) *BalloonQuery {
	query := (&BalloonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(drawing.Table, drawing.FieldID, id),
			sqlgraph.To(balloon.Table, balloon.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, drawing.BalloonsTable, drawing.BalloonsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRevisions queries the revisions edge of a Drawing.
func (c *DrawingClient) QueryRevisions(_m *Drawing) *RevisionQuery {
	query := (&RevisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(drawing.Table, drawing.FieldID, id),
			sqlgraph.To(revision.Table, revision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, drawing.RevisionsTable, drawing.RevisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DrawingClient) Hooks() []Hook {
	return c.hooks.Drawing
}

// Interceptors returns the client interceptors.
func (c *DrawingClient) Interceptors() []Interceptor {
	return c.inters.Drawing
}

func (c *DrawingClient) mutate(ctx context.Context, m *DrawingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DrawingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DrawingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DrawingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DrawingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Drawing mutation op: %q", m.Op())
	}
}

// ExtractedFieldClient is a client for the ExtractedField schema.
type ExtractedFieldClient struct {
	config
}

// NewExtractedFieldClient returns a client for the ExtractedField from the given config.
func NewExtractedFieldClient(c config) *ExtractedFieldClient {
	return &ExtractedFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedfield.Hooks(f(g(h())))`.
func (c *ExtractedFieldClient) Use(hooks ...Hook) {
	c.hooks.ExtractedField = append(c.hooks.ExtractedField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedfield.Intercept(f(g(h())))`.
func (c *ExtractedFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedField = append(c.inters.ExtractedField, interceptors...)
}

// Create returns a builder for creating a ExtractedField entity.
func (c *ExtractedFieldClient) Create() *ExtractedFieldCreate {
	mutation := newExtractedFieldMutation(c.config, OpCreate)
	return &ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedField entities.
func (c *ExtractedFieldClient) CreateBulk(builders ...*ExtractedFieldCreate) *ExtractedFieldCreateBulk {
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedFieldClient) MapCreateBulk(slice any, setFunc func(*ExtractedFieldCreate, int)) *ExtractedFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedFieldCreateBulk{err: fmt.Errorf("calling to ExtractedFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedField.
func (c *ExtractedFieldClient) Update() *ExtractedFieldUpdate {
	mutation := newExtractedFieldMutation(c.config, OpUpdate)
	return &ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedFieldClient) UpdateOne(_m *ExtractedField) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedField(_m))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedFieldClient) UpdateOneID(id uuid.UUID) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedFieldID(id))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedField.
func (c *ExtractedFieldClient) Delete() *ExtractedFieldDelete {
	mutation := newExtractedFieldMutation(c.config, OpDelete)
	return &ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedFieldClient) DeleteOne(_m *ExtractedField) *ExtractedFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedFieldClient) DeleteOneID(id uuid.UUID) *ExtractedFieldDeleteOne {
	builder := c.Delete().Where(extractedfield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedFieldDeleteOne{builder}
}

// Query returns a query builder for ExtractedField.
func (c *ExtractedFieldClient) Query() *ExtractedFieldQuery {
	return &ExtractedFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedField},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedField entity by its id.
func (c *ExtractedFieldClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedField, error) {
	return c.Query().Where(extractedfield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedFieldClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDrawing queries the drawing edge of a ExtractedField.
func (c *ExtractedFieldClient) QueryDrawing(_m *ExtractedField) *DrawingQuery {
	query := (&DrawingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedfield.Table, extractedfield.FieldID, id),
			sqlgraph.To(drawing.Table, drawing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedfield.DrawingTable, extractedfield.DrawingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedFieldClient) Hooks() []Hook {
	return c.hooks.ExtractedField
}

// Interceptors returns the client interceptors.
func (c *ExtractedFieldClient) Interceptors() []Interceptor {
	return c.inters.ExtractedField
}

func (c *ExtractedFieldClient) mutate(ctx context.Context, m *ExtractedFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedField mutation op: %q", m.Op())
	}
}

// RevisionClient is a client for the Revision schema.
type RevisionClient struct {
	config
}

// NewRevisionClient returns a client for the Revision from the given config.
func NewRevisionClient(c config) *RevisionClient {
	return &RevisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `revision.Hooks(f(g(h())))`.
func (c *RevisionClient) Use(hooks ...Hook) {
	c.hooks.Revision = append(c.hooks.Revision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `revision.Intercept(f(g(h())))`.
func (c *RevisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Revision = append(c.inters.Revision, interceptors...)
}

// Create returns a builder for creating a Revision entity.
func (c *RevisionClient) Create() *RevisionCreate {
	mutation := newRevisionMutation(c.config, OpCreate)
	return &RevisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Revision entities.
func (c *RevisionClient) CreateBulk(builders ...*RevisionCreate) *RevisionCreateBulk {
	return &RevisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RevisionClient) MapCreateBulk(slice any, setFunc func(*RevisionCreate, int)) *RevisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RevisionCreateBulk{err: fmt.Errorf("calling to RevisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RevisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RevisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Revision.
func (c *RevisionClient) Update() *RevisionUpdate {
	mutation := newRevisionMutation(c.config, OpUpdate)
	return &RevisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RevisionClient) UpdateOne(_m *Revision) *RevisionUpdateOne {
	mutation := newRevisionMutation(c.config, OpUpdateOne, withRevision(_m))
	return &RevisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RevisionClient) UpdateOneID(id uuid.UUID) *RevisionUpdateOne {
	mutation := newRevisionMutation(c.config, OpUpdateOne, withRevisionID(id))
	return &RevisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Revision.
func (c *RevisionClient) Delete() *RevisionDelete {
	mutation := newRevisionMutation(c.config, OpDelete)
	return &RevisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RevisionClient) DeleteOne(_m *Revision) *RevisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RevisionClient) DeleteOneID(id uuid.UUID) *RevisionDeleteOne {
	builder := c.Delete().Where(revision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RevisionDeleteOne{builder}
}

// Query returns a query builder for Revision.
func (c *RevisionClient) Query() *RevisionQuery {
	return &RevisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRevision},
		inters: c.Interceptors(),
	}
}

// Get returns a Revision entity by its id.
func (c *RevisionClient) Get(ctx context.Context, id uuid.UUID) (*Revision, error) {
	return c.Query().Where(revision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RevisionClient) GetX(ctx context.Context, id uuid.UUID) *Revision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDrawing queries the drawing edge of a Revision.
func (c *RevisionClient) QueryDrawing(_m *Revision) *DrawingQuery {
	query := (&DrawingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(revision.Table, revision.FieldID, id),
			sqlgraph.To(drawing.Table, drawing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, revision.DrawingTable, revision.DrawingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RevisionClient) Hooks() []Hook {
	return c.hooks.Revision
}

// Interceptors returns the client interceptors.
func (c *RevisionClient) Interceptors() []Interceptor {
	return c.inters.Revision
}

func (c *RevisionClient) mutate(ctx context.Context, m *RevisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RevisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RevisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RevisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RevisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Revision mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Balloon, Drawing, ExtractedField, Revision []ent.Hook
	}
	inters struct {
		Balloon, Drawing, ExtractedField, Revision []ent.Interceptor
	}
)
