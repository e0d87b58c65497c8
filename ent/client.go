// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/prepmate/prepmate/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/prepmate/ent/intakeevent"
	"github.com/prepmate/prepmate/ent/masteryevent"
	"github.com/prepmate/prepmate/ent/responseevent"
	"github.com/prepmate/prepmate/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IntakeEvent is the client for interacting with the IntakeEvent builders.
	IntakeEvent *IntakeEventClient
	// MasteryEvent is the client for interacting with the MasteryEvent builders.
	MasteryEvent *MasteryEventClient
	// ResponseEvent is the client for interacting with the ResponseEvent builders.
	ResponseEvent *ResponseEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IntakeEvent = NewIntakeEventClient(c.config)
	c.MasteryEvent = NewMasteryEventClient(c.config)
	c.ResponseEvent = NewResponseEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		IntakeEvent:   NewIntakeEventClient(cfg),
		MasteryEvent:  NewMasteryEventClient(cfg),
		ResponseEvent: NewResponseEventClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		IntakeEvent:   NewIntakeEventClient(cfg),
		MasteryEvent:  NewMasteryEventClient(cfg),
		ResponseEvent: NewResponseEventClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IntakeEvent.
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
	c.IntakeEvent.Use(hooks...)
	c.MasteryEvent.Use(hooks...)
	c.ResponseEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.IntakeEvent.Intercept(interceptors...)
	c.MasteryEvent.Intercept(interceptors...)
	c.ResponseEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IntakeEventMutation:
		return c.IntakeEvent.mutate(ctx, m)
	case *MasteryEventMutation:
		return c.MasteryEvent.mutate(ctx, m)
	case *ResponseEventMutation:
		return c.ResponseEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IntakeEventClient is a client for the IntakeEvent schema.
type IntakeEventClient struct {
	config
}

// NewIntakeEventClient returns a client for the IntakeEvent from the given config.
func NewIntakeEventClient(c config) *IntakeEventClient {
	return &IntakeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intakeevent.Hooks(f(g(h())))`.
func (c *IntakeEventClient) Use(hooks ...Hook) {
	c.hooks.IntakeEvent = append(c.hooks.IntakeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intakeevent.Intercept(f(g(h())))`.
func (c *IntakeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.IntakeEvent = append(c.inters.IntakeEvent, interceptors...)
}

// Create returns a builder for creating a IntakeEvent entity.
func (c *IntakeEventClient) Create() *IntakeEventCreate {
	mutation := newIntakeEventMutation(c.config, OpCreate)
	return &IntakeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IntakeEvent entities.
func (c *IntakeEventClient) CreateBulk(builders ...*IntakeEventCreate) *IntakeEventCreateBulk {
	return &IntakeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntakeEventClient) MapCreateBulk(slice any, setFunc func(*IntakeEventCreate, int)) *IntakeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntakeEventCreateBulk{err: fmt.Errorf("calling to IntakeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntakeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntakeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IntakeEvent.
func (c *IntakeEventClient) Update() *IntakeEventUpdate {
	mutation := newIntakeEventMutation(c.config, OpUpdate)
	return &IntakeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntakeEventClient) UpdateOne(_m *IntakeEvent) *IntakeEventUpdateOne {
	mutation := newIntakeEventMutation(c.config, OpUpdateOne, withIntakeEvent(_m))
	return &IntakeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntakeEventClient) UpdateOneID(id int) *IntakeEventUpdateOne {
	mutation := newIntakeEventMutation(c.config, OpUpdateOne, withIntakeEventID(id))
	return &IntakeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IntakeEvent.
func (c *IntakeEventClient) Delete() *IntakeEventDelete {
	mutation := newIntakeEventMutation(c.config, OpDelete)
	return &IntakeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntakeEventClient) DeleteOne(_m *IntakeEvent) *IntakeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntakeEventClient) DeleteOneID(id int) *IntakeEventDeleteOne {
	builder := c.Delete().Where(intakeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntakeEventDeleteOne{builder}
}

// Query returns a query builder for IntakeEvent.
func (c *IntakeEventClient) Query() *IntakeEventQuery {
	return &IntakeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntakeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a IntakeEvent entity by its id.
func (c *IntakeEventClient) Get(ctx context.Context, id int) (*IntakeEvent, error) {
	return c.Query().Where(intakeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntakeEventClient) GetX(ctx context.Context, id int) *IntakeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntakeEventClient) Hooks() []Hook {
	return c.hooks.IntakeEvent
}

// Interceptors returns the client interceptors.
func (c *IntakeEventClient) Interceptors() []Interceptor {
	return c.inters.IntakeEvent
}

func (c *IntakeEventClient) mutate(ctx context.Context, m *IntakeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntakeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntakeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntakeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntakeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IntakeEvent mutation op: %q", m.Op())
	}
}

// MasteryEventClient is a client for the MasteryEvent schema.
type MasteryEventClient struct {
	config
}

// NewMasteryEventClient returns a client for the MasteryEvent from the given config.
func NewMasteryEventClient(c config) *MasteryEventClient {
	return &MasteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryevent.Hooks(f(g(h())))`.
func (c *MasteryEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryEvent = append(c.hooks.MasteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryevent.Intercept(f(g(h())))`.
func (c *MasteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryEvent = append(c.inters.MasteryEvent, interceptors...)
}

// Create returns a builder for creating a MasteryEvent entity.
func (c *MasteryEventClient) Create() *MasteryEventCreate {
	mutation := newMasteryEventMutation(c.config, OpCreate)
	return &MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryEvent entities.
func (c *MasteryEventClient) CreateBulk(builders ...*MasteryEventCreate) *MasteryEventCreateBulk {
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryEventClient) MapCreateBulk(slice any, setFunc func(*MasteryEventCreate, int)) *MasteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryEventCreateBulk{err: fmt.Errorf("calling to MasteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryEvent.
func (c *MasteryEventClient) Update() *MasteryEventUpdate {
	mutation := newMasteryEventMutation(c.config, OpUpdate)
	return &MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryEventClient) UpdateOne(_m *MasteryEvent) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEvent(_m))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryEventClient) UpdateOneID(id int) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEventID(id))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryEvent.
func (c *MasteryEventClient) Delete() *MasteryEventDelete {
	mutation := newMasteryEventMutation(c.config, OpDelete)
	return &MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryEventClient) DeleteOne(_m *MasteryEvent) *MasteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryEventClient) DeleteOneID(id int) *MasteryEventDeleteOne {
	builder := c.Delete().Where(masteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryEventDeleteOne{builder}
}

// Query returns a query builder for MasteryEvent.
func (c *MasteryEventClient) Query() *MasteryEventQuery {
	return &MasteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryEvent entity by its id.
func (c *MasteryEventClient) Get(ctx context.Context, id int) (*MasteryEvent, error) {
	return c.Query().Where(masteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryEventClient) GetX(ctx context.Context, id int) *MasteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryEventClient) Hooks() []Hook {
	return c.hooks.MasteryEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryEvent
}

func (c *MasteryEventClient) mutate(ctx context.Context, m *MasteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryEvent mutation op: %q", m.Op())
	}
}

// ResponseEventClient is a client for the ResponseEvent schema.
type ResponseEventClient struct {
	config
}

// NewResponseEventClient returns a client for the ResponseEvent from the given config.
func NewResponseEventClient(c config) *ResponseEventClient {
	return &ResponseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `responseevent.Hooks(f(g(h())))`.
func (c *ResponseEventClient) Use(hooks ...Hook) {
	c.hooks.ResponseEvent = append(c.hooks.ResponseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `responseevent.Intercept(f(g(h())))`.
func (c *ResponseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResponseEvent = append(c.inters.ResponseEvent, interceptors...)
}

// Create returns a builder for creating a ResponseEvent entity.
func (c *ResponseEventClient) Create() *ResponseEventCreate {
	mutation := newResponseEventMutation(c.config, OpCreate)
	return &ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResponseEvent entities.
func (c *ResponseEventClient) CreateBulk(builders ...*ResponseEventCreate) *ResponseEventCreateBulk {
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResponseEventClient) MapCreateBulk(slice any, setFunc func(*ResponseEventCreate, int)) *ResponseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResponseEventCreateBulk{err: fmt.Errorf("calling to ResponseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResponseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResponseEvent.
func (c *ResponseEventClient) Update() *ResponseEventUpdate {
	mutation := newResponseEventMutation(c.config, OpUpdate)
	return &ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResponseEventClient) UpdateOne(_m *ResponseEvent) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEvent(_m))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResponseEventClient) UpdateOneID(id int) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEventID(id))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResponseEvent.
func (c *ResponseEventClient) Delete() *ResponseEventDelete {
	mutation := newResponseEventMutation(c.config, OpDelete)
	return &ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResponseEventClient) DeleteOne(_m *ResponseEvent) *ResponseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResponseEventClient) DeleteOneID(id int) *ResponseEventDeleteOne {
	builder := c.Delete().Where(responseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResponseEventDeleteOne{builder}
}

// Query returns a query builder for ResponseEvent.
func (c *ResponseEventClient) Query() *ResponseEventQuery {
	return &ResponseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResponseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ResponseEvent entity by its id.
func (c *ResponseEventClient) Get(ctx context.Context, id int) (*ResponseEvent, error) {
	return c.Query().Where(responseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResponseEventClient) GetX(ctx context.Context, id int) *ResponseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResponseEventClient) Hooks() []Hook {
	return c.hooks.ResponseEvent
}

// Interceptors returns the client interceptors.
func (c *ResponseEventClient) Interceptors() []Interceptor {
	return c.inters.ResponseEvent
}

func (c *ResponseEventClient) mutate(ctx context.Context, m *ResponseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResponseEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IntakeEvent, MasteryEvent, ResponseEvent, Snapshot []ent.Hook
	}
	inters struct {
		IntakeEvent, MasteryEvent, ResponseEvent, Snapshot []ent.Interceptor
	}
)
