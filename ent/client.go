// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hyejin/orbquest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/hyejin/orbquest/ent/arsessionevent"
	"github.com/hyejin/orbquest/ent/collectionevent"
	"github.com/hyejin/orbquest/ent/scanevent"
	"github.com/hyejin/orbquest/ent/setting"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ARSessionEvent is the client for interacting with the ARSessionEvent builders.
	ARSessionEvent *ARSessionEventClient
	// CollectionEvent is the client for interacting with the CollectionEvent builders.
	CollectionEvent *CollectionEventClient
	// ScanEvent is the client for interacting with the ScanEvent builders.
	ScanEvent *ScanEventClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ARSessionEvent = NewARSessionEventClient(c.config)
	c.CollectionEvent = NewCollectionEventClient(c.config)
	c.ScanEvent = NewScanEventClient(c.config)
	c.Setting = NewSettingClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ARSessionEvent:  NewARSessionEventClient(cfg),
		CollectionEvent: NewCollectionEventClient(cfg),
		ScanEvent:       NewScanEventClient(cfg),
		Setting:         NewSettingClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ARSessionEvent:  NewARSessionEventClient(cfg),
		CollectionEvent: NewCollectionEventClient(cfg),
		ScanEvent:       NewScanEventClient(cfg),
		Setting:         NewSettingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ARSessionEvent.
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
	c.ARSessionEvent.Use(hooks...)
	c.CollectionEvent.Use(hooks...)
	c.ScanEvent.Use(hooks...)
	c.Setting.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ARSessionEvent.Intercept(interceptors...)
	c.CollectionEvent.Intercept(interceptors...)
	c.ScanEvent.Intercept(interceptors...)
	c.Setting.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ARSessionEventMutation:
		return c.ARSessionEvent.mutate(ctx, m)
	case *CollectionEventMutation:
		return c.CollectionEvent.mutate(ctx, m)
	case *ScanEventMutation:
		return c.ScanEvent.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ARSessionEventClient is a client for the ARSessionEvent schema.
type ARSessionEventClient struct {
	config
}

// NewARSessionEventClient returns a client for the ARSessionEvent from the given config.
func NewARSessionEventClient(c config) *ARSessionEventClient {
	return &ARSessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `arsessionevent.Hooks(f(g(h())))`.
func (c *ARSessionEventClient) Use(hooks ...Hook) {
	c.hooks.ARSessionEvent = append(c.hooks.ARSessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `arsessionevent.Intercept(f(g(h())))`.
func (c *ARSessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ARSessionEvent = append(c.inters.ARSessionEvent, interceptors...)
}

// Create returns a builder for creating a ARSessionEvent entity.
func (c *ARSessionEventClient) Create() *ARSessionEventCreate {
	mutation := newARSessionEventMutation(c.config, OpCreate)
	return &ARSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ARSessionEvent entities.
func (c *ARSessionEventClient) CreateBulk(builders ...*ARSessionEventCreate) *ARSessionEventCreateBulk {
	return &ARSessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ARSessionEventClient) MapCreateBulk(slice any, setFunc func(*ARSessionEventCreate, int)) *ARSessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ARSessionEventCreateBulk{err: fmt.Errorf("calling to ARSessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ARSessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ARSessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ARSessionEvent.
func (c *ARSessionEventClient) Update() *ARSessionEventUpdate {
	mutation := newARSessionEventMutation(c.config, OpUpdate)
	return &ARSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ARSessionEventClient) UpdateOne(_m *ARSessionEvent) *ARSessionEventUpdateOne {
	mutation := newARSessionEventMutation(c.config, OpUpdateOne, withARSessionEvent(_m))
	return &ARSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ARSessionEventClient) UpdateOneID(id int) *ARSessionEventUpdateOne {
	mutation := newARSessionEventMutation(c.config, OpUpdateOne, withARSessionEventID(id))
	return &ARSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ARSessionEvent.
func (c *ARSessionEventClient) Delete() *ARSessionEventDelete {
	mutation := newARSessionEventMutation(c.config, OpDelete)
	return &ARSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ARSessionEventClient) DeleteOne(_m *ARSessionEvent) *ARSessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ARSessionEventClient) DeleteOneID(id int) *ARSessionEventDeleteOne {
	builder := c.Delete().Where(arsessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ARSessionEventDeleteOne{builder}
}

// Query returns a query builder for ARSessionEvent.
func (c *ARSessionEventClient) Query() *ARSessionEventQuery {
	return &ARSessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeARSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ARSessionEvent entity by its id.
func (c *ARSessionEventClient) Get(ctx context.Context, id int) (*ARSessionEvent, error) {
	return c.Query().Where(arsessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ARSessionEventClient) GetX(ctx context.Context, id int) *ARSessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ARSessionEventClient) Hooks() []Hook {
	return c.hooks.ARSessionEvent
}

// Interceptors returns the client interceptors.
func (c *ARSessionEventClient) Interceptors() []Interceptor {
	return c.inters.ARSessionEvent
}

func (c *ARSessionEventClient) mutate(ctx context.Context, m *ARSessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ARSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ARSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ARSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ARSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ARSessionEvent mutation op: %q", m.Op())
	}
}

// CollectionEventClient is a client for the CollectionEvent schema.
type CollectionEventClient struct {
	config
}

// NewCollectionEventClient returns a client for the CollectionEvent from the given config.
func NewCollectionEventClient(c config) *CollectionEventClient {
	return &CollectionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collectionevent.Hooks(f(g(h())))`.
func (c *CollectionEventClient) Use(hooks ...Hook) {
	c.hooks.CollectionEvent = append(c.hooks.CollectionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collectionevent.Intercept(f(g(h())))`.
func (c *CollectionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollectionEvent = append(c.inters.CollectionEvent, interceptors...)
}

// Create returns a builder for creating a CollectionEvent entity.
func (c *CollectionEventClient) Create() *CollectionEventCreate {
	mutation := newCollectionEventMutation(c.config, OpCreate)
	return &CollectionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollectionEvent entities.
func (c *CollectionEventClient) CreateBulk(builders ...*CollectionEventCreate) *CollectionEventCreateBulk {
	return &CollectionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionEventClient) MapCreateBulk(slice any, setFunc func(*CollectionEventCreate, int)) *CollectionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionEventCreateBulk{err: fmt.Errorf("calling to CollectionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollectionEvent.
func (c *CollectionEventClient) Update() *CollectionEventUpdate {
	mutation := newCollectionEventMutation(c.config, OpUpdate)
	return &CollectionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionEventClient) UpdateOne(_m *CollectionEvent) *CollectionEventUpdateOne {
	mutation := newCollectionEventMutation(c.config, OpUpdateOne, withCollectionEvent(_m))
	return &CollectionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionEventClient) UpdateOneID(id int) *CollectionEventUpdateOne {
	mutation := newCollectionEventMutation(c.config, OpUpdateOne, withCollectionEventID(id))
	return &CollectionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollectionEvent.
func (c *CollectionEventClient) Delete() *CollectionEventDelete {
	mutation := newCollectionEventMutation(c.config, OpDelete)
	return &CollectionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionEventClient) DeleteOne(_m *CollectionEvent) *CollectionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionEventClient) DeleteOneID(id int) *CollectionEventDeleteOne {
	builder := c.Delete().Where(collectionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionEventDeleteOne{builder}
}

// Query returns a query builder for CollectionEvent.
func (c *CollectionEventClient) Query() *CollectionEventQuery {
	return &CollectionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollectionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CollectionEvent entity by its id.
func (c *CollectionEventClient) Get(ctx context.Context, id int) (*CollectionEvent, error) {
	return c.Query().Where(collectionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionEventClient) GetX(ctx context.Context, id int) *CollectionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CollectionEventClient) Hooks() []Hook {
	return c.hooks.CollectionEvent
}

// Interceptors returns the client interceptors.
func (c *CollectionEventClient) Interceptors() []Interceptor {
	return c.inters.CollectionEvent
}

func (c *CollectionEventClient) mutate(ctx context.Context, m *CollectionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollectionEvent mutation op: %q", m.Op())
	}
}

// ScanEventClient is a client for the ScanEvent schema.
type ScanEventClient struct {
	config
}

// NewScanEventClient returns a client for the ScanEvent from the given config.
func NewScanEventClient(c config) *ScanEventClient {
	return &ScanEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanevent.Hooks(f(g(h())))`.
func (c *ScanEventClient) Use(hooks ...Hook) {
	c.hooks.ScanEvent = append(c.hooks.ScanEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanevent.Intercept(f(g(h())))`.
func (c *ScanEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanEvent = append(c.inters.ScanEvent, interceptors...)
}

// Create returns a builder for creating a ScanEvent entity.
func (c *ScanEventClient) Create() *ScanEventCreate {
	mutation := newScanEventMutation(c.config, OpCreate)
	return &ScanEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanEvent entities.
func (c *ScanEventClient) CreateBulk(builders ...*ScanEventCreate) *ScanEventCreateBulk {
	return &ScanEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanEventClient) MapCreateBulk(slice any, setFunc func(*ScanEventCreate, int)) *ScanEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanEventCreateBulk{err: fmt.Errorf("calling to ScanEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanEvent.
func (c *ScanEventClient) Update() *ScanEventUpdate {
	mutation := newScanEventMutation(c.config, OpUpdate)
	return &ScanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanEventClient) UpdateOne(_m *ScanEvent) *ScanEventUpdateOne {
	mutation := newScanEventMutation(c.config, OpUpdateOne, withScanEvent(_m))
	return &ScanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanEventClient) UpdateOneID(id int) *ScanEventUpdateOne {
	mutation := newScanEventMutation(c.config, OpUpdateOne, withScanEventID(id))
	return &ScanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanEvent.
func (c *ScanEventClient) Delete() *ScanEventDelete {
	mutation := newScanEventMutation(c.config, OpDelete)
	return &ScanEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanEventClient) DeleteOne(_m *ScanEvent) *ScanEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanEventClient) DeleteOneID(id int) *ScanEventDeleteOne {
	builder := c.Delete().Where(scanevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanEventDeleteOne{builder}
}

// Query returns a query builder for ScanEvent.
func (c *ScanEventClient) Query() *ScanEventQuery {
	return &ScanEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanEvent entity by its id.
func (c *ScanEventClient) Get(ctx context.Context, id int) (*ScanEvent, error) {
	return c.Query().Where(scanevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanEventClient) GetX(ctx context.Context, id int) *ScanEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScanEventClient) Hooks() []Hook {
	return c.hooks.ScanEvent
}

// Interceptors returns the client interceptors.
func (c *ScanEventClient) Interceptors() []Interceptor {
	return c.inters.ScanEvent
}

func (c *ScanEventClient) mutate(ctx context.Context, m *ScanEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanEvent mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ARSessionEvent, CollectionEvent, ScanEvent, Setting []ent.Hook
	}
	inters struct {
		ARSessionEvent, CollectionEvent, ScanEvent, Setting []ent.Interceptor
	}
)
