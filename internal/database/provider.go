package database

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justsurfingit/ats-api/internal/apperrors"
)

// Provider checks out one dedicated connection per request from the pool.
type Provider struct {
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
}

func NewProvider(db *gorm.DB, logger *zap.Logger, queryTimeout time.Duration) *Provider {
	return &Provider{
		db:      db,
		logger:  logger,
		timeout: queryTimeout,
	}
}

// Conn is a single checked-out connection. DB is a GORM session pinned to it,
// so everything run through DB (including transactions) uses that connection.
type Conn struct {
	DB *gorm.DB

	raw    *sql.Conn
	cancel context.CancelFunc
}

// Release hands the connection back to the pool. Safe on nil and on repeat.
func (c *Conn) Release() {
	if c == nil {
		return
	}
	if c.raw != nil {
		_ = c.raw.Close()
		c.raw = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Acquire returns a live, pinged connection or a Connectivity error.
// Callers must defer Release right after a successful Acquire.
func (p *Provider) Acquire(ctx context.Context) (*Conn, error) {
	cancel := context.CancelFunc(func() {})
	if p.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		cancel()
		p.logger.Error("Could not get database pool", zap.Error(err))
		return nil, apperrors.Connectivity(err)
	}

	raw, err := sqlDB.Conn(ctx)
	if err != nil {
		cancel()
		p.logger.Error("Could not connect to database", zap.Error(err))
		return nil, apperrors.Connectivity(err)
	}

	if err := raw.PingContext(ctx); err != nil {
		_ = raw.Close()
		cancel()
		p.logger.Error("Database connection is not usable", zap.Error(err))
		return nil, apperrors.Connectivity(err)
	}

	session := p.db.WithContext(ctx)
	session.Statement.ConnPool = raw

	p.logger.Debug("Connected to database")
	return &Conn{DB: session, raw: raw, cancel: cancel}, nil
}

// Ping acquires and immediately releases a connection.
func (p *Provider) Ping(ctx context.Context) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	conn.Release()
	return nil
}
