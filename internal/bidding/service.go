package bidding

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitesense/db"
	"sitesense/internal/metrics"
	"sitesense/models"
)

// Service runs the bid package workflow. Every multi-statement cascade executes in one
// transaction.
type Service struct {
	store   *db.Storage
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

type Option func(*Service)

// WithClock replaces the wall clock used for timestamps and compliance windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(store *db.Storage, log *zap.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		store:   store,
		log:     log,
		metrics: m,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// notFound turns db.ErrNotFound into a 404 and passes other errors through.
func notFound(err error, what string) error {
	if errors.Is(err, db.ErrNotFound) {
		return models.NotFound(what + " not found")
	}
	return err
}
