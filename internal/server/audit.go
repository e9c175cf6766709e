package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/kafka"
)

// AuditEntry records one mutating request.
type AuditEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	UserEmail  string    `json:"user_email,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	Request    string    `json:"request,omitempty"`
	Fallback   bool      `json:"fallback,omitempty"`
}

// AuditManager batches entries by size or timeout and publishes each batch
// through the producer on a small worker pool.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration

	producer kafka.Producer
	logger   *zap.Logger

	inputChan  chan AuditEntry
	batchChan  chan []AuditEntry
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewAuditManager(producer kafka.Producer, workerCount, batchSize int, timeout time.Duration, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		producer:    producer,
		logger:      logger,
		inputChan:   make(chan AuditEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator()

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx)
	}
}

// Log enqueues an entry without blocking the request path. Entries are
// dropped with a log line when the pipeline is saturated.
func (m *AuditManager) Log(entry AuditEntry) {
	select {
	case m.inputChan <- entry:
	default:
		m.logger.Warn("audit pipeline saturated, dropping entry",
			zap.String("path", entry.Path))
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted")
		}

		if err := m.producer.Close(); err != nil {
			m.logger.Error("failed to close audit producer", zap.Error(err))
		}
	})
}

func (m *AuditManager) runAggregator() {
	defer m.wg.Done()

	var batch []AuditEntry
	ticker := time.NewTicker(m.timeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) > 0 {
			m.batchChan <- batch
			batch = nil
		}
	}
	defer func() {
		flush()
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-m.shutdownCh:
			// Drain whatever is already queued before stopping.
			for {
				select {
				case entry := <-m.inputChan:
					batch = append(batch, entry)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) runWorker(ctx context.Context) {
	defer m.wg.Done()

	for batch := range m.batchChan {
		for _, entry := range batch {
			payload, err := json.Marshal(entry)
			if err != nil {
				m.logger.Error("failed to encode audit entry", zap.Error(err))
				continue
			}
			if err := m.producer.SendMessage(ctx, []byte(entry.Path), payload); err != nil {
				m.logger.Error("failed to publish audit entry", zap.Error(err))
			}
		}
	}
}
