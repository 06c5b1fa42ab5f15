package metrics

import (
	"runtime"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"go.uber.org/zap"
)

const DefaultCollectInterval = 30 * time.Second

// Collector periodically sweeps idle sessions and refreshes system gauges.
type Collector struct {
	metrics   *Metrics
	sessions  *session.Store
	logger    *zap.Logger
	startTime time.Time
	ticker    *time.Ticker
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewCollector(metrics *Metrics, sessions *session.Store, logger *zap.Logger) *Collector {
	return &Collector{
		metrics:   metrics,
		sessions:  sessions,
		logger:    logger,
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (c *Collector) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}
	c.ticker = time.NewTicker(interval)

	c.metrics.SetServiceVersion("1.0.0", "unknown", c.startTime.Format("2006-01-02"))

	go c.collectLoop()
	c.logger.Info("Metrics collector started", zap.Duration("interval", interval))
}

// Stop blocks until the collect loop has returned.
func (c *Collector) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.stopCh)
	<-c.doneCh
	c.logger.Info("Metrics collector stopped")
}

func (c *Collector) collectLoop() {
	defer close(c.doneCh)

	c.Collect(time.Now())

	for {
		select {
		case now := <-c.ticker.C:
			c.Collect(now)
		case <-c.stopCh:
			return
		}
	}
}

// Collect runs one sweep of the session store and refreshes every gauge.
func (c *Collector) Collect(now time.Time) {
	swept := c.sessions.Sweep(now)
	active := c.sessions.Len()
	c.metrics.UpdateSessions(active, swept)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	c.metrics.UpdateSystemMetrics(time.Since(c.startTime), &memStats)

	if swept > 0 {
		c.logger.Debug("Swept idle sessions",
			zap.Int("swept", swept),
			zap.Int("active", active))
	}
}
