// Package health polls the backend connectivity endpoint so the rest of
// the agent can tell "server down" apart from "server unhappy".
package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"mototrack/internal/client"
)

// Poller periodically hits /actuator/health and tracks the last observed
// connectivity state, logging transitions.
type Poller struct {
	client   *client.Client
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	online bool

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoller creates a poller; Start must be called to begin polling.
func NewPoller(c *client.Client, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		client:   c,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins polling in the background. The first check runs right away.
func (p *Poller) Start() {
	p.wg.Add(1)
	go p.loop()
}

// Online reports the result of the most recent check.
func (p *Poller) Online() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online
}

// Stop halts polling and waits for the loop to exit.
func (p *Poller) Stop() {
	close(p.stopChan)
	p.wg.Wait()
	p.logger.Info("Health poller stopped")
}

func (p *Poller) loop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.check()
	for {
		select {
		case <-ticker.C:
			p.check()
		case <-p.stopChan:
			return
		}
	}
}

func (p *Poller) check() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	err := p.client.Health(ctx)
	online := err == nil

	p.mu.Lock()
	changed := online != p.online
	p.online = online
	p.mu.Unlock()

	if !changed {
		return
	}
	if online {
		p.logger.Info("Backend reachable", zap.String("base_url", p.client.BaseURL()))
		return
	}
	if client.IsNetwork(err) {
		p.logger.Warn("Backend unreachable", zap.Error(err))
	} else {
		p.logger.Warn("Backend unhealthy", zap.Error(err))
	}
}
