package console

import (
	"context"

	"github.com/suyatrade/console/internal/api"
	"github.com/suyatrade/console/internal/logger"
	"github.com/suyatrade/console/internal/notify"
)

// Probe runs the diagnostic round-trips against the backend's health and
// token endpoints. Each method returns the text for the status label; an
// empty string means the label should be left as it was.
type Probe struct {
	client   *api.Client
	notifier notify.Notifier
	logger   *logger.Logger
}

func NewProbe(client *api.Client, notifier notify.Notifier, log *logger.Logger) *Probe {
	return &Probe{client: client, notifier: notifier, logger: log}
}

func (p *Probe) Ping(ctx context.Context) string {
	health, err := p.client.Health(ctx)
	if err != nil {
		p.logger.Error("health check", "error", err)
		p.notifier.Notify("backend connection failed", false)
		return "ERROR"
	}

	status := health.Status
	if status == "" {
		status = "healthy"
	}
	p.notifier.Notify("backend connection ok", true)
	return "OK: " + status
}

func (p *Probe) CheckToken(ctx context.Context) string {
	debug, err := p.client.TokenDebug(ctx)
	if err != nil {
		p.logger.Error("token check", "error", err)
		p.notifier.Notify("token check request failed", false)
		return ""
	}

	if debug.OK {
		p.notifier.Notify("token ok", true)
		return "OK: token_ok"
	}
	p.notifier.Notify("token check failed", false)
	return "OK: token_fail"
}

// IssueToken forces a fresh broker token on the backend.
func (p *Probe) IssueToken(ctx context.Context) string {
	if _, err := p.client.IssueToken(ctx); err != nil {
		p.logger.Error("token issue", "error", err)
		p.notifier.Notify("token issue failed", false)
		return ""
	}

	p.notifier.Notify("token issued", true)
	return "OK: token_issued"
}
