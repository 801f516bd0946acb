package commands

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/attrdoc/internal/metrics"
	"git.home.luguber.info/inful/attrdoc/internal/preview"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	Listen    string `short:"l" help:"Listen address (overrides config)"`
	NoMetrics bool   `help:"Disable the /metrics endpoint even if the config enables it"`
}

// Run serves the HTML preview until interrupted.
func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if p.Listen != "" {
		cfg.Preview.Listen = p.Listen
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var metricsHandler http.Handler
	if cfg.Preview.Metrics && !p.NoMetrics {
		promRec := metrics.NewPrometheusRecorder(nil)
		rec = promRec
		metricsHandler = promRec.Handler()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := preview.New(cfg, rec, metricsHandler)
	return server.Run(ctx)
}
