package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/five82/svitlo/internal/config"
	"github.com/five82/svitlo/internal/feed"
	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/logging"
	"github.com/five82/svitlo/internal/metrics"
	"github.com/five82/svitlo/internal/prefs"
	"github.com/five82/svitlo/internal/publish"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
	"github.com/five82/svitlo/internal/ui"
)

// Options configure the svitlo application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/svitlo/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the svitlo TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.PollEvery)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "svitlo: logging disabled: %v\n", err)
	} else {
		defer func() { _ = logFile.Close() }()
	}
	log := logging.New("app")

	client, err := feed.NewClient(cfg.FeedURL, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	sink, closeSinks := buildSinks(ctx, cfg, log)
	defer closeSinks()

	publisher := buildPublisher(cfg, log)
	defer publisher.Close()

	log.Infof("starting: feed=%s poll=%s groups=%d", client.URL(), cfg.PollEvery(), len(cfg.Groups))

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Store:     state.NewStore(cfg.Groups),
		Catalog:   i18n.Default(),
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Featured:  cfg.FeaturedGroup,
		FeedURL:   client.URL(),
		PollEvery: cfg.PollEvery(),
		Sink:      sink,
		Publisher: publisher,
		Logger:    logging.New("ui"),
	})
}

// PrintOptions configure a one-shot render.
type PrintOptions struct {
	ConfigPath string
	PrefsPath  string
	Lang       string // empty uses the saved preference
	Day        string // today or tomorrow
	Kind       string // live or predicted
	Width      int
}

// Print fetches the schedule once and writes the timeline and overview to w.
// A failed fetch is still rendered (with the error banner) and returned.
func Print(ctx context.Context, w io.Writer, opts PrintOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, 0)
	if err != nil {
		return err
	}

	day, err := schedule.ParseDay(opts.Day)
	if err != nil {
		return err
	}
	kind, err := schedule.ParseDataKind(opts.Kind)
	if err != nil {
		return err
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	lang := i18n.Lang(userPrefs.Lang)
	if opts.Lang != "" {
		parsed, ok := i18n.ParseLang(opts.Lang)
		if !ok {
			return fmt.Errorf("unknown language %q", opts.Lang)
		}
		lang = parsed
	}

	client, err := feed.NewClient(cfg.FeedURL, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	store := state.NewStore(cfg.Groups)
	fetchErr := refresh(ctx, store, client, logging.New("print"), time.Now)

	out := ui.RenderStatic(ui.StaticOptions{
		Snapshot: store.Snapshot(),
		Groups:   cfg.Groups,
		Featured: cfg.FeaturedGroup,
		Catalog:  i18n.Default(),
		Lang:     lang,
		Theme:    userPrefs.Theme,
		Selector: schedule.Selector{Kind: kind, Day: day},
		FeedURL:  client.URL(),
		Now:      time.Now(),
		Width:    opts.Width,
	})
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if fetchErr != nil {
		return fmt.Errorf("fetch schedule: %w", fetchErr)
	}
	return nil
}

func loadConfig(path string, pollEvery int) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if pollEvery > 0 {
		cfg.PollInterval = pollEvery
	}
	return cfg, nil
}

// buildSinks assembles the configured metric sinks. The returned func
// releases them.
func buildSinks(ctx context.Context, cfg config.Config, log logging.Logger) (metrics.Sink, func()) {
	var sinks []metrics.Sink
	var closers []func()

	if addr := cfg.Metrics.PrometheusAddr; addr != "" {
		prom, err := metrics.NewPromSink()
		if err != nil {
			log.Errorf("prometheus sink: %v", err)
		} else {
			sinks = append(sinks, prom)
			go func() {
				if err := metrics.StartPromServer(ctx, addr, nil, logging.New("prom")); err != nil {
					log.Errorf("prometheus server: %v", err)
				}
			}()
		}
	}

	if influx := cfg.Metrics.Influx; influx.Enabled() {
		sink := metrics.NewInfluxSinkWithFallback(ctx, influx.URL, influx.Token, influx.Org, influx.Bucket)
		if c, ok := sink.(interface{ Close() }); ok {
			closers = append(closers, c.Close)
		}
		sinks = append(sinks, sink)
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	switch len(sinks) {
	case 0:
		return metrics.NopSink{}, closeAll
	case 1:
		return sinks[0], closeAll
	}
	return metrics.NewMultiSink(sinks...), closeAll
}

// buildPublisher connects to the MQTT broker when one is configured. A broker
// that cannot be reached disables publishing for this run.
func buildPublisher(cfg config.Config, log logging.Logger) publish.Publisher {
	if !cfg.MQTT.Enabled() {
		return publish.NopPublisher{}
	}
	pub, err := publish.NewMQTTPublisher(publish.Config{
		Broker:      cfg.MQTT.Broker,
		ClientID:    cfg.MQTT.ClientID,
		Username:    cfg.MQTT.Username,
		Password:    cfg.MQTT.Password,
		TopicPrefix: cfg.MQTT.TopicPrefix,
		QoS:         byte(cfg.MQTT.QoS),
		Retain:      cfg.MQTT.Retain,
	})
	if err != nil {
		log.Errorf("mqtt disabled: %v", err)
		return publish.NopPublisher{}
	}
	return pub
}
