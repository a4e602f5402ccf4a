package tracing

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/pixeltrack/pixeltrack/config"
)

// InitTracing configures sampling, exporters and the default HTTP and SQL views.
// It is a no-op when tracing is disabled.
// codecov:ignore:start
func InitTracing(cfg *config.TracingConfig) error {
	if !cfg.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := initTraceExporter(cfg); err != nil {
		return err
	}

	if err := initMetricsExporters(cfg); err != nil {
		return err
	}

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	if err := view.Register(ochttp.DefaultClientViews...); err != nil {
		return fmt.Errorf("failed to register HTTP client views: %w", err)
	}

	log.Printf("OpenCensus initialized with trace exporter: %s, metrics exporters: %s",
		cfg.TraceExporter, cfg.MetricsExporter)
	return nil
}

func initTraceExporter(cfg *config.TracingConfig) error {
	var (
		exporter trace.Exporter
		err      error
	)

	switch cfg.TraceExporter {
	case "none", "":
		return nil
	case "jaeger":
		if cfg.JaegerEndpoint == "" {
			return fmt.Errorf("jaeger endpoint is required for the jaeger exporter")
		}
		exporter, err = jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: cfg.JaegerEndpoint,
			ServiceName:       cfg.ServiceName,
			Process:           jaeger.Process{ServiceName: cfg.ServiceName},
		})
	case "zipkin":
		if cfg.ZipkinEndpoint == "" {
			return fmt.Errorf("zipkin endpoint is required for the zipkin exporter")
		}
		exporter = zipkin.NewExporter(zipkinhttp.NewReporter(cfg.ZipkinEndpoint), nil)
	case "stackdriver":
		if cfg.StackdriverProjectID == "" {
			return fmt.Errorf("stackdriver project id is required for the stackdriver exporter")
		}
		exporter, err = stackdriver.NewExporter(stackdriver.Options{ProjectID: cfg.StackdriverProjectID})
	case "datadog":
		if cfg.DatadogAgentAddress == "" {
			return fmt.Errorf("datadog agent address is required for the datadog exporter")
		}
		exporter, err = datadog.NewExporter(datadog.Options{
			Service:   cfg.ServiceName,
			TraceAddr: cfg.DatadogAgentAddress,
		})
	case "xray":
		if cfg.XRayRegion == "" {
			return fmt.Errorf("aws region is required for the xray exporter")
		}
		exporter, err = aws.NewExporter(aws.WithRegion(cfg.XRayRegion), aws.WithVersion("latest"))
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	if err != nil {
		return fmt.Errorf("failed to create %s trace exporter: %w", cfg.TraceExporter, err)
	}

	trace.RegisterExporter(exporter)
	return nil
}

func initMetricsExporters(cfg *config.TracingConfig) error {
	if cfg.MetricsExporter == "none" || cfg.MetricsExporter == "" {
		return nil
	}

	for _, name := range strings.Split(cfg.MetricsExporter, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var err error
		switch name {
		case "prometheus":
			err = initPrometheusExporter(cfg)
		case "stackdriver":
			err = initStackdriverMetricsExporter(cfg)
		case "datadog":
			err = initDatadogMetricsExporter(cfg)
		default:
			return fmt.Errorf("unsupported metrics exporter: %s", name)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", name, err)
		}
	}

	// database/sql views come from the ocsql wrapped postgres driver
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}
	return nil
}

func initPrometheusExporter(cfg *config.TracingConfig) error {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			log.Printf("Prometheus exporter error: %v", err)
		},
	})
	if err != nil {
		return err
	}
	view.RegisterExporter(pe)

	if cfg.PrometheusPort <= 0 {
		return nil
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", pe)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.PrometheusPort),
			Handler: mux,
		}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Prometheus metrics server stopped: %v", err)
		}
	}()
	return nil
}

func initStackdriverMetricsExporter(cfg *config.TracingConfig) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("stackdriver project id is required")
	}
	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.Printf("Stackdriver metrics exporter error: %v", err)
		},
	})
	if err != nil {
		return err
	}
	view.RegisterExporter(se)
	return nil
}

func initDatadogMetricsExporter(cfg *config.TracingConfig) error {
	if cfg.DatadogAgentAddress == "" {
		return fmt.Errorf("datadog agent address is required")
	}
	options := datadog.Options{
		Service:   cfg.ServiceName,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.Printf("Datadog metrics exporter error: %v", err)
		},
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{"api_key": cfg.DatadogAPIKey}
	}
	exporter, err := datadog.NewExporter(options)
	if err != nil {
		return err
	}
	view.RegisterExporter(exporter)
	return nil
}

// codecov:ignore:end
