// Command imapprotod serves the IMAP command parsers over TCP.
//
// Every command is parsed, logged and accepted. The daemon is meant to
// observe client traffic and exercise the parsers, it doesn't store mail.
//
// Usage:
//
//	imapprotod [flags]
//	imapprotod permissions
package main

import (
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/emersion/go-imapproto/imapserver"
	"github.com/emersion/go-imapproto/permission"
)

func initLogger(app string, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// serverLogger adapts a zerolog logger to imapserver.Logger.
type serverLogger struct {
	log zerolog.Logger
}

func (l serverLogger) Printf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "permissions" {
		if err := printPermissions(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var (
		configPath string
		flagCfg    = defaultConfig()
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "TOML configuration file")
	flag.StringVar(&flagCfg.Listen, "listen", flagCfg.Listen, "listening address")
	flag.StringVar(&flagCfg.MetricsListen, "metrics-listen", flagCfg.MetricsListen, "Prometheus metrics listening address, empty to disable")
	flag.StringVar(&flagCfg.TLSCert, "tls-cert", "", "TLS certificate")
	flag.StringVar(&flagCfg.TLSKey, "tls-key", "", "TLS key")
	flag.BoolVar(&flagCfg.ImplicitTLS, "implicit-tls", false, "Only accept TLS connections instead of offering STARTTLS")
	flag.StringVar(&flagCfg.Username, "username", flagCfg.Username, "Username")
	flag.StringVar(&flagCfg.Password, "password", flagCfg.Password, "Password")
	flag.BoolVar(&flagCfg.Rev2, "rev2", flagCfg.Rev2, "Advertise IMAP4rev2")
	flag.BoolVar(&debug, "debug", false, "Log every command")
	flag.Parse()

	cfg := defaultConfig()
	if configPath != "" {
		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			logger := initLogger("imapprotod", zerolog.InfoLevel)
			logger.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = flagCfg.Listen
		case "metrics-listen":
			cfg.MetricsListen = flagCfg.MetricsListen
		case "tls-cert":
			cfg.TLSCert = flagCfg.TLSCert
		case "tls-key":
			cfg.TLSKey = flagCfg.TLSKey
		case "implicit-tls":
			cfg.ImplicitTLS = flagCfg.ImplicitTLS
		case "username":
			cfg.Username = flagCfg.Username
		case "password":
			cfg.Password = flagCfg.Password
		case "rev2":
			cfg.Rev2 = flagCfg.Rev2
		case "debug":
			cfg.LogLevel = zerolog.DebugLevel
		}
	})

	logger := initLogger("imapprotod", cfg.LogLevel)
	if configPath != "" {
		logger.Info().Str("path", configPath).Msg("loaded config")
	}

	tlsConfig, err := loadTLSConfig(&cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure TLS")
	}
	if cfg.ImplicitTLS && tlsConfig == nil {
		logger.Fatal().Msg("implicit TLS requires a certificate")
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen")
	}

	options := &imapserver.Options{
		Logger:   serverLogger{logger},
		Receiver: cfg.receiverOptions(),
	}
	if cfg.ImplicitTLS {
		ln = tls.NewListener(ln, tlsConfig)
	} else {
		options.TLSConfig = tlsConfig
	}

	h := newHandler(logger, &cfg)
	options.Handler = h
	options.Caps = h.caps
	server := imapserver.New(options)

	if cfg.MetricsListen != "" {
		go serveMetrics(logger, cfg.MetricsListen)
	}

	logger.Info().
		Str("addr", ln.Addr().String()).
		Strs("auth", h.caps.AuthMechanisms()).
		Bool("rev2", cfg.Rev2).
		Bool("tls", tlsConfig != nil).
		Msg("IMAP server listening")
	if err := server.Serve(ln); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func loadTLSConfig(cfg *config) (*tls.Config, error) {
	if cfg.TLSCert == "" && cfg.TLSKey == "" {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(cfg.TLSCert, cfg.TLSKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS key pair: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
	}, nil
}

func serveMetrics(logger zerolog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", addr).Msg("metrics listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("metrics server stopped")
	}
}

func printPermissions(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUSER\tTENANT ADMIN\tDESCRIPTION")
	for _, p := range permission.All() {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", p.Name(), yesNo(p.IsUserPermission()), yesNo(p.IsTenantAdminPermission()), p.Description())
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
