package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

type config struct {
	Listen        string
	MetricsListen string
	Username      string
	Password      string
	Rev2          bool
	LogLevel      zerolog.Level

	TLSCert string
	TLSKey  string
	// With implicit TLS the listener only accepts TLS connections, otherwise
	// clients upgrade with STARTTLS.
	ImplicitTLS bool

	MaxLineLength  int
	MaxLiteralSize int64

	// Quota limits per resource type, reported to GETQUOTA and
	// GETQUOTAROOT.
	Quota map[imap.QuotaResourceType]int64
}

func defaultConfig() config {
	return config{
		Listen:         "localhost:1143",
		MetricsListen:  "localhost:9143",
		Username:       "user",
		Password:       "user",
		Rev2:           true,
		LogLevel:       zerolog.InfoLevel,
		MaxLineLength:  imapwire.DefaultMaxLineLength,
		MaxLiteralSize: imapwire.DefaultMaxLiteralSize,
		Quota:          map[imap.QuotaResourceType]int64{},
	}
}

type fileConfig struct {
	Listen         string           `toml:"listen"`
	MetricsListen  string           `toml:"metrics_listen"`
	TLSCert        string           `toml:"tls_cert"`
	TLSKey         string           `toml:"tls_key"`
	ImplicitTLS    bool             `toml:"implicit_tls"`
	Username       string           `toml:"username"`
	Password       string           `toml:"password"`
	Rev2           bool             `toml:"rev2"`
	LogLevel       string           `toml:"log_level"`
	MaxLineLength  int              `toml:"max_line_length"`
	MaxLiteralSize int64            `toml:"max_literal_size"`
	Quota          map[string]int64 `toml:"quota"`
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("listen") {
		cfg.Listen = strings.TrimSpace(raw.Listen)
	}
	if meta.IsDefined("metrics_listen") {
		cfg.MetricsListen = strings.TrimSpace(raw.MetricsListen)
	}
	if meta.IsDefined("tls_cert") {
		cfg.TLSCert = strings.TrimSpace(raw.TLSCert)
	}
	if meta.IsDefined("tls_key") {
		cfg.TLSKey = strings.TrimSpace(raw.TLSKey)
	}
	if meta.IsDefined("implicit_tls") {
		cfg.ImplicitTLS = raw.ImplicitTLS
	}
	if meta.IsDefined("username") {
		cfg.Username = raw.Username
	}
	if meta.IsDefined("password") {
		cfg.Password = raw.Password
	}
	if meta.IsDefined("rev2") {
		cfg.Rev2 = raw.Rev2
	}

	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	if meta.IsDefined("max_line_length") {
		if raw.MaxLineLength <= 0 {
			return config{}, fmt.Errorf("max_line_length must be positive, got %v", raw.MaxLineLength)
		}
		cfg.MaxLineLength = raw.MaxLineLength
	}
	if meta.IsDefined("max_literal_size") {
		if raw.MaxLiteralSize <= 0 {
			return config{}, fmt.Errorf("max_literal_size must be positive, got %v", raw.MaxLiteralSize)
		}
		cfg.MaxLiteralSize = raw.MaxLiteralSize
	}

	if meta.IsDefined("quota") {
		for name, limit := range raw.Quota {
			if limit < 0 {
				return config{}, fmt.Errorf("quota %v: negative limit", name)
			}
			cfg.Quota[imap.QuotaResourceType(strings.ToUpper(name))] = limit
		}
	}

	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return config{}, fmt.Errorf("tls_cert and tls_key must be set together")
	}

	return cfg, nil
}

// caps returns the capabilities advertised by the server.
func (cfg *config) caps() imap.CapSet {
	caps := imap.CapSet{
		imap.CapIMAP4rev1:   {},
		imap.CapLiteralPlus: {},
		imap.CapSASLIR:      {},
		imap.CapIdle:        {},
		imap.CapEnable:      {},
		imap.CapAuthPlain:   {},
	}
	if cfg.Rev2 {
		caps[imap.CapIMAP4rev2] = struct{}{}
	}
	if len(cfg.Quota) > 0 {
		caps[imap.CapQuota] = struct{}{}
		for t := range cfg.Quota {
			caps[imap.QuotaResourceCap(t)] = struct{}{}
		}
	}
	return caps
}

func (cfg *config) receiverOptions() imapwire.ReceiverOptions {
	return imapwire.ReceiverOptions{
		MaxLineLength:  cfg.MaxLineLength,
		MaxLiteralSize: cfg.MaxLiteralSize,
	}
}

func sortedQuotaResources(caps imap.CapSet) []imap.QuotaResourceType {
	l := caps.QuotaResourceTypes()
	sort.Slice(l, func(i, j int) bool {
		return l[i] < l[j]
	})
	return l
}
