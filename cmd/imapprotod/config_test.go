package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:1143", cfg.Listen)
	assert.Equal(t, "127.0.0.1:9143", cfg.MetricsListen)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "correct horse", cfg.Password)
	assert.False(t, cfg.Rev2)
	assert.False(t, cfg.ImplicitTLS)
	assert.Empty(t, cfg.TLSCert)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 16384, cfg.MaxLineLength)
	assert.Equal(t, int64(imapwire.DefaultMaxLiteralSize), cfg.MaxLiteralSize)
	assert.Equal(t, map[imap.QuotaResourceType]int64{
		imap.QuotaResourceStorage: 512000,
		imap.QuotaResourceMessage: 10000,
	}, cfg.Quota)

	caps := cfg.caps()
	assert.True(t, caps.Has(imap.CapQuota))
	assert.True(t, caps.Has(imap.QuotaResourceCap(imap.QuotaResourceStorage)))
	assert.False(t, caps.Has(imap.CapIMAP4rev2))
	assert.Equal(t, []imap.QuotaResourceType{imap.QuotaResourceMessage, imap.QuotaResourceStorage}, sortedQuotaResources(caps))
	assert.Equal(t, []string{"PLAIN"}, caps.AuthMechanisms())
}

func TestLoadConfig_defaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	caps := cfg.caps()
	assert.True(t, caps.Has(imap.CapIMAP4rev2))
	assert.False(t, caps.Has(imap.CapQuota))
	assert.Empty(t, sortedQuotaResources(caps))
}

func TestLoadConfig_errors(t *testing.T) {
	tests := map[string]string{
		"unknown key":      `listne = "localhost:143"`,
		"bad log level":    `log_level = "loud"`,
		"bad line length":  `max_line_length = 0`,
		"bad literal size": `max_literal_size = -1`,
		"negative quota":   "[quota]\nstorage = -5",
		"tls cert only":    `tls_cert = "cert.pem"`,
		"tls key only":     "tls_key = \"key.pem\"\nimplicit_tls = true",
		"malformed toml":   `listen = `,
		"wrong type":       `rev2 = "yes"`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestPrintPermissions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPermissions(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))

	var found bool
	for _, l := range lines[1:] {
		if strings.HasPrefix(l, "imap-authenticate ") {
			found = true
			assert.Contains(t, l, "Authenticate via IMAP")
		}
	}
	assert.True(t, found)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
