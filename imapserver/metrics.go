package imapserver

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/emersion/go-imapproto/imapwire"
)

var (
	metricConnection = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "imapproto_connection_total",
			Help: "Incoming IMAP connections.",
		},
	)
	metricCommands = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "imapproto_command_duration_seconds",
			Help:    "IMAP command duration and result codes in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.100, 0.5, 1, 5, 10, 20},
		},
		[]string{
			"cmd",
			"result", // ok, no, bad, error
		},
	)
	metricSyntaxErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imapproto_syntax_errors_total",
			Help: "Commands rejected before reaching a handler, by error class.",
		},
		[]string{
			"class",
		},
	)
	metricTLSHandshakes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imapproto_starttls_handshake_total",
			Help: "TLS handshakes started with STARTTLS, by result.",
		},
		[]string{
			"result", // ok, error
		},
	)
	metricContinuations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "imapproto_continuation_total",
			Help: "Continuation requests sent for synchronizing literals.",
		},
	)
)

var errorClasses = []struct {
	err   error
	label string
}{
	{imapwire.ErrMalformedTag, "malformed-tag"},
	{imapwire.ErrMissingCommand, "missing-command"},
	{imapwire.ErrUnknownCommand, "unknown-command"},
	{imapwire.ErrUnterminatedQuote, "unterminated-quote"},
	{imapwire.ErrInvalidAtom, "invalid-atom"},
	{imapwire.ErrInvalidLiteral, "invalid-literal"},
	{imapwire.ErrLiteralTooLarge, "literal-too-large"},
	{imapwire.ErrLineTooLong, "line-too-long"},
	{imapwire.ErrInvalidLineEnding, "invalid-line-ending"},
	{ErrMissingArgument, "missing-argument"},
	{ErrTooManyArguments, "too-many-arguments"},
	{ErrInvalidArgument, "invalid-argument"},
}

// errorClass returns the metric label for a syntax or argument error.
func errorClass(err error) string {
	for _, c := range errorClasses {
		if errors.Is(err, c.err) {
			return c.label
		}
	}
	return "other"
}
