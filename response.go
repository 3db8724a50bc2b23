package imap

import (
	"fmt"
	"strings"
)

// StatusResponseType is a generic status response type.
type StatusResponseType string

const (
	StatusResponseTypeOK      StatusResponseType = "OK"
	StatusResponseTypeNo      StatusResponseType = "NO"
	StatusResponseTypeBad     StatusResponseType = "BAD"
	StatusResponseTypePreAuth StatusResponseType = "PREAUTH"
	StatusResponseTypeBye     StatusResponseType = "BYE"
)

// ResponseCode is a response code.
type ResponseCode string

const (
	ResponseCodeAlert                ResponseCode = "ALERT"
	ResponseCodeAuthenticationFailed ResponseCode = "AUTHENTICATIONFAILED"
	ResponseCodeAuthorizationFailed  ResponseCode = "AUTHORIZATIONFAILED"
	ResponseCodeCannot               ResponseCode = "CANNOT"
	ResponseCodeClientBug            ResponseCode = "CLIENTBUG"
	ResponseCodeLimit                ResponseCode = "LIMIT"
	ResponseCodeNonExistent          ResponseCode = "NONEXISTENT"
	ResponseCodeNoPerm               ResponseCode = "NOPERM"
	ResponseCodeOverQuota            ResponseCode = "OVERQUOTA"
	ResponseCodeParse                ResponseCode = "PARSE"
	ResponseCodeServerBug            ResponseCode = "SERVERBUG"
	ResponseCodeTryCreate            ResponseCode = "TRYCREATE"
	ResponseCodeUnavailable          ResponseCode = "UNAVAILABLE"

	// APPENDLIMIT
	ResponseCodeTooBig ResponseCode = "TOOBIG"
)

// StatusResponse is a generic status response.
//
// See RFC 9051 section 7.1.
type StatusResponse struct {
	Type StatusResponseType
	Code ResponseCode
	Text string
}

// Error is an IMAP error tied to a command.
//
// The tag of the offending command is kept so that a tagged response can be
// sent back. If no tag could be parsed, Tag is empty and the error is fatal
// for the connection.
type Error struct {
	Tag  string
	Type StatusResponseType
	Code ResponseCode
	Text string

	// Err is the class of the error, usually a sentinel error value. It is
	// exposed via Unwrap for errors.Is.
	Err error
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (err *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "imap: %v", err.Type)
	if err.Tag != "" {
		fmt.Fprintf(&sb, " (tag %v)", err.Tag)
	}
	if err.Code != "" {
		fmt.Fprintf(&sb, " [%v]", err.Code)
	}
	text := err.Text
	if text == "" {
		text = "<unknown>"
	}
	fmt.Fprintf(&sb, " %v", text)
	return sb.String()
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Fatal reports whether the error leaves no tag to answer with. The caller
// should close the connection after reporting such an error.
func (err *Error) Fatal() bool {
	return err.Tag == ""
}

// StatusResponse returns the status response to send for this error.
func (err *Error) StatusResponse() *StatusResponse {
	return &StatusResponse{
		Type: err.Type,
		Code: err.Code,
		Text: err.Text,
	}
}

// NewBadError creates a tagged BAD error.
func NewBadError(tag string, class error, text string) *Error {
	return &Error{
		Tag:  tag,
		Type: StatusResponseTypeBad,
		Text: text,
		Err:  class,
	}
}
