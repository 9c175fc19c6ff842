package oai

import (
	"errors"
	"fmt"

	"github.com/scieloorg/oai-pmh/constants"
)

// ProtocolError is a request-level failure that maps one to one onto
// an OAI-PMH error code. The dispatcher renders it as an <error>
// document instead of failing the request.
type ProtocolError struct {
	Code    string
	Message string
}

func (e *ProtocolError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Text returns the text rendered inside the <error> element.
func (e *ProtocolError) Text() string {
	return constants.ErrorText[e.Code]
}

func newProtocolError(code, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewBadArgumentError(format string, args ...interface{}) *ProtocolError {
	return newProtocolError(constants.ErrBadArgument, format, args...)
}

func NewBadResumptionTokenError(format string, args ...interface{}) *ProtocolError {
	return newProtocolError(constants.ErrBadResumptionToken, format, args...)
}

func NewBadVerbError(format string, args ...interface{}) *ProtocolError {
	return newProtocolError(constants.ErrBadVerb, format, args...)
}

func NewCannotDisseminateFormatError(format string, args ...interface{}) *ProtocolError {
	return newProtocolError(constants.ErrCannotDisseminateFormat, format, args...)
}

func NewIdDoesNotExistError(format string, args ...interface{}) *ProtocolError {
	return newProtocolError(constants.ErrIdDoesNotExist, format, args...)
}

func NewNoRecordsMatchError(format string, args ...interface{}) *ProtocolError {
	return newProtocolError(constants.ErrNoRecordsMatch, format, args...)
}

// AsProtocolError returns the ProtocolError in err's chain, if any.
func AsProtocolError(err error) (*ProtocolError, bool) {
	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return protoErr, true
	}
	return nil, false
}
