package testutil

import (
	"github.com/scieloorg/oai-pmh/models/oai"
)

// ProtocolErrorCode returns the OAI-PMH error code carried by err, or
// an empty string if err holds no ProtocolError.
func ProtocolErrorCode(err error) string {
	if protoErr, ok := oai.AsProtocolError(err); ok {
		return protoErr.Code
	}
	return ""
}
