package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// TranscriptionRequest carries a single image as a data URI
// ("data:<mime>;base64,<payload>").
type TranscriptionRequest struct {
	PhotoDataURI string `json:"photoDataUri" validate:"required"`
}

// TranscriptionResponse carries the extracted text. An empty string is a
// valid "no text found" result and must not be conflated with failure.
type TranscriptionResponse struct {
	ExtractedText string `json:"extractedText"`
}

// ImagePayload is a decoded data URI.
type ImagePayload struct {
	MIMEType string
	Data     []byte
}

// DecodeDataURI parses and decodes a base64 data URI. Rejecting a
// malformed URI here keeps transport failures distinguishable from
// invalid input.
func DecodeDataURI(uri string) (*ImagePayload, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, &InvalidImageError{Reason: "photo data URI must start with \"data:\""}
	}
	rest := uri[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, &InvalidImageError{Reason: "photo data URI must be base64 encoded (\"data:<mime>;base64,<payload>\")"}
	}
	mimeType := rest[:sep]
	if mimeType == "" {
		return nil, &InvalidImageError{Reason: "photo data URI is missing a MIME type"}
	}
	payload := rest[sep+len(";base64,"):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &InvalidImageError{Reason: fmt.Sprintf("failed to decode base64 image payload: %v", err)}
	}
	if len(data) == 0 {
		return nil, &InvalidImageError{Reason: "photo data URI payload is empty"}
	}
	return &ImagePayload{MIMEType: mimeType, Data: data}, nil
}
