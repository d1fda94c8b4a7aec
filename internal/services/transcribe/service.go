package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

const ocrPrompt = `You are an expert at Optical Character Recognition (OCR). Extract any text you can find from the following image.

Respond with the extracted text only. If the image contains no readable text, respond with an empty string.`

// Service extracts text from user-supplied images.
type Service struct {
	provider      interfaces.CompletionProvider
	logger        arbor.ILogger
	maxImageBytes int
}

// NewService creates the image-to-text service.
func NewService(config *common.TranscribeConfig, provider interfaces.CompletionProvider, logger arbor.ILogger) interfaces.TranscriptionService {
	return &Service{
		provider:      provider,
		logger:        logger,
		maxImageBytes: config.MaxImageBytes,
	}
}

// ImageToText decodes the data URI and asks the backend to read the image.
// An empty extraction is a valid result: an image with no text succeeds
// with ExtractedText "".
func (s *Service) ImageToText(ctx context.Context, req models.TranscriptionRequest) (*models.TranscriptionResponse, error) {
	payload, err := models.DecodeDataURI(req.PhotoDataURI)
	if err != nil {
		return nil, err
	}

	if s.maxImageBytes > 0 && len(payload.Data) > s.maxImageBytes {
		return nil, &models.InvalidImageError{
			Reason: fmt.Sprintf("image payload is %d bytes, exceeding the %d byte limit", len(payload.Data), s.maxImageBytes),
		}
	}

	s.logger.Info().
		Str("mime_type", payload.MIMEType).
		Int("bytes", len(payload.Data)).
		Msg("Transcribing image")

	resp, err := s.provider.GenerateContent(ctx, &interfaces.CompletionRequest{
		Messages: []interfaces.Message{
			{Role: "user", Content: ocrPrompt},
		},
		Image: &interfaces.ImagePart{
			MIMEType: payload.MIMEType,
			Data:     payload.Data,
		},
	})
	if err != nil {
		return nil, err
	}

	return &models.TranscriptionResponse{
		ExtractedText: strings.TrimSpace(resp.Text),
	}, nil
}
