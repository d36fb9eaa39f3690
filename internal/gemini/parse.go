package gemini

import (
	"encoding/base64"
	"fmt"
)

// Image is a decoded inline image payload.
type Image struct {
	MIMEType string
	Data     []byte
}

// returns the first inline image found in the response, scanning every
// candidate in ranking order and every part within a candidate in order.
// Text parts are skipped; a text-only response yields nil with no error.
func FirstImage(resp *GenerateContentResponse) (*Image, error) {
	if resp == nil {
		return nil, nil
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}

			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode inline image data: %w", err)
			}

			return &Image{
				MIMEType: part.InlineData.MIMEType,
				Data:     data,
			}, nil
		}
	}

	return nil, nil
}
