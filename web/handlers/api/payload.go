package api

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

const (
	encodingUTF8   = "utf-8"
	encodingBase64 = "base64"
)

// encodePayload returns payload as JSON text. Payloads that are not valid
// UTF-8 are sent as standard base64.
func encodePayload(payload []byte) (data, encoding string) {
	if utf8.Valid(payload) {
		return string(payload), encodingUTF8
	}
	return base64.StdEncoding.EncodeToString(payload), encodingBase64
}

func decodePayload(data, encoding string) ([]byte, error) {
	switch encoding {
	case "", encodingUTF8:
		return []byte(data), nil
	case encodingBase64:
		payload, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("payload is not valid base64: %v", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("payload encoding %q is not valid", encoding)
	}
}
