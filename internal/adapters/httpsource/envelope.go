package httpsource

import (
	"fmt"

	"github.com/goccy/go-json"

	"promptbuilder/internal/ports"
)

// envelope is the wire form of ports.FetchResponse
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// EncodeEnvelope renders a fetch response as {"success":..,"data":..,"error":..}
func EncodeEnvelope(resp *ports.FetchResponse) ([]byte, error) {
	env := envelope{Success: resp.Success, Error: resp.Error}
	if resp.Success {
		env.Data = json.RawMessage(resp.Data)
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return data, nil
}

// DecodeEnvelope parses the data endpoint's response body
func DecodeEnvelope(body []byte) (*ports.FetchResponse, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &ports.FetchResponse{
		Success: env.Success,
		Data:    []byte(env.Data),
		Error:   env.Error,
	}, nil
}
