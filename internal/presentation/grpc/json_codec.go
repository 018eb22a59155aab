package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The wire messages are plain structs until the proto definitions are
// generated, so requests travel as JSON.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
