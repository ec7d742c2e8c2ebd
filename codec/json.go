package codec

import "encoding/json"

// JSON is the standard-library JSON codec, kept as a reference for GoJSON and
// for callers that want no extra dependency at decode time.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Name returns "json".
func (JSON) Name() string { return "json" }
