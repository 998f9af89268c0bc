package goquery

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// TrackingContext is the decoded value of a data-ui-tracking-context
// attribute, with every value rendered as text.
type TrackingContext map[string]string

// Get returns the trimmed value for key, or the empty string.
func (c TrackingContext) Get(key string) string {
	return strings.TrimSpace(c[key])
}

// DecodeTrackingContext decodes a percent-encoded JSON object. Snapshots
// encode the attribute once or twice, so a second decoding pass is tried
// before giving up. Anything undecodable yields an empty context.
func DecodeTrackingContext(raw string) TrackingContext {
	if strings.TrimSpace(raw) == "" {
		return TrackingContext{}
	}

	once := unescape(raw)
	if ctx, ok := decodeObject(once); ok {
		return ctx
	}
	if ctx, ok := decodeObject(unescape(once)); ok {
		return ctx
	}
	return TrackingContext{}
}

// unescape percent-decodes s, returning it unchanged when it contains
// an invalid escape sequence.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func decodeObject(s string) (TrackingContext, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	// Reject trailing garbage after the object.
	if dec.More() {
		return nil, false
	}

	ctx := make(TrackingContext, len(obj))
	for k, v := range obj {
		ctx[k] = stringify(v)
	}
	return ctx, true
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return ""
		}
		return strings.TrimSpace(buf.String())
	}
}
