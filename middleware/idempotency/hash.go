package idempotency

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kprajapati/tracker/model"
)

// HashPayload computes the deduplication hash of a request payload. JSON
// payloads are canonicalized first so that structurally identical bodies
// hash identically regardless of key order; other payloads hash their raw
// bytes. An empty payload hashes the canonical null sentinel.
func HashPayload(payload model.Payload) (string, error) {
	var canonical []byte
	switch {
	case payload.Kind == model.PayloadKindJSON && len(payload.Data) > 0:
		c, err := canonicalizeJSON(payload.Data)
		if err != nil {
			return "", fmt.Errorf("canonicalize payload: %w", err)
		}
		canonical = c
	case len(payload.Data) > 0:
		canonical = payload.Data
	default:
		canonical = []byte("null")
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalizeJSON re-encodes raw JSON deterministically: object keys are
// sorted lexicographically at every level, array order is preserved, and
// null stays null. Numbers keep their source notation via json.Number.
func canonicalizeJSON(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeCanonical(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			if err := writeCanonical(buf, v[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case json.Number:
		buf.WriteString(v.String())
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	}
	return nil
}
