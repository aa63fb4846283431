package cryptox

import "encoding/json"

// StoredDocument is the tagged form of a persisted file, decided once at
// load time: either an encrypted envelope or the raw plaintext document.
// Downstream code never re-sniffs.
type StoredDocument struct {
	Envelope *Envelope
	Raw      json.RawMessage
}

// IsEncrypted reports whether the stored document needs a password.
func (d StoredDocument) IsEncrypted() bool { return d.Envelope != nil }

// ParseStored classifies the raw bytes of a persisted file. Input that is
// not an envelope (including non-JSON) is returned as Raw for migration to
// deal with; classification itself never fails.
func ParseStored(data []byte) StoredDocument {
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && envelopeShape(env) {
		return StoredDocument{Envelope: &env}
	}
	return StoredDocument{Raw: data}
}

// IsEncryptedEnvelope is a structural check: the value has encrypted=true
// and string-typed salt, iv and data. Accepts a pre-parsed *Envelope, a
// generic map, or raw JSON text; anything else is simply "not encrypted".
func IsEncryptedEnvelope(value any) bool {
	switch v := value.(type) {
	case *Envelope:
		return v != nil && envelopeShape(*v)
	case Envelope:
		return envelopeShape(v)
	case map[string]any:
		return mapShape(v)
	case string:
		return ParseStored([]byte(v)).IsEncrypted()
	case []byte:
		return ParseStored(v).IsEncrypted()
	default:
		return false
	}
}

func envelopeShape(env Envelope) bool {
	return env.Encrypted && env.Salt != "" && env.IV != "" && env.Data != ""
}

func mapShape(m map[string]any) bool {
	enc, _ := m["encrypted"].(bool)
	if !enc {
		return false
	}
	for _, k := range []string{"salt", "iv", "data"} {
		if _, ok := m[k].(string); !ok {
			return false
		}
	}
	return true
}
