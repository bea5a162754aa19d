package models

// Secret is a string that never renders its value through fmt or JSON.
// The raw value is only reachable through Reveal.
type Secret string

const redacted = "***"

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return "models.Secret(" + redacted + ")" }

// MarshalJSON redacts the value; callers that need the raw string must
// Reveal it explicitly.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Reveal returns the underlying value.
func (s Secret) Reveal() string { return string(s) }
