package validity

import (
	"bytes"

	"github.com/go-faster/jx"
)

// errorFields are the keys treated as explicit error messages.
var errorFields = map[string]struct{}{ //nolint: gochecknoglobals
	"error":         {},
	"errorMessage":  {},
	"error_message": {},
	"errorMsg":      {},
}

// BodySignal is what a structured response body says about the tenant.
type BodySignal struct {
	// FailoverSet is true when the body carries a boolean "failover" field.
	FailoverSet bool
	// Failover is the value of that field.
	Failover bool
	// HasError is true when the body carries a non-empty error-message field.
	HasError bool
	// ErrorMessage is the message when it is a string.
	ErrorMessage string
}

// InspectBody parses body as a JSON object and extracts the signals used by
// the policy. ok is false when the body is empty, is not a JSON object, or is
// malformed anywhere in the top-level object.
func InspectBody(body []byte) (signal BodySignal, ok bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return BodySignal{}, false
	}

	d := jx.DecodeBytes(body)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch k := string(key); {
		case k == "failover":
			if d.Next() != jx.Bool {
				return d.Skip()
			}
			v, err := d.Bool()
			if err != nil {
				return err
			}
			signal.FailoverSet, signal.Failover = true, v

			return nil
		case isErrorField(k):
			return inspectErrorValue(d, &signal)
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return BodySignal{}, false
	}

	return signal, true
}

func isErrorField(key string) bool {
	_, ok := errorFields[key]

	return ok
}

func inspectErrorValue(d *jx.Decoder, signal *BodySignal) error {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return err
		}
		if s != "" {
			signal.HasError = true
			signal.ErrorMessage = s
		}

		return nil
	case jx.Bool:
		v, err := d.Bool()
		if err != nil {
			return err
		}
		signal.HasError = signal.HasError || v

		return nil
	case jx.Object, jx.Array:
		signal.HasError = true

		return d.Skip()
	default:
		return d.Skip()
	}
}
