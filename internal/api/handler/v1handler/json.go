package v1handler

import (
	"fmt"
	"time"

	"github.com/go-faster/jx"

	"tenantfinder/pkg/domain"
)

// jsonEncoder is implemented by every response body.
type jsonEncoder interface {
	Encode(e *jx.Encoder)
}

// Encode encodes ErrorBody as json.
func (s *ErrorBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("message")
	e.Str(s.Message)
	e.ObjEnd()
}

// Decode decodes CreateDiscoveryRequest from json. Unknown fields are rejected.
func (s *CreateDiscoveryRequest) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, k []byte) error { //nolint: wrapcheck
		switch string(k) {
		case "tenantId":
			v, err := d.Str()
			if err != nil {
				return fmt.Errorf("decode field tenantId: %w", err)
			}
			s.TenantID = v
		case "maxIndex":
			v, err := d.Int()
			if err != nil {
				return fmt.Errorf("decode field maxIndex: %w", err)
			}
			s.MaxIndex = v
		default:
			return fmt.Errorf("unknown field %q", k)
		}

		return nil
	})
}

// Encode encodes DiscoveryList as json.
func (s *DiscoveryList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for i := range s.Items {
		discoveryJSON{&s.Items[i]}.Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("nextCursor")
	if s.NextCursor != nil {
		e.Str(*s.NextCursor)
	} else {
		e.Null()
	}
	e.ObjEnd()
}

// Encode encodes DataCenterList as json.
func (s *DataCenterList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, dc := range s.Items {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(dc.ID)
		if dc.Name != "" {
			e.FieldStart("name")
			e.Str(dc.Name)
		}
		e.FieldStart("productionTemplate")
		e.Str(dc.ProductionTemplate)
		e.FieldStart("sandboxTemplate")
		e.Str(dc.SandboxTemplate)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

type productionMatchJSON struct {
	*domain.ProductionMatch
}

func (s productionMatchJSON) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("dataCenter")
	e.Str(s.DataCenter)
	e.FieldStart("url")
	e.Str(s.URL)
	e.ObjEnd()
}

type discoveryJSON struct {
	*domain.Discovery
}

func (s discoveryJSON) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("tenantId")
	e.Str(s.TenantID)
	e.FieldStart("maxIndex")
	e.Int(s.MaxIndex)
	e.FieldStart("status")
	e.Str(string(s.Status))
	e.FieldStart("result")
	encodeResult(e, &s.Result)
	e.FieldStart("attempts")
	e.UInt(s.Attempts)
	e.FieldStart("createdAt")
	e.Str(s.CreatedAt.Format(time.RFC3339Nano))
	e.FieldStart("updatedAt")
	e.Str(s.UpdatedAt.Format(time.RFC3339Nano))
	e.ObjEnd()
}

func encodeResult(e *jx.Encoder, r *domain.TenantDiscoveryResult) {
	optional := func(name, v string) {
		if v != "" {
			e.FieldStart(name)
			e.Str(v)
		}
	}

	e.ObjStart()
	e.FieldStart("tenantId")
	e.Str(r.TenantID)
	optional("dataCenter", r.DataCenter)
	optional("productionUrl", r.ProductionURL)
	optional("sandboxUrl", r.SandboxURL)
	optional("previewUrl", r.PreviewURL)
	optional("centralUrl", r.CentralURL)
	e.FieldStart("implementationTenants")
	e.ArrStart()
	for _, impl := range r.ImplementationTenants {
		e.ObjStart()
		e.FieldStart("index")
		e.Int(impl.Index)
		e.FieldStart("label")
		e.Str(impl.Label)
		e.FieldStart("url")
		e.Str(impl.URL)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}
