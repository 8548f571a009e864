package request

import "encoding/json"

// InvoicePaymentCreateRequest is the payload of the settle-invoice route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A body without the envelope is taken as the payload itself.
type InvoicePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
