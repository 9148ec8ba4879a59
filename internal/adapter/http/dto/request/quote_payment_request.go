package request

import "encoding/json"

// DepositCreateRequest is the payload for the deposit creation route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas. The transaction amount inside it is ignored; the
// server derives the charged amount from the stored quote.
type DepositCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
