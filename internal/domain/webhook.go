package domain

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"
)

const defaultCustomerName = "Customer"

// InboundOrder is the canonical form of an order-created payload after
// normalization. Handlers never look at the raw webhook body.
type InboundOrder struct {
	ID    string
	Name  string
	Phone string
}

// flexID accepts both numeric and string identifiers. Shopify sends the
// order id as a number and the order name as a string like "#1001".
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type rawCustomer struct {
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
}

type rawOrder struct {
	ID       flexID      `json:"id"`
	Name     string      `json:"name"`
	Customer rawCustomer `json:"customer"`
}

// тут 2 юзер кейса: тело сразу объект заказа, либо объект под ключом "order"
type rawEnvelope struct {
	rawOrder
	Order *rawOrder `json:"order"`
}

// NormalizeCreated decodes an order-created webhook body into the
// canonical InboundOrder, tolerating both the bare and the nested shape.
func NormalizeCreated(body io.Reader) (*InboundOrder, error) {
	var env rawEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, err
	}

	ord := env.rawOrder
	if env.Order != nil {
		ord = *env.Order
	}

	name := strings.TrimSpace(ord.Customer.FirstName)
	if name == "" {
		name = defaultCustomerName
	}

	return &InboundOrder{
		ID:    resolveID(ord),
		Name:  name,
		Phone: strings.TrimSpace(ord.Customer.Phone),
	}, nil
}

// resolveID picks the key later stage events will reference: explicit id,
// then the human-readable order name, then a timestamp-derived one.
// Later events carry order_id, so if the platform fills name here but a
// different id there, the record is never found again and the stage event
// becomes a silent no-op. That mismatch exists upstream; we keep it.
func resolveID(o rawOrder) string {
	if o.ID != "" {
		return string(o.ID)
	}
	if o.Name != "" {
		return o.Name
	}
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

type stageEvent struct {
	OrderID flexID `json:"order_id"`
}

// ParseStageEvent extracts order_id from a packed/shipped/delivered
// webhook body.
func ParseStageEvent(body io.Reader) (string, error) {
	var ev stageEvent
	if err := json.NewDecoder(body).Decode(&ev); err != nil {
		return "", err
	}
	return string(ev.OrderID), nil
}
