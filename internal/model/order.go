package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimestampLayout is the receipt-time format stored with every order.
const TimestampLayout = "2006-01-02 15:04:05"

// Order is one submitted table order, stamped at server receipt time.
type Order struct {
	Timestamp   string      `json:"timestamp"`
	TableNumber TableNumber `json:"tableNumber"`
	Items       ItemList    `json:"items"`
	TotalCost   TotalCost   `json:"totalCost"`
	Note        Note        `json:"note"`
}

// ItemLines renders one display line per item.
func (o *Order) ItemLines() []string {
	lines := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, it.Summary())
	}
	return lines
}

// ItemsSummary is the comma-joined rendering persisted in the relational store.
func (o *Order) ItemsSummary() string {
	return strings.Join(o.ItemLines(), ", ")
}

// ItemList decodes the items key leniently: anything other than a JSON array
// collapses to an empty list instead of failing the request.
type ItemList []Item

func (l *ItemList) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		*l = ItemList{}
		return nil
	}
	*l = items
	return nil
}

// Note is the free-text note, defaulting to empty when missing or
// wrong-typed.
type Note string

func (n *Note) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*n = ""
		return nil
	}
	*n = Note(s)
	return nil
}

// Item is either a structured line item or a plain-text one (clients may send
// a bare string in place of an object). The raw inbound JSON is kept so the
// journal stores exactly what the client sent, omissions and all.
type Item struct {
	Name     string
	Quantity float64
	Price    float64

	Plain bool
	Text  string

	raw json.RawMessage
}

// StructuredItem builds an object-form item, for constructing orders in code.
func StructuredItem(name string, quantity, price float64) Item {
	return Item{Name: name, Quantity: quantity, Price: price}
}

// PlainItem builds a text-form item.
func PlainItem(text string) Item {
	return Item{Plain: true, Text: text}
}

// UnmarshalJSON accepts an object with optional name/quantity/price, a bare
// string, or any other JSON value (coerced to its text form). Missing or
// wrong-typed object fields fall back to their defaults instead of failing
// the request.
func (it *Item) UnmarshalJSON(data []byte) error {
	it.raw = append(it.raw[:0], data...)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields struct {
			Name     json.RawMessage `json:"name"`
			Quantity json.RawMessage `json:"quantity"`
			Price    json.RawMessage `json:"price"`
		}
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		it.Plain = false
		it.Name = "Unknown"
		it.Quantity = 1
		it.Price = 0
		if fields.Name != nil && !isNull(fields.Name) {
			var s string
			if json.Unmarshal(fields.Name, &s) == nil {
				it.Name = s
			}
		}
		if fields.Quantity != nil && !isNull(fields.Quantity) {
			var f float64
			if json.Unmarshal(fields.Quantity, &f) == nil {
				it.Quantity = f
			}
		}
		if fields.Price != nil && !isNull(fields.Price) {
			var f float64
			if json.Unmarshal(fields.Price, &f) == nil {
				it.Price = f
			}
		}
		return nil
	}

	it.Plain = true
	var s string
	if !isNull(trimmed) && json.Unmarshal(data, &s) == nil {
		it.Text = s
	} else {
		it.Text = string(trimmed)
	}
	return nil
}

// MarshalJSON re-emits the client's original value when the item came off the
// wire; constructed items marshal in their canonical form.
func (it Item) MarshalJSON() ([]byte, error) {
	if len(it.raw) > 0 {
		return it.raw, nil
	}
	if it.Plain {
		return json.Marshal(it.Text)
	}
	return json.Marshal(struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Price    float64 `json:"price"`
	}{it.Name, it.Quantity, it.Price})
}

// Summary renders the item for the relational store and the console:
// "{name} ({quantity}) - ₹{price}" for structured items, the bare text
// otherwise.
func (it Item) Summary() string {
	if it.Plain {
		return it.Text
	}
	return fmt.Sprintf("%s (%s) - ₹%s", it.Name, formatAmount(it.Quantity), formatAmount(it.Price))
}

// TableNumber is the client-supplied table identifier, accepted as a string
// or a number and stored as text. Absent means NULL.
type TableNumber struct {
	text string
	set  bool

	raw json.RawMessage
}

// NewTableNumber builds a set table number, for constructing orders in code.
func NewTableNumber(text string) TableNumber {
	return TableNumber{text: text, set: true}
}

func (t *TableNumber) UnmarshalJSON(data []byte) error {
	t.raw = append(t.raw[:0], data...)

	// An explicit null stays unset, like an omitted key.
	if isNull(data) {
		return nil
	}

	var s string
	if json.Unmarshal(data, &s) == nil {
		t.text = s
		t.set = true
		return nil
	}
	var f float64
	if json.Unmarshal(data, &f) == nil {
		t.text = formatAmount(f)
		t.set = true
		return nil
	}
	t.text = string(bytes.TrimSpace(data))
	t.set = true
	return nil
}

func (t TableNumber) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}
	if !t.set {
		return []byte("null"), nil
	}
	return json.Marshal(t.text)
}

// Value stores the text form, or NULL when the client sent nothing.
func (t TableNumber) Value() (driver.Value, error) {
	if !t.set {
		return nil, nil
	}
	return t.text, nil
}

func (t TableNumber) String() string { return t.text }

// TotalCost is the client's figure taken verbatim; no recomputation against
// item prices. Absent or non-numeric means unset (NULL/null).
type TotalCost struct {
	Amount float64
	Set    bool
}

// NewTotalCost builds a set total, for constructing orders in code.
func NewTotalCost(amount float64) TotalCost {
	return TotalCost{Amount: amount, Set: true}
}

func (t *TotalCost) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var f float64
	if json.Unmarshal(data, &f) == nil {
		t.Amount = f
		t.Set = true
	}
	return nil
}

func (t TotalCost) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return json.Marshal(t.Amount)
}

func (t TotalCost) Value() (driver.Value, error) {
	if !t.Set {
		return nil, nil
	}
	return t.Amount, nil
}

func (t TotalCost) String() string {
	if !t.Set {
		return ""
	}
	return formatAmount(t.Amount)
}

// formatAmount prints JSON numbers the way clients sent them: integral values
// without a decimal point, fractional ones in full.
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isNull reports whether data is the JSON null literal. json.Unmarshal treats
// null as a successful no-op for most targets, so the lenient decoders have
// to spot it themselves to apply their defaults.
func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
