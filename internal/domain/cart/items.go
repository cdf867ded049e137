package cart

import (
	"encoding/json"
)

// Item is one line of the cart snapshot. The snapshot is opaque to the
// sweep; only restore and email rendering look inside it.
type Item struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type Items []Item

// DecodeItems tolerates malformed snapshots: a blob that does not parse
// yields an empty list rather than an error, mirroring the per-item
// best-effort policy of the restore path.
func DecodeItems(raw []byte) Items {
	if len(raw) == 0 {
		return nil
	}
	var items Items
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func (i Items) Encode() []byte {
	if i == nil {
		i = Items{}
	}
	raw, err := json.Marshal(i)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

// Restorable filters out lines that cannot be replayed into a live cart.
// A missing quantity defaults to one, matching the snapshot writer.
func (i Items) Restorable() Items {
	out := make(Items, 0, len(i))
	for _, item := range i {
		if item.ProductID <= 0 {
			continue
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		out = append(out, item)
	}
	return out
}
