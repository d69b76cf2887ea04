package models

// InventoryItem is stocked hardware. Quantity is the number of serials on
// hand. Held for snapshot restore and read access; stock mutations happen in
// an external management flow.
type InventoryItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         Money           `json:"price"`
	Status        InventoryStatus `json:"status"`
	SerialNumbers []string        `json:"serialNumbers"`
	Image         string          `json:"image,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
}

func (i *InventoryItem) Quantity() int {
	return len(i.SerialNumbers)
}

func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	out := *i
	out.SerialNumbers = make([]string, len(i.SerialNumbers))
	copy(out.SerialNumbers, i.SerialNumbers)
	return &out
}
