package model

// Item is a catalog entry. Description is nil when the item has none and is
// serialized as null.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
}

// Clone returns a copy of the item that shares no memory with the receiver.
func (i Item) Clone() Item {
	if i.Description != nil {
		d := *i.Description
		i.Description = &d
	}
	return i
}
