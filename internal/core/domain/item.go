package domain

// ItemType discriminates the two community collections.
type ItemType string

const (
	TypeEvent ItemType = "event"
	TypePost  ItemType = "post"
)

// Item is a community board record. Events and posts share identity and
// listing fields and differ only in their payload, so they are one struct
// switched on Type rather than two near-identical ones.
//
// The type tag is assigned client-side from the collection an item was
// fetched from; the backend does not send it.
type Item struct {
	ID        string   `json:"_id"`
	Type      ItemType `json:"type,omitempty"`
	Title     string   `json:"title"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UserID    string   `json:"userId"`
	UserName  string   `json:"userName,omitempty"`

	// Event payload.
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`

	// Post payload.
	Content string `json:"content,omitempty"`
}

// EditableBy reports whether u may update or delete the item: the owner
// may, and so may any admin.
func (it *Item) EditableBy(u *User) bool {
	if u == nil {
		return false
	}
	return it.UserID == u.ID || u.IsAdmin()
}
