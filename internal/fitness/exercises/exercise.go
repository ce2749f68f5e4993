package exercises

// Exercise is a named movement tracked per account.
// The name is unique within the owning account, not globally.
type Exercise struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UserID int    `json:"-"`
}
