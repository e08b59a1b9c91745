// Package catalog implements the inventory side of the desk backend:
// substring search over a fixed catalog, copy availability, and tag-driven
// loan-term resolution.
package catalog

// CopyStatus is the circulation state of a physical copy. No other values
// are ever produced or consumed.
type CopyStatus string

const (
	StatusAvailable CopyStatus = "Available"
	StatusBorrowed  CopyStatus = "Borrowed"
	StatusRepair    CopyStatus = "Repair"
	StatusWithdrawn CopyStatus = "Withdrawn"
)

var validCopyStatuses = map[CopyStatus]bool{
	StatusAvailable: true,
	StatusBorrowed:  true,
	StatusRepair:    true,
	StatusWithdrawn: true,
}

func IsValidCopyStatus(status CopyStatus) bool {
	return validCopyStatuses[status]
}

type Copy struct {
	ID        string     `json:"id"`
	Condition string     `json:"condition"`
	Status    CopyStatus `json:"status"`
}

type Book struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
	Location string   `json:"location"`
	Copies   []Copy   `json:"copies"`
}

// Inventory is a keyed, insertion-ordered book collection. Read-only after
// seeding.
type Inventory struct {
	keys  []string
	books map[string]Book
}

func NewInventory() *Inventory {
	return &Inventory{books: make(map[string]Book)}
}

// Add registers a book under key. Re-adding a key replaces the book but
// keeps its original position.
func (inv *Inventory) Add(key string, b Book) {
	if _, exists := inv.books[key]; !exists {
		inv.keys = append(inv.keys, key)
	}
	inv.books[key] = b
}

func (inv *Inventory) Get(key string) (Book, bool) {
	b, ok := inv.books[key]
	return b, ok
}

func (inv *Inventory) Len() int {
	return len(inv.keys)
}

// Titles returns every title in catalog order.
func (inv *Inventory) Titles() []string {
	titles := make([]string, 0, len(inv.keys))
	for _, key := range inv.keys {
		titles = append(titles, inv.books[key].Title)
	}
	return titles
}
