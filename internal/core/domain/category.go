package domain

// CategoryKind scopes a category to one of the monetary collections.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// Category is a user-defined label for monetary records. Deleting a category
// leaves records pointing at it untouched; the dangling reference is a
// presentation concern.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
	Color      string       `json:"color"` // hex color used by the UI
	AuditFields
}
