package transfer

// Document is the self-contained JSON representation of an itinerary and
// its children used for export/import. Events is required on import; all
// other sections are optional so older documents keep importing.
type Document struct {
	Itinerary    *Itinerary    `json:"itinerary"`
	Events       []Event       `json:"events"`
	Budgets      []Budget      `json:"budgets,omitempty"`
	Expenses     []Expense     `json:"expenses,omitempty"`
	PackingItems []PackingItem `json:"packingItems,omitempty"`
}

type Itinerary struct {
	Title       string   `json:"title"`
	TotalBudget *float64 `json:"totalBudget,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
}

type Event struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	EventDate   *string  `json:"eventDate,omitempty"`
	StartTime   *string  `json:"startTime,omitempty"`
	EndTime     *string  `json:"endTime,omitempty"`
	Icon        *string  `json:"icon,omitempty"`
	Link        *string  `json:"link,omitempty"`
}

type Budget struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    *string `json:"notes,omitempty"`
}

// Expense carries BudgetIndex, the position of its owning budget in the
// document's budgets section. Documents written before budgets were part of
// the format have no BudgetIndex; import then attaches such expenses to a
// generated fallback budget.
type Expense struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ExpenseDate *string  `json:"expenseDate,omitempty"`
	BudgetIndex *int     `json:"budgetIndex,omitempty"`
}

// PackingItem accepts both the "checked" and "isPacked" spellings of the
// packed flag; "checked" wins when both are present.
type PackingItem struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	Checked     *bool   `json:"checked,omitempty"`
	IsPacked    *bool   `json:"isPacked,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	IsEssential *bool   `json:"isEssential,omitempty"`
}
