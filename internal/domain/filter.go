package domain

// TermFilter contains filtering/pagination parameters for term listings.
type TermFilter struct {
	// Search performs a case-insensitive substring match across the English,
	// Arabic and definition columns, combined with OR.
	Search *string
	Status *Status
	Limit  int
	Offset int
}
