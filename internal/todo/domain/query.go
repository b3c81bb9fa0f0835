package domain

type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortUpdatedAt SortField = "updatedAt"
	SortDueDate   SortField = "dueDate"
	SortTitle     SortField = "title"
	SortPriority  SortField = "priority"
	SortStatus    SortField = "status"
)

// ParseSortField returns the field for s, falling back to SortCreatedAt for
// anything not in the whitelist.
func ParseSortField(s string) SortField {
	switch f := SortField(s); f {
	case SortCreatedAt, SortUpdatedAt, SortDueDate, SortTitle, SortPriority, SortStatus:
		return f
	}
	return SortCreatedAt
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc"; everything else is descending.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// TodoFilter narrows a list to one owner and optional exact-match fields.
type TodoFilter struct {
	OwnerID  string
	Status   *Status
	Priority *Priority
}

// TodoQuery is a fully resolved list request. Limit and Offset are already
// clamped by the caller.
type TodoQuery struct {
	Filter    TodoFilter
	SortBy    SortField
	SortOrder SortOrder
	Limit     int
	Offset    int
}

type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// NewPagination computes page metadata. TotalPages is zero when there are no
// items.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

type TodoPage struct {
	Items      []Todo
	Pagination Pagination
}
