package requests

// Pagination carries the listing parameters shared by every paginated route.
type Pagination struct {
	Page      int64  `query:"page" validate:"min=1"`
	Limit     int64  `query:"limit" validate:"min=1"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order" validate:"oneof=asc desc"`
}

// Skip is the number of documents in front of the requested page.
func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

type LocationScope struct {
	Location string `query:"location"`
}
