package report

// Request is the input for creating or updating a sales report.
type Request struct {
	Period    string  `json:"period" form:"period" binding:"required,len=7"`
	Revenue   float64 `json:"revenue" form:"revenue" binding:"min=0"`
	UnitsSold int     `json:"units_sold" form:"units_sold" binding:"min=0"`
	Notes     string  `json:"notes" form:"notes" binding:"max=1000"`
}

// BulkRequest upserts a batch of reports in one transaction.
type BulkRequest struct {
	Reports []Request `json:"reports" form:"reports" binding:"required,min=1,max=24,dive"`
}
