package handlers

const (
	// Composition history paging
	defaultPageSize = 20
	maxPageSize     = 100
)
