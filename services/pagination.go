package services

import (
	"gorm.io/gorm"
)

// Page is the paginated list payload: content plus paging metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// paginate runs a count + offset/limit query over query, ordered by sortBy.
// sortBy must already be validated against the model's sortable columns.
func paginate[T any](query *gorm.DB, page, size int, sortBy string) (Page[T], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	var content []T
	if err := query.Session(&gorm.Session{}).
		Order(sortBy).
		Offset(page * size).
		Limit(size).
		Find(&content).Error; err != nil {
		return Page[T]{}, err
	}
	if content == nil {
		content = []T{}
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// sortColumn maps an exposed sortBy parameter onto a real column, falling
// back to id so arbitrary input never reaches the ORDER BY clause.
func sortColumn(allowed map[string]string, sortBy string) string {
	if col, ok := allowed[sortBy]; ok {
		return col
	}
	return "id"
}
