package persistence

import (
	"fmt"
	"strings"

	"github.com/siteops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies pagination and ordering to a query. OrderBy is checked
// against the allowed column set so request input never reaches raw SQL.
func applyFilter(query *gorm.DB, filter shared.Filter, allowedColumns map[string]bool) *gorm.DB {
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	column := strings.ToLower(strings.TrimSpace(filter.OrderBy))
	if column == "" || !allowedColumns[column] {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		direction = "ASC"
	}

	return query.Order(fmt.Sprintf("%s %s", column, direction))
}
