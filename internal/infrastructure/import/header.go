package csvimport

import (
	"fmt"
	"strings"
)

// Logical column names used in error messages
const (
	ColumnDate     = "Date"
	ColumnItem     = "Item"
	ColumnSize     = "Size"
	ColumnQuantity = "Quantity"
	ColumnUnitCost = "Unit Cost"
	ColumnNotes    = "Notes"
)

// Columns holds resolved column positions for a receipt file. An index of
// -1 means the column is absent; Notes is the only optional column.
type Columns struct {
	Date     int
	Item     int
	Size     int
	Quantity int
	Cost     int
	Notes    int
}

// MinRowLen returns the minimum field count a data row needs to cover all
// required columns
func (c Columns) MinRowLen() int {
	max := c.Date
	for _, idx := range []int{c.Item, c.Size, c.Quantity, c.Cost} {
		if idx > max {
			max = idx
		}
	}
	return max + 1
}

// ResolveColumns locates the required receipt columns in a header row.
// Matching is case-insensitive on trimmed header names. The item column
// additionally falls back to a substring match: any header containing both
// the category word (e.g. "ppe") and "item", so "PPE Item", "Item (PPE)"
// and similar variants all resolve. Missing required columns make the
// whole import fail before any data row is processed.
func ResolveColumns(headers []string, category string) (Columns, error) {
	cols := Columns{Date: -1, Item: -1, Size: -1, Quantity: -1, Cost: -1, Notes: -1}

	find := func(names ...string) int {
		for i, h := range headers {
			h = strings.ToLower(strings.TrimSpace(h))
			for _, name := range names {
				if h == name {
					return i
				}
			}
		}
		return -1
	}

	cols.Date = find("date")
	cols.Size = find("size")
	cols.Quantity = find("quantity", "qty")
	cols.Cost = find("unit cost", "unit_cost", "cost")
	cols.Notes = find("notes", "note")

	// Item column: exact "<category> item" or bare "item" first, then the
	// substring heuristic.
	category = strings.ToLower(strings.TrimSpace(category))
	cols.Item = find(category+" item", "item", "item name")
	if cols.Item == -1 {
		for i, h := range headers {
			h = strings.ToLower(h)
			if strings.Contains(h, category) && strings.Contains(h, "item") {
				cols.Item = i
				break
			}
		}
	}

	var missing []string
	if cols.Date == -1 {
		missing = append(missing, ColumnDate)
	}
	if cols.Item == -1 {
		missing = append(missing, ColumnItem)
	}
	if cols.Size == -1 {
		missing = append(missing, ColumnSize)
	}
	if cols.Quantity == -1 {
		missing = append(missing, ColumnQuantity)
	}
	if cols.Cost == -1 {
		missing = append(missing, ColumnUnitCost)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return cols, nil
}
