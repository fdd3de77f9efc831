package web

// gridWidth is the number of cards per row on grid pages.
const gridWidth = 3

// group partitions flat into rows of exactly width slots, padding the last
// row with zero values so every row renders at uniform width (templates
// treat the zero slot as an empty card). An empty input yields no rows.
// The whole list is grouped in memory; there is no data pagination.
func group[T any](flat []T, width int) [][]T {
	if len(flat) == 0 || width <= 0 {
		return nil
	}

	rows := make([][]T, 0, (len(flat)+width-1)/width)
	for start := 0; start < len(flat); start += width {
		row := make([]T, width)
		copy(row, flat[start:min(start+width, len(flat))])
		rows = append(rows, row)
	}
	return rows
}
