package reportdoc

// Ítems por página de cada reporte.
const (
	FamilyItemsPerPage = 20
	AnimalItemsPerPage = 22
)

// Paginate parte items en páginas de perPage elementos, respetando el orden.
// Una entrada vacía produce exactamente una página vacía.
// Las páginas comparten el arreglo de items; no se deben extender.
func Paginate[T any](items []T, perPage int) [][]T {
	if perPage <= 0 {
		perPage = 1
	}
	if len(items) == 0 {
		return [][]T{{}}
	}

	pages := make([][]T, 0, (len(items)+perPage-1)/perPage)
	for start := 0; start < len(items); start += perPage {
		end := min(start+perPage, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages
}
