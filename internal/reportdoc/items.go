package reportdoc

type ItemKind int

const (
	// KindHeader abre un bloque (ej. una familia).
	KindHeader ItemKind = iota
	// KindRow es una fila de la tabla.
	KindRow
	// KindEmpty marca un bloque sin filas.
	KindEmpty
)

func (k ItemKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindRow:
		return "row"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Block es un grupo de filas que se imprime bajo un mismo encabezado.
type Block struct {
	Key      string
	Title    string
	Subtitle string
	Badge    string
	Rows     [][]string
}

// Item es la unidad que se pagina.
// Block referencia al bloque de origen (-1 en reportes planos).
type Item struct {
	Kind  ItemKind
	Block int
	Cells []string
}

// Rows convierte filas sueltas en ítems de un reporte plano.
func Rows(rows [][]string) []Item {
	out := make([]Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, Item{Kind: KindRow, Block: -1, Cells: r})
	}
	return out
}

// Flatten emite un header por bloque seguido de sus filas,
// o de exactamente un KindEmpty si el bloque no tiene filas.
func Flatten(blocks []Block) []Item {
	out := make([]Item, 0, len(blocks)*2)
	for i, b := range blocks {
		out = append(out, Item{Kind: KindHeader, Block: i})
		if len(b.Rows) == 0 {
			out = append(out, Item{Kind: KindEmpty, Block: i})
			continue
		}
		for _, r := range b.Rows {
			out = append(out, Item{Kind: KindRow, Block: i, Cells: r})
		}
	}
	return out
}

// NeedsColumnHeader indica si antes de page[idx] va el encabezado de columnas:
// solo filas, y solo si son la primera de la página o siguen a un header.
func NeedsColumnHeader(page []Item, idx int) bool {
	if idx < 0 || idx >= len(page) || page[idx].Kind != KindRow {
		return false
	}
	if idx == 0 {
		return true
	}
	return page[idx-1].Kind == KindHeader
}
