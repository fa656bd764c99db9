package reportdoc

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultEmptyText      = "No hay registros para mostrar"
	DefaultBlockEmptyText = "Sin animales registrados"
)

// Tipos de reporte, usados en el nombre del archivo.
const (
	KindAnimals  = "Animales"
	KindFamilies = "Familias"
)

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Column describe una columna de la tabla; Width es porcentaje del ancho útil.
type Column struct {
	Title string
	Width float64
	Align Align
}

// Card es un recuadro de resumen de la primera página.
type Card struct {
	Label string
	Value string
}

// Document es un reporte listo para paginar e imprimir.
type Document struct {
	ID          string
	Company     string
	Address     string
	Title       string
	Subtitle    string
	GeneratedAt time.Time

	Cards   []Card
	Columns []Column

	// Blocks solo se usa en reportes agrupados; Items referencia sus índices.
	Blocks  []Block
	Items   []Item
	PerPage int

	EmptyText      string
	BlockEmptyText string

	// Records es la cantidad de registros reales (sin headers ni marcas).
	Records   int
	TotalText string
}

// Line es un ítem ubicado en su página.
type Line struct {
	Item         Item
	ColumnHeader bool
	Shaded       bool
}

type PagePlan struct {
	Number int
	Of     int

	Letterhead    bool
	Lines         []Line
	ShowEmptyText bool
	ShowTotals    bool
}

// Plan decide qué va en cada página sin dibujar nada.
func (d *Document) Plan() []PagePlan {
	pages := Paginate(d.Items, d.PerPage)
	plans := make([]PagePlan, 0, len(pages))

	for i, page := range pages {
		p := PagePlan{
			Number:        i + 1,
			Of:            len(pages),
			Letterhead:    i == 0,
			ShowEmptyText: i == 0 && len(d.Items) == 0,
			ShowTotals:    i == len(pages)-1 && d.Records > 0,
		}

		p.Lines = make([]Line, 0, len(page))
		for idx, it := range page {
			p.Lines = append(p.Lines, Line{
				Item:         it,
				ColumnHeader: NeedsColumnHeader(page, idx),
				Shaded:       idx%2 == 1,
			})
		}
		plans = append(plans, p)
	}
	return plans
}

func (d *Document) emptyText() string {
	if d.EmptyText != "" {
		return d.EmptyText
	}
	return DefaultEmptyText
}

func (d *Document) blockEmptyText() string {
	if d.BlockEmptyText != "" {
		return d.BlockEmptyText
	}
	return DefaultBlockEmptyText
}

// Filename arma el nombre de descarga: Reporte_<tipo>_<filtro>_<YYYY-MM-DD>.pdf
// La fecha va en la zona de t, la misma que muestra el membrete.
func Filename(kind, filter string, t time.Time) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = "Todos"
	}
	filter = strings.NewReplacer("/", "-", "\\", "-", "\"", "").Replace(filter)
	return fmt.Sprintf("Reporte_%s_%s_%s.pdf", kind, filter, t.Format("2006-01-02"))
}
