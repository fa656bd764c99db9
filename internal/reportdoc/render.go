package reportdoc

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Medidas en mm sobre A4 horizontal.
const (
	margin       = 10.0
	footerZone   = 15.0
	cardsPerRow  = 4
	cardHeight   = 14.0
	headerHeight = 7.0
	columnHeight = 6.0
	rowHeight    = 6.0
	totalsHeight = 8.0
)

type rgb struct{ r, g, b int }

var (
	colorPrimary = rgb{39, 94, 62}
	colorBlock   = rgb{220, 234, 224}
	colorShade   = rgb{245, 245, 245}
	colorCard    = rgb{240, 246, 242}
	colorText    = rgb{33, 33, 33}
	colorMuted   = rgb{110, 110, 110}
)

// Render dibuja el documento como PDF en w.
func (d *Document) Render(w io.Writer) error {
	plans := d.Plan()

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(d.Title, true)
	pdf.SetAuthor(d.Company, true)
	pdf.SetCreator("ganaderia-dashboard", true)
	if d.ID != "" {
		pdf.SetSubject("report:"+d.ID, true)
	}
	if !d.GeneratedAt.IsZero() {
		pdf.SetCreationDate(d.GeneratedAt)
	}

	r := &renderer{doc: d, pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pageW, pageH := pdf.GetPageSize()
	r.width = pageW - 2*margin
	r.height = pageH

	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - margin)
		r.font("", 8, colorMuted)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d / %d", pdf.PageNo(), len(plans)), "", 0, "C", false, 0, "")
	})

	for _, p := range plans {
		r.page(p)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

type renderer struct {
	doc    *Document
	pdf    *fpdf.Fpdf
	tr     func(string) string
	width  float64
	height float64
}

func (r *renderer) font(style string, size float64, c rgb) {
	r.pdf.SetFont("Helvetica", style, size)
	r.pdf.SetTextColor(c.r, c.g, c.b)
}

func (r *renderer) fill(c rgb) {
	r.pdf.SetFillColor(c.r, c.g, c.b)
}

func (r *renderer) page(p PagePlan) {
	r.pdf.AddPage()

	used := 0.0
	if p.Letterhead {
		used = r.letterhead()
	}

	// Si el contenido no entra, se comprimen las filas de la página.
	scale := 1.0
	if need := r.linesHeight(p); need > 0 {
		avail := r.height - margin - footerZone - used
		if need > avail {
			scale = avail / need
		}
	}

	for _, ln := range p.Lines {
		if ln.ColumnHeader {
			r.columnHeader(columnHeight * scale)
		}
		switch ln.Item.Kind {
		case KindHeader:
			r.blockHeader(ln.Item, headerHeight*scale)
		case KindRow:
			r.row(ln.Item.Cells, ln.Shaded, rowHeight*scale)
		case KindEmpty:
			r.font("I", 9, colorMuted)
			r.pdf.CellFormat(r.width, rowHeight*scale, r.tr(r.doc.blockEmptyText()), "LRB", 1, "C", false, 0, "")
		}
	}

	if p.ShowEmptyText {
		r.columnHeader(columnHeight)
		r.font("I", 10, colorMuted)
		r.pdf.CellFormat(r.width, totalsHeight, r.tr(r.doc.emptyText()), "1", 1, "C", false, 0, "")
	}

	if p.ShowTotals && r.doc.TotalText != "" {
		r.pdf.Ln(2)
		r.font("B", 10, colorText)
		r.pdf.CellFormat(r.width, totalsHeight, r.tr(r.doc.TotalText), "T", 1, "R", false, 0, "")
	}
}

func (r *renderer) letterheadHeight() float64 {
	h := 8.0 + 5 + 2 + 7 + 3
	if r.doc.Address != "" {
		h += 5
	}
	if r.doc.Subtitle != "" {
		h += 5
	}
	rows := len(Paginate(r.doc.Cards, cardsPerRow))
	if len(r.doc.Cards) > 0 {
		h += float64(rows) * (cardHeight + 2)
	}
	return h
}

// letterhead dibuja membrete, título y tarjetas; devuelve el alto usado.
func (r *renderer) letterhead() float64 {
	d := r.doc
	pdf := r.pdf

	r.font("B", 16, colorPrimary)
	pdf.CellFormat(r.width, 8, r.tr(d.Company), "", 1, "L", false, 0, "")
	if d.Address != "" {
		r.font("", 9, colorMuted)
		pdf.CellFormat(r.width, 5, r.tr(d.Address), "", 1, "L", false, 0, "")
	}
	r.font("", 9, colorMuted)
	pdf.CellFormat(r.width, 5, r.tr("Generado: "+d.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	r.font("B", 14, colorText)
	pdf.CellFormat(r.width, 7, r.tr(d.Title), "", 1, "C", false, 0, "")
	if d.Subtitle != "" {
		r.font("", 10, colorMuted)
		pdf.CellFormat(r.width, 5, r.tr(d.Subtitle), "", 1, "C", false, 0, "")
	}

	if len(d.Cards) > 0 {
		cardW := r.width / cardsPerRow
		for _, row := range Paginate(d.Cards, cardsPerRow) {
			x, y := pdf.GetX(), pdf.GetY()
			for i, c := range row {
				cx := x + float64(i)*cardW
				r.fill(colorCard)
				pdf.Rect(cx+1, y+1, cardW-2, cardHeight, "F")
				pdf.SetXY(cx+1, y+2)
				r.font("", 8, colorMuted)
				pdf.CellFormat(cardW-2, 5, r.tr(c.Label), "", 2, "C", false, 0, "")
				r.font("B", 12, colorPrimary)
				pdf.CellFormat(cardW-2, 7, r.tr(c.Value), "", 0, "C", false, 0, "")
			}
			pdf.SetXY(x, y+cardHeight+2)
		}
	}
	pdf.Ln(3)

	return r.letterheadHeight()
}

func (r *renderer) linesHeight(p PagePlan) float64 {
	h := 0.0
	for _, ln := range p.Lines {
		if ln.ColumnHeader {
			h += columnHeight
		}
		if ln.Item.Kind == KindHeader {
			h += headerHeight
		} else {
			h += rowHeight
		}
	}
	if p.ShowTotals {
		h += totalsHeight + 2
	}
	return h
}

func (r *renderer) columnHeader(h float64) {
	r.font("B", 9, rgb{255, 255, 255})
	r.fill(colorPrimary)
	for _, c := range r.doc.Columns {
		r.pdf.CellFormat(r.width*c.Width/100, h, r.tr(c.Title), "1", 0, string(AlignCenter), true, 0, "")
	}
	r.pdf.Ln(h)
}

func (r *renderer) blockHeader(it Item, h float64) {
	if it.Block < 0 || it.Block >= len(r.doc.Blocks) {
		return
	}
	b := r.doc.Blocks[it.Block]

	r.fill(colorBlock)
	r.font("B", 10, colorPrimary)
	titleW := r.width * 0.5
	r.pdf.CellFormat(titleW, h, r.tr(b.Title), "LTB", 0, "L", true, 0, "")
	r.font("", 9, colorText)
	r.pdf.CellFormat(r.width*0.3, h, r.tr(b.Subtitle), "TB", 0, "L", true, 0, "")
	r.font("B", 9, colorPrimary)
	r.pdf.CellFormat(r.width-titleW-r.width*0.3, h, r.tr(b.Badge), "RTB", 1, "R", true, 0, "")
}

func (r *renderer) row(cells []string, shaded bool, h float64) {
	r.font("", 9, colorText)
	r.fill(colorShade)
	for i, c := range r.doc.Columns {
		txt := ""
		if i < len(cells) {
			txt = cells[i]
		}
		align := c.Align
		if align == "" {
			align = AlignLeft
		}
		r.pdf.CellFormat(r.width*c.Width/100, h, r.tr(txt), "1", 0, string(align), shaded, 0, "")
	}
	r.pdf.Ln(h)
}
