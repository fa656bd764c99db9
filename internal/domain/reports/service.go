package reports

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ganaderia-dashboard/internal/reportdoc"

	"github.com/google/uuid"
)

// Company son los datos del membrete.
type Company struct {
	Name    string
	Address string
}

type Service struct {
	repo    Repository
	company Company
	now     func() time.Time
}

func NewService(repo Repository, company Company) *Service {
	return &Service{repo: repo, company: company, now: time.Now}
}

// WithClock reemplaza el reloj usado para la fecha de generación.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// NormalizeFilter devuelve "" solo para el literal "Todos".
func NormalizeFilter(f string) string {
	f = strings.TrimSpace(f)
	if f == AllFilter {
		return ""
	}
	return f
}

func filterLabel(f string) string {
	if f == "" {
		return AllFilter
	}
	return f
}

func (s *Service) AnimalReport(ctx context.Context, category string) (AnimalReport, error) {
	category = NormalizeFilter(category)

	rows, err := s.repo.AnimalRows(ctx, category)
	if err != nil {
		return AnimalReport{}, err
	}
	counts, err := s.repo.CategoryCounts(ctx)
	if err != nil {
		return AnimalReport{}, err
	}

	if rows == nil {
		rows = []AnimalRow{}
	}
	if counts == nil {
		counts = []CategoryCount{}
	}
	return AnimalReport{Animals: rows, Counts: counts, Total: len(rows)}, nil
}

func (s *Service) FamilyReport(ctx context.Context, family string) (FamilyReport, error) {
	family = NormalizeFilter(family)

	rows, err := s.repo.FamilyAnimalRows(ctx, family)
	if err != nil {
		return FamilyReport{}, err
	}
	counts, err := s.repo.FamilyCounts(ctx)
	if err != nil {
		return FamilyReport{}, err
	}

	groups := FoldFamilyRows(rows)
	total := 0
	for _, g := range groups {
		total += len(g.Animals)
	}

	if counts == nil {
		counts = []FamilyCount{}
	}
	return FamilyReport{Families: groups, Counts: counts, TotalAnimals: total}, nil
}

// FoldFamilyRows agrupa las filas por código de familia en orden de aparición.
// Las filas sin animal solo aportan la familia.
func FoldFamilyRows(rows []FamilyAnimalRow) []FamilyGroup {
	out := []FamilyGroup{}
	index := map[int64]int{}

	for _, r := range rows {
		i, ok := index[r.FamilyCode]
		if !ok {
			i = len(out)
			index[r.FamilyCode] = i
			out = append(out, FamilyGroup{
				FamilyCode: r.FamilyCode,
				FamilyName: r.FamilyName,
				Group:      r.Group,
				Animals:    []AnimalRow{},
			})
		}
		if r.Animal != nil && r.Animal.Code != "" {
			out[i].Animals = append(out[i].Animals, *r.Animal)
		}
	}
	return out
}

var animalColumns = []reportdoc.Column{
	{Title: "Código", Width: 10, Align: reportdoc.AlignCenter},
	{Title: "Nombre", Width: 18, Align: reportdoc.AlignCenter},
	{Title: "Arete", Width: 12, Align: reportdoc.AlignCenter},
	{Title: "Sexo", Width: 8, Align: reportdoc.AlignCenter},
	{Title: "Fec. Nacimiento", Width: 14, Align: reportdoc.AlignCenter},
	{Title: "Peso (kg)", Width: 9, Align: reportdoc.AlignCenter},
	{Title: "Precio", Width: 11, Align: reportdoc.AlignCenter},
	{Title: "Status", Width: 8, Align: reportdoc.AlignCenter},
	{Title: "Categoría", Width: 10, Align: reportdoc.AlignCenter},
}

var familyColumns = []reportdoc.Column{
	{Title: "Código", Width: 12, Align: reportdoc.AlignCenter},
	{Title: "Nombre", Width: 22, Align: reportdoc.AlignLeft},
	{Title: "Arete", Width: 13, Align: reportdoc.AlignCenter},
	{Title: "Sexo", Width: 9, Align: reportdoc.AlignCenter},
	{Title: "Fec. Nacim.", Width: 14, Align: reportdoc.AlignCenter},
	{Title: "Peso (kg)", Width: 10, Align: reportdoc.AlignCenter},
	{Title: "Precio", Width: 11, Align: reportdoc.AlignCenter},
	{Title: "Status", Width: 9, Align: reportdoc.AlignCenter},
}

func animalCells(a AnimalRow) []string {
	return []string{
		a.Code,
		a.Name,
		reportdoc.EarTag(a.EarTag),
		a.Sex,
		reportdoc.Date(a.BirthDate),
		reportdoc.Amount(a.Weight),
		reportdoc.Amount(a.Price),
		a.Status.Label(),
	}
}

func categoryName(c *string) string {
	if c == nil || *c == "" {
		return "Sin categoría"
	}
	return *c
}

// AnimalDocument arma el PDF de animales por categoría.
func (s *Service) AnimalDocument(ctx context.Context, category string) (*reportdoc.Document, error) {
	rep, err := s.AnimalReport(ctx, category)
	if err != nil {
		return nil, err
	}
	label := filterLabel(NormalizeFilter(category))

	rows := make([][]string, 0, len(rep.Animals))
	for _, a := range rep.Animals {
		rows = append(rows, append(animalCells(a), categoryName(a.Category)))
	}

	cards := make([]reportdoc.Card, 0, len(rep.Counts))
	for _, c := range rep.Counts {
		cards = append(cards, reportdoc.Card{Label: categoryName(c.Category), Value: strconv.FormatInt(c.Total, 10)})
	}

	return &reportdoc.Document{
		ID:          uuid.NewString(),
		Company:     s.company.Name,
		Address:     s.company.Address,
		Title:       "Reporte de Animales",
		Subtitle:    fmt.Sprintf("Categoría: %s  |  Total: %d animales", label, rep.Total),
		GeneratedAt: s.now(),
		Cards:       cards,
		Columns:     animalColumns,
		Items:       reportdoc.Rows(rows),
		PerPage:     reportdoc.AnimalItemsPerPage,
		EmptyText:   "No se encontraron animales para la categoría seleccionada.",
		Records:     rep.Total,
		TotalText:   fmt.Sprintf("Total de animales: %d", rep.Total),
	}, nil
}

// FamilyDocument arma el PDF de familias. Las tarjetas de resumen
// muestran solo la familia elegida (todas con "Todos").
func (s *Service) FamilyDocument(ctx context.Context, family string) (*reportdoc.Document, error) {
	rep, err := s.FamilyReport(ctx, family)
	if err != nil {
		return nil, err
	}
	filter := NormalizeFilter(family)

	blocks := make([]reportdoc.Block, 0, len(rep.Families))
	for _, f := range rep.Families {
		rows := make([][]string, 0, len(f.Animals))
		for _, a := range f.Animals {
			rows = append(rows, animalCells(a))
		}
		blocks = append(blocks, reportdoc.Block{
			Key:      strconv.FormatInt(f.FamilyCode, 10),
			Title:    f.FamilyName,
			Subtitle: "Grupo: " + categoryName(f.Group),
			Badge:    fmt.Sprintf("Animales: %d", len(f.Animals)),
			Rows:     rows,
		})
	}

	cards := []reportdoc.Card{}
	for _, c := range rep.Counts {
		if filter != "" && c.FamilyName != filter {
			continue
		}
		cards = append(cards, reportdoc.Card{Label: c.FamilyName, Value: strconv.FormatInt(c.Total, 10)})
	}

	return &reportdoc.Document{
		ID:             uuid.NewString(),
		Company:        s.company.Name,
		Address:        s.company.Address,
		Title:          "Reporte de Familias de Animales",
		Subtitle:       fmt.Sprintf("Familia: %s  |  Total animales: %d", filterLabel(filter), rep.TotalAnimals),
		GeneratedAt:    s.now(),
		Cards:          cards,
		Columns:        familyColumns,
		Blocks:         blocks,
		Items:          reportdoc.Flatten(blocks),
		PerPage:        reportdoc.FamilyItemsPerPage,
		EmptyText:      "No se encontraron familias.",
		BlockEmptyText: "Esta familia no tiene animales registrados.",
		Records:        rep.TotalAnimals,
		TotalText:      fmt.Sprintf("Total de animales: %d", rep.TotalAnimals),
	}, nil
}

// Filename usa la fecha del reloj del servicio.
func (s *Service) Filename(kind, filter string) string {
	return reportdoc.Filename(kind, filterLabel(NormalizeFilter(filter)), s.now())
}
