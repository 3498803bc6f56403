// Package pdf genera los reportes descargables del dashboard con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte    │  Fecha + generado por       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por campo, una fila por registro         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: etiqueta / valor                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"unicode"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/CentralKitchen-api/internal/application/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportRenderer = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author se graba en los metadatos.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(_ context.Context, r analytics.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fold(r.Title), true).
		WithAuthor(fold(g.author), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	widths := columnWidths(r)
	m.AddRows(tableHeaderRow(r.Columns, widths))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	if len(r.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin registros", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}
	for _, cells := range r.Rows {
		m.AddRows(tableRow(cells, widths))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, s := range r.Summary {
		m.AddRows(summaryRow(s))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + autor (der).
func headerRow(r analytics.Report) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(fold(r.Title), props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Central Kitchen", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(r.GeneratedAt.Format("2006-01-02 15:04"), props.Text{Size: 9, Align: align.Right, Top: 2}),
			text.New("Generado por: "+fold(nonEmpty(r.GeneratedBy, "-")), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(cols []string, widths []int) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		cells = append(cells, col.New(widths[i]).Add(text.New(fold(c), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})))
	}
	return row.New(8).Add(cells...)
}

func tableRow(cells []string, widths []int) core.Row {
	out := make([]core.Col, 0, len(widths))
	for i := range widths {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		out = append(out, col.New(widths[i]).Add(text.New(fold(v), props.Text{Size: 8, Top: 1, Left: 1})))
	}
	return row.New(6).Add(out...)
}

func summaryRow(s analytics.SummaryLine) core.Row {
	return row.New(6).Add(
		col.New(6),
		col.New(4).Add(text.New(fold(s.Label)+":", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1})),
		col.New(2).Add(text.New(fold(s.Value), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths usa r.Widths si suma 12 con una entrada por columna; si no, reparte.
func columnWidths(r analytics.Report) []int {
	if len(r.Widths) == len(r.Columns) {
		sum := 0
		for _, w := range r.Widths {
			sum += w
		}
		if sum == 12 {
			return r.Widths
		}
	}
	n := len(r.Columns)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = 12 / n
	}
	out[n-1] += 12 % n
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// fold quita las marcas diacríticas: las fuentes core de helvetica no las dibujan.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
