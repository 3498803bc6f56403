package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
)

// Report contenido tabular de un reporte, independiente del formato de salida.
type Report struct {
	Kind        string
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	Columns     []string
	Widths      []int // columnas de grilla (suman 12)
	Rows        [][]string
	Summary     []SummaryLine
}

// SummaryLine par etiqueta/valor del bloque de totales.
type SummaryLine struct {
	Label string
	Value string
}

// ReportRenderer genera el documento final (PDF) a partir del reporte.
type ReportRenderer interface {
	Render(ctx context.Context, r Report) ([]byte, error)
}

// ActivityFeed últimos eventos publicados, más recientes primero.
type ActivityFeed interface {
	Recent(limit int) []ports.Event
}
