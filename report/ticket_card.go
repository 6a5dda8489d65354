package report

import (
	"bytes"
	"fmt"
	"time"

	"lotofacil/domain/entities"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

// CardStyle defines the geometry and palette of a ticket card
type CardStyle struct {
	CellSize   int
	Padding    int
	HeaderSize int
	FooterSize int

	Background [3]float64
	CellIdle   [3]float64 // universe number not on the ticket
	CellPicked [3]float64 // on the ticket, not drawn
	CellHit    [3]float64 // on the ticket and drawn
	CellMissed [3]float64 // drawn but not on the ticket
}

// TicketCardGenerator renders a ticket as a 5×5 PNG card
type TicketCardGenerator struct {
	style CardStyle
}

// NewTicketCardGenerator creates a generator with the default style
func NewTicketCardGenerator() *TicketCardGenerator {
	return &TicketCardGenerator{
		style: CardStyle{
			CellSize:   56,
			Padding:    16,
			HeaderSize: 40,
			FooterSize: 34,
			Background: [3]float64{0.05, 0.07, 0.12},
			CellIdle:   [3]float64{0.18, 0.2, 0.26},
			CellPicked: [3]float64{0.25, 0.4, 0.75},
			CellHit:    [3]float64{0.2, 0.75, 0.35},
			CellMissed: [3]float64{0.55, 0.25, 0.25},
		},
	}
}

// Size returns the pixel dimensions of a rendered card
func (g *TicketCardGenerator) Size() (width, height int) {
	grid := entities.GridSide * g.style.CellSize
	return grid + 2*g.style.Padding, grid + 2*g.style.Padding + g.style.HeaderSize + g.style.FooterSize
}

// Render draws the ticket. When draw is non-nil the cells are colored by hit or miss and the footer
// shows the hit count.
func (g *TicketCardGenerator) Render(title string, numbers entities.NumberSet, draw *entities.DrawResult) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("numbers", len(numbers)).
			Debug("Ticket card generation completed")
	}()

	if !numbers.InRange(entities.UniverseSize) {
		return nil, fmt.Errorf("%w: numbers must lie within 1..%d", entities.ErrInvalidTicket, entities.UniverseSize)
	}

	width, height := g.Size()
	dc := gg.NewContext(width, height)
	dc.SetRGB(g.style.Background[0], g.style.Background[1], g.style.Background[2])
	dc.Clear()

	titleFace, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	cellFace, err := loadFont(gomono.TTF, 18)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(title, float64(width)/2, float64(g.style.Padding+g.style.HeaderSize/2), 0.5, 0.5)

	var drawn entities.NumberSet
	if draw != nil {
		drawn = draw.Numbers
	}

	dc.SetFontFace(cellFace)
	top := g.style.Padding + g.style.HeaderSize
	for n := 1; n <= entities.UniverseSize; n++ {
		row, col := entities.GridPosition(n)
		x := float64(g.style.Padding + col*g.style.CellSize)
		y := float64(top + row*g.style.CellSize)

		fill := g.cellColor(numbers.Contains(n), drawn.Contains(n))
		dc.SetRGB(fill[0], fill[1], fill[2])
		dc.DrawRoundedRectangle(x+3, y+3, float64(g.style.CellSize-6), float64(g.style.CellSize-6), 8)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%02d", n), x+float64(g.style.CellSize)/2, y+float64(g.style.CellSize)/2, 0.5, 0.35)
	}

	footer := fmt.Sprintf("%d numbers", len(numbers))
	if draw != nil {
		hits := numbers.IntersectCount(draw.Numbers)
		footer = fmt.Sprintf("Contest %d: %d hits", draw.ContestID, hits)
	}
	dc.SetFontFace(titleFace)
	dc.SetRGB(0.85, 0.85, 0.9)
	dc.DrawStringAnchored(footer, float64(width)/2, float64(height-g.style.Padding-g.style.FooterSize/2), 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *TicketCardGenerator) cellColor(picked, drawn bool) [3]float64 {
	switch {
	case picked && drawn:
		return g.style.CellHit
	case picked:
		return g.style.CellPicked
	case drawn:
		return g.style.CellMissed
	default:
		return g.style.CellIdle
	}
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
