package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"creatoros/internal/domain"

	"github.com/gosimple/slug"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	pdfCharsPerLine = 95
	pdfLineHeight   = 5.0
	pdfChunkChars   = 1500
)

// PDFService renders stored media kits as printable documents.
type PDFService struct {
	logger domain.Logger
}

func NewPDFService(logger domain.Logger) *PDFService {
	return &PDFService{logger: logger}
}

// FileName is the download name for the record's PDF.
func (s *PDFService) FileName(record *domain.MediaKitRecord) string {
	name := slug.Make(record.CreatorName)
	if name == "" {
		return "media-kit.pdf"
	}
	return name + "-media-kit.pdf"
}

func (s *PDFService) RenderMediaKit(record *domain.MediaKitRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, record.CreatorName, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(12,
		col.New(8).Add(
			text.New(record.Niche+" Creator", props.Text{Size: 11}),
			text.New("Created "+record.CreatedAt.Format("January 2, 2006"), props.Text{Top: 5, Size: 9}),
		),
		text.NewCol(4, "Style: "+record.KitStyle, props.Text{Size: 9, Align: align.Right}),
	)

	if len(record.Platforms) > 0 {
		m.AddRow(10,
			text.NewCol(4, "Platform", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(4, "Handle", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(4, "Followers", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		)
		for _, p := range record.Platforms {
			m.AddRow(7,
				text.NewCol(4, p.Name, props.Text{Size: 9}),
				text.NewCol(4, p.Handle, props.Text{Size: 9}),
				text.NewCol(4, p.Followers, props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	m.AddRow(10)

	for _, paragraph := range paragraphs(StripMarkup(record.GeneratedContent)) {
		m.AddRow(rowHeight(paragraph),
			text.NewCol(12, paragraph, props.Text{Size: 10}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate media kit PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// StripMarkup turns generated HTML into plain text. Plain text input is
// returned normalized.
func StripMarkup(content string) string {
	return normalizeText(htmlToText(content))
}

// paragraphs splits text on blank lines and cuts long paragraphs so no row
// outgrows a page.
func paragraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(content, "\n\n") {
		p = strings.TrimSpace(p)
		for len(p) > pdfChunkChars {
			cut := strings.LastIndex(p[:pdfChunkChars], " ")
			if cut <= 0 {
				cut = pdfChunkChars
				for cut > 0 && !utf8.RuneStart(p[cut]) {
					cut--
				}
			}
			out = append(out, strings.TrimSpace(p[:cut]))
			p = strings.TrimSpace(p[cut:])
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func rowHeight(paragraph string) float64 {
	lines := 0
	for _, line := range strings.Split(paragraph, "\n") {
		lines += len(line)/pdfCharsPerLine + 1
	}
	return float64(lines)*pdfLineHeight + 2
}
