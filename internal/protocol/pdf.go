// Package protocol renders the formal PDF record of a vote: tallies,
// participants and the decision, laid out like the board's paper protocols.
package protocol

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Fixed strings of the protocol form.
const (
	organizationName = "ПАО «ТНС энерго Ростов-на-Дону»"
	summaryLocation  = "Москва"
	quorumStatement  = "Кворум для подведения итогов заочного голосования Совета директоров с данной повесткой дня имеется."

	fontFamily = "DejaVuSans"
)

// Document holds everything that appears on a rendered protocol.
type Document struct {
	Number           uint64
	Deadline         time.Time
	MeetingTypeLabel string
	Participants     []string
	CounterName      string
	Title            string
	Description      string
	YesCount         int
	NoCount          int
	AbstainCount     int
	Decision         string
}

// Renderer produces protocol PDFs. The font files must be UTF-8 TTFs with
// Cyrillic coverage.
type Renderer struct {
	FontPath     string
	BoldFontPath string
}

// NewRenderer creates a Renderer using the given font files.
func NewRenderer(fontPath, boldFontPath string) *Renderer {
	return &Renderer{FontPath: fontPath, BoldFontPath: boldFontPath}
}

// Render lays out the protocol on a single Letter page.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddUTF8Font(fontFamily, "", r.FontPath)
	pdf.AddUTF8Font(fontFamily, "B", r.BoldFontPath)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "", 14)
	pdf.Text(50, 42, fmt.Sprintf("ПРОТОКОЛ № %d", doc.Number))
	pdf.Text(50, 62, "заочного голосования Совета директоров")
	pdf.Text(50, 82, organizationName)

	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(50, 112, fmt.Sprintf("Дата и время окончания приема документов: %s по московскому времени.",
		formatDateTime(doc.Deadline)))
	pdf.Text(50, 132, fmt.Sprintf("Место подведения итогов заочного голосования: %s", summaryLocation))
	pdf.Text(50, 152, fmt.Sprintf("Форма проведения: %s.", doc.MeetingTypeLabel))
	pdf.Text(50, 172, fmt.Sprintf("Дата составления протокола: %s.", formatDate(doc.Deadline)))

	pdf.Text(50, 192, fmt.Sprintf("Лица, принявшие участие в заочном голосовании: %s.",
		strings.Join(doc.Participants, ", ")))
	pdf.Text(50, 212, fmt.Sprintf("Лицо, проводившее подсчет голосов: %s.", doc.CounterName))

	// Quorum is asserted, not computed; the paper form always carries it.
	pdf.Text(50, 232, quorumStatement)

	pdf.SetFont(fontFamily, "B", 12)
	pdf.Text(50, 262, "ПОВЕСТКА ДНЯ:")
	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(50, 282, "ВОПРОС № 1:")
	pdf.Text(50, 302, "Вопрос повестки дня, поставленный на голосование:")
	pdf.Text(50, 322, doc.Title)
	pdf.Text(50, 342, "Проект решения, поставленный на голосование:")
	pdf.Text(50, 362, doc.Description)

	pdf.Text(50, 382, "Результаты (итоги) голосования:")
	pdf.Text(50, 402, fmt.Sprintf("ЗА – %d голосов.", doc.YesCount))
	pdf.Text(50, 422, fmt.Sprintf("ПРОТИВ – %d голосов.", doc.NoCount))
	pdf.Text(50, 442, fmt.Sprintf("ВОЗДЕРЖАЛИСЬ – %d голосов.", doc.AbstainCount))

	pdf.Text(50, 462, doc.Decision)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render protocol: %w", err)
	}
	return buf.Bytes(), nil
}

var russianMonths = [...]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// formatDateTime renders "02 января 2006 года, 15:04".
func formatDateTime(t time.Time) string {
	return fmt.Sprintf("%02d %s %d года, %02d:%02d",
		t.Day(), russianMonths[t.Month()], t.Year(), t.Hour(), t.Minute())
}

// formatDate renders "02 января 2006 года".
func formatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d года", t.Day(), russianMonths[t.Month()], t.Year())
}
