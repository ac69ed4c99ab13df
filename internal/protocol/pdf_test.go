package protocol

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, time.January, 2, 15, 4, 0, 0, time.UTC), "02 января 2026 года, 15:04"},
		{time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC), "31 августа 2026 года, 09:00"},
		{time.Date(2025, time.December, 5, 0, 5, 0, 0, time.UTC), "05 декабря 2025 года, 00:05"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, formatDateTime(tt.in))
	}
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "07 мая 2026 года",
		formatDate(time.Date(2026, time.May, 7, 23, 59, 0, 0, time.UTC)))
}

func TestRender(t *testing.T) {
	const font = "testdata/DejaVuSans.ttf"
	const bold = "testdata/DejaVuSans-Bold.ttf"
	if _, err := os.Stat(font); err != nil {
		t.Skip("font files not available")
	}

	r := NewRenderer(font, bold)
	out, err := r.Render(Document{
		Number:           12,
		Deadline:         time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC),
		MeetingTypeLabel: "Заочное голосование",
		Participants:     []string{"ivanov", "petrov", "sidorov"},
		CounterName:      "admin",
		Title:            "Об утверждении бюджета",
		Description:      "Утвердить бюджет на 2026 год.",
		YesCount:         2,
		NoCount:          1,
		AbstainCount:     0,
		Decision:         "Решение принято.",
	})

	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Equal(t, "%PDF", string(out[:4]))
}
