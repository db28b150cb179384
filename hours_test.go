package outletmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkleong/outletmap"
)

func TestExtractClosingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want outletmap.Clock
		ok   bool
	}{
		{
			name: "standard open-close pair",
			text: "Monday - Sunday, 8:00 AM - 10:00 PM",
			want: outletmap.Clock{Hour: 22},
			ok:   true,
		},
		{
			name: "compact form",
			text: "9AM-11PM",
			want: outletmap.Clock{Hour: 23},
			ok:   true,
		},
		{
			name: "compact and colon forms agree",
			text: "9:00 AM - 11:00 PM",
			want: outletmap.Clock{Hour: 23},
			ok:   true,
		},
		{
			name: "last token wins across segments",
			text: "Mon-Fri, 8:00 AM - 9:00 PM | Sat-Sun, 9:00 AM - 10:30 PM",
			want: outletmap.Clock{Hour: 22, Minute: 30},
			ok:   true,
		},
		{
			name: "mixed forms takes the later token",
			text: "Daily 9AM - 9:30 PM",
			want: outletmap.Clock{Hour: 21, Minute: 30},
			ok:   true,
		},
		{
			name: "midnight close",
			text: "Daily, 10:00 AM - 12:00 AM",
			want: outletmap.Clock{Hour: 0},
			ok:   true,
		},
		{
			name: "noon close",
			text: "Opens 6:00 AM, closes 12:00 PM",
			want: outletmap.Clock{Hour: 12},
			ok:   true,
		},
		{
			name: "no time token",
			text: "call for hours",
			ok:   false,
		},
		{
			name: "empty string",
			text: "",
			ok:   false,
		},
		{
			name: "lowercase meridiem is not a token",
			text: "open until 10:00 pm",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := outletmap.ExtractClosingTime(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClock_After(t *testing.T) {
	t.Parallel()

	ten := outletmap.Clock{Hour: 22}
	nine := outletmap.Clock{Hour: 21}
	midnight := outletmap.Clock{}

	assert.True(t, ten.After(nine))
	assert.False(t, nine.After(ten))
	assert.False(t, ten.After(ten))
	assert.True(t, nine.After(midnight))
}

func TestClock_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10:00 PM", outletmap.Clock{Hour: 22}.String())
	assert.Equal(t, "12:00 AM", outletmap.Clock{}.String())
	assert.Equal(t, "12:30 PM", outletmap.Clock{Hour: 12, Minute: 30}.String())
	assert.Equal(t, "9:05 AM", outletmap.Clock{Hour: 9, Minute: 5}.String())
}
