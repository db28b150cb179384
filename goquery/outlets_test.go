package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkleong/outletmap/goquery"
)

const listingHTML = `
<div id="fp_locationlist">
	<div class="fp_listitem" data-latitude="3.157" data-longitude="101.712">
		<h4>Subway KLCC</h4>
		<div class="infoboxcontent">
			<p>Lot 123, Suria KLCC, Kuala Lumpur</p>
			<p>Monday - Sunday, 8:00 AM - 10:00 PM</p>
			<p>Try our new melts!</p>
			<div class="directionButton">
				<a href="https://maps.google.com/?q=klcc">Google Maps</a>
				<a href="https://waze.com/ul?ll=3.157,101.712">Waze</a>
			</div>
		</div>
	</div>
	<div class="fp_listitem" data-latitude="" data-longitude="bogus">
		<div class="infoboxcontent">
			<p>12 Jalan Bangsar, KL</p>
			<p>Monday - Friday, 9:00 AM - 9:00 PM</p>
			<p>Saturday - Sunday, 9AM-11PM</p>
			<p>Daily delivery available until late</p>
			<div class="directionButton">
				<a href="https://maps.google.com/?q=bangsar">Google Maps</a>
			</div>
		</div>
	</div>
	<div class="fp_listitem">
		<h4>Subway Penang</h4>
	</div>
</div>
`

func TestParseOutlets(t *testing.T) {
	t.Parallel()

	outlets, err := goquery.ParseOutlets(listingHTML)
	require.NoError(t, err)
	require.Len(t, outlets, 3)

	t.Run("full listing", func(t *testing.T) {
		t.Parallel()

		o := outlets[0]
		assert.Equal(t, "Subway KLCC", o.Name)
		assert.Equal(t, "Lot 123, Suria KLCC, Kuala Lumpur", o.Address)
		assert.Equal(t, "Monday - Sunday, 8:00 AM - 10:00 PM", o.OperatingHours)
		assert.Equal(t, "https://waze.com/ul?ll=3.157,101.712", o.WazeLink)
		assert.InDelta(t, 3.157, o.Latitude, 0.0001)
		assert.InDelta(t, 101.712, o.Longitude, 0.0001)
	})

	t.Run("degraded fields default instead of aborting the record", func(t *testing.T) {
		t.Parallel()

		o := outlets[1]
		assert.Empty(t, o.Name, "missing heading degrades to empty")
		assert.Equal(t, "12 Jalan Bangsar, KL", o.Address)
		assert.Zero(t, o.Latitude, "empty attribute degrades to 0.0")
		assert.Zero(t, o.Longitude, "unparseable attribute degrades to 0.0")
		assert.Empty(t, o.WazeLink, "single action link means no waze link")
	})

	t.Run("hours lines are filtered by day token and joined", func(t *testing.T) {
		t.Parallel()

		// The delivery promo line contains "Daily" and is kept; only
		// day-token-free promotional lines are dropped.
		assert.Equal(t,
			"Monday - Friday, 9:00 AM - 9:00 PM | Saturday - Sunday, 9AM-11PM | Daily delivery available until late",
			outlets[1].OperatingHours)
	})

	t.Run("listing with no info section", func(t *testing.T) {
		t.Parallel()

		o := outlets[2]
		assert.Equal(t, "Subway Penang", o.Name)
		assert.Empty(t, o.Address)
		assert.Empty(t, o.OperatingHours)
	})
}

func TestParseOutlets_EmptyContainer(t *testing.T) {
	t.Parallel()

	outlets, err := goquery.ParseOutlets(`<div id="fp_locationlist"></div>`)
	require.NoError(t, err)
	assert.Empty(t, outlets)
}
