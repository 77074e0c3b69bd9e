package runner

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datekoans/internal/config"
)

// BuildAlmanac encodes the date lessons' anchor dates as an iCalendar feed:
// one all-day event per anchored lesson, titled with the lesson's localized
// title. Clock-only lessons have no anchor and are skipped.
func (r *Runner) BuildAlmanac(results []Result) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval to feed consumers.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Anchor dates are civil calendar dates; UTC only stamps the feed itself.
	now := r.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, res := range results {
		if res.Anchor.IsZero() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, eventUID(res), config.ICalDomain))
		event.Props.SetText(config.PropSummary, res.Title)

		anchor := time.Date(res.Anchor.Year(), res.Anchor.Month(), res.Anchor.Day(), 0, 0, 0, 0, time.UTC)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(anchor)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	// A VCALENDAR without components is invalid; fall back to the stub.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// eventUID derives a deterministic identifier so the feed stays stable
// across runs and refreshes.
func eventUID(res Result) string {
	input := fmt.Sprintf(config.FormatHashInput, res.Slug, res.Anchor.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
