package launch

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured or it cannot be parsed.
const DefaultLocale = "en-US"

type layoutSet struct {
	tag      language.Tag
	short    string
	long     string
	weekdays *[7]string
	// longPattern receives the weekday name and the formatted long layout.
	longPattern string
}

var (
	germanWeekdays   = [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	frenchWeekdays   = [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	japaneseWeekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}
)

// layouts is ordered to match supportedTags; index 0 is the fallback.
var layouts = []layoutSet{
	{
		tag:   language.AmericanEnglish,
		short: "Jan 2, 2006, 03:04 PM",
		long:  "Monday, January 2, 2006 at 03:04 PM MST",
	},
	{
		tag:   language.BritishEnglish,
		short: "2 Jan 2006, 15:04",
		long:  "Monday 2 January 2006 at 15:04 MST",
	},
	{
		tag:         language.German,
		short:       "02.01.2006, 15:04",
		long:        "02.01.2006, 15:04 MST",
		weekdays:    &germanWeekdays,
		longPattern: "%s, %s",
	},
	{
		tag:         language.French,
		short:       "02/01/2006 15:04",
		long:        "02/01/2006 15:04 MST",
		weekdays:    &frenchWeekdays,
		longPattern: "%s %s",
	},
	{
		tag:         language.Japanese,
		short:       "2006/01/02 15:04",
		long:        "2006/01/02 15:04 MST",
		weekdays:    &japaneseWeekdays,
		longPattern: "(%s) %s",
	},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return tags
}

// Formatter renders dates and quantities for one locale and time zone.
// The zero value formats like en-US in the local zone.
type Formatter struct {
	set     *layoutSet
	loc     *time.Location
	printer *message.Printer
}

// NewFormatter matches locale against the supported locales and binds the
// result to loc. A nil loc means time.Local.
func NewFormatter(locale string, loc *time.Location) Formatter {
	idx := 0
	if tag, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, idx, _ = matcher.Match(tag)
	}
	if idx < 0 || idx >= len(layouts) {
		idx = 0
	}
	set := &layouts[idx]
	return Formatter{
		set:     set,
		loc:     loc,
		printer: message.NewPrinter(set.tag),
	}
}

// Locale returns the BCP 47 tag the formatter resolved to.
func (f Formatter) Locale() string {
	return f.layouts().tag.String()
}

// Short renders a list-view date: year, month, day, hour and minute.
func (f Formatter) Short(t time.Time) string {
	return t.In(f.location()).Format(f.layouts().short)
}

// Long renders a detail-view date, adding the weekday and zone name.
func (f Formatter) Long(t time.Time) string {
	t = t.In(f.location())
	set := f.layouts()
	if set.weekdays == nil {
		return t.Format(set.long)
	}
	return fmt.Sprintf(set.longPattern, set.weekdays[t.Weekday()], t.Format(set.long))
}

// Mass renders a payload mass in kilograms with locale digit grouping.
func (f Formatter) Mass(kg float64) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(f.layouts().tag)
	}
	return p.Sprintf("%v kg", number.Decimal(kg))
}

func (f Formatter) layouts() *layoutSet {
	if f.set == nil {
		return &layouts[0]
	}
	return f.set
}

func (f Formatter) location() *time.Location {
	if f.loc == nil {
		return time.Local
	}
	return f.loc
}
