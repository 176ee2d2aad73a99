package service

import (
	"fmt"
	"strconv"

	"github.com/skyglass/weather-widget/internal/domain"
	"github.com/skyglass/weather-widget/pkg/utils"
)

const (
	// IconURLFormat is the provider's static icon path convention
	IconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

	// DateLayout renders the long weekday/month form, e.g. "Wednesday, November 15, 2023"
	DateLayout = "Monday, January 2, 2006"

	dayStartHour = 6
	dayEndHour   = 18

	windPrecision = 2
)

// Presenter turns readings into display fields. It holds no mutable state.
type Presenter struct {
	backgrounds *BackgroundTable
}

// NewPresenter creates a presenter over a background table; nil uses the built-in one
func NewPresenter(backgrounds *BackgroundTable) *Presenter {
	if backgrounds == nil {
		backgrounds = DefaultBackgrounds()
	}
	return &Presenter{backgrounds: backgrounds}
}

// Backgrounds exposes the table, e.g. for its default URL
func (p *Presenter) Backgrounds() *BackgroundTable {
	return p.backgrounds
}

// Present projects a reading onto display fields
func (p *Presenter) Present(r domain.WeatherReading) domain.Presentation {
	local := r.LocalTime()
	isDaytime := IsDaytime(local.Hour())
	key := NormalizeCondition(r.Condition)

	return domain.Presentation{
		LocationLabel:    locationLabel(r),
		TemperatureLabel: strconv.Itoa(utils.RoundInt(r.TemperatureC)),
		DescriptionLabel: r.Description,
		HumidityLabel:    fmt.Sprintf("%d%%", utils.Clamp(r.Humidity, 0, 100)),
		WindLabel:        utils.FormatFloat(utils.RoundTo(r.WindSpeed, windPrecision)) + " m/s",
		IconURL:          IconURL(r.Icon),
		DateLabel:        local.Format(DateLayout),
		IsDaytime:        isDaytime,
		BackgroundKey:    key,
		BackgroundURL:    p.backgrounds.URL(key, isDaytime),
	}
}

// IsDaytime applies the fixed 06:00-18:00 day window
func IsDaytime(hour int) bool {
	return hour >= dayStartHour && hour < dayEndHour
}

// IconURL derives the icon image URL from the provider icon code
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(IconURLFormat, icon)
}

func locationLabel(r domain.WeatherReading) string {
	if r.Country == "" {
		return r.Location
	}
	return fmt.Sprintf("%s, %s", r.Location, r.Country)
}
