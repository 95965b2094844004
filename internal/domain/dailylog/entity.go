package dailylog

import "time"

type Weather string

const (
	WeatherClear  Weather = "CLEAR"
	WeatherCloudy Weather = "CLOUDY"
	WeatherRain   Weather = "RAIN"
	WeatherSnow   Weather = "SNOW"
	WeatherWind   Weather = "WIND"
)

var ValidWeathers = []Weather{WeatherClear, WeatherCloudy, WeatherRain, WeatherSnow, WeatherWind}

func IsValidWeather(w Weather) bool {
	for _, valid := range ValidWeathers {
		if w == valid {
			return true
		}
	}
	return false
}

type DailyLog struct {
	ID            string
	ProjectID     string
	Date          time.Time
	Weather       *Weather
	CrewCount     *int
	WorkPerformed string
	Issues        *string
	Notes         *string
	CreatedBy     *string
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Joined fields
	ProjectName   *string
	ProjectNumber *string
}
