package data

import (
	"encoding/json"
	"fmt"
	"io"
)

// Field names of weather records.
const (
	WeatherDate          = "date"
	WeatherTempMax       = "temperature_max"
	WeatherTempMin       = "temperature_min"
	WeatherTempMean      = "temperature_mean"
	WeatherPrecipitation = "precipitation_sum"
	WeatherWindspeedMax  = "windspeed_max"
	WeatherWindgustsMax  = "windgusts_max"
	WeatherSunrise       = "sunrise"
	WeatherSunset        = "sunset"
	WeatherTempUnit      = "temperature_unit"
	WeatherWindUnit      = "wind_unit"
)

// WeatherDateLayout is the layout of the date field.
const WeatherDateLayout = "2006-01-02"

// weatherLocation is one element of an open-meteo daily archive response.
type weatherLocation struct {
	DailyUnits struct {
		TemperatureMax string `json:"temperature_2m_max"`
		WindspeedMax   string `json:"windspeed_10m_max"`
	} `json:"daily_units"`
	Daily struct {
		Time             []string   `json:"time"`
		TemperatureMax   []*float64 `json:"temperature_2m_max"`
		TemperatureMin   []*float64 `json:"temperature_2m_min"`
		TemperatureMean  []*float64 `json:"temperature_2m_mean"`
		Sunrise          []string   `json:"sunrise"`
		Sunset           []string   `json:"sunset"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
		WindspeedMax     []*float64 `json:"windspeed_10m_max"`
		WindgustsMax     []*float64 `json:"windgusts_10m_max"`
	} `json:"daily"`
}

// ParseWeather reads an array of open-meteo daily responses and flattens
// it into one record per day. Null measurements are left undefined.
func ParseWeather(r io.Reader) ([]Record, error) {
	var locations []weatherLocation
	if err := json.NewDecoder(r).Decode(&locations); err != nil {
		return nil, fmt.Errorf("decoding weather data: %w", err)
	}

	var records []Record
	for _, loc := range locations {
		d := loc.Daily
		for i, t := range d.Time {
			rec := Record{
				WeatherDate:     t,
				WeatherTempUnit: loc.DailyUnits.TemperatureMax,
				WeatherWindUnit: loc.DailyUnits.WindspeedMax,
			}
			setString(rec, WeatherSunrise, d.Sunrise, i)
			setString(rec, WeatherSunset, d.Sunset, i)
			setNumber(rec, WeatherTempMax, d.TemperatureMax, i)
			setNumber(rec, WeatherTempMin, d.TemperatureMin, i)
			setNumber(rec, WeatherTempMean, d.TemperatureMean, i)
			setNumber(rec, WeatherPrecipitation, d.PrecipitationSum, i)
			setNumber(rec, WeatherWindspeedMax, d.WindspeedMax, i)
			setNumber(rec, WeatherWindgustsMax, d.WindgustsMax, i)
			records = append(records, rec)
		}
	}
	return records, nil
}

func setNumber(rec Record, field string, values []*float64, i int) {
	if i < len(values) && values[i] != nil {
		rec[field] = *values[i]
	}
}

func setString(rec Record, field string, values []string, i int) {
	if i < len(values) && values[i] != "" {
		rec[field] = values[i]
	}
}
