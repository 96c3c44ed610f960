package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type CityWeather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   int     `json:"windSpeed"`
	Pressure    int     `json:"pressure"`
	Visibility  int     `json:"visibility"`
	UVIndex     int     `json:"uvIndex"`
}

var mockWeather = map[string]CityWeather{
	"delhi":     {City: "Delhi", Temperature: 32, Condition: "Partly Cloudy", Humidity: 65, WindSpeed: 12, Pressure: 1013, Visibility: 8, UVIndex: 7},
	"mumbai":    {City: "Mumbai", Temperature: 29, Condition: "Humid", Humidity: 78, WindSpeed: 15, Pressure: 1011, Visibility: 6, UVIndex: 8},
	"bangalore": {City: "Bangalore", Temperature: 26, Condition: "Pleasant", Humidity: 60, WindSpeed: 8, Pressure: 1015, Visibility: 10, UVIndex: 6},
	"chennai":   {City: "Chennai", Temperature: 31, Condition: "Hot & Humid", Humidity: 72, WindSpeed: 18, Pressure: 1009, Visibility: 7, UVIndex: 9},
	"kolkata":   {City: "Kolkata", Temperature: 30, Condition: "Monsoon", Humidity: 85, WindSpeed: 10, Pressure: 1008, Visibility: 5, UVIndex: 5},
}

type WeatherController struct{}

func NewWeatherController() *WeatherController {
	return &WeatherController{}
}

// GET /api/weather
func (wc *WeatherController) List(c *gin.Context) {
	cities := make([]CityWeather, 0, len(mockWeather))
	for _, w := range mockWeather {
		cities = append(cities, w)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cities})
}

// GET /api/weather/:city — unknown cities get a generic reading instead
// of an error so the dashboard widget always renders.
func (wc *WeatherController) Get(c *gin.Context) {
	city := c.Param("city")
	if w, ok := mockWeather[strings.ToLower(city)]; ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": w})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": CityWeather{
		City:        city,
		Temperature: 28,
		Condition:   "Clear",
		Humidity:    60,
		WindSpeed:   10,
		Pressure:    1012,
		Visibility:  8,
		UVIndex:     6,
	}})
}
