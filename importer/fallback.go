package importer

import (
	"slp-server/models"
)

// fallbackPlaces is the static substitute served when the live import fails.
// fallbackEvents is its event counterpart. seedPlaces is the curated set
// appended after every place import regardless of outcome, so the guide
// always shows its flagship entries; its ids never collide with imported or
// fallback ids.

var fallbackPlaces = []models.Place{
	{
		ID:          "fallback-la-parroquia",
		Name:        "La Parroquia de Carranza",
		Category:    models.CategoryRestaurant,
		Address:     "Av. Venustiano Carranza 303, Centro Histórico",
		City:        "San Luis Potosí",
		Latitude:    coord(22.1513),
		Longitude:   coord(-100.9832),
		Description: "Cocina potosina tradicional a unos pasos de la Plaza de Armas.",
		Tags:        []string{"local", "potosino"},
		Featured:    true,
	},
	{
		ID:          "fallback-cafe-cortado",
		Name:        "Café Cortado",
		Category:    models.CategoryCafe,
		Address:     "Calle Universidad 155, Centro",
		City:        "San Luis Potosí",
		Latitude:    coord(22.1498),
		Longitude:   coord(-100.9761),
		Description: "Espresso bar de especialidad con granos de la Huasteca.",
		Tags:        []string{"cafe", "specialty coffee"},
	},
	{
		ID:        "fallback-museo-federico-silva",
		Name:      "Museo Federico Silva",
		Category:  models.CategoryMuseum,
		Address:   "Álvaro Obregón 80, Centro Histórico",
		City:      "San Luis Potosí",
		Latitude:  coord(22.1526),
		Longitude: coord(-100.9779),
		Hours:     "Tuesday: 10:00 AM – 6:00 PM | Sunday: 10:00 AM – 2:00 PM",
	},
	{
		ID:        "fallback-hotel-panorama",
		Name:      "Hotel Panorama",
		Category:  models.CategoryHotel,
		Address:   "Av. Venustiano Carranza 315, Centro",
		City:      "San Luis Potosí",
		Latitude:  coord(22.1517),
		Longitude: coord(-100.9845),
		Website:   "https://www.hotelpanorama.com.mx",
	},
}

var seedPlaces = []models.Place{
	{
		ID:          "seed-parque-tangamanga",
		Name:        "Parque Tangamanga I",
		Category:    models.CategoryPark,
		Address:     "Av. Dr. Salvador Nava Martínez, Tangamanga",
		City:        "San Luis Potosí",
		Latitude:    coord(22.1276),
		Longitude:   coord(-101.0034),
		Description: "Uno de los parques urbanos más grandes de México.",
		Tags:        []string{"familia", "aire libre"},
		Featured:    true,
	},
	{
		ID:          "seed-museo-mascara",
		Name:        "Museo Nacional de la Máscara",
		Category:    models.CategoryMuseum,
		Address:     "Villerías 2, Centro Histórico",
		City:        "San Luis Potosí",
		Latitude:    coord(22.1506),
		Longitude:   coord(-100.9744),
		Description: "Colección de máscaras ceremoniales de todo el país.",
		Tags:        []string{"cultura"},
	},
	{
		ID:        "seed-mercado-republica",
		Name:      "Mercado República",
		Category:  models.CategoryShop,
		Address:   "20 de Noviembre 1510, Barrio de San Miguelito",
		City:      "San Luis Potosí",
		Latitude:  coord(22.1442),
		Longitude: coord(-100.9812),
		Tags:      []string{"local", "comida"},
	},
}

var fallbackEvents = []models.Event{
	{
		ID:          "fallback-fenapo",
		Title:       "Feria Nacional Potosina",
		Description: "La FENAPO reúne conciertos, gastronomía y exposiciones ganaderas.",
		StartDate:   "2026-08-07",
		EndDate:     "2026-08-30",
		Location:    "Recinto Ferial, San Luis Potosí",
		Category:    models.EventCategoryCultural,
		Featured:    true,
	},
	{
		ID:          "fallback-procesion-silencio",
		Title:       "Procesión del Silencio",
		Description: "Procesión de Viernes Santo por el Centro Histórico.",
		StartDate:   "2026-04-03",
		EndDate:     "2026-04-03",
		Location:    "Centro Histórico, San Luis Potosí",
		Category:    models.EventCategoryCultural,
	},
	{
		ID:          "fallback-medio-maraton",
		Title:       "Medio Maratón Tangamanga",
		Description: "Carrera de 21 km dentro del Parque Tangamanga I.",
		StartDate:   "2026-05-17",
		EndDate:     "2026-05-17",
		Location:    "Parque Tangamanga I",
		Category:    models.EventCategorySports,
	},
}

// FallbackPlaces returns a fresh copy of the static substitute place list.
func FallbackPlaces() []models.Place {
	return clonePlaces(fallbackPlaces)
}

// SeedPlaces returns a fresh copy of the curated always-present place list.
func SeedPlaces() []models.Place {
	return clonePlaces(seedPlaces)
}

// FallbackEvents returns a fresh copy of the static substitute event list.
func FallbackEvents() []models.Event {
	events := make([]models.Event, len(fallbackEvents))
	copy(events, fallbackEvents)
	return events
}

// withSeedPlaces appends the curated seed set to an import result. No
// deduplication: seed ids are fixed and distinct from imported ids.
func withSeedPlaces(places []models.Place) []models.Place {
	return append(places, SeedPlaces()...)
}

func clonePlaces(src []models.Place) []models.Place {
	places := make([]models.Place, len(src))
	copy(places, src)
	return places
}

func coord(v float64) *float64 {
	return &v
}
