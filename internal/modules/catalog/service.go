package catalog

import (
	"slices"

	"onpauling/internal/domain"
	"onpauling/internal/pkg/phone"
)

const currencyUSD = "USD"

const (
	VehicleExecutiveSUV = "Executive SUV (Land Cruiser)"
	VehicleStandardSUV  = "Standard SUV (Fortuner)"
	VehicleSafari4x4    = "Safari 4x4"
	VehicleUrbanSedan   = "Urban Sedan"
)

var suites = []Suite{
	{
		Type:          domain.RoomPresidential,
		Name:          "Presidential Suite",
		Description:   "Private lounge, king bed and panoramic garden views.",
		PricePerNight: 350,
		Currency:      currencyUSD,
	},
	{
		Type:          domain.RoomExecutive,
		Name:          "Executive Suite",
		Description:   "Work desk, queen bed and a quiet wing of the house.",
		PricePerNight: 250,
		Currency:      currencyUSD,
	},
	{
		Type:          domain.RoomDeluxe,
		Name:          "Deluxe Room",
		Description:   "Comfortable double room with en-suite bathroom.",
		PricePerNight: 185,
		Currency:      currencyUSD,
	},
}

var vehicles = []Vehicle{
	{Type: VehicleExecutiveSUV, Model: "Toyota Land Cruiser", Category: "Executive", PricePerDay: 120, Currency: currencyUSD, Seats: 7},
	{Type: VehicleStandardSUV, Model: "Toyota Fortuner", Category: "Standard SUV", PricePerDay: 100, Currency: currencyUSD, Seats: 7},
	{Type: VehicleSafari4x4, Model: "Ford Ranger 4x4", Category: "Adventure", PricePerDay: 110, Currency: currencyUSD, Seats: 5},
	{Type: VehicleUrbanSedan, Model: "Toyota Corolla Cross", Category: "Urban", PricePerDay: 60, Currency: currencyUSD, Seats: 5},
}

var addOns = []AddOn{
	{Name: "Chauffeur", Description: "Professional local driver for the whole rental."},
	{Name: "GPS Navigation", Description: "Preloaded unit with national park routes."},
	{Name: "Child Seat", Description: "Forward or rear facing, fitted on delivery."},
	{Name: "Camping Gear", Description: "Rooftop tent, chairs and cooler box."},
}

var countryNames = map[string]string{
	phone.DefaultDialCode: "Zimbabwe",
	"+1":                  "United States",
	"+44":                 "United Kingdom",
	"+27":                 "South Africa",
}

// countryCodes follows phone.SupportedDialCodes so the menu and the form
// validation accept the same codes.
var countryCodes = func() []CountryCode {
	out := make([]CountryCode, 0, len(phone.SupportedDialCodes))
	for _, code := range phone.SupportedDialCodes {
		out = append(out, CountryCode{
			DialCode: code,
			Country:  countryNames[code],
			Default:  code == phone.DefaultDialCode,
		})
	}
	return out
}()

// Service serves the static menus behind the booking forms.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) ListSuites() []Suite {
	return slices.Clone(suites)
}

func (s *Service) ListVehicles() []Vehicle {
	return slices.Clone(vehicles)
}

func (s *Service) ListAddOns() []AddOn {
	return slices.Clone(addOns)
}

func (s *Service) ListCountryCodes() []CountryCode {
	return slices.Clone(countryCodes)
}

// IsVehicleType reports whether t is an exact fleet menu label.
func (s *Service) IsVehicleType(t string) bool {
	return slices.ContainsFunc(vehicles, func(v Vehicle) bool { return v.Type == t })
}

func (s *Service) IsAddOn(name string) bool {
	return slices.ContainsFunc(addOns, func(a AddOn) bool { return a.Name == name })
}

func (s *Service) Suite(t domain.RoomType) (Suite, bool) {
	i := slices.IndexFunc(suites, func(x Suite) bool { return x.Type == t })
	if i < 0 {
		return Suite{}, false
	}
	return suites[i], true
}
