package constants

// KnownLocations seeds the location auto-suggest for issue reporting.
// TODO: replace with the municipal GIS area register once the feed is live.
var KnownLocations = []string{
	"Cape Town CBD",
	"Johannesburg North",
	"Durban Central",
	"Pretoria East",
	"Gqeberha",
	"Bloemfontein",
	"Soweto",
	"Stellenbosch",
	"Pietermaritzburg",
	"East London",
}
