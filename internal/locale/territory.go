// Package locale resolves the numeric territory and language codes carried
// in file records to their Qt enum names. Values are plain lookup tables,
// not third-party dependencies: Qt's QLocale numbering is a closed,
// historical enumeration with nothing upstream to parse or negotiate.
package locale

// Territory is a QLocale::Territory code.
type Territory uint16

// A sample of the QLocale::Territory enumeration (codes 0 to 20);
// LookupTerritory reports every code outside this table as unrecognized.
const (
	TerritoryAnyTerritory          Territory = 0
	TerritoryAfghanistan           Territory = 1
	TerritoryAlbania               Territory = 2
	TerritoryAlgeria               Territory = 3
	TerritoryAmericanSamoa         Territory = 4
	TerritoryAndorra               Territory = 5
	TerritoryAngola                Territory = 6
	TerritoryAnguilla              Territory = 7
	TerritoryAntarctica            Territory = 8
	TerritoryAntiguaAndBarbuda     Territory = 9
	TerritoryArgentina             Territory = 10
	TerritoryArmenia               Territory = 11
	TerritoryAruba                 Territory = 12
	TerritoryAustralia             Territory = 13
	TerritoryAustria               Territory = 14
	TerritoryAzerbaijan            Territory = 15
	TerritoryBahamas               Territory = 16
	TerritoryBahrain               Territory = 17
	TerritoryBangladesh            Territory = 18
	TerritoryBarbados              Territory = 19
	TerritoryBelarus               Territory = 20
)

var territoryNames = map[Territory]string{
	TerritoryAnyTerritory:      "AnyTerritory",
	TerritoryAfghanistan:       "Afghanistan",
	TerritoryAlbania:           "Albania",
	TerritoryAlgeria:           "Algeria",
	TerritoryAmericanSamoa:     "AmericanSamoa",
	TerritoryAndorra:           "Andorra",
	TerritoryAngola:            "Angola",
	TerritoryAnguilla:          "Anguilla",
	TerritoryAntarctica:        "Antarctica",
	TerritoryAntiguaAndBarbuda: "AntiguaAndBarbuda",
	TerritoryArgentina:         "Argentina",
	TerritoryArmenia:           "Armenia",
	TerritoryAruba:             "Aruba",
	TerritoryAustralia:         "Australia",
	TerritoryAustria:           "Austria",
	TerritoryAzerbaijan:        "Azerbaijan",
	TerritoryBahamas:           "Bahamas",
	TerritoryBahrain:           "Bahrain",
	TerritoryBangladesh:        "Bangladesh",
	TerritoryBarbados:          "Barbados",
	TerritoryBelarus:           "Belarus",
}

// String returns the Qt enumerator name, or a numeric fallback for codes
// outside the table above.
func (t Territory) String() string {
	if name, ok := territoryNames[t]; ok {
		return name
	}
	return unknownName("Territory", uint16(t))
}

// LookupTerritory reports whether code is a recognized territory and
// returns its symbolic form. For an unrecognized code it returns the code
// as a Territory together with false; String on that value prints the
// numeric fallback form.
func LookupTerritory(code uint16) (Territory, bool) {
	t := Territory(code)
	_, ok := territoryNames[t]
	return t, ok
}
