package locale

// Language is a QLocale::Language code.
type Language uint16

// A sample of the QLocale::Language enumeration (codes 0 to 60);
// LookupLanguage reports every code outside this table as unrecognized.
const (
	LanguageAnyLanguage Language = 0
	LanguageC           Language = 1
	LanguageAbkhazian   Language = 2
	LanguageAfan        Language = 3
	LanguageAfar        Language = 4
	LanguageAfrikaans   Language = 5
	LanguageAlbanian    Language = 6
	LanguageAmharic     Language = 7
	LanguageArabic      Language = 8
	LanguageArmenian    Language = 9
	LanguageAssamese    Language = 10
	LanguageAymara      Language = 11
	LanguageAzerbaijani Language = 12
	LanguageBashkir     Language = 13
	LanguageBasque      Language = 14
	LanguageBengali     Language = 15
	LanguageBhutani     Language = 16
	LanguageBihari      Language = 17
	LanguageBislama     Language = 18
	LanguageBreton      Language = 19
	LanguageBulgarian   Language = 20
	LanguageBurmese     Language = 21
	LanguageByelorussian Language = 22
	LanguageCambodian   Language = 23
	LanguageCatalan     Language = 24
	LanguageChinese     Language = 25
	LanguageCorsican    Language = 26
	LanguageCroatian    Language = 27
	LanguageCzech       Language = 28
	LanguageDanish      Language = 29
	LanguageDutch       Language = 30
	LanguageEnglish     Language = 31
	LanguageEsperanto   Language = 32
	LanguageEstonian    Language = 33
	LanguageFaroese     Language = 34
	LanguageFijian      Language = 35
	LanguageFinnish     Language = 36
	LanguageFrench      Language = 37
	LanguageFrisian     Language = 38
	LanguageGaelic      Language = 39
	LanguageGalician    Language = 40
	LanguageGeorgian    Language = 41
	LanguageGerman      Language = 42
	LanguageGreek       Language = 43
	LanguageGreenlandic Language = 44
	LanguageGuarani     Language = 45
	LanguageGujarati    Language = 46
	LanguageHausa       Language = 47
	LanguageHebrew      Language = 48
	LanguageHindi       Language = 49
	LanguageHungarian   Language = 50
	LanguageIcelandic   Language = 51
	LanguageIndonesian  Language = 52
	LanguageInterlingua Language = 53
	LanguageInterlingue Language = 54
	LanguageInupiak     Language = 56
	LanguageIrish       Language = 57
	LanguageItalian     Language = 58
	LanguageInuktitut   Language = 55
	LanguageJapanese    Language = 59
	LanguageJavanese    Language = 60
)

var languageNames = map[Language]string{
	LanguageAnyLanguage:  "AnyLanguage",
	LanguageC:            "C",
	LanguageAbkhazian:    "Abkhazian",
	LanguageAfan:         "Afan",
	LanguageAfar:         "Afar",
	LanguageAfrikaans:    "Afrikaans",
	LanguageAlbanian:     "Albanian",
	LanguageAmharic:      "Amharic",
	LanguageArabic:       "Arabic",
	LanguageArmenian:     "Armenian",
	LanguageAssamese:     "Assamese",
	LanguageAymara:       "Aymara",
	LanguageAzerbaijani:  "Azerbaijani",
	LanguageBashkir:      "Bashkir",
	LanguageBasque:       "Basque",
	LanguageBengali:      "Bengali",
	LanguageBhutani:      "Bhutani",
	LanguageBihari:       "Bihari",
	LanguageBislama:      "Bislama",
	LanguageBreton:       "Breton",
	LanguageBulgarian:    "Bulgarian",
	LanguageBurmese:      "Burmese",
	LanguageByelorussian: "Byelorussian",
	LanguageCambodian:    "Cambodian",
	LanguageCatalan:      "Catalan",
	LanguageChinese:      "Chinese",
	LanguageCorsican:     "Corsican",
	LanguageCroatian:     "Croatian",
	LanguageCzech:        "Czech",
	LanguageDanish:       "Danish",
	LanguageDutch:        "Dutch",
	LanguageEnglish:      "English",
	LanguageEsperanto:    "Esperanto",
	LanguageEstonian:     "Estonian",
	LanguageFaroese:      "Faroese",
	LanguageFijian:       "Fijian",
	LanguageFinnish:      "Finnish",
	LanguageFrench:       "French",
	LanguageFrisian:      "Frisian",
	LanguageGaelic:       "Gaelic",
	LanguageGalician:     "Galician",
	LanguageGeorgian:     "Georgian",
	LanguageGerman:       "German",
	LanguageGreek:        "Greek",
	LanguageGreenlandic:  "Greenlandic",
	LanguageGuarani:      "Guarani",
	LanguageGujarati:     "Gujarati",
	LanguageHausa:        "Hausa",
	LanguageHebrew:       "Hebrew",
	LanguageHindi:        "Hindi",
	LanguageHungarian:    "Hungarian",
	LanguageIcelandic:    "Icelandic",
	LanguageIndonesian:   "Indonesian",
	LanguageInterlingua:  "Interlingua",
	LanguageInterlingue:  "Interlingue",
	LanguageInupiak:      "Inupiak",
	LanguageIrish:        "Irish",
	LanguageItalian:      "Italian",
	LanguageInuktitut:    "Inuktitut",
	LanguageJapanese:     "Japanese",
	LanguageJavanese:     "Javanese",
}

// String returns the Qt enumerator name, or a numeric fallback for codes
// outside the table above.
func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return unknownName("Language", uint16(l))
}

// LookupLanguage reports whether code is a recognized language and
// returns its symbolic form.
func LookupLanguage(code uint16) (Language, bool) {
	l := Language(code)
	_, ok := languageNames[l]
	return l, ok
}
