package locfmt

// formattingRulesData contains the rules bundled with the library. The set is
// intentionally small; additional locales load through RulesLoader files.
var formattingRulesData = map[string]FormattingRules{
	"en": {
		Locale: "en",
		Numbers: NumberRules{
			DecimalSep: ".", GroupSep: ",", GroupSize: 3,
			MinusSign: "-", PlusSign: "+", PercentSymbol: "%",
			ExponentSymbol: "E", Infinity: "∞", NaN: "NaN",
		},
		Currency: CurrencyRules{SymbolPosition: "before", SymbolSpace: false, Decimals: 2},
		DateLayouts: StyleLayouts{
			Short:  "M/d/yy",
			Medium: "MMM d, yyyy",
			Long:   "MMMM d, yyyy",
			Full:   "EEEE, MMMM d, yyyy",
		},
		TimeLayouts: StyleLayouts{
			Short:  "h:mm a",
			Medium: "h:mm:ss a",
			Long:   "h:mm:ss a",
			Full:   "h:mm:ss a",
		},
		MonthNames: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthAbbrev: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		DayNames: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		DayAbbrev:    []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		DayPeriods:   []string{"AM", "PM"},
		RelativeDays: RelativeDayNames{Yesterday: "yesterday", Today: "today", Tomorrow: "tomorrow"},
		Ordinal:      "english",
	},
	"en-GB": {
		Locale: "en-GB",
		Numbers: NumberRules{
			DecimalSep: ".", GroupSep: ",", GroupSize: 3,
			MinusSign: "-", PlusSign: "+", PercentSymbol: "%",
			ExponentSymbol: "E", Infinity: "∞", NaN: "NaN",
		},
		Currency: CurrencyRules{SymbolPosition: "before", SymbolSpace: false, Decimals: 2},
		DateLayouts: StyleLayouts{
			Short:  "dd/MM/yyyy",
			Medium: "d MMM yyyy",
			Long:   "d MMMM yyyy",
			Full:   "EEEE, d MMMM yyyy",
		},
		TimeLayouts: StyleLayouts{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
			Long:   "HH:mm:ss",
			Full:   "HH:mm:ss",
		},
		MonthNames: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthAbbrev: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		DayNames: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		DayAbbrev:    []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		DayPeriods:   []string{"am", "pm"},
		RelativeDays: RelativeDayNames{Yesterday: "yesterday", Today: "today", Tomorrow: "tomorrow"},
		Ordinal:      "english",
	},
	"de": {
		Locale: "de",
		Numbers: NumberRules{
			DecimalSep: ",", GroupSep: ".", GroupSize: 3,
			MinusSign: "-", PlusSign: "+", PercentSymbol: "%",
			ExponentSymbol: "E", Infinity: "∞", NaN: "NaN",
		},
		Currency: CurrencyRules{SymbolPosition: "after", SymbolSpace: true, Decimals: 2},
		DateLayouts: StyleLayouts{
			Short:  "dd.MM.yy",
			Medium: "dd.MM.yyyy",
			Long:   "d. MMMM yyyy",
			Full:   "EEEE, d. MMMM yyyy",
		},
		TimeLayouts: StyleLayouts{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
			Long:   "HH:mm:ss",
			Full:   "HH:mm:ss",
		},
		MonthNames: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthAbbrev: []string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		DayNames: []string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		DayAbbrev:    []string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		DayPeriods:   []string{"AM", "PM"},
		RelativeDays: RelativeDayNames{Yesterday: "gestern", Today: "heute", Tomorrow: "morgen"},
		Ordinal:      "dot",
	},
	"es": {
		Locale: "es",
		Numbers: NumberRules{
			DecimalSep: ",", GroupSep: ".", GroupSize: 3,
			MinusSign: "-", PlusSign: "+", PercentSymbol: "%",
			ExponentSymbol: "E", Infinity: "∞", NaN: "NaN",
		},
		Currency: CurrencyRules{SymbolPosition: "after", SymbolSpace: true, Decimals: 2},
		DateLayouts: StyleLayouts{
			Short:  "d/M/yy",
			Medium: "d MMM yyyy",
			Long:   "d 'de' MMMM 'de' yyyy",
			Full:   "EEEE, d 'de' MMMM 'de' yyyy",
		},
		TimeLayouts: StyleLayouts{
			Short:  "H:mm",
			Medium: "H:mm:ss",
			Long:   "H:mm:ss",
			Full:   "H:mm:ss",
		},
		MonthNames: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthAbbrev: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic",
		},
		DayNames: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		DayAbbrev:    []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		DayPeriods:   []string{"a. m.", "p. m."},
		RelativeDays: RelativeDayNames{Yesterday: "ayer", Today: "hoy", Tomorrow: "mañana"},
		Ordinal:      "spanish",
	},
	"fr": {
		Locale: "fr",
		Numbers: NumberRules{
			DecimalSep: ",", GroupSep: " ", GroupSize: 3,
			MinusSign: "-", PlusSign: "+", PercentSymbol: "%",
			ExponentSymbol: "E", Infinity: "∞", NaN: "NaN",
		},
		Currency: CurrencyRules{SymbolPosition: "after", SymbolSpace: true, Decimals: 2},
		DateLayouts: StyleLayouts{
			Short:  "dd/MM/yyyy",
			Medium: "d MMM yyyy",
			Long:   "d MMMM yyyy",
			Full:   "EEEE d MMMM yyyy",
		},
		TimeLayouts: StyleLayouts{
			Short:  "HH:mm",
			Medium: "HH:mm:ss",
			Long:   "HH:mm:ss",
			Full:   "HH:mm:ss",
		},
		MonthNames: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthAbbrev: []string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		DayNames: []string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		DayAbbrev:    []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		DayPeriods:   []string{"AM", "PM"},
		RelativeDays: RelativeDayNames{Yesterday: "hier", Today: "aujourd’hui", Tomorrow: "demain"},
	},
	"ru": {
		Locale: "ru",
		Numbers: NumberRules{
			DecimalSep: ",", GroupSep: " ", GroupSize: 3,
			MinusSign: "-", PlusSign: "+", PercentSymbol: "%",
			ExponentSymbol: "E", Infinity: "∞", NaN: "не число",
		},
		Currency: CurrencyRules{SymbolPosition: "after", SymbolSpace: true, Decimals: 2},
		DateLayouts: StyleLayouts{
			Short:  "dd.MM.yyyy",
			Medium: "d MMM yyyy",
			Long:   "d MMMM yyyy",
			Full:   "EEEE, d MMMM yyyy",
		},
		TimeLayouts: StyleLayouts{
			Short:  "H:mm",
			Medium: "H:mm:ss",
			Long:   "H:mm:ss",
			Full:   "H:mm:ss",
		},
		MonthNames: []string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
		MonthAbbrev: []string{
			"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
			"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
		},
		DayNames: []string{
			"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
		},
		DayAbbrev:    []string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		DayPeriods:   []string{"AM", "PM"},
		RelativeDays: RelativeDayNames{Yesterday: "вчера", Today: "сегодня", Tomorrow: "завтра"},
	},
}
