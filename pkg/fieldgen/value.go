package fieldgen

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"
	"time"

	"github.com/mocksmith/mocksmith/internal/id"
)

// NoIndex marks value generation without a record index. AutoIncrement
// fields fall back to a random integer in this mode.
const NoIndex = -1

// Value generates one value for a field spec. index is the zero-based record
// index within a dataset, or NoIndex for ad hoc generation.
//
// Value is total over the Type enumeration: unrecognized tags yield nil
// rather than an error. Custom and AutoIncrement (with an index) are the
// only deterministic tags.
func Value(f Field, index int) any {
	switch f.Type {
	case TypeCustom:
		if f.CustomValue == "" {
			return nil
		}
		return f.CustomValue
	case TypeAutoIncrement:
		if index >= 0 {
			return index + 1
		}
		return mathrand.IntN(100000) + 1
	}

	gen, ok := generators[f.Type]
	if !ok {
		return nil
	}
	return gen()
}

// generators is the dispatch table over the closed type enumeration.
// Adding a type means adding one entry here plus its tag in types.go.
var generators = map[Type]func() any{
	// Identity
	TypeUUID:     func() any { return id.UUID() },
	TypeObjectID: genObjectID,
	TypeShortID:  func() any { return id.Short() },

	// Person
	TypeFirstName:   pickFn(firstNames),
	TypeLastName:    pickFn(lastNames),
	TypeFullName:    genFullName,
	TypeGender:      pickFn(genders),
	TypeAge:         func() any { return mathrand.IntN(83) + 18 },
	TypeDateOfBirth: genDateOfBirth,
	TypePhone:       genPhone,
	TypeAvatar:      genAvatar,
	TypeUsername:    genUsername,
	TypePassword:    genPassword,
	TypeNationality: pickFn(nationalities),
	TypeBloodType:   pickFn(bloodTypes),

	// Address
	TypeCountry:        pickFn(countries),
	TypeCountryCode:    pickFn(countryCodes),
	TypeCity:           pickFn(cities),
	TypeState:          pickFn(states),
	TypeZipCode:        genZipCode,
	TypeStreetAddress:  genStreetAddress,
	TypeStreetName:     pickFn(streetNames),
	TypeBuildingNumber: func() any { return mathrand.IntN(999) + 1 },
	TypeLatitude:       genLatitude,
	TypeLongitude:      genLongitude,
	TypeTimezone:       pickFn(timezones),

	// Internet
	TypeEmail:         genEmail,
	TypeURL:           genURL,
	TypeDomainName:    genDomainName,
	TypeIPv4:          genIPv4,
	TypeIPv6:          genIPv6,
	TypeMACAddress:    genMACAddress,
	TypeUserAgent:     pickFn(userAgents),
	TypeSlug:          genSlug,
	TypeHexColor:      genHexColor,
	TypeRGBColor:      genRGBColor,
	TypeMIMEType:      pickFn(mimeTypes),
	TypeFileExtension: pickFn(fileExtensions),
	TypeFileName:      genFileName,
	TypeSemver:        genSemver,

	// Text
	TypeWord:        pickFn(loremWords),
	TypeWords:       func() any { return wordRun(3) },
	TypeSentence:    genSentence,
	TypeParagraph:   genParagraph,
	TypeTitle:       genTitle,
	TypeDescription: genSentence,
	TypeQuote:       pickFn(quotes),
	TypeHashtag:     genHashtag,

	// Temporal
	TypeDate:       genRecentDate,
	TypePastDate:   genPastDate,
	TypeFutureDate: genFutureDate,
	TypeRecentDate: genRecentDate,
	TypeTime:       genTime,
	TypeWeekday:    pickFn(weekdays),
	TypeMonth:      pickFn(months),
	TypeYear:       func() any { return mathrand.IntN(55) + 1970 },

	// Boolean / numeric
	TypeBoolean:        func() any { return mathrand.IntN(2) == 1 },
	TypeNumber:         func() any { return mathrand.IntN(1000) },
	TypeFloat:          func() any { return round2(mathrand.Float64() * 1000) },
	TypePercentage:     func() any { return mathrand.IntN(101) },
	TypeRating:         func() any { return round1(mathrand.Float64()*4 + 1) },
	TypePrice:          genPrice,
	TypeQuantity:       func() any { return mathrand.IntN(100) + 1 },
	TypeCurrencyAmount: func() any { return round2(mathrand.Float64() * 10000) },

	// Commerce
	TypeProductName:        genProductName,
	TypeProductDescription: genProductDescription,
	TypeProductCategory:    pickFn(productCategories),
	TypeProductMaterial:    pickFn(productMaterials),
	TypeSKU:                genSKU,
	TypeBarcode:            genBarcode,
	TypeCurrencyCode:       pickFn(currencyCodes),
	TypeCreditCardNumber:   genCreditCard,
	TypeIBAN:               genIBAN,
	TypePaymentMethod:      pickFn(paymentMethods),
	TypeOrderStatus:        pickFn(orderStatuses),
	TypeDiscountCode:       genDiscountCode,

	// Company
	TypeCompanyName:   genCompanyName,
	TypeCompanySuffix: pickFn(companySuffixes),
	TypeDepartment:    pickFn(departments),
	TypeIndustry:      pickFn(industries),
	TypeJobTitle:      genJobTitle,
	TypeJobLevel:      pickFn(jobLevels),
	TypeCatchPhrase:   genCatchPhrase,
	TypeBuzzword:      pickFn(buzzwords),

	// Domain presets
	TypeUserRole:            pickFn(userRoles),
	TypeAccountStatus:       pickFn(accountStatuses),
	TypeSubscriptionPlan:    pickFn(subscriptionPlans),
	TypePriority:            pickFn(priorities),
	TypeSeverity:            pickFn(severities),
	TypeTaskStatus:          pickFn(taskStatuses),
	TypeHTTPMethod:          pickFn(httpMethods),
	TypeHTTPStatusCode:      func() any { return pick(httpStatusCodes) },
	TypeProgrammingLanguage: pickFn(programmingLanguages),
	TypeDatabaseType:        pickFn(databaseTypes),
	TypeCloudProvider:       pickFn(cloudProviders),
	TypeLanguage:            pickFn(languages),
	TypeBookTitle:           genBookTitle,
	TypeBookGenre:           pickFn(bookGenres),
	TypeMovieGenre:          pickFn(movieGenres),
	TypeMusicGenre:          pickFn(musicGenres),
	TypeAnimal:              pickFn(animals),
	TypeColor:               pickFn(colors),
	TypeVehicleBrand:        pickFn(vehicleBrands),
	TypeAirline:             pickFn(airlines),
	TypeAirportCode:         pickFn(airportCodes),
	TypeFlightNumber:        genFlightNumber,
	TypeEmoji:               pickFn(emojis),
	TypeSSN:                 genSSN,
	TypePassportNumber:      genPassport,
	TypeLicensePlate:        genLicensePlate,
	TypeBitcoinAddress:      genBitcoinAddress,
	TypeZodiacSign:          pickFn(zodiacSigns),
}

// Known reports whether a tag is part of the enumeration.
func Known(t Type) bool {
	if t == TypeCustom || t == TypeAutoIncrement {
		return true
	}
	_, ok := generators[t]
	return ok
}

// pick returns a uniformly random element of items.
func pick[T any](items []T) T {
	return items[mathrand.IntN(len(items))]
}

// pickFn adapts a string table into a generator function.
func pickFn(items []string) func() any {
	return func() any { return pick(items) }
}

func round1(f float64) float64 { return float64(int(f*10+0.5)) / 10 }
func round2(f float64) float64 { return float64(int(f*100+0.5)) / 100 }

// =============================================================================
// Recipes — Identity
// =============================================================================

const hexDigits = "0123456789abcdef"

func genObjectID() any {
	var sb strings.Builder
	for i := 0; i < 24; i++ {
		sb.WriteByte(hexDigits[mathrand.IntN(16)])
	}
	return sb.String()
}

// =============================================================================
// Recipes — Person
// =============================================================================

func genFullName() any {
	return pick(firstNames) + " " + pick(lastNames)
}

func genDateOfBirth() any {
	// 18 to 80 years back from now, day precision.
	days := mathrand.IntN(62*365) + 18*365
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}

func genPhone() any {
	return fmt.Sprintf("+1-%03d-%03d-%04d",
		mathrand.IntN(800)+200, mathrand.IntN(900)+100, mathrand.IntN(10000))
}

func genAvatar() any {
	return fmt.Sprintf("https://i.pravatar.cc/150?u=%s", id.Short())
}

func genUsername() any {
	return fmt.Sprintf("%s_%s%d",
		strings.ToLower(pick(firstNames)), strings.ToLower(pick(loremWords)),
		mathrand.IntN(100))
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"

func genPassword() any {
	b := make([]byte, 12)
	for i := range b {
		b[i] = passwordAlphabet[mathrand.IntN(len(passwordAlphabet))]
	}
	return string(b)
}

// =============================================================================
// Recipes — Address
// =============================================================================

func genZipCode() any {
	return fmt.Sprintf("%05d", mathrand.IntN(100000))
}

func genStreetAddress() any {
	return fmt.Sprintf("%d %s", mathrand.IntN(9999)+1, pick(streetNames))
}

func genLatitude() any {
	return round4(mathrand.Float64()*180 - 90)
}

func genLongitude() any {
	return round4(mathrand.Float64()*360 - 180)
}

func round4(f float64) float64 { return float64(int(f*10000)) / 10000 }

// =============================================================================
// Recipes — Internet
// =============================================================================

func genEmail() any {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(pick(firstNames)), strings.ToLower(pick(lastNames)),
		mathrand.IntN(100), pick(emailDomains))
}

func genDomainName() any {
	return fmt.Sprintf("%s%s.%s",
		strings.ToLower(pick(loremWords)), strings.ToLower(pick(productNouns)),
		pick(topLevelDomains))
}

func genURL() any {
	return fmt.Sprintf("https://%s/%s", genDomainName(), pick(loremWords))
}

func genIPv4() any {
	return fmt.Sprintf("%d.%d.%d.%d",
		mathrand.IntN(256), mathrand.IntN(256),
		mathrand.IntN(256), mathrand.IntN(256))
}

func genIPv6() any {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", mathrand.IntN(65536))
	}
	return strings.Join(groups, ":")
}

func genMACAddress() any {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		mathrand.IntN(256), mathrand.IntN(256), mathrand.IntN(256),
		mathrand.IntN(256), mathrand.IntN(256), mathrand.IntN(256))
}

func genSlug() any {
	return fmt.Sprintf("%s-%s-%d", pick(loremWords), pick(loremWords), mathrand.IntN(1000))
}

func genHexColor() any {
	return fmt.Sprintf("#%06x", mathrand.IntN(0x1000000))
}

func genRGBColor() any {
	return fmt.Sprintf("rgb(%d, %d, %d)",
		mathrand.IntN(256), mathrand.IntN(256), mathrand.IntN(256))
}

func genFileName() any {
	return fmt.Sprintf("%s_%s.%s", pick(loremWords), pick(loremWords), pick(fileExtensions))
}

func genSemver() any {
	return fmt.Sprintf("%d.%d.%d", mathrand.IntN(10), mathrand.IntN(20), mathrand.IntN(50))
}

// =============================================================================
// Recipes — Text
// =============================================================================

func wordRun(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = pick(loremWords)
	}
	return strings.Join(words, " ")
}

func genSentence() any {
	s := wordRun(mathrand.IntN(8) + 5)
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func genParagraph() any {
	sentences := make([]string, mathrand.IntN(3)+3)
	for i := range sentences {
		sentences[i] = genSentence().(string)
	}
	return strings.Join(sentences, " ")
}

func genTitle() any {
	words := strings.Fields(wordRun(mathrand.IntN(3) + 2))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func genHashtag() any {
	return "#" + pick(loremWords) + pick(loremWords)
}

// =============================================================================
// Recipes — Temporal
// =============================================================================

func genPastDate() any {
	d := time.Duration(mathrand.Int64N(int64(365 * 24 * time.Hour)))
	return time.Now().Add(-d).UTC().Format(time.RFC3339)
}

func genFutureDate() any {
	d := time.Duration(mathrand.Int64N(int64(365 * 24 * time.Hour)))
	return time.Now().Add(d).UTC().Format(time.RFC3339)
}

func genRecentDate() any {
	d := time.Duration(mathrand.Int64N(int64(30 * 24 * time.Hour)))
	return time.Now().Add(-d).UTC().Format(time.RFC3339)
}

func genTime() any {
	return fmt.Sprintf("%02d:%02d:%02d",
		mathrand.IntN(24), mathrand.IntN(60), mathrand.IntN(60))
}

// =============================================================================
// Recipes — Commerce
// =============================================================================

func genPrice() any {
	return round2(mathrand.Float64()*999 + 1)
}

func genProductName() any {
	return fmt.Sprintf("%s %s %s",
		pick(productAdjectives), pick(productMaterials), pick(productNouns))
}

func genProductDescription() any {
	return fmt.Sprintf("%s. Made from premium %s.",
		genProductName(), strings.ToLower(pick(productMaterials)))
}

func genSKU() any {
	letters := func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('A' + mathrand.IntN(26)))
		}
		return sb.String()
	}
	return fmt.Sprintf("%s-%04d-%s", letters(3), mathrand.IntN(10000), letters(2))
}

func genBarcode() any {
	var sb strings.Builder
	for i := 0; i < 13; i++ {
		sb.WriteByte(byte('0' + mathrand.IntN(10)))
	}
	return sb.String()
}

// genCreditCard generates a Luhn-valid 16-digit card number with a
// Visa-like prefix.
func genCreditCard() any {
	digits := make([]int, 16)
	digits[0] = 4
	for i := 1; i < 15; i++ {
		digits[i] = mathrand.IntN(10)
	}

	// Luhn check digit: double digits at even indices (odd positions
	// from the right in a 16-digit number).
	sum := 0
	for i := 0; i < 15; i++ {
		d := digits[i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	digits[15] = (10 - (sum % 10)) % 10

	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

func genIBAN() any {
	prefix := pick(ibanPrefixes)
	var sb strings.Builder
	sb.WriteString(prefix.country)
	sb.WriteString(fmt.Sprintf("%02d", mathrand.IntN(90)+10))
	sb.WriteString(prefix.bankPrefix)
	remaining := prefix.length - len(prefix.country) - 2 - len(prefix.bankPrefix)
	for i := 0; i < remaining; i++ {
		sb.WriteByte(byte('0' + mathrand.IntN(10)))
	}
	return sb.String()
}

func genDiscountCode() any {
	return fmt.Sprintf("%s%d", strings.ToUpper(pick(loremWords)), mathrand.IntN(90)+10)
}

// =============================================================================
// Recipes — Company
// =============================================================================

func genCompanyName() any {
	return pick(companyNames) + " " + pick(companySuffixes)
}

func genJobTitle() any {
	return fmt.Sprintf("%s %s %s", pick(jobLevels), pick(jobFields), pick(jobRoles))
}

func genCatchPhrase() any {
	return fmt.Sprintf("We %s %s %s",
		pick(catchPhraseVerbs), pick(buzzwords), pick(catchPhraseNouns))
}

// =============================================================================
// Recipes — Domain Presets
// =============================================================================

func genBookTitle() any {
	tpl := pick(bookTitleTemplates)
	n := strings.Count(tpl, "%s")
	if n == 1 {
		return fmt.Sprintf(tpl, pick(bookTitleNouns))
	}
	return fmt.Sprintf(tpl, pick(bookTitleNouns), pick(bookTitleNouns))
}

func genFlightNumber() any {
	return fmt.Sprintf("%c%c%d",
		'A'+rune(mathrand.IntN(26)), 'A'+rune(mathrand.IntN(26)),
		mathrand.IntN(9000)+100)
}

func genSSN() any {
	return fmt.Sprintf("%03d-%02d-%04d",
		mathrand.IntN(899)+100, mathrand.IntN(99)+1, mathrand.IntN(9999)+1)
}

func genPassport() any {
	var sb strings.Builder
	sb.WriteByte(byte('A' + mathrand.IntN(26)))
	sb.WriteByte(byte('A' + mathrand.IntN(26)))
	for i := 0; i < 7; i++ {
		sb.WriteByte(byte('0' + mathrand.IntN(10)))
	}
	return sb.String()
}

func genLicensePlate() any {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteByte(byte('A' + mathrand.IntN(26)))
	}
	sb.WriteByte('-')
	for i := 0; i < 4; i++ {
		sb.WriteByte(byte('0' + mathrand.IntN(10)))
	}
	return sb.String()
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func genBitcoinAddress() any {
	var sb strings.Builder
	sb.WriteByte('1')
	n := mathrand.IntN(9) + 25
	for i := 0; i < n; i++ {
		sb.WriteByte(base58Alphabet[mathrand.IntN(len(base58Alphabet))])
	}
	return sb.String()
}
