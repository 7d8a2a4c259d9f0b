// Package fieldgen generates randomized record values from typed field
// specifications. A field spec names a semantic type tag drawn from a closed
// enumeration; each tag maps to a generation recipe. Generation is
// non-deterministic by design except for the Custom and AutoIncrement tags.
package fieldgen

// Type is a semantic field type tag.
type Type string

// Identity tags.
const (
	TypeUUID          Type = "uuid"
	TypeObjectID      Type = "objectId"
	TypeShortID       Type = "shortId"
	TypeAutoIncrement Type = "autoIncrement"
	TypeCustom        Type = "custom"
)

// Person tags.
const (
	TypeFirstName   Type = "firstName"
	TypeLastName    Type = "lastName"
	TypeFullName    Type = "fullName"
	TypeGender      Type = "gender"
	TypeAge         Type = "age"
	TypeDateOfBirth Type = "dateOfBirth"
	TypePhone       Type = "phone"
	TypeAvatar      Type = "avatar"
	TypeUsername    Type = "username"
	TypePassword    Type = "password"
	TypeNationality Type = "nationality"
	TypeBloodType   Type = "bloodType"
)

// Address tags.
const (
	TypeCountry        Type = "country"
	TypeCountryCode    Type = "countryCode"
	TypeCity           Type = "city"
	TypeState          Type = "state"
	TypeZipCode        Type = "zipCode"
	TypeStreetAddress  Type = "streetAddress"
	TypeStreetName     Type = "streetName"
	TypeBuildingNumber Type = "buildingNumber"
	TypeLatitude       Type = "latitude"
	TypeLongitude      Type = "longitude"
	TypeTimezone       Type = "timezone"
)

// Internet tags.
const (
	TypeEmail         Type = "email"
	TypeURL           Type = "url"
	TypeDomainName    Type = "domainName"
	TypeIPv4          Type = "ipv4"
	TypeIPv6          Type = "ipv6"
	TypeMACAddress    Type = "macAddress"
	TypeUserAgent     Type = "userAgent"
	TypeSlug          Type = "slug"
	TypeHexColor      Type = "hexColor"
	TypeRGBColor      Type = "rgbColor"
	TypeMIMEType      Type = "mimeType"
	TypeFileExtension Type = "fileExtension"
	TypeFileName      Type = "fileName"
	TypeSemver        Type = "semver"
)

// Text tags.
const (
	TypeWord        Type = "word"
	TypeWords       Type = "words"
	TypeSentence    Type = "sentence"
	TypeParagraph   Type = "paragraph"
	TypeTitle       Type = "title"
	TypeDescription Type = "description"
	TypeQuote       Type = "quote"
	TypeHashtag     Type = "hashtag"
)

// Temporal tags.
const (
	TypeDate       Type = "date"
	TypePastDate   Type = "pastDate"
	TypeFutureDate Type = "futureDate"
	TypeRecentDate Type = "recentDate"
	TypeTime       Type = "time"
	TypeWeekday    Type = "weekday"
	TypeMonth      Type = "month"
	TypeYear       Type = "year"
)

// Boolean and numeric tags.
const (
	TypeBoolean        Type = "boolean"
	TypeNumber         Type = "number"
	TypeFloat          Type = "float"
	TypePercentage     Type = "percentage"
	TypeRating         Type = "rating"
	TypePrice          Type = "price"
	TypeQuantity       Type = "quantity"
	TypeCurrencyAmount Type = "currencyAmount"
)

// Commerce tags.
const (
	TypeProductName        Type = "productName"
	TypeProductDescription Type = "productDescription"
	TypeProductCategory    Type = "productCategory"
	TypeProductMaterial    Type = "productMaterial"
	TypeSKU                Type = "sku"
	TypeBarcode            Type = "barcode"
	TypeCurrencyCode       Type = "currencyCode"
	TypeCreditCardNumber   Type = "creditCardNumber"
	TypeIBAN               Type = "iban"
	TypePaymentMethod      Type = "paymentMethod"
	TypeOrderStatus        Type = "orderStatus"
	TypeDiscountCode       Type = "discountCode"
)

// Company tags.
const (
	TypeCompanyName   Type = "companyName"
	TypeCompanySuffix Type = "companySuffix"
	TypeDepartment    Type = "department"
	TypeIndustry      Type = "industry"
	TypeJobTitle      Type = "jobTitle"
	TypeJobLevel      Type = "jobLevel"
	TypeCatchPhrase   Type = "catchPhrase"
	TypeBuzzword      Type = "buzzword"
)

// Domain preset tags.
const (
	TypeUserRole            Type = "userRole"
	TypeAccountStatus       Type = "accountStatus"
	TypeSubscriptionPlan    Type = "subscriptionPlan"
	TypePriority            Type = "priority"
	TypeSeverity            Type = "severity"
	TypeTaskStatus          Type = "taskStatus"
	TypeHTTPMethod          Type = "httpMethod"
	TypeHTTPStatusCode      Type = "httpStatusCode"
	TypeProgrammingLanguage Type = "programmingLanguage"
	TypeDatabaseType        Type = "databaseType"
	TypeCloudProvider       Type = "cloudProvider"
	TypeLanguage            Type = "language"
	TypeBookTitle           Type = "bookTitle"
	TypeBookGenre           Type = "bookGenre"
	TypeMovieGenre          Type = "movieGenre"
	TypeMusicGenre          Type = "musicGenre"
	TypeAnimal              Type = "animal"
	TypeColor               Type = "color"
	TypeVehicleBrand        Type = "vehicleBrand"
	TypeAirline             Type = "airline"
	TypeAirportCode         Type = "airportCode"
	TypeFlightNumber        Type = "flightNumber"
	TypeEmoji               Type = "emoji"
	TypeSSN                 Type = "ssn"
	TypePassportNumber      Type = "passportNumber"
	TypeLicensePlate        Type = "licensePlate"
	TypeBitcoinAddress      Type = "bitcoinAddress"
	TypeZodiacSign          Type = "zodiacSign"
)

// Field is a typed column definition. CustomValue is only consulted for
// the Custom tag, which echoes it verbatim.
type Field struct {
	Name        string `json:"name" bson:"name"`
	Type        Type   `json:"type" bson:"type"`
	CustomValue string `json:"customValue,omitempty" bson:"customValue,omitempty"`
}
