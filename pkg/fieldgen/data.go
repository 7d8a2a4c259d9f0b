package fieldgen

// =============================================================================
// Sample Data — Person
// =============================================================================

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Maria", "Ahmed",
	"Fatima", "Wei", "Mei", "Hiroshi", "Yuki", "Lars", "Ingrid", "Diego",
	"Sofia", "Liam", "Emma", "Noah", "Olivia", "Aiden", "Ava",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Nguyen", "Kim", "Chen", "Singh", "Kumar", "Ali", "Novak",
	"Schmidt", "Müller", "Rossi", "Silva", "Santos", "Andersson",
}

var genders = []string{"male", "female", "non-binary", "other"}

var nationalities = []string{
	"American", "British", "Canadian", "German", "French", "Spanish",
	"Italian", "Japanese", "Chinese", "Indian", "Brazilian", "Mexican",
	"Australian", "Dutch", "Swedish", "Korean", "Turkish", "Egyptian",
}

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// =============================================================================
// Sample Data — Address
// =============================================================================

var countries = []string{
	"United States", "United Kingdom", "Canada", "Germany", "France",
	"Spain", "Italy", "Japan", "China", "India", "Brazil", "Mexico",
	"Australia", "Netherlands", "Sweden", "South Korea", "Turkey", "Egypt",
	"Argentina", "Poland", "Portugal", "Norway", "Denmark", "Switzerland",
}

var countryCodes = []string{
	"US", "GB", "CA", "DE", "FR", "ES", "IT", "JP", "CN", "IN", "BR",
	"MX", "AU", "NL", "SE", "KR", "TR", "EG", "AR", "PL", "PT", "NO",
}

var cities = []string{
	"New York", "London", "Paris", "Tokyo", "Berlin", "Madrid", "Rome",
	"Amsterdam", "Toronto", "Sydney", "Singapore", "Dubai", "Mumbai",
	"São Paulo", "Mexico City", "Seoul", "Istanbul", "Cairo", "Lagos",
	"Stockholm", "Vienna", "Prague", "Lisbon", "Dublin", "Oslo", "Helsinki",
}

var states = []string{
	"California", "Texas", "Florida", "New York", "Pennsylvania", "Illinois",
	"Ohio", "Georgia", "North Carolina", "Michigan", "Washington", "Arizona",
	"Massachusetts", "Colorado", "Oregon", "Virginia", "Nevada", "Utah",
}

var streetNames = []string{
	"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Elm Street",
	"Park Avenue", "Washington Boulevard", "Lake View Road", "Hillcrest Drive",
	"Sunset Boulevard", "River Road", "Church Street", "Highland Avenue",
	"Willow Way", "Chestnut Street", "Franklin Avenue", "Meadow Lane",
}

var timezones = []string{
	"UTC", "America/New_York", "America/Chicago", "America/Denver",
	"America/Los_Angeles", "Europe/London", "Europe/Paris", "Europe/Berlin",
	"Asia/Tokyo", "Asia/Shanghai", "Asia/Kolkata", "Asia/Dubai",
	"Australia/Sydney", "America/Sao_Paulo", "Africa/Cairo",
}

// =============================================================================
// Sample Data — Internet
// =============================================================================

var emailDomains = []string{
	"example.com", "mail.com", "inbox.net", "fastmail.org", "webmail.io",
	"postbox.dev", "courier.app",
}

var topLevelDomains = []string{"com", "net", "org", "io", "dev", "app", "co"}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
}

var mimeTypes = []string{
	"application/json", "application/xml", "application/pdf",
	"application/zip", "application/octet-stream",
	"text/html", "text/plain", "text/css", "text/csv",
	"image/png", "image/jpeg", "image/gif", "image/svg+xml", "image/webp",
	"audio/mpeg", "audio/wav", "video/mp4", "video/webm",
	"multipart/form-data",
}

var fileExtensions = []string{
	"pdf", "jpg", "png", "gif", "doc", "docx", "xls", "xlsx", "csv",
	"txt", "html", "css", "js", "json", "xml", "zip", "tar", "gz",
	"mp3", "mp4", "wav", "svg", "md", "yaml", "toml", "log",
}

// =============================================================================
// Sample Data — Text
// =============================================================================

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
	"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
	"voluptate", "velit", "esse", "cillum", "fugiat", "nulla", "pariatur",
}

var quotes = []string{
	"The only way to do great work is to love what you do.",
	"Simplicity is the ultimate sophistication.",
	"Make it work, make it right, make it fast.",
	"Premature optimization is the root of all evil.",
	"Talk is cheap. Show me the code.",
	"First, solve the problem. Then, write the code.",
	"Programs must be written for people to read.",
	"The best error message is the one that never shows up.",
}

// =============================================================================
// Sample Data — Temporal
// =============================================================================

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var months = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// =============================================================================
// Sample Data — Commerce
// =============================================================================

var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek", "Gorgeous",
	"Practical", "Modern", "Vintage", "Premium", "Luxurious", "Compact",
	"Ergonomic", "Lightweight", "Durable",
}

var productMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton", "Silk", "Leather",
	"Bamboo", "Bronze", "Copper", "Ceramic", "Plastic", "Glass", "Marble",
	"Titanium",
}

var productNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse", "Backpack", "Watch",
	"Wallet", "Headphones", "Speaker", "Notebook", "Pen", "Mug", "Bottle",
	"Gloves",
}

var productCategories = []string{
	"Electronics", "Furniture", "Clothing", "Books", "Toys", "Sports",
	"Garden", "Kitchen", "Beauty", "Automotive", "Office", "Outdoors",
}

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD",
	"MXN", "SGD", "HKD", "NOK", "KRW", "TRY", "INR", "BRL", "ZAR",
}

var paymentMethods = []string{
	"credit_card", "debit_card", "paypal", "bank_transfer", "apple_pay",
	"google_pay", "crypto", "invoice",
}

var orderStatuses = []string{
	"pending", "processing", "shipped", "delivered", "cancelled", "refunded",
}

// ibanPrefix defines country code, total IBAN length, and a sample bank code.
type ibanPrefix struct {
	country    string
	length     int
	bankPrefix string
}

var ibanPrefixes = []ibanPrefix{
	{"GB", 22, "WEST"},
	{"DE", 22, "DEUT"},
	{"FR", 27, "BNPA"},
	{"ES", 24, "BBVA"},
	{"IT", 27, "UCRI"},
	{"NL", 18, "ABNA"},
}

// =============================================================================
// Sample Data — Company
// =============================================================================

var companyNames = []string{
	"Acme", "Globex", "Initech", "Umbrella", "Stark", "Wayne", "Wonka",
	"Cyberdyne", "Soylent", "Hooli", "Vehement", "Massive Dynamic",
	"Pied Piper", "Aperture", "Black Mesa", "Tyrell", "Weyland",
}

var companySuffixes = []string{
	"Inc", "LLC", "Ltd", "Group", "Corp", "Holdings", "Labs", "Partners",
}

var departments = []string{
	"Engineering", "Marketing", "Sales", "Finance", "Human Resources",
	"Operations", "Legal", "Support", "Product", "Design", "Research",
}

var industries = []string{
	"Technology", "Healthcare", "Finance", "Retail", "Manufacturing",
	"Education", "Energy", "Transportation", "Media", "Hospitality",
	"Agriculture", "Construction", "Telecommunications",
}

var jobLevels = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}

var jobFields = []string{
	"Software", "Data", "Product", "Marketing", "Sales", "Operations",
	"Security", "Infrastructure", "Quality", "Research",
}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Architect", "Consultant",
	"Developer", "Specialist", "Coordinator", "Strategist",
}

var buzzwords = []string{
	"synergy", "scalability", "disruption", "leverage", "bandwidth",
	"alignment", "paradigm", "ecosystem", "pivot", "traction", "runway",
}

var catchPhraseVerbs = []string{
	"empower", "streamline", "optimize", "transform", "accelerate",
	"unlock", "orchestrate", "reimagine",
}

var catchPhraseNouns = []string{
	"workflows", "experiences", "solutions", "platforms", "insights",
	"outcomes", "pipelines", "ecosystems",
}

// =============================================================================
// Sample Data — Domain Presets
// =============================================================================

var userRoles = []string{"admin", "editor", "viewer", "owner", "member", "guest"}

var accountStatuses = []string{"active", "inactive", "suspended", "pending", "closed"}

var subscriptionPlans = []string{"free", "starter", "pro", "business", "enterprise"}

var priorities = []string{"low", "medium", "high", "urgent"}

var severities = []string{"trivial", "minor", "major", "critical", "blocker"}

var taskStatuses = []string{"todo", "in_progress", "in_review", "done", "blocked"}

var httpMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

var httpStatusCodes = []int{
	200, 201, 204, 301, 302, 304, 400, 401, 403, 404, 409, 422, 429,
	500, 502, 503,
}

var programmingLanguages = []string{
	"Go", "Python", "JavaScript", "TypeScript", "Rust", "Java", "Kotlin",
	"Swift", "Ruby", "C++", "C#", "Elixir", "Haskell", "Scala", "PHP",
}

var databaseTypes = []string{
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Cassandra",
	"DynamoDB", "Elasticsearch", "ClickHouse", "CockroachDB",
}

var cloudProviders = []string{
	"AWS", "Google Cloud", "Azure", "DigitalOcean", "Cloudflare",
	"Hetzner", "Linode", "Fly.io", "Vercel", "Railway",
}

var languages = []string{
	"English", "Spanish", "Mandarin", "Hindi", "Arabic", "French",
	"Portuguese", "Russian", "Japanese", "German", "Korean", "Italian",
}

var bookTitleTemplates = []string{
	"The %s of %s", "A %s in %s", "%s and the %s", "Beyond the %s",
	"The Last %s", "Children of %s", "Shadow of the %s",
}

var bookTitleNouns = []string{
	"Garden", "River", "Mountain", "Kingdom", "Storm", "Mirror", "Tower",
	"Forest", "Ocean", "Empire", "Machine", "Library",
}

var bookGenres = []string{
	"Fantasy", "Science Fiction", "Mystery", "Thriller", "Romance",
	"Historical Fiction", "Biography", "Horror", "Poetry", "Self-Help",
}

var movieGenres = []string{
	"Action", "Comedy", "Drama", "Horror", "Science Fiction", "Romance",
	"Thriller", "Documentary", "Animation", "Western", "Musical",
}

var musicGenres = []string{
	"Rock", "Pop", "Jazz", "Classical", "Hip Hop", "Electronic", "Country",
	"Blues", "Reggae", "Metal", "Folk", "R&B",
}

var animals = []string{
	"Lion", "Tiger", "Elephant", "Giraffe", "Zebra", "Panda", "Koala",
	"Kangaroo", "Penguin", "Dolphin", "Eagle", "Owl", "Wolf", "Fox",
	"Bear", "Rabbit", "Deer", "Otter",
}

var colors = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral", "Indigo", "Amber",
	"Jade", "Scarlet", "Turquoise", "Lavender", "Maroon", "Teal",
	"Orchid", "Cyan", "Magenta", "Gold", "Silver", "Pearl", "Sapphire",
}

var vehicleBrands = []string{
	"Toyota", "Ford", "Volkswagen", "BMW", "Mercedes-Benz", "Honda",
	"Tesla", "Audi", "Hyundai", "Kia", "Volvo", "Porsche", "Subaru",
}

var airlines = []string{
	"Delta", "United", "Lufthansa", "Emirates", "Qantas", "KLM",
	"Air France", "British Airways", "Singapore Airlines", "ANA",
}

var airportCodes = []string{
	"JFK", "LAX", "ORD", "LHR", "CDG", "FRA", "AMS", "NRT", "SIN",
	"DXB", "SYD", "GRU", "YYZ", "MAD", "FCO", "CPH",
}

var emojis = []string{
	"😀", "😂", "🤔", "😎", "🥳", "🚀", "🔥", "✨", "🎉", "💡",
	"🌈", "🍕", "☕", "🎸", "⚡", "🌟", "🐙", "🦄",
}

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo", "Libra",
	"Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}
