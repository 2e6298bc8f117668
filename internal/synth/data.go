package synth

// Reference tables are fixed-size arrays so the set of values is part of the
// compiled binary. Changing any of them changes every generated record.

var firstNames = [...]string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Carol", "Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
}

var lastNames = [...]string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
}

var emailDomains = [...]string{
	"example.com", "example.org", "example.net", "test.io",
}

var colors = [...]string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
	"#F8C471", "#82E0AA", "#F1948A", "#AED6F1", "#A9DFBF",
}

var roles = [...]string{
	"Engineer", "Senior Engineer", "Staff Engineer", "Designer", "Product Manager",
	"Analyst", "Account Executive", "Support Specialist", "Recruiter", "Director",
	"Team Lead", "Consultant",
}

var departments = [...]string{
	"Engineering", "Design", "Product", "Sales", "Marketing",
	"Support", "Finance", "People", "Legal", "Operations",
}

var companies = [...]string{
	"TechCorp", "InnovateLLC", "FutureSystems", "NextGenSolutions", "DigitalDynamics",
	"Acme Industries", "Globex", "Initech", "Umbrella Labs", "Stark Works",
	"Northwind Traders", "Blue Harbor", "Summit Analytics", "Cobalt Cloud",
}

// cities and countries are aligned by position: countries[i] is the country
// of cities[i].
var cities = [...]string{
	"New York", "San Francisco", "Chicago", "Austin", "Seattle",
	"Toronto", "Vancouver", "London", "Manchester", "Dublin",
	"Berlin", "Munich", "Paris", "Lyon", "Amsterdam",
	"Madrid", "Barcelona", "Lisbon", "Stockholm", "Copenhagen",
	"Tokyo", "Osaka", "Sydney", "Melbourne", "Singapore",
	"Sao Paulo", "Mexico City", "Cape Town",
}

var countries = [len(cities)]string{
	"United States", "United States", "United States", "United States", "United States",
	"Canada", "Canada", "United Kingdom", "United Kingdom", "Ireland",
	"Germany", "Germany", "France", "France", "Netherlands",
	"Spain", "Spain", "Portugal", "Sweden", "Denmark",
	"Japan", "Japan", "Australia", "Australia", "Singapore",
	"Brazil", "Mexico", "South Africa",
}

// statuses is weighted by repetition: 14 active, 3 inactive, 2 pending,
// 1 suspended.
var statuses = [...]Status{
	StatusActive, StatusActive, StatusActive, StatusActive, StatusActive,
	StatusActive, StatusActive, StatusActive, StatusActive, StatusActive,
	StatusActive, StatusActive, StatusActive, StatusActive,
	StatusInactive, StatusInactive, StatusInactive,
	StatusPending, StatusPending,
	StatusSuspended,
}
