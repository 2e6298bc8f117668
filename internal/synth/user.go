package synth

import (
	"strconv"
	"strings"
)

// Status is the account state of a synthetic user.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
)

// Per-field seeds. Each attribute hashes the index under its own seed so
// fields of one record do not move together.
const (
	seedFirstName  uint32 = 1
	seedLastName   uint32 = 2
	seedDomain     uint32 = 3
	seedColor      uint32 = 4
	seedRole       uint32 = 5
	seedDepartment uint32 = 6
	seedCompany    uint32 = 7
	seedCity       uint32 = 8
	seedStatus     uint32 = 9
	seedJoinYear   uint32 = 10
)

const (
	// EmailSuffixThreshold is the highest index whose email local part is
	// the bare name pair. Above it the base-36 index is appended.
	EmailSuffixThreshold = 1000

	BaseJoinYear = 2015
	JoinYearSpan = 10
)

// User is one synthetic person.
type User struct {
	ID         int    `json:"id" yaml:"id"`
	FirstName  string `json:"firstName" yaml:"firstName"`
	LastName   string `json:"lastName" yaml:"lastName"`
	Email      string `json:"email" yaml:"email"`
	Initials   string `json:"initials" yaml:"initials"`
	Color      string `json:"color" yaml:"color"`
	Role       string `json:"role" yaml:"role"`
	Department string `json:"department" yaml:"department"`
	Company    string `json:"company" yaml:"company"`
	City       string `json:"city" yaml:"city"`
	Country    string `json:"country" yaml:"country"`
	Status     Status `json:"status" yaml:"status"`
	JoinYear   int    `json:"joinYear" yaml:"joinYear"`
}

// Synthesize builds the user with the given 1-based id. Callers validate
// that id >= 1; smaller values still produce a record but carry no meaning.
func Synthesize(id int) User {
	first := Pick(firstNames[:], id, seedFirstName)
	last := Pick(lastNames[:], id, seedLastName)
	city := PickIndex(len(cities), id, seedCity)

	return User{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		Email:      email(first, last, id),
		Initials:   initials(first, last),
		Color:      Pick(colors[:], id, seedColor),
		Role:       Pick(roles[:], id, seedRole),
		Department: Pick(departments[:], id, seedDepartment),
		Company:    Pick(companies[:], id, seedCompany),
		City:       cities[city],
		Country:    countries[city],
		Status:     Pick(statuses[:], id, seedStatus),
		JoinYear:   BaseJoinYear + int(Mix(id, seedJoinYear)%JoinYearSpan),
	}
}

// CountryOf returns the country aligned with city, or "" for a city that is
// not in the reference table. Synthesize does not call it; tests use it to
// check the city/country pairing of generated records.
func CountryOf(city string) string {
	for i, c := range cities {
		if c == city {
			return countries[i]
		}
	}
	return ""
}

func email(first, last string, id int) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(first))
	b.WriteByte('.')
	b.WriteString(strings.ToLower(last))
	if id > EmailSuffixThreshold {
		b.WriteString(strconv.FormatInt(int64(id), 36))
	}
	b.WriteByte('@')
	b.WriteString(Pick(emailDomains[:], id, seedDomain))
	return b.String()
}

func initials(first, last string) string {
	return strings.ToUpper(first[:1] + last[:1])
}
