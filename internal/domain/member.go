package domain

import (
	"fmt"
	"time"
)

// Member is one club member. DNI is the lookup key for removal, modification
// and equality; the store does not enforce its uniqueness.
type Member struct {
	DNI      string    `json:"dni"`
	Name     string    `json:"name"`
	JoinDate time.Time `json:"join_date"`
}

func NewMember(dni, name string, joinDate time.Time) Member {
	return Member{DNI: dni, Name: name, JoinDate: joinDate}
}

// Tenure returns the member's whole years in the club as of now, counting a
// year only once its anniversary has been reached.
func (m Member) Tenure(now time.Time) int {
	if now.Before(m.JoinDate) {
		return -wholeYears(now, m.JoinDate)
	}
	return wholeYears(m.JoinDate, now)
}

func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := time.Date(from.Year()+years, from.Month(), from.Day(), 0, 0, 0, 0, to.Location())
	if to.Before(anniversary) {
		years--
	}
	return years
}

// Display renders the member the way the listing menus show it, tenure
// computed against now.
func (m Member) Display(now time.Time) string {
	return fmt.Sprintf("Member{dni=%s, name=%s, joined=%s, tenure=%d}",
		m.DNI, m.Name, m.JoinDate.Format(DateLayout), m.Tenure(now))
}

func (m Member) String() string {
	return m.Display(time.Now())
}
