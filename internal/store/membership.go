package store

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/domain"
	apperrors "github.com/antocd/clubman-go/pkg/errors"
)

// Membership holds the club's member collection in memory. Lookups match on
// DNI alone; with duplicate DNIs the first match wins.
type Membership struct {
	members []domain.Member
	logger  *zap.Logger
}

func NewMembership(logger *zap.Logger) *Membership {
	return &Membership{logger: logger}
}

// Add appends the member to the collection. Duplicate DNIs are not rejected.
func (s *Membership) Add(m domain.Member) {
	s.members = append(s.members, m)
	s.logger.Debug("member added", zap.String("dni", m.DNI))
}

// Find returns the first member with the given DNI.
func (s *Membership) Find(dni string) (domain.Member, bool) {
	if i := s.indexOf(dni); i >= 0 {
		return s.members[i], true
	}
	return domain.Member{}, false
}

// Remove deletes the first member with the given DNI and returns it.
func (s *Membership) Remove(dni string) (domain.Member, error) {
	i := s.indexOf(dni)
	if i < 0 {
		return domain.Member{}, apperrors.NewNotFoundError("member", dni)
	}
	removed := s.members[i]
	s.members = append(s.members[:i], s.members[i+1:]...)
	s.logger.Debug("member removed", zap.String("dni", dni))
	return removed, nil
}

// Modify updates the first member with the given DNI in place. Fields left
// nil are untouched. Returns the updated member.
func (s *Membership) Modify(dni string, newName *string, newJoinDate *time.Time) (domain.Member, error) {
	i := s.indexOf(dni)
	if i < 0 {
		return domain.Member{}, apperrors.NewNotFoundError("member", dni)
	}
	if newName != nil {
		s.members[i].Name = *newName
	}
	if newJoinDate != nil {
		s.members[i].JoinDate = *newJoinDate
	}
	s.logger.Debug("member modified",
		zap.String("dni", dni),
		zap.Bool("name_changed", newName != nil),
		zap.Bool("join_date_changed", newJoinDate != nil),
	)
	return s.members[i], nil
}

// ListByName returns the members ordered by name, ascending.
func (s *Membership) ListByName() []domain.Member {
	out := s.Snapshot()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListByTenure returns the members ordered by tenure as of now, most senior
// first.
func (s *Membership) ListByTenure(now time.Time) []domain.Member {
	out := s.Snapshot()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tenure(now) > out[j].Tenure(now) })
	return out
}

// Snapshot returns a copy of the collection in insertion order, for display
// and persistence.
func (s *Membership) Snapshot() []domain.Member {
	out := make([]domain.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Replace swaps in a freshly loaded collection, discarding the current one.
func (s *Membership) Replace(members []domain.Member) {
	s.members = make([]domain.Member, len(members))
	copy(s.members, members)
	s.logger.Debug("membership replaced", zap.Int("count", len(members)))
}

func (s *Membership) Len() int {
	return len(s.members)
}

func (s *Membership) indexOf(dni string) int {
	for i, m := range s.members {
		if m.DNI == dni {
			return i
		}
	}
	return -1
}
