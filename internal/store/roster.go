package store

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/domain"
	apperrors "github.com/antocd/clubman-go/pkg/errors"
)

// RosterEntry pairs a player with the jersey number keying it.
type RosterEntry struct {
	Number int
	Player domain.Player
}

// Roster holds the squad in memory, keyed by jersey number. It lives only for
// the duration of the process.
type Roster struct {
	players map[int]domain.Player
	logger  *zap.Logger
}

func NewRoster(logger *zap.Logger) *Roster {
	return &Roster{
		players: make(map[int]domain.Player),
		logger:  logger,
	}
}

// Add inserts the player at the given jersey number, overwriting any player
// already wearing it.
func (r *Roster) Add(number int, p domain.Player) {
	if _, taken := r.players[number]; taken {
		r.logger.Debug("overwriting jersey number", zap.Int("number", number))
	}
	r.players[number] = p
	r.logger.Debug("player added", zap.Int("number", number), zap.String("dni", p.DNI))
}

// Get looks up the player wearing the given number.
func (r *Roster) Get(number int) (domain.Player, bool) {
	p, ok := r.players[number]
	return p, ok
}

// Remove takes the player at the given number off the roster and returns it.
func (r *Roster) Remove(number int) (domain.Player, error) {
	p, ok := r.players[number]
	if !ok {
		return domain.Player{}, apperrors.NewNotFoundError("player", formatNumber(number))
	}
	delete(r.players, number)
	r.logger.Debug("player removed", zap.Int("number", number), zap.String("dni", p.DNI))
	return p, nil
}

// List returns all entries in ascending jersey order.
func (r *Roster) List() []RosterEntry {
	entries := make([]RosterEntry, 0, len(r.players))
	for number, p := range r.players {
		entries = append(entries, RosterEntry{Number: number, Player: p})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Number < entries[j].Number })
	return entries
}

// FilterByPosition returns the entries whose player covers the given
// position, in ascending jersey order.
func (r *Roster) FilterByPosition(pos domain.Position) []RosterEntry {
	entries := make([]RosterEntry, 0)
	for _, entry := range r.List() {
		if entry.Player.Position == pos {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (r *Roster) Len() int {
	return len(r.players)
}

func formatNumber(number int) string {
	return "jersey " + strconv.Itoa(number)
}
