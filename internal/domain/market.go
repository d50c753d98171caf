package domain

import (
	"fmt"
	"sort"
)

// EndOfDay marks state that buffers changes until the day ends.
type EndOfDay interface {
	EndDay()
}

// Market is the single mutable aggregate: the user directory, the one-slot
// login session, the auction sale flag, the statistics ledger and the set
// of catalogues awaiting an end-of-day commit.
type Market struct {
	users         map[string]*User
	activeUser    *User
	saleActivated bool
	stats         *Stats

	endOfDayBuffer map[EndOfDay]struct{}
}

func NewMarket() *Market {
	return &Market{
		users:          make(map[string]*User),
		stats:          NewStats(),
		endOfDayBuffer: make(map[EndOfDay]struct{}),
	}
}

// Users returns every user sorted by username.
func (m *Market) Users() []*User {
	names := make([]string, 0, len(m.users))
	for name := range m.users {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*User, 0, len(names))
	for _, name := range names {
		out = append(out, m.users[name])
	}

	return out
}

func (m *Market) HasUser(username string) bool {
	_, ok := m.users[username]
	return ok
}

// ForceAddUser inserts a user regardless of session privilege; used by the
// seed loader and snapshot restore.
func (m *Market) ForceAddUser(user *User) error {
	if m.HasUser(user.Username()) {
		return fmt.Errorf("%w: %s", ErrUserExists, user.Username())
	}

	m.users[user.Username()] = user

	return nil
}

// AddUser inserts a user; requires a privileged session.
func (m *Market) AddUser(user *User) error {
	if !m.IsPrivileged() {
		return ErrUnauthorized
	}

	return m.ForceAddUser(user)
}

// RemoveUser deletes a user; requires a privileged session and forbids
// removing the active user.
func (m *Market) RemoveUser(user *User) error {
	if !m.IsPrivileged() {
		return ErrUnauthorized
	}

	if m.activeUser == user {
		return fmt.Errorf("%w: %s", ErrSelfDeletion, user.Username())
	}

	delete(m.users, user.Username())

	return nil
}

func (m *Market) GetUser(username string) (*User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	return user, nil
}

func (m *Market) GetBuyer(username string) (*User, error) {
	user, err := m.GetUser(username)
	if err != nil {
		return nil, err
	}

	if !user.Type().IsBuyer() {
		return nil, fmt.Errorf("%w: %s", ErrNotBuyer, username)
	}

	return user, nil
}

func (m *Market) GetSeller(username string) (*User, error) {
	user, err := m.GetUser(username)
	if err != nil {
		return nil, err
	}

	if !user.Type().IsSeller() {
		return nil, fmt.Errorf("%w: %s", ErrNotSeller, username)
	}

	return user, nil
}

func (m *Market) ActiveUser() *User {
	return m.activeUser
}

func (m *Market) IsPrivileged() bool {
	return m.activeUser != nil && m.activeUser.Type().IsPrivileged()
}

// ResolveTarget maps a record's named user to the acting subject: a
// privileged session targets the named user, any other session targets
// itself regardless of the name in the record.
func (m *Market) ResolveTarget(username string) (*User, error) {
	if m.activeUser == nil {
		return nil, ErrNoActiveSession
	}

	if !m.IsPrivileged() {
		return m.activeUser, nil
	}

	return m.GetUser(username)
}

func (m *Market) LoginUser(user *User) error {
	if m.activeUser != nil {
		return fmt.Errorf("%w: %s giriş yapamaz", ErrSessionActive, user.Username())
	}

	m.activeUser = user

	return nil
}

func (m *Market) LogoutUser() (*User, error) {
	if m.activeUser == nil {
		return nil, ErrNoActiveSession
	}

	user := m.activeUser
	m.activeUser = nil

	return user, nil
}

func (m *Market) ToggleAuctionSale() error {
	if !m.IsPrivileged() {
		return ErrUnauthorized
	}

	m.saleActivated = !m.saleActivated

	return nil
}

func (m *Market) AuctionSale() bool {
	return m.saleActivated
}

// SetAuctionSale reinstates the sale flag on snapshot restore.
func (m *Market) SetAuctionSale(active bool) {
	m.saleActivated = active
}

func (m *Market) Stats() *Stats {
	return m.stats
}

// RestoreStats replaces the statistics ledger on snapshot restore.
func (m *Market) RestoreStats(stats *Stats) {
	m.stats = stats
}

// RegisterEndOfDay tracks a catalogue whose pending buffer must be
// committed when the day ends. Duplicates are collapsed by identity.
func (m *Market) RegisterEndOfDay(pending EndOfDay) {
	m.endOfDayBuffer[pending] = struct{}{}
}

// EndDay commits every registered catalogue's pending buffer, resets every
// user's daily allowance and clears the registry.
func (m *Market) EndDay() {
	for pending := range m.endOfDayBuffer {
		pending.EndDay()
	}
	m.endOfDayBuffer = make(map[EndOfDay]struct{})

	for _, user := range m.users {
		user.EndDay()
	}
}
