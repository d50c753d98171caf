package transaction

import (
	"vapor/internal/domain"
	"vapor/pkg/logger"
)

// LoginTransaction opens the market session for the named user.
type LoginTransaction struct {
	base
}

func (t *LoginTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	user, err := market.GetUser(t.userID1)
	if err != nil {
		return err
	}

	if err := market.LoginUser(user); err != nil {
		return err
	}

	t.warnUserTypeDesync(reporter, user)
	t.warnUserCreditDesync(reporter, user)

	return nil
}

// LogoutTransaction closes the active session; the record's user field is
// informational only.
type LogoutTransaction struct {
	base
}

func (t *LogoutTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	user, err := market.LogoutUser()
	if err != nil {
		return err
	}

	t.warnUsernameDesync(reporter, user)
	t.warnUserTypeDesync(reporter, user)
	t.warnUserCreditDesync(reporter, user)

	return nil
}

// CreateTransaction adds a new user of the declared type and starting
// credit; requires a privileged session.
type CreateTransaction struct {
	base
}

func (t *CreateTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	user := domain.NewUser(t.userID1, t.credit, t.userType)

	return market.AddUser(user)
}

// DeleteTransaction removes the named user; requires a privileged session
// and never removes the active user.
type DeleteTransaction struct {
	base
}

func (t *DeleteTransaction) Execute(market *domain.Market, reporter logger.Reporter) error {
	user, err := market.GetUser(t.userID1)
	if err != nil {
		return err
	}

	if err := market.RemoveUser(user); err != nil {
		return err
	}

	t.warnUserTypeDesync(reporter, user)
	t.warnUserCreditDesync(reporter, user)

	return nil
}
