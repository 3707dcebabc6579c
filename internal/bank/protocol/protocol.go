// Package protocol names the commands and response codes exchanged on a bank
// connection and the field frames each command carries.
package protocol

import (
	"github.com/Lexv0lk/atm-bank/internal/pkg/wire"
)

type Command string

const (
	CommandLogin          Command = "LOGIN"
	CommandBalance        Command = "BALANCE"
	CommandDeposit        Command = "DEPOSIT"
	CommandWithdraw       Command = "WITHDRAW"
	CommandChangePassword Command = "CHANGE_PASSWORD"
	CommandTransfer       Command = "TRANSFER"
	CommandTransactions   Command = "TRANSACTIONS"
	CommandExit           Command = "EXIT"
)

type Status string

const (
	StatusSuccess            Status = "SUCCESS"
	StatusFail               Status = "FAIL"
	StatusGoodbye            Status = "GOODBYE"
	StatusLoginRequired      Status = "LOGIN_REQUIRED"
	StatusInsufficientFunds  Status = "INSUFFICIENT_FUNDS"
	StatusInvalidAmount      Status = "INVALID_AMOUNT"
	StatusInvalidOldPassword Status = "INVALID_OLD_PASSWORD"
	StatusUnknownAccount     Status = "UNKNOWN_ACCOUNT"
	StatusInvalidRecipient   Status = "INVALID_RECIPIENT"
	StatusUnknownCommand     Status = "UNKNOWN_COMMAND"
	StatusMalformedFrame     Status = "MALFORMED_FRAME"
	StatusInternalError      Status = "INTERNAL_ERROR"
)

type commandSpec struct {
	fields       []wire.Kind
	requiresAuth bool
}

var commands = map[Command]commandSpec{
	CommandLogin:          {fields: []wire.Kind{wire.KindText, wire.KindCipher}},
	CommandBalance:        {requiresAuth: true},
	CommandDeposit:        {fields: []wire.Kind{wire.KindText}, requiresAuth: true},
	CommandWithdraw:       {fields: []wire.Kind{wire.KindText}, requiresAuth: true},
	CommandChangePassword: {fields: []wire.Kind{wire.KindCipher, wire.KindCipher}, requiresAuth: true},
	CommandTransfer:       {fields: []wire.Kind{wire.KindText, wire.KindText}, requiresAuth: true},
	CommandTransactions:   {requiresAuth: true},
	CommandExit:           {},
}

func (c Command) Known() bool {
	_, ok := commands[c]
	return ok
}

// Fields returns the kinds of the field frames that follow the command tag.
func (c Command) Fields() []wire.Kind {
	return commands[c].fields
}

func (c Command) RequiresAuth() bool {
	return commands[c].requiresAuth
}

// Request builds the frames of a command: the tag followed by its fields.
func Request(command Command, fields ...wire.Frame) []wire.Frame {
	frames := make([]wire.Frame, 0, len(fields)+1)
	frames = append(frames, wire.Tag(string(command)))

	return append(frames, fields...)
}

func Response(status Status) wire.Frame {
	return wire.Tag(string(status))
}
