package imapwire

import (
	"fmt"
)

// Command is the kind of an IMAP command.
//
// The set of commands is closed: the Receiver rejects any other keyword with
// ErrUnknownCommand.
type Command int

const (
	CommandCapability Command = 1 + iota
	CommandNoop
	CommandLogout
	CommandStartTLS
	CommandAuthenticate
	CommandLogin
	CommandEnable
	CommandSelect
	CommandExamine
	CommandCreate
	CommandDelete
	CommandRename
	CommandSubscribe
	CommandUnsubscribe
	CommandList
	CommandLsub
	CommandNamespace
	CommandStatus
	CommandAppend
	CommandIdle
	CommandCheck
	CommandClose
	CommandUnselect
	CommandExpunge
	CommandGetQuota
	CommandGetQuotaRoot
	CommandSetQuota
	CommandGetACL
	CommandSetACL
	CommandDeleteACL
	CommandMyRights
	CommandListRights

	numCommands = iota
)

var commandNames = [numCommands]string{
	CommandCapability - 1:   "CAPABILITY",
	CommandNoop - 1:         "NOOP",
	CommandLogout - 1:       "LOGOUT",
	CommandStartTLS - 1:     "STARTTLS",
	CommandAuthenticate - 1: "AUTHENTICATE",
	CommandLogin - 1:        "LOGIN",
	CommandEnable - 1:       "ENABLE",
	CommandSelect - 1:       "SELECT",
	CommandExamine - 1:      "EXAMINE",
	CommandCreate - 1:       "CREATE",
	CommandDelete - 1:       "DELETE",
	CommandRename - 1:       "RENAME",
	CommandSubscribe - 1:    "SUBSCRIBE",
	CommandUnsubscribe - 1:  "UNSUBSCRIBE",
	CommandList - 1:         "LIST",
	CommandLsub - 1:         "LSUB",
	CommandNamespace - 1:    "NAMESPACE",
	CommandStatus - 1:       "STATUS",
	CommandAppend - 1:       "APPEND",
	CommandIdle - 1:         "IDLE",
	CommandCheck - 1:        "CHECK",
	CommandClose - 1:        "CLOSE",
	CommandUnselect - 1:     "UNSELECT",
	CommandExpunge - 1:      "EXPUNGE",
	CommandGetQuota - 1:     "GETQUOTA",
	CommandGetQuotaRoot - 1: "GETQUOTAROOT",
	CommandSetQuota - 1:     "SETQUOTA",
	CommandGetACL - 1:       "GETACL",
	CommandSetACL - 1:       "SETACL",
	CommandDeleteACL - 1:    "DELETEACL",
	CommandMyRights - 1:     "MYRIGHTS",
	CommandListRights - 1:   "LISTRIGHTS",
}

var commandsByName map[string]Command

func init() {
	commandsByName = make(map[string]Command, len(commandNames))
	for i, name := range commandNames {
		commandsByName[name] = Command(i + 1)
	}
}

// Commands returns all known commands.
func Commands() []Command {
	l := make([]Command, numCommands)
	for i := range l {
		l[i] = Command(i + 1)
	}
	return l
}

// String implements fmt.Stringer. It returns the command keyword.
func (cmd Command) String() string {
	if cmd < 1 || int(cmd) > numCommands {
		panic(fmt.Errorf("imapwire: unknown command %d", int(cmd)))
	}
	return commandNames[cmd-1]
}

// LookupCommand returns the command for a keyword. The keyword is matched
// case-insensitively.
func LookupCommand(name string) (Command, bool) {
	b := []byte(name)
	for i, ch := range b {
		b[i] = toUpper(ch)
	}
	cmd, ok := commandsByName[string(b)]
	return cmd, ok
}

// AllowsUID reports whether the command may be prefixed with "UID".
func (cmd Command) AllowsUID() bool {
	return cmd == CommandExpunge
}

// switchesInput reports whether the client follows the command with
// something else than the next command.
func (cmd Command) switchesInput() bool {
	switch cmd {
	case CommandIdle, CommandAuthenticate, CommandStartTLS:
		return true
	default:
		return false
	}
}
