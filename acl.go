package imap

import (
	"fmt"
	"strings"
)

// RightSet is a set of ACL rights, as defined in RFC 4314.
type RightSet string

type Right byte

const (
	RightLookup     = Right('l') // mailbox is visible to LIST/LSUB commands
	RightRead       = Right('r') // SELECT the mailbox, perform CHECK, FETCH, PARTIAL, SEARCH, COPY from mailbox
	RightSeen       = Right('s') // keep seen/unseen information across sessions (STORE SEEN flag)
	RightWrite      = Right('w') // STORE flags other than SEEN and DELETED
	RightInsert     = Right('i') // perform APPEND, COPY into mailbox
	RightPost       = Right('p') // send mail to submission address for mailbox, not enforced by IMAP4 itself
	RightCreate     = Right('c') // CREATE new sub-mailboxes in any implementation-defined hierarchy
	RightDelete     = Right('d') // STORE DELETED flag, perform EXPUNGE
	RightAdminister = Right('a') // perform SETACL

	AllRights = RightSet("lrswipcda")

	// RFC 4314 rights which split the "c" and "d" rights of RFC 2086.
	splitRights = "kxte"
)

type RightsIdentifier string

const RightsIdentifierAnyone = RightsIdentifier("anyone")

type RightModification byte

const (
	RightModificationReplace = RightModification(0)
	RightModificationAdd     = RightModification('+')
	RightModificationRemove  = RightModification('-')
)

// NewRights converts rights string into RightModification and RightSet with
// validation.
func NewRights(rights string) (RightModification, RightSet, error) {
	rm := RightModificationReplace

	if len(rights) == 0 {
		return rm, RightSet(rights), nil
	}

	if rights[0] == byte(RightModificationAdd) || rights[0] == byte(RightModificationRemove) {
		rm = RightModification(rights[0])
		rights = rights[1:]
	}

	for _, r := range rights {
		if !strings.ContainsRune(string(AllRights)+splitRights, r) {
			return rm, "", fmt.Errorf("unsupported right: '%v'", string(r))
		}
	}

	return rm, RightSet(rights), nil
}

// SetACLArguments contains the arguments of the SETACL command.
type SetACLArguments struct {
	Tag          string
	Mailbox      string
	Identifier   RightsIdentifier
	Modification RightModification
	Rights       RightSet
}

func (args *SetACLArguments) CommandTag() string { return args.Tag }

// ACLArguments contains the arguments of the DELETEACL and LISTRIGHTS
// commands.
type ACLArguments struct {
	Tag        string
	Mailbox    string
	Identifier RightsIdentifier
}

func (args *ACLArguments) CommandTag() string { return args.Tag }
