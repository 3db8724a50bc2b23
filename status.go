package imap

// StatusItem is a data item which can be requested by a STATUS command.
type StatusItem string

const (
	StatusItemNumMessages StatusItem = "MESSAGES"
	StatusItemUIDNext     StatusItem = "UIDNEXT"
	StatusItemUIDValidity StatusItem = "UIDVALIDITY"
	StatusItemNumUnseen   StatusItem = "UNSEEN"
	StatusItemNumDeleted  StatusItem = "DELETED" // requires IMAP4rev2 or QUOTA
	StatusItemSize        StatusItem = "SIZE"    // requires IMAP4rev2 or STATUS=SIZE

	StatusItemAppendLimit    StatusItem = "APPENDLIMIT"     // requires APPENDLIMIT
	StatusItemDeletedStorage StatusItem = "DELETED-STORAGE" // requires QUOTA=RES-STORAGE

	// Removed in IMAP4rev2, still accepted from IMAP4rev1 clients.
	StatusItemNumRecent StatusItem = "RECENT"
)

// StatusItemValid reports whether item is a known STATUS data item for the
// given protocol version.
func StatusItemValid(item StatusItem, version ProtocolVersion) bool {
	switch item {
	case StatusItemNumMessages, StatusItemUIDNext, StatusItemUIDValidity, StatusItemNumUnseen,
		StatusItemNumDeleted, StatusItemSize, StatusItemAppendLimit, StatusItemDeletedStorage:
		return true
	case StatusItemNumRecent:
		return version == Rev1
	default:
		return false
	}
}

// StatusArguments contains the arguments of the STATUS command.
type StatusArguments struct {
	Tag     string
	Mailbox string
	Items   []StatusItem
}

func (args *StatusArguments) CommandTag() string { return args.Tag }
