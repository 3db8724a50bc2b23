package imap

// QuotaResourceType is a QUOTA resource type.
//
// See RFC 9208 section 5.
type QuotaResourceType string

const (
	QuotaResourceStorage           QuotaResourceType = "STORAGE"
	QuotaResourceMessage           QuotaResourceType = "MESSAGE"
	QuotaResourceMailbox           QuotaResourceType = "MAILBOX"
	QuotaResourceAnnotationStorage QuotaResourceType = "ANNOTATION-STORAGE"
)

// QuotaArguments contains the arguments of the GETQUOTA and GETQUOTAROOT
// commands.
//
// For GETQUOTAROOT, Name is a mailbox name in its logical (Unicode) form.
// For GETQUOTA, Name is a quota root, taken verbatim.
type QuotaArguments struct {
	Tag  string
	Name string
}

func (args *QuotaArguments) CommandTag() string { return args.Tag }

// SetQuotaArguments contains the arguments of the SETQUOTA command.
type SetQuotaArguments struct {
	Tag    string
	Root   string
	Limits map[QuotaResourceType]int64
}

func (args *SetQuotaArguments) CommandTag() string { return args.Tag }
