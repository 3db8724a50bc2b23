package imap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emersion/go-imapproto"
)

func TestCapSet_Has(t *testing.T) {
	caps := imap.CapSet{
		imap.CapIMAP4rev2:   {},
		imap.CapLiteralPlus: {},
	}
	assert.True(t, caps.Has(imap.CapIMAP4rev2))
	assert.True(t, caps.Has(imap.CapIdle))
	assert.True(t, caps.Has(imap.CapLiteralMinus))
	assert.False(t, caps.Has(imap.CapQuota))
	assert.False(t, caps.Has(imap.CapIMAP4rev1))
	assert.Equal(t, imap.Rev2, caps.ProtocolVersion())

	caps = imap.CapSet{imap.CapIMAP4rev1: {}, imap.CapUTF8Only: {}}
	assert.False(t, caps.Has(imap.CapIdle))
	assert.True(t, caps.Has(imap.CapUTF8Accept))
	assert.Equal(t, imap.Rev1, caps.ProtocolVersion())
}

func TestCapSet_extensions(t *testing.T) {
	caps := imap.CapSet{
		imap.CapIMAP4rev1:       {},
		imap.AuthCap("PLAIN"):   {},
		imap.AuthCap("XOAUTH2"): {},
		imap.CapQuota:           {},
	}
	caps[imap.QuotaResourceCap(imap.QuotaResourceStorage)] = struct{}{}
	caps[imap.QuotaResourceCap(imap.QuotaResourceMessage)] = struct{}{}
	assert.Equal(t, imap.CapAuthPlain, imap.AuthCap("PLAIN"))

	mechs := caps.AuthMechanisms()
	sort.Strings(mechs)
	assert.Equal(t, []string{"PLAIN", "XOAUTH2"}, mechs)

	resources := caps.QuotaResourceTypes()
	assert.ElementsMatch(t, []imap.QuotaResourceType{imap.QuotaResourceStorage, imap.QuotaResourceMessage}, resources)
	assert.Equal(t, imap.Cap("QUOTA=RES-STORAGE"), imap.QuotaResourceCap(imap.QuotaResourceStorage))
}

func TestCanonicalFlag(t *testing.T) {
	assert.Equal(t, imap.FlagSeen, imap.CanonicalFlag("\\SEEN"))
	assert.Equal(t, imap.FlagDeleted, imap.CanonicalFlag("\\deleted"))
	assert.Equal(t, imap.Flag("$junk"), imap.CanonicalFlag("$junk"))
}

func TestProtocolVersion_String(t *testing.T) {
	assert.Equal(t, "IMAP4rev1", imap.Rev1.String())
	assert.Equal(t, "IMAP4rev2", imap.Rev2.String())
}
