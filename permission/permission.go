// Package permission is the catalog of permissions which can be granted to
// principals.
//
// The catalog is static. Each permission has a kebab-case name, a
// description, and flags telling whether it can be granted to regular users
// and tenant administrators.
package permission

import (
	"fmt"

	"github.com/emersion/go-imapproto/imapwire"
)

// Permission is a permission of the catalog.
type Permission int

type class uint8

const (
	classUser class = 1 << iota
	classTenantAdmin
)

type info struct {
	name        string
	description string
	class       class
}

var byName map[string]Permission

func init() {
	byName = make(map[string]Permission, numPermissions)
	for i, info := range catalog {
		if _, dup := byName[info.name]; dup {
			panic(fmt.Errorf("permission: duplicate name %q", info.name))
		}
		byName[info.name] = Permission(i)
	}
}

func (p Permission) info() *info {
	if p < 0 || int(p) >= numPermissions {
		panic(fmt.Errorf("permission: unknown permission %d", int(p)))
	}
	return &catalog[p]
}

// Name returns the permission name, e.g. "imap-authenticate".
func (p Permission) Name() string {
	return p.info().name
}

func (p Permission) String() string {
	return p.Name()
}

// Description returns a human-readable description.
func (p Permission) Description() string {
	return p.info().description
}

// IsUserPermission reports whether the permission can be granted to a
// regular user.
func (p Permission) IsUserPermission() bool {
	return p.info().class&classUser != 0
}

// IsTenantAdminPermission reports whether the permission can be granted to a
// tenant administrator. All user permissions are tenant admin permissions.
func (p Permission) IsTenantAdminPermission() bool {
	return p.info().class&classTenantAdmin != 0
}

// All returns every permission, in catalog order.
func All() []Permission {
	l := make([]Permission, numPermissions)
	for i := range l {
		l[i] = Permission(i)
	}
	return l
}

// Lookup returns the permission with the specified name.
func Lookup(name string) (Permission, bool) {
	p, ok := byName[name]
	return p, ok
}

var commandPermissions = map[imapwire.Command]Permission{
	imapwire.CommandCapability:   IMAPCapability,
	imapwire.CommandAuthenticate: IMAPAuthenticate,
	imapwire.CommandLogin:        IMAPAuthenticate,
	imapwire.CommandEnable:       IMAPEnable,
	imapwire.CommandSelect:       IMAPSelect,
	imapwire.CommandExamine:      IMAPExamine,
	imapwire.CommandCreate:       IMAPCreate,
	imapwire.CommandDelete:       IMAPDelete,
	imapwire.CommandRename:       IMAPRename,
	imapwire.CommandSubscribe:    IMAPSubscribe,
	imapwire.CommandUnsubscribe:  IMAPSubscribe,
	imapwire.CommandList:         IMAPList,
	imapwire.CommandLsub:         IMAPLsub,
	imapwire.CommandNamespace:    IMAPNamespace,
	imapwire.CommandStatus:       IMAPStatus,
	imapwire.CommandAppend:       IMAPAppend,
	imapwire.CommandIdle:         IMAPIdle,
	imapwire.CommandExpunge:      IMAPExpunge,
	imapwire.CommandGetACL:       IMAPACLGet,
	imapwire.CommandSetACL:       IMAPACLSet,
	imapwire.CommandDeleteACL:    IMAPACLSet,
	imapwire.CommandMyRights:     IMAPMyRights,
	imapwire.CommandListRights:   IMAPListRights,
}

// ForCommand returns the permission required to run an IMAP command. Commands
// which are always allowed, such as NOOP and LOGOUT, have none.
func ForCommand(cmd imapwire.Command) (Permission, bool) {
	p, ok := commandPermissions[cmd]
	return p, ok
}
