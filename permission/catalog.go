package permission

const (
	Impersonate Permission = iota
	UnlimitedRequests
	UnlimitedUploads
	DeleteSystemFolders
	MessageQueueList
	MessageQueueGet
	MessageQueueUpdate
	MessageQueueDelete
	OutgoingReportList
	OutgoingReportGet
	OutgoingReportDelete
	IncomingReportList
	IncomingReportGet
	IncomingReportDelete
	SettingsList
	SettingsUpdate
	SettingsDelete
	SettingsReload
	IndividualList
	IndividualGet
	IndividualUpdate
	IndividualDelete
	IndividualCreate
	GroupList
	GroupGet
	GroupUpdate
	GroupDelete
	GroupCreate
	DomainList
	DomainGet
	DomainCreate
	DomainUpdate
	DomainDelete
	TenantList
	TenantGet
	TenantCreate
	TenantUpdate
	TenantDelete
	MailingListList
	MailingListGet
	MailingListCreate
	MailingListUpdate
	MailingListDelete
	RoleList
	RoleGet
	RoleCreate
	RoleUpdate
	RoleDelete
	PrincipalList
	PrincipalGet
	PrincipalCreate
	PrincipalUpdate
	PrincipalDelete
	BlobFetch
	PurgeBlobStore
	PurgeDataStore
	PurgeLookupStore
	PurgeAccount
	FTSReindex
	Undelete
	DKIMSignatureCreate
	DKIMSignatureGet
	UpdateSpamFilter
	UpdateWebadmin
	LogsView
	SieveRun
	Restart
	TracingList
	TracingGet
	TracingLive
	MetricsList
	MetricsLive
	Authenticate
	AuthenticateOAuth
	EmailSend
	EmailReceive
	ManageEncryption
	ManagePasswords
	JMAPEmailGet
	JMAPMailboxGet
	JMAPThreadGet
	JMAPIdentityGet
	JMAPEmailSubmissionGet
	JMAPPushSubscriptionGet
	JMAPSieveScriptGet
	JMAPVacationResponseGet
	JMAPPrincipalGet
	JMAPQuotaGet
	JMAPBlobGet
	JMAPEmailSet
	JMAPMailboxSet
	JMAPIdentitySet
	JMAPEmailSubmissionSet
	JMAPPushSubscriptionSet
	JMAPSieveScriptSet
	JMAPVacationResponseSet
	JMAPEmailChanges
	JMAPMailboxChanges
	JMAPThreadChanges
	JMAPIdentityChanges
	JMAPEmailSubmissionChanges
	JMAPQuotaChanges
	JMAPEmailCopy
	JMAPBlobCopy
	JMAPEmailImport
	JMAPEmailParse
	JMAPEmailQueryChanges
	JMAPMailboxQueryChanges
	JMAPEmailSubmissionQueryChanges
	JMAPSieveScriptQueryChanges
	JMAPPrincipalQueryChanges
	JMAPQuotaQueryChanges
	JMAPEmailQuery
	JMAPMailboxQuery
	JMAPEmailSubmissionQuery
	JMAPSieveScriptQuery
	JMAPPrincipalQuery
	JMAPQuotaQuery
	JMAPSearchSnippet
	JMAPSieveScriptValidate
	JMAPBlobLookup
	JMAPBlobUpload
	JMAPEcho
	IMAPAuthenticate
	IMAPACLGet
	IMAPACLSet
	IMAPMyRights
	IMAPListRights
	IMAPAppend
	IMAPCapability
	IMAPID
	IMAPCopy
	IMAPMove
	IMAPCreate
	IMAPDelete
	IMAPEnable
	IMAPExpunge
	IMAPFetch
	IMAPIdle
	IMAPList
	IMAPLsub
	IMAPNamespace
	IMAPRename
	IMAPSearch
	IMAPSort
	IMAPSelect
	IMAPExamine
	IMAPStatus
	IMAPStore
	IMAPSubscribe
	IMAPThread
	POP3Authenticate
	POP3List
	POP3UIDL
	POP3Stat
	POP3Retr
	POP3Dele
	SieveAuthenticate
	SieveListScripts
	SieveSetActive
	SieveGetScript
	SievePutScript
	SieveDeleteScript
	SieveRenameScript
	SieveCheckScript
	SieveHaveSpace

	numPermissions = iota
)

var catalog = [numPermissions]info{
	Impersonate:                     {"impersonate", "Allows acting on behalf of another user", 0},
	UnlimitedRequests:               {"unlimited-requests", "Removes request limits or quotas", 0},
	UnlimitedUploads:                {"unlimited-uploads", "Removes upload size or frequency limits", classTenantAdmin},
	DeleteSystemFolders:             {"delete-system-folders", "Allows deletion of critical system folders", classTenantAdmin},
	MessageQueueList:                {"message-queue-list", "View message queue", classTenantAdmin},
	MessageQueueGet:                 {"message-queue-get", "Retrieve specific messages from the queue", classTenantAdmin},
	MessageQueueUpdate:              {"message-queue-update", "Modify queued messages", classTenantAdmin},
	MessageQueueDelete:              {"message-queue-delete", "Remove messages from the queue", classTenantAdmin},
	OutgoingReportList:              {"outgoing-report-list", "View reports for outgoing emails", classTenantAdmin},
	OutgoingReportGet:               {"outgoing-report-get", "Retrieve specific outgoing email reports", classTenantAdmin},
	OutgoingReportDelete:            {"outgoing-report-delete", "Remove outgoing email reports", classTenantAdmin},
	IncomingReportList:              {"incoming-report-list", "View reports for incoming emails", classTenantAdmin},
	IncomingReportGet:               {"incoming-report-get", "Retrieve specific incoming email reports", classTenantAdmin},
	IncomingReportDelete:            {"incoming-report-delete", "Remove incoming email reports", classTenantAdmin},
	SettingsList:                    {"settings-list", "View system settings", 0},
	SettingsUpdate:                  {"settings-update", "Modify system settings", 0},
	SettingsDelete:                  {"settings-delete", "Remove system settings", 0},
	SettingsReload:                  {"settings-reload", "Refresh system settings", 0},
	IndividualList:                  {"individual-list", "View list of individual users", classTenantAdmin},
	IndividualGet:                   {"individual-get", "Retrieve specific user information", classTenantAdmin},
	IndividualUpdate:                {"individual-update", "Modify user information", classTenantAdmin},
	IndividualDelete:                {"individual-delete", "Remove user accounts", classTenantAdmin},
	IndividualCreate:                {"individual-create", "Add new user accounts", classTenantAdmin},
	GroupList:                       {"group-list", "View list of user groups", classTenantAdmin},
	GroupGet:                        {"group-get", "Retrieve specific group information", classTenantAdmin},
	GroupUpdate:                     {"group-update", "Modify group information", classTenantAdmin},
	GroupDelete:                     {"group-delete", "Remove user groups", classTenantAdmin},
	GroupCreate:                     {"group-create", "Add new user groups", classTenantAdmin},
	DomainList:                      {"domain-list", "View list of email domains", classTenantAdmin},
	DomainGet:                       {"domain-get", "Retrieve specific domain information", classTenantAdmin},
	DomainCreate:                    {"domain-create", "Add new email domains", 0},
	DomainUpdate:                    {"domain-update", "Modify domain information", 0},
	DomainDelete:                    {"domain-delete", "Remove email domains", 0},
	TenantList:                      {"tenant-list", "View list of tenants (in multi-tenant setup)", 0},
	TenantGet:                       {"tenant-get", "Retrieve specific tenant information", 0},
	TenantCreate:                    {"tenant-create", "Add new tenants", 0},
	TenantUpdate:                    {"tenant-update", "Modify tenant information", 0},
	TenantDelete:                    {"tenant-delete", "Remove tenants", 0},
	MailingListList:                 {"mailing-list-list", "View list of mailing lists", classTenantAdmin},
	MailingListGet:                  {"mailing-list-get", "Retrieve specific mailing list information", classTenantAdmin},
	MailingListCreate:               {"mailing-list-create", "Create new mailing lists", classTenantAdmin},
	MailingListUpdate:               {"mailing-list-update", "Modify mailing list information", classTenantAdmin},
	MailingListDelete:               {"mailing-list-delete", "Remove mailing lists", classTenantAdmin},
	RoleList:                        {"role-list", "View list of roles", classTenantAdmin},
	RoleGet:                         {"role-get", "Retrieve specific role information", classTenantAdmin},
	RoleCreate:                      {"role-create", "Create new roles", classTenantAdmin},
	RoleUpdate:                      {"role-update", "Modify role information", classTenantAdmin},
	RoleDelete:                      {"role-delete", "Remove roles", classTenantAdmin},
	PrincipalList:                   {"principal-list", "View list of principals (users or system entities)", classTenantAdmin},
	PrincipalGet:                    {"principal-get", "Retrieve specific principal information", classTenantAdmin},
	PrincipalCreate:                 {"principal-create", "Create new principals", classTenantAdmin},
	PrincipalUpdate:                 {"principal-update", "Modify principal information", classTenantAdmin},
	PrincipalDelete:                 {"principal-delete", "Remove principals", classTenantAdmin},
	BlobFetch:                       {"blob-fetch", "Retrieve binary large objects", 0},
	PurgeBlobStore:                  {"purge-blob-store", "Clear the blob storage", 0},
	PurgeDataStore:                  {"purge-data-store", "Clear the data storage", 0},
	PurgeLookupStore:                {"purge-lookup-store", "Clear the lookup storage", 0},
	PurgeAccount:                    {"purge-account", "Completely remove an account and all associated data", classTenantAdmin},
	FTSReindex:                      {"fts-reindex", "Rebuild the full-text search index", 0},
	Undelete:                        {"undelete", "Restore deleted items", classTenantAdmin},
	DKIMSignatureCreate:             {"dkim-signature-create", "Create DKIM signatures for email authentication", classTenantAdmin},
	DKIMSignatureGet:                {"dkim-signature-get", "Retrieve DKIM signature information", classTenantAdmin},
	UpdateSpamFilter:                {"update-spam-filter", "Modify spam filter settings", 0},
	UpdateWebadmin:                  {"update-webadmin", "Modify web admin interface settings", 0},
	LogsView:                        {"logs-view", "Access system logs", 0},
	SieveRun:                        {"sieve-run", "Execute Sieve scripts for email filtering", 0},
	Restart:                         {"restart", "Restart the email server", 0},
	TracingList:                     {"tracing-list", "View list of system traces", 0},
	TracingGet:                      {"tracing-get", "Retrieve specific trace information", 0},
	TracingLive:                     {"tracing-live", "View real-time system traces", 0},
	MetricsList:                     {"metrics-list", "View list of system metrics", 0},
	MetricsLive:                     {"metrics-live", "View real-time system metrics", 0},
	Authenticate:                    {"authenticate", "Perform authentication", classUser | classTenantAdmin},
	AuthenticateOAuth:               {"authenticate-oauth", "Perform OAuth authentication", classUser | classTenantAdmin},
	EmailSend:                       {"email-send", "Send emails", classUser | classTenantAdmin},
	EmailReceive:                    {"email-receive", "Receive emails", classUser | classTenantAdmin},
	ManageEncryption:                {"manage-encryption", "Handle encryption settings and operations", classUser | classTenantAdmin},
	ManagePasswords:                 {"manage-passwords", "Manage user passwords", classUser | classTenantAdmin},
	JMAPEmailGet:                    {"jmap-email-get", "Retrieve emails via JMAP", classUser | classTenantAdmin},
	JMAPMailboxGet:                  {"jmap-mailbox-get", "Retrieve mailboxes via JMAP", classUser | classTenantAdmin},
	JMAPThreadGet:                   {"jmap-thread-get", "Retrieve email threads via JMAP", classUser | classTenantAdmin},
	JMAPIdentityGet:                 {"jmap-identity-get", "Retrieve user identities via JMAP", classUser | classTenantAdmin},
	JMAPEmailSubmissionGet:          {"jmap-email-submission-get", "Retrieve email submission info via JMAP", classUser | classTenantAdmin},
	JMAPPushSubscriptionGet:         {"jmap-push-subscription-get", "Retrieve push subscriptions via JMAP", classUser | classTenantAdmin},
	JMAPSieveScriptGet:              {"jmap-sieve-script-get", "Retrieve Sieve scripts via JMAP", classUser | classTenantAdmin},
	JMAPVacationResponseGet:         {"jmap-vacation-response-get", "Retrieve vacation responses via JMAP", classUser | classTenantAdmin},
	JMAPPrincipalGet:                {"jmap-principal-get", "Retrieve principal information via JMAP", classUser | classTenantAdmin},
	JMAPQuotaGet:                    {"jmap-quota-get", "Retrieve quota information via JMAP", classUser | classTenantAdmin},
	JMAPBlobGet:                     {"jmap-blob-get", "Retrieve blobs via JMAP", classUser | classTenantAdmin},
	JMAPEmailSet:                    {"jmap-email-set", "Modify emails via JMAP", classUser | classTenantAdmin},
	JMAPMailboxSet:                  {"jmap-mailbox-set", "Modify mailboxes via JMAP", classUser | classTenantAdmin},
	JMAPIdentitySet:                 {"jmap-identity-set", "Modify user identities via JMAP", classUser | classTenantAdmin},
	JMAPEmailSubmissionSet:          {"jmap-email-submission-set", "Modify email submission settings via JMAP", classUser | classTenantAdmin},
	JMAPPushSubscriptionSet:         {"jmap-push-subscription-set", "Modify push subscriptions via JMAP", classUser | classTenantAdmin},
	JMAPSieveScriptSet:              {"jmap-sieve-script-set", "Modify Sieve scripts via JMAP", classUser | classTenantAdmin},
	JMAPVacationResponseSet:         {"jmap-vacation-response-set", "Modify vacation responses via JMAP", classUser | classTenantAdmin},
	JMAPEmailChanges:                {"jmap-email-changes", "Track email changes via JMAP", classUser | classTenantAdmin},
	JMAPMailboxChanges:              {"jmap-mailbox-changes", "Track mailbox changes via JMAP", classUser | classTenantAdmin},
	JMAPThreadChanges:               {"jmap-thread-changes", "Track thread changes via JMAP", classUser | classTenantAdmin},
	JMAPIdentityChanges:             {"jmap-identity-changes", "Track identity changes via JMAP", classUser | classTenantAdmin},
	JMAPEmailSubmissionChanges:      {"jmap-email-submission-changes", "Track email submission changes via JMAP", classUser | classTenantAdmin},
	JMAPQuotaChanges:                {"jmap-quota-changes", "Track quota changes via JMAP", classUser | classTenantAdmin},
	JMAPEmailCopy:                   {"jmap-email-copy", "Copy emails via JMAP", classUser | classTenantAdmin},
	JMAPBlobCopy:                    {"jmap-blob-copy", "Copy blobs via JMAP", classUser | classTenantAdmin},
	JMAPEmailImport:                 {"jmap-email-import", "Import emails via JMAP", classUser | classTenantAdmin},
	JMAPEmailParse:                  {"jmap-email-parse", "Parse emails via JMAP", classUser | classTenantAdmin},
	JMAPEmailQueryChanges:           {"jmap-email-query-changes", "Track email query changes via JMAP", classUser | classTenantAdmin},
	JMAPMailboxQueryChanges:         {"jmap-mailbox-query-changes", "Track mailbox query changes via JMAP", classUser | classTenantAdmin},
	JMAPEmailSubmissionQueryChanges: {"jmap-email-submission-query-changes", "Track email submission query changes via JMAP", classUser | classTenantAdmin},
	JMAPSieveScriptQueryChanges:     {"jmap-sieve-script-query-changes", "Track Sieve script query changes via JMAP", classUser | classTenantAdmin},
	JMAPPrincipalQueryChanges:       {"jmap-principal-query-changes", "Track principal query changes via JMAP", classUser | classTenantAdmin},
	JMAPQuotaQueryChanges:           {"jmap-quota-query-changes", "Track quota query changes via JMAP", classUser | classTenantAdmin},
	JMAPEmailQuery:                  {"jmap-email-query", "Perform email queries via JMAP", classUser | classTenantAdmin},
	JMAPMailboxQuery:                {"jmap-mailbox-query", "Perform mailbox queries via JMAP", classUser | classTenantAdmin},
	JMAPEmailSubmissionQuery:        {"jmap-email-submission-query", "Perform email submission queries via JMAP", classUser | classTenantAdmin},
	JMAPSieveScriptQuery:            {"jmap-sieve-script-query", "Perform Sieve script queries via JMAP", classUser | classTenantAdmin},
	JMAPPrincipalQuery:              {"jmap-principal-query", "Perform principal queries via JMAP", classUser | classTenantAdmin},
	JMAPQuotaQuery:                  {"jmap-quota-query", "Perform quota queries via JMAP", classUser | classTenantAdmin},
	JMAPSearchSnippet:               {"jmap-search-snippet", "Retrieve search snippets via JMAP", classUser | classTenantAdmin},
	JMAPSieveScriptValidate:         {"jmap-sieve-script-validate", "Validate Sieve scripts via JMAP", classUser | classTenantAdmin},
	JMAPBlobLookup:                  {"jmap-blob-lookup", "Look up blobs via JMAP", classUser | classTenantAdmin},
	JMAPBlobUpload:                  {"jmap-blob-upload", "Upload blobs via JMAP", classUser | classTenantAdmin},
	JMAPEcho:                        {"jmap-echo", "Perform JMAP echo requests", classUser | classTenantAdmin},
	IMAPAuthenticate:                {"imap-authenticate", "Authenticate via IMAP", classUser | classTenantAdmin},
	IMAPACLGet:                      {"imap-acl-get", "Retrieve ACLs via IMAP", classUser | classTenantAdmin},
	IMAPACLSet:                      {"imap-acl-set", "Set ACLs via IMAP", classUser | classTenantAdmin},
	IMAPMyRights:                    {"imap-my-rights", "Retrieve own rights via IMAP", classUser | classTenantAdmin},
	IMAPListRights:                  {"imap-list-rights", "List rights via IMAP", classUser | classTenantAdmin},
	IMAPAppend:                      {"imap-append", "Append messages via IMAP", classUser | classTenantAdmin},
	IMAPCapability:                  {"imap-capability", "Retrieve server capabilities via IMAP", classUser | classTenantAdmin},
	IMAPID:                          {"imap-id", "Retrieve server ID via IMAP", classUser | classTenantAdmin},
	IMAPCopy:                        {"imap-copy", "Copy messages via IMAP", classUser | classTenantAdmin},
	IMAPMove:                        {"imap-move", "Move messages via IMAP", classUser | classTenantAdmin},
	IMAPCreate:                      {"imap-create", "Create mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPDelete:                      {"imap-delete", "Delete mailboxes or messages via IMAP", classUser | classTenantAdmin},
	IMAPEnable:                      {"imap-enable", "Enable IMAP extensions", classUser | classTenantAdmin},
	IMAPExpunge:                     {"imap-expunge", "Expunge deleted messages via IMAP", classUser | classTenantAdmin},
	IMAPFetch:                       {"imap-fetch", "Fetch messages or metadata via IMAP", classUser | classTenantAdmin},
	IMAPIdle:                        {"imap-idle", "Use IMAP IDLE command", classUser | classTenantAdmin},
	IMAPList:                        {"imap-list", "List mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPLsub:                        {"imap-lsub", "List subscribed mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPNamespace:                   {"imap-namespace", "Retrieve namespaces via IMAP", classUser | classTenantAdmin},
	IMAPRename:                      {"imap-rename", "Rename mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPSearch:                      {"imap-search", "Search messages via IMAP", classUser | classTenantAdmin},
	IMAPSort:                        {"imap-sort", "Sort messages via IMAP", classUser | classTenantAdmin},
	IMAPSelect:                      {"imap-select", "Select mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPExamine:                     {"imap-examine", "Examine mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPStatus:                      {"imap-status", "Retrieve mailbox status via IMAP", classUser | classTenantAdmin},
	IMAPStore:                       {"imap-store", "Modify message flags via IMAP", classUser | classTenantAdmin},
	IMAPSubscribe:                   {"imap-subscribe", "Subscribe to mailboxes via IMAP", classUser | classTenantAdmin},
	IMAPThread:                      {"imap-thread", "Thread messages via IMAP", classUser | classTenantAdmin},
	POP3Authenticate:                {"pop3-authenticate", "Authenticate via POP3", classUser | classTenantAdmin},
	POP3List:                        {"pop3-list", "List messages via POP3", classUser | classTenantAdmin},
	POP3UIDL:                        {"pop3-uidl", "Retrieve unique IDs via POP3", classUser | classTenantAdmin},
	POP3Stat:                        {"pop3-stat", "Retrieve mailbox statistics via POP3", classUser | classTenantAdmin},
	POP3Retr:                        {"pop3-retr", "Retrieve messages via POP3", classUser | classTenantAdmin},
	POP3Dele:                        {"pop3-dele", "Mark messages for deletion via POP3", classUser | classTenantAdmin},
	SieveAuthenticate:               {"sieve-authenticate", "Authenticate for Sieve script management", classUser | classTenantAdmin},
	SieveListScripts:                {"sieve-list-scripts", "List Sieve scripts", classUser | classTenantAdmin},
	SieveSetActive:                  {"sieve-set-active", "Set active Sieve script", classUser | classTenantAdmin},
	SieveGetScript:                  {"sieve-get-script", "Retrieve Sieve scripts", classUser | classTenantAdmin},
	SievePutScript:                  {"sieve-put-script", "Upload Sieve scripts", classUser | classTenantAdmin},
	SieveDeleteScript:               {"sieve-delete-script", "Delete Sieve scripts", classUser | classTenantAdmin},
	SieveRenameScript:               {"sieve-rename-script", "Rename Sieve scripts", classUser | classTenantAdmin},
	SieveCheckScript:                {"sieve-check-script", "Validate Sieve scripts", classUser | classTenantAdmin},
	SieveHaveSpace:                  {"sieve-have-space", "Check available space for Sieve scripts", classUser | classTenantAdmin},
}
