//go:build freebsd

package mounts

// Bits of statfs.f_flags from <sys/mount.h>.
const (
	mntRdonly      = 0x0000000000000001
	mntSynchronous = 0x0000000000000002
	mntNoexec      = 0x0000000000000004
	mntNosuid      = 0x0000000000000008
	mntUnion       = 0x0000000000000020
	mntAsync       = 0x0000000000000040
	mntExported    = 0x0000000000000100
	mntLocal       = 0x0000000000001000
	mntQuota       = 0x0000000000002000
	mntSuiddir     = 0x0000000000100000
	mntSoftdep     = 0x0000000000200000
	mntNosymfollow = 0x0000000000400000
	mntGjournal    = 0x0000000002000000
	mntMultilabel  = 0x0000000004000000
	mntAcls        = 0x0000000008000000
	mntNoatime     = 0x0000000010000000
	mntNoclusterr  = 0x0000000040000000
	mntNoclusterw  = 0x0000000080000000
)

// platformFlagNames follows the order and wording of mount(8).
var platformFlagNames = []FlagName{
	{mntAsync, "asynchronous"},
	{mntExported, "NFS exported"},
	{mntLocal, "local"},
	{mntNoatime, "noatime"},
	{mntNoexec, "noexec"},
	{mntNosuid, "nosuid"},
	{mntNosymfollow, "nosymfollow"},
	{mntQuota, "with quotas"},
	{mntRdonly, "read-only"},
	{mntSynchronous, "synchronous"},
	{mntUnion, "union"},
	{mntNoclusterr, "noclusterr"},
	{mntNoclusterw, "noclusterw"},
	{mntSuiddir, "suiddir"},
	{mntSoftdep, "soft-updates"},
	{mntMultilabel, "multilabel"},
	{mntAcls, "acls"},
	{mntGjournal, "gjournal"},
}
