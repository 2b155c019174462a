//go:build darwin

package mounts

// Bits of statfs.f_flags from <sys/mount.h>.
const (
	mntRdonly          = 0x00000001
	mntSynchronous     = 0x00000002
	mntNoexec          = 0x00000004
	mntNosuid          = 0x00000008
	mntNodev           = 0x00000010
	mntUnion           = 0x00000020
	mntAsync           = 0x00000040
	mntExported        = 0x00000100
	mntQuarantine      = 0x00000400
	mntLocal           = 0x00001000
	mntQuota           = 0x00002000
	mntDontbrowse      = 0x00100000
	mntIgnoreOwnership = 0x00200000
	mntAutomounted     = 0x00400000
	mntJournaled       = 0x00800000
	mntNoatime         = 0x10000000
)

// platformFlagNames follows the order and wording of mount(8).
var platformFlagNames = []FlagName{
	{mntAsync, "asynchronous"},
	{mntExported, "NFS exported"},
	{mntLocal, "local"},
	{mntNoatime, "noatime"},
	{mntNoexec, "noexec"},
	{mntNosuid, "nosuid"},
	{mntNodev, "nodev"},
	{mntQuota, "with quotas"},
	{mntRdonly, "read-only"},
	{mntSynchronous, "synchronous"},
	{mntUnion, "union"},
	{mntQuarantine, "quarantine"},
	{mntDontbrowse, "nobrowse"},
	{mntIgnoreOwnership, "noowners"},
	{mntAutomounted, "automounted"},
	{mntJournaled, "journaled"},
}
