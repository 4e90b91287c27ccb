// hwaccel_ref.go - Unaccelerated stubs.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// initHardwareAcceleration leaves the reference NTT in place. No
// accelerated kernel is bundled, so there is nothing to probe CPU
// features for.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
