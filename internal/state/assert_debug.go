//go:build rfilterdebug

package state

// assertSessionContract turns local filter misuse into a panic in debug builds.
const assertSessionContract = true
