//go:build !rfilterdebug

package state

const assertSessionContract = false
