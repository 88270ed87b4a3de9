//go:build profile

package main

import "github.com/pkg/profile"

func init() {
	startProfile = func() func() {
		return profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	}
}
