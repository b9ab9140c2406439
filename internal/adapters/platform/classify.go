// Package platform classifies the host operating system and CPU architecture.
package platform

import (
	"strings"

	"go.trai.ch/ktxload/internal/core/domain"
)

// AndroidVendor is the runtime vendor string that marks an Android host.
const AndroidVendor = "The Android Project"

type matchKind uint8

const (
	matchExact matchKind = iota
	matchPrefix
	matchContains
)

type rule[C any] struct {
	kind     matchKind
	patterns []string
	category C
}

func (r rule[C]) matches(s string) bool {
	for _, p := range r.patterns {
		switch r.kind {
		case matchExact:
			if s == p {
				return true
			}
		case matchPrefix:
			if strings.HasPrefix(s, p) {
				return true
			}
		case matchContains:
			if strings.Contains(s, p) {
				return true
			}
		}
	}
	return false
}

// Rules are evaluated top to bottom; more specific patterns must stay above
// the general ones they overlap with (arm64 before arm, mips64 before mips,
// exact ppc before the ppc prefix).
var osRules = []rule[domain.OSCategory]{
	{matchPrefix, []string{"mac os"}, domain.OSApple},
	{matchPrefix, []string{"windows"}, domain.OSWindows},
	{matchPrefix, []string{"linux"}, domain.OSLinux},
	{matchPrefix, []string{"sun"}, domain.OSSun},
}

var archRules = []rule[domain.ArchCategory]{
	{matchExact, []string{"i386", "x86", "i686"}, domain.ArchX86},
	{matchPrefix, []string{"amd64", "x86_64"}, domain.ArchX86_64},
	{matchPrefix, []string{"arm64"}, domain.ArchARM64},
	{matchExact, []string{"aarch64"}, domain.ArchARM64},
	{matchPrefix, []string{"arm"}, domain.ArchARM},
	{matchExact, []string{"ppc", "powerpc"}, domain.ArchPPC},
	{matchPrefix, []string{"ppc"}, domain.ArchPPC64},
	{matchPrefix, []string{"sparc"}, domain.ArchSparc},
	{matchPrefix, []string{"mips64"}, domain.ArchMIPS64},
	{matchPrefix, []string{"mips"}, domain.ArchMIPS},
	{matchContains, []string{"risc"}, domain.ArchRISC},
}

func classify[C any](rules []rule[C], s string, fallback C) C {
	s = strings.ToLower(s)
	for _, r := range rules {
		if r.matches(s) {
			return r.category
		}
	}
	return fallback
}

// ClassifyOS maps the vendor and OS name signals to an OS family.
// The exact Android vendor string takes precedence over the OS name.
func ClassifyOS(vendor, osName string) domain.OSCategory {
	if vendor == AndroidVendor {
		return domain.OSAndroid
	}
	return classify(osRules, osName, domain.OSUnknown)
}

// ClassifyArch maps an architecture name to an architecture family.
func ClassifyArch(arch string) domain.ArchCategory {
	return classify(archRules, arch, domain.ArchUnknown)
}

// Classify derives the platform from ambient signals.
func Classify(a domain.Ambient) domain.Platform {
	return domain.Platform{
		OS:   ClassifyOS(a.Vendor, a.OSName),
		Arch: ClassifyArch(a.Arch),
	}
}
