package domain

// OSCategory is the operating-system family a native library is built for.
type OSCategory uint8

const (
	// OSUnknown is used when the host OS matches no known family.
	OSUnknown OSCategory = iota
	// OSAndroid is the Android runtime.
	OSAndroid
	// OSApple covers macOS.
	OSApple
	// OSLinux covers GNU/Linux and compatible systems.
	OSLinux
	// OSSun covers Solaris and illumos.
	OSSun
	// OSWindows covers Microsoft Windows.
	OSWindows
)

var osNames = [...]string{
	OSUnknown: "unknown",
	OSAndroid: "android",
	OSApple:   "apple",
	OSLinux:   "linux",
	OSSun:     "sun",
	OSWindows: "windows",
}

// String returns the lowercase token used in resource and cache paths.
func (c OSCategory) String() string {
	if int(c) < len(osNames) {
		return osNames[c]
	}
	return osNames[OSUnknown]
}

// ArchCategory is the CPU architecture family a native library is built for.
type ArchCategory uint8

const (
	// ArchUnknown is used when the host architecture matches no known family.
	ArchUnknown ArchCategory = iota
	ArchPPC
	ArchPPC64
	ArchSparc
	ArchX86
	ArchX86_64
	ArchARM
	ArchARM64
	ArchMIPS
	ArchMIPS64
	ArchRISC
)

var archNames = [...]string{
	ArchUnknown: "unknown",
	ArchPPC:     "ppc",
	ArchPPC64:   "ppc_64",
	ArchSparc:   "sparc",
	ArchX86:     "x86",
	ArchX86_64:  "x86_64",
	ArchARM:     "arm",
	ArchARM64:   "arm64",
	ArchMIPS:    "mips",
	ArchMIPS64:  "mips64",
	ArchRISC:    "risc",
}

// String returns the lowercase token used in resource and cache paths.
func (c ArchCategory) String() string {
	if int(c) < len(archNames) {
		return archNames[c]
	}
	return archNames[ArchUnknown]
}

// Platform is the classified host.
type Platform struct {
	OS   OSCategory
	Arch ArchCategory
}

// Prefix returns the shared-library file name prefix for the platform's OS.
func (p Platform) Prefix() string {
	switch p.OS {
	case OSAndroid, OSApple, OSLinux, OSSun:
		return "lib"
	default:
		return ""
	}
}

// Extension returns the shared-library file extension, without the dot.
func (p Platform) Extension() string {
	switch p.OS {
	case OSApple:
		return "dylib"
	case OSAndroid, OSLinux, OSSun:
		return "so"
	case OSWindows:
		return "dll"
	default:
		return ""
	}
}

// FileName builds the on-disk file name of a native library, e.g. "libktx.so".
// On an unknown OS the result degenerates to "base." since both prefix and
// extension are empty.
func (p Platform) FileName(base string) string {
	return p.Prefix() + base + "." + p.Extension()
}

// QualifiedName builds the platform-qualified library name, e.g. "ktx-linux-x86_64".
func (p Platform) QualifiedName(base string) string {
	return base + "-" + p.OS.String() + "-" + p.Arch.String()
}

// String renders the platform as "os/arch".
func (p Platform) String() string {
	return p.OS.String() + "/" + p.Arch.String()
}
