package version

import "fmt"

const (
	majorVersion uint32 = 0
	minorVersion uint32 = 2
	patchVersion uint32 = 0
)

// gitCommit is set by the linker:
//
//	-ldflags "-X massnet.org/sha256sum/version.gitCommit=<hash>"
var (
	gitCommit string
	ver       *version
)

type version struct {
	majorVersion uint32
	minorVersion uint32
	patchVersion uint32
	commit       string
}

// Format version to "<majorVersion>.<minorVersion>.<patchVersion>[+<gitCommit>]",
// like "1.0.0", or "1.0.0+1a2b3c4d".
func (v version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.majorVersion, v.minorVersion, v.patchVersion)
	if len(v.commit) >= 8 {
		s += "+" + v.commit[:8]
	}
	return s
}

func GetVersion() string {
	return ver.String()
}

func init() {
	ver = &version{
		majorVersion: majorVersion,
		minorVersion: minorVersion,
		patchVersion: patchVersion,
		commit:       gitCommit,
	}
}
