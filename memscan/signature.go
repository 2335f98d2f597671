package memscan

// GameSignature bundles a named game's HP and position search
// patterns, each as a pattern/mask pair plus a byte offset applied
// after a match is found, so a host can keep a small table of
// per-game signatures and feed them straight into SearchPatternMasked.
type GameSignature struct {
	GameName        string
	PackageName     string
	HPPattern       []byte
	HPMask          []bool
	HPOffset        int64
	PositionPattern []byte
	PositionMask    []bool
	PositionOffset  int64
}

// GenericUnitySignature returns an all-wildcard placeholder signature,
// mirroring the reference implementation's generic_unity(): a real
// signature is reverse-engineered per game and supplied by the host,
// not shipped here.
func GenericUnitySignature() GameSignature {
	return GameSignature{
		GameName:        "Generic Unity Game",
		PackageName:     "",
		HPPattern:       make([]byte, 8),
		HPMask:          make([]bool, 8),
		HPOffset:        0,
		PositionPattern: make([]byte, 12),
		PositionMask:    make([]bool, 12),
		PositionOffset:  0,
	}
}
