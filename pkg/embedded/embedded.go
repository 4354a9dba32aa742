package embedded

import (
	_ "embed"
)

// Embed the preset data files
//
//go:embed data/cantus_firmi.yaml
var CantusFirmiYAML []byte
