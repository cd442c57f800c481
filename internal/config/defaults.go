package config

import (
	_ "embed"
)

//go:embed defaults/microtris.yaml
var defaultYAML []byte
