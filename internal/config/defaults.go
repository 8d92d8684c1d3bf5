package config

import (
	_ "embed"
)

//go:embed defaults/dropfour.yaml
var defaultYAML []byte
