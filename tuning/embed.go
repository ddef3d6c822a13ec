package tuning

import _ "embed"

//go:embed movement.yaml
var defaultMovement []byte
