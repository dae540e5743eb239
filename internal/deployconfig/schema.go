package deployconfig

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

//go:embed schema.cue
var schemaSource []byte

// Validator checks deployment configs against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#DeploymentConfig"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #DeploymentConfig definition")
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// Validate reports every value that is not a 0x-prefixed hex id.
func (v *Validator) Validate(c DeploymentConfig) error {
	val := v.ctx.Encode(map[string]string(c))
	unified := v.schema.Unify(val)

	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var msgs []string
	for _, e := range cueerrors.Errors(err) {
		msgs = append(msgs, strings.TrimSpace(cueerrors.Details(e, nil)))
	}
	return oerrors.NewValidationError(
		"deployment config does not match schema:\n"+strings.Join(msgs, "\n"),
		"",
		"every value must be an object id of the form 0x<hex>",
	)
}
