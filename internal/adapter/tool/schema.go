package tool

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"ppa-agent/internal/domain/entity"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidArguments = errors.New("invalid tool arguments")

// argValidator компилирует схему инструмента один раз и проверяет по ней аргументы модели.
type argValidator struct {
	spec entity.ToolSpec

	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func newArgValidator(spec entity.ToolSpec) *argValidator {
	return &argValidator{spec: spec}
}

func (v *argValidator) compiled() (*gojsonschema.Schema, error) {
	v.once.Do(func() {
		v.schema, v.err = gojsonschema.NewSchema(gojsonschema.NewGoLoader(v.spec.Schema()))
	})
	return v.schema, v.err
}

func (v *argValidator) Validate(arguments string) error {
	schema, err := v.compiled()
	if err != nil {
		return fmt.Errorf("compiling %s schema: %w", v.spec.Name, err)
	}

	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(arguments))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArguments, v.spec.Name, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidArguments, v.spec.Name, strings.Join(msgs, "; "))
}
