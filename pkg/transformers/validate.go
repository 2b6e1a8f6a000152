package transformers

import (
	"context"
	"fmt"
	"strings"

	"github.com/oarkflow/edi/pkg/utils"
)

// EnvelopeValidator rejects records whose payload cannot be an interchange
// before any parse work happens.
type EnvelopeValidator struct {
	InputField string
}

func NewEnvelopeValidator() *EnvelopeValidator {
	return &EnvelopeValidator{InputField: "raw_message"}
}

func (v *EnvelopeValidator) Validate(_ context.Context, rec utils.Record) error {
	raw, ok := rec[v.InputField].(string)
	if !ok {
		return fmt.Errorf("envelope validator: missing %s field", v.InputField)
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("envelope validator: empty payload")
	}
	if !strings.HasPrefix(trimmed, "ISA") {
		return fmt.Errorf("envelope validator: payload does not start with an interchange header")
	}
	return nil
}
