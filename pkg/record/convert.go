package record

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// assign stores value into dst, converting driver values such as int64 or
// []byte into the field's Go type. nil assigns the zero value.
func assign[V any](dst *V, value any) error {
	if value == nil {
		var zero V
		*dst = zero
		return nil
	}
	if v, ok := value.(V); ok {
		*dst = v
		return nil
	}

	var out V
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("cannot convert %T to %T: %w", value, out, err)
	}
	*dst = out
	return nil
}
