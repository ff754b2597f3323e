package address

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/figure/v3"
)

// Hook lets figure read an Address written in any supported textual form.
var Hook = figure.Hooks{
	"address.Address": func(value interface{}) (reflect.Value, error) {
		switch v := value.(type) {
		case string:
			addr, err := Parse(v)
			if err != nil {
				return reflect.Value{}, errors.Wrap(err, "failed to unmarshal address")
			}

			return reflect.ValueOf(addr), nil
		default:
			return reflect.Value{}, fmt.Errorf("unexpected type %T for address.Address", value)
		}
	},
}
