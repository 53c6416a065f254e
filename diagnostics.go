package dove

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/k0kubun/pp/v3"
)

// PayloadFormatter renders a payload for trace records.
type PayloadFormatter func(any) string

var prettyPrinter = func() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer
}()

// PrettyPayload renders payloads with field names, without colors.
func PrettyPayload(v any) string {
	return prettyPrinter.Sprint(v)
}

// JSONPayload renders payloads as compact JSON, falling back to %+v when the
// payload cannot be marshaled.
func JSONPayload(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
