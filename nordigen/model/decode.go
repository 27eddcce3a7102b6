package model

import (
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "nordigen.model")

// Number numeric field sent by the API either as a JSON number or as a string ("730").
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	d := jx.DecodeBytes(b)
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return err
		}
		*n = Number(s)
	case jx.Number:
		v, err := d.Num()
		if err != nil {
			return err
		}
		*n = Number(v.String())
	default:
		// null or anything else, the value is still in Raw
		*n = ""
	}
	return nil
}

// Int value as int, 0 when empty or not an integer.
func (n Number) Int() int {
	v, err := strconv.Atoi(string(n))
	if err != nil {
		return 0
	}
	return v
}

// decode fills v and keeps the whole object in raw. A field whose JSON type does not fit
// the struct is left zero instead of failing the response.
func decode(b []byte, v any, raw *Payload) error {
	if err := json.Unmarshal(b, raw); err != nil {
		return err
	}

	err := json.Unmarshal(b, v)
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		logger.Debugf("field %s: JSON %s does not fit %s, available in Raw only", te.Field, te.Value, te.Type)
		return nil
	}
	return err
}
