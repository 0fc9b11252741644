package rational

import (
	"github.com/LeJamon/tpa/internal/bigint"
	"github.com/ugorji/go/codec"
)

// cborHandle is shared across Marshal/Unmarshal calls; codec.CborHandle
// is safe for concurrent read-only use once configured.
var cborHandle codec.CborHandle

// wireR is the CBOR wire shape for R: digit magnitudes plus sign
// flags, letting an R round-trip through storage without going
// through decimal text (unlike the lossy Value()).
type wireR struct {
	IntegerOnly bool
	Whole       []int64
	WholeNeg    bool
	Num         []int64
	NumNeg      bool
	Den         []int64
}

// MarshalBinary encodes r as CBOR.
func (r *R) MarshalBinary() ([]byte, error) {
	w := wireR{IntegerOnly: r.IntegerOnly}
	w.Whole, w.WholeNeg = r.Whole.Digits()
	if !r.IntegerOnly {
		w.Num, w.NumNeg = r.Num.Digits()
		w.Den, _ = r.Den.Digits()
	}

	var buf []byte
	enc := codec.NewEncoderBytes(&buf, &cborHandle)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary decodes CBOR produced by MarshalBinary into r,
// replacing its prior value only on success.
func (r *R) UnmarshalBinary(data []byte) error {
	var w wireR
	dec := codec.NewDecoderBytes(data, &cborHandle)
	if err := dec.Decode(&w); err != nil {
		return err
	}

	out := &R{IntegerOnly: w.IntegerOnly, Whole: bigint.FromDigits(w.Whole, w.WholeNeg)}
	if !w.IntegerOnly {
		out.Num = bigint.FromDigits(w.Num, w.NumNeg)
		out.Den = bigint.FromDigits(w.Den, false)
	}
	*r = *out
	return nil
}
