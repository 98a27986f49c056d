package splice

import (
	"halcompat/errcode"
	i2c1 "halcompat/halv1/i2c"
)

// I2C converts a v1 I2C operation list to segments. op names the caller in
// the error returned for an unknown operation kind.
func I2C(op string, ops []i2c1.Operation) ([]Segment, error) {
	segs := make([]Segment, 0, len(ops))
	for _, o := range ops {
		switch o.Kind {
		case i2c1.OpRead:
			segs = append(segs, ReadSeg(o.Buf))
		case i2c1.OpWrite:
			segs = append(segs, WriteSeg(o.Buf))
		default:
			return nil, &errcode.E{C: errcode.InvalidParams, Op: op, Msg: "unknown operation " + o.Kind.String()}
		}
	}
	return segs, nil
}
