package boxed

// The sentinel table holds one Value per (ErrKind, Shape).  It is filled
// once during package initialization and never written again, so it may be
// read from any goroutine.
var sentinels = func() (t [numErrKinds][numShapes]Value) {
	for e := HadNull; e < numErrKinds; e++ {
		for s := LiteralShape; s < numShapes; s++ {
			t[e][s] = Value{err: e, shape: s}
		}
	}
	return
}()

var (
	HadNullLiteral = sentinels[HadNull][LiteralShape]
	HadNullArray   = sentinels[HadNull][ArrayShape]
	HadNullObject  = sentinels[HadNull][ObjectShape]
	HadNullNumber  = sentinels[HadNull][NumberShape]
	HadNullString  = sentinels[HadNull][StringShape]

	HadMissingLiteral = sentinels[HadMissing][LiteralShape]
	HadMissingArray   = sentinels[HadMissing][ArrayShape]
	HadMissingObject  = sentinels[HadMissing][ObjectShape]
	HadMissingNumber  = sentinels[HadMissing][NumberShape]
	HadMissingString  = sentinels[HadMissing][StringShape]

	HadInvalidLiteral = sentinels[HadInvalid][LiteralShape]
	HadInvalidArray   = sentinels[HadInvalid][ArrayShape]
	HadInvalidObject  = sentinels[HadInvalid][ObjectShape]
	HadInvalidNumber  = sentinels[HadInvalid][NumberShape]
	HadInvalidString  = sentinels[HadInvalid][StringShape]
)

// Sentinel returns the sentinel for e in shape s.  It panics if e is NoErr.
func Sentinel(e ErrKind, s Shape) Value {
	if e <= NoErr || e >= numErrKinds {
		panic("boxed: no sentinel for " + e.String())
	}
	if s < LiteralShape || s >= numShapes {
		s = LiteralShape
	}
	return sentinels[e][s]
}
