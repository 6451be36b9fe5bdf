package internal

const (
	PacketSize = 188
	SyncByte   = 0x47
	PtsWrap    = 1 << 33
	TimeScale  = 90000
)

// SignedPTSDiff returns p2 - p1 taking 33-bit wrap-around into account.
func SignedPTSDiff(p2, p1 int64) int64 {
	return (p2-p1+3*PtsWrap/2)%PtsWrap - PtsWrap/2
}
