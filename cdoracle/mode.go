package cdoracle

// ConnectMode is either idle or connecting from a node picked earlier. The
// zero value is idle.
type ConnectMode struct {
	from string
}

func Idle() ConnectMode {
	return ConnectMode{}
}

func ConnectingFrom(nodeID string) ConnectMode {
	return ConnectMode{from: nodeID}
}

func (m ConnectMode) IsIdle() bool {
	return m.from == ""
}

// From is the origin node while connecting and "" when idle.
func (m ConnectMode) From() string {
	return m.from
}
