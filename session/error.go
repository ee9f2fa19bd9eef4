package session

// SetRecoverFunc sets a function called with the recovered value when a tick panics. Without one,
// panics propagate to the caller of Tick.
func (s *Session) SetRecoverFunc(f func(s *Session, v any)) {
	s.recoverFunc = f
}

func (s *Session) recoverError() {
	if recvFn := s.recoverFunc; recvFn != nil {
		if v := recover(); v != nil {
			recvFn(s, v)
		}
	}
}
