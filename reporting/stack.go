package reporting

// Stack is the sequence of active test sets for one execution context.
// It is mutated only by the context that owns it, so it does not lock.
type Stack struct {
	sets []TestSet
}

// Push appends a test set, making it the one that receives results.
func (s *Stack) Push(ts TestSet) {
	s.sets = append(s.sets, ts)
}

// Pop removes and returns the most recently pushed test set. Popping an
// empty stack returns the process-wide default set: underflow is not an
// error, it just means no test set is active.
func (s *Stack) Pop() TestSet {
	if len(s.sets) == 0 {
		return DefaultTestSet()
	}
	ts := s.sets[len(s.sets)-1]
	s.sets = s.sets[:len(s.sets)-1]
	return ts
}

// Current returns the most recently pushed test set without removing it,
// or the default set if nothing is active.
func (s *Stack) Current() TestSet {
	if len(s.sets) == 0 {
		return DefaultTestSet()
	}
	return s.sets[len(s.sets)-1]
}

// Depth returns the number of explicitly pushed test sets. The default
// set at the implicit bottom is not counted.
func (s *Stack) Depth() int {
	return len(s.sets)
}
