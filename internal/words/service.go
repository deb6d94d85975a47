package words

// Service answers read-only queries over a Dataset loaded once at startup.
// It is safe for concurrent use as long as its Rand is.
type Service struct {
	dataset *Dataset
	rnd     Rand
}

// NewService creates a Service over ds. A nil ds is treated as empty; a nil rnd
// uses the process-wide generator.
func NewService(ds *Dataset, rnd Rand) *Service {
	if ds == nil {
		ds = NewDataset(nil)
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Service{dataset: ds, rnd: rnd}
}

// RandomEntry returns a uniformly drawn entry. ok is false when the dataset is empty.
// Draws are independent and may repeat.
func (s *Service) RandomEntry() (e Entry, ok bool) {
	n := s.dataset.Len()
	if n == 0 {
		return Entry{}, false
	}
	return s.dataset.At(s.rnd.IntN(n)), true
}

// Count returns the number of loaded entries.
func (s *Service) Count() int {
	return s.dataset.Len()
}

