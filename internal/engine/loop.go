package engine

// FixedStepper turns variable frame times into a whole number of fixed
// physics steps.
type FixedStepper struct {
	Step     float32 // seconds per fixed step
	MaxSteps int     // cap per frame; 0 means unlimited

	accumulator float32
}

func NewFixedStepper(step float32, maxSteps int) *FixedStepper {
	return &FixedStepper{Step: step, MaxSteps: maxSteps}
}

// Advance adds frameTime and returns how many fixed steps are now due.
// When the cap is hit the leftover time is dropped so a slow frame can't
// snowball into ever more steps.
func (s *FixedStepper) Advance(frameTime float32) int {
	if s.Step <= 0 || frameTime <= 0 {
		return 0
	}
	s.accumulator += frameTime
	steps := 0
	for s.accumulator >= s.Step {
		if s.MaxSteps > 0 && steps == s.MaxSteps {
			s.accumulator = 0
			break
		}
		s.accumulator -= s.Step
		steps++
	}
	return steps
}

// Alpha is the fraction of a step left in the accumulator, for render interpolation.
func (s *FixedStepper) Alpha() float32 {
	if s.Step <= 0 {
		return 0
	}
	return s.accumulator / s.Step
}

// Run advances by frameTime and calls fixed once per due step.
func (s *FixedStepper) Run(frameTime float32, fixed func(dt float32)) int {
	n := s.Advance(frameTime)
	for i := 0; i < n; i++ {
		fixed(s.Step)
	}
	return n
}
