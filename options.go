package fitfn

import (
	"fmt"

	"github.com/arloliu/fitfn/internal/options"
)

// smootherConfig holds Smoother settings.
type smootherConfig struct {
	span   float64
	degree int
}

func defaultSmootherConfig() *smootherConfig {
	return &smootherConfig{span: 0.5, degree: 1}
}

func (c *smootherConfig) setSpan(span float64) error {
	if span <= 0 {
		return fmt.Errorf("span must be positive, got %v", span)
	}
	c.span = span

	return nil
}

func (c *smootherConfig) setDegree(degree int) error {
	if degree != 1 && degree != 2 {
		return fmt.Errorf("degree must be 1 or 2, got %d", degree)
	}
	c.degree = degree

	return nil
}

// SmootherOption represents a functional option for configuring Smoother.
type SmootherOption = options.Option[*smootherConfig]

// WithSpan sets the smoothing span: the fraction of the data used in
// each local neighborhood. Must be positive; spans above 1 use the
// whole dataset per neighborhood. The default is 0.5.
func WithSpan(span float64) SmootherOption {
	return options.New(func(c *smootherConfig) error {
		return c.setSpan(span)
	})
}

// WithDegree sets the local polynomial degree: 1 for locally linear,
// 2 for locally quadratic. The default is 1.
func WithDegree(degree int) SmootherOption {
	return options.New(func(c *smootherConfig) error {
		return c.setDegree(degree)
	})
}

// splinerConfig holds Spliner settings.
type splinerConfig struct {
	method   Method
	monotone bool
}

func defaultSplinerConfig() *splinerConfig {
	return &splinerConfig{method: MethodCubic}
}

func (c *splinerConfig) setMethod(m Method) error {
	if _, exists := methodNames[m]; !exists {
		return fmt.Errorf("invalid spline method: %d", m)
	}
	c.method = m

	return nil
}

// SplinerOption represents a functional option for configuring Spliner.
type SplinerOption = options.Option[*splinerConfig]

// WithMethod sets the interpolation method. The default is MethodCubic.
func WithMethod(m Method) SplinerOption {
	return options.New(func(c *splinerConfig) error {
		return c.setMethod(m)
	})
}

// WithMonotone forces the monotonicity-preserving method
// (MethodMonotone) regardless of WithMethod when set to true.
func WithMonotone(monotone bool) SplinerOption {
	return options.NoError(func(c *splinerConfig) {
		c.monotone = monotone
	})
}
