package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrOptionViolation is returned by Circle when an Option received an
// invalid value.
var ErrOptionViolation = errors.New("layout: invalid option supplied")

// Default canvas geometry, in abstract pixel units.
const (
	DefaultSize       = 460.0
	DefaultMargin     = 40.0
	DefaultMaxRadius  = 180.0
	DefaultNodeRadius = 18.0
)

// Point is the position of one vertex on the canvas.
type Point struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// Options describes the square canvas.
type Options struct {
	// Size is the side length of the canvas.
	Size float64
	// Margin is kept free between the ring and the canvas border.
	Margin float64
	// MaxRadius caps the ring radius on large canvases.
	MaxRadius float64
	// NodeRadius is the drawn vertex radius; renderers read it, Circle does not.
	NodeRadius float64

	err error
}

// Option configures the canvas.
type Option func(*Options)

// DefaultOptions returns a 460×460 canvas with a 40 margin and radius cap 180.
func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		Margin:     DefaultMargin,
		MaxRadius:  DefaultMaxRadius,
		NodeRadius: DefaultNodeRadius,
	}
}

// WithSize sets the canvas side length (must be > 0).
func WithSize(s float64) Option {
	return func(o *Options) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: size must be > 0, got %g", ErrOptionViolation, s)
			return
		}
		o.Size = s
	}
}

// WithMargin sets the free border (must be ≥ 0).
func WithMargin(m float64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: margin must be ≥ 0, got %g", ErrOptionViolation, m)
			return
		}
		o.Margin = m
	}
}

// WithMaxRadius sets the ring radius cap (must be > 0).
func WithMaxRadius(r float64) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: max radius must be > 0, got %g", ErrOptionViolation, r)
			return
		}
		o.MaxRadius = r
	}
}

// WithNodeRadius sets the drawn vertex radius (must be > 0).
func WithNodeRadius(r float64) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: node radius must be > 0, got %g", ErrOptionViolation, r)
			return
		}
		o.NodeRadius = r
	}
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.Size/2-o.Margin <= 0 {
		return Options{}, fmt.Errorf("%w: margin %g leaves no room on a %g canvas", ErrOptionViolation, o.Margin, o.Size)
	}

	return o, nil
}

// Radius is the ring radius: min(Size/2 - Margin, MaxRadius).
func (o Options) Radius() float64 {
	return math.Min(o.Size/2-o.Margin, o.MaxRadius)
}

// Circle places ids evenly on a ring around the canvas centre, the i-th at
// angle 2πi/n measured clockwise from the positive x axis (y grows down).
// The result is a pure function of ids and opts.
//
// Complexity: O(n).
func Circle(ids []string, opts ...Option) ([]Point, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}

	return place(ids, o), nil
}

func place(ids []string, o Options) []Point {
	n := math.Max(1, float64(len(ids)))
	c := o.Size / 2
	r := o.Radius()

	points := make([]Point, len(ids))
	for i, id := range ids {
		angle := 2 * math.Pi * float64(i) / n
		points[i] = Point{ID: id, X: c + r*math.Cos(angle), Y: c + r*math.Sin(angle)}
	}

	return points
}

// Index maps each point by vertex ID.
func Index(points []Point) map[string]Point {
	m := make(map[string]Point, len(points))
	for _, p := range points {
		m[p.ID] = p
	}

	return m
}
